package services

import (
	"github.com/devtrack-simple/database"
	"github.com/devtrack-simple/models"
	"github.com/devtrack-simple/repositories"
)

// recentActivityLimit bounds the activity feed read; older rows stay
// in the store but are not served.
const recentActivityLimit = 50

// ActivityService serves the read side of the audit feed
type ActivityService struct{}

// NewActivityService creates a new activity service instance
func NewActivityService() *ActivityService {
	return &ActivityService{}
}

// ListActivities retrieves the newest activities for a project the
// caller owns, newest first, capped at recentActivityLimit
func (s *ActivityService) ListActivities(userID string, projectID uint) ([]models.Activity, error) {
	projectRepo := repositories.NewProjectRepository(database.DB)
	if _, err := projectRepo.FindOwned(projectID, userID); err != nil {
		return nil, notFoundOr(err)
	}

	activities, err := repositories.NewActivityRepository(database.DB).
		FindRecentByProjectID(projectID, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	if activities == nil {
		activities = []models.Activity{}
	}
	return activities, nil
}

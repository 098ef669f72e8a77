package v1

import (
	"net/http"

	"github.com/devtrack-simple/services"
	"github.com/gin-gonic/gin"
)

var seedService = services.NewSeedService()

// SeedDemoData populates demo projects for a first-time user. A user
// who already has projects gets a no-op.
func SeedDemoData(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	seeded, err := seedService.SeedDemoData(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if !seeded {
		c.JSON(http.StatusOK, gin.H{"message": "Already seeded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Seeded successfully"})
}

package services

import (
	"github.com/devtrack-simple/database"
	"github.com/devtrack-simple/dto"
	"github.com/devtrack-simple/models"
	"github.com/devtrack-simple/repositories"
)

// SeedService populates demo projects for a first-time user
type SeedService struct {
	projects *ProjectService
	tasks    *TaskService
}

// NewSeedService creates a new seed service instance
func NewSeedService() *SeedService {
	return &SeedService{
		projects: NewProjectService(),
		tasks:    NewTaskService(),
	}
}

type seedTask struct {
	kind        models.TaskKind
	description string
}

type seedProject struct {
	project dto.CreateProjectRequest
	tasks   []seedTask
}

var demoProjects = []seedProject{
	{
		project: dto.CreateProjectRequest{
			Name:           "Task Manager",
			Description:    "A web application to manage my Tasks or todos",
			ProductionLink: "https://demo-task-manager.example.app/",
			RepoLink:       "https://github.com/example/step-by-step-success",
			BackendLink:    "Inbuilt supabase",
			AuthDetails:    "Google authentication, Normal authenticated",
			EnvDetails:     "uploaded with github",
		},
		tasks: []seedTask{
			{models.TaskKindFeature, "Add checklist feature to a task"},
			{models.TaskKindFeature, "Project (collection of tasks)"},
			{models.TaskKindImprovement, "Add a push notification for task reminder time"},
			{models.TaskKindImprovement, "Option to add key values value as tag"},
			{models.TaskKindBug, "UI fix for mobiles"},
			{models.TaskKindBug, "UI break on long text"},
		},
	},
	{
		project: dto.CreateProjectRequest{
			Name:           "Image Unifier",
			Description:    "A web application to view all images across my google drive",
			ProductionLink: "https://demo-image-unifier.example.app",
			RepoLink:       "https://github.com/example/photo-unifier",
			BackendLink:    "No backend",
			AuthDetails:    "Google authentication",
			EnvDetails:     "uploaded with github",
		},
		tasks: []seedTask{
			{models.TaskKindFeature, "Add option to delete a file on google drive"},
		},
	},
	{
		project: dto.CreateProjectRequest{
			Name:           "Finance app",
			Description:    "A web application to manage my finances.",
			ProductionLink: "https://demo-finance-app.example.app",
			RepoLink:       "https://github.com/example/finance-hub",
			AuthDetails:    "Google authentication, Normal authenticated",
			EnvDetails:     "uploaded with github",
		},
		tasks: []seedTask{
			{models.TaskKindFeature, "Add EMI tracker"},
			{models.TaskKindImprovement, "Show target amount in default dashboards"},
			{models.TaskKindImprovement, "Split up goal to a certain category"},
			{models.TaskKindBug, "Remove unwanted cards in summary"},
		},
	},
}

// SeedDemoData creates the demo projects for a user who has none yet.
// Returns false without touching the store when the user already has
// projects. Seeding goes through the regular mutation services so
// every row gets its paired activity.
func (s *SeedService) SeedDemoData(userID string) (bool, error) {
	count, err := repositories.NewProjectRepository(database.DB).CountByUserID(userID)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	for _, seed := range demoProjects {
		project, err := s.projects.CreateProject(userID, seed.project)
		if err != nil {
			return false, err
		}
		for _, task := range seed.tasks {
			_, err := s.tasks.CreateTask(userID, task.kind, project.ID, dto.CreateTaskRequest{
				Description: task.description,
			})
			if err != nil {
				return false, err
			}
		}
	}
	return true, nil
}

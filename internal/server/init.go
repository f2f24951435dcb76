package server

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/Theo3883/Hour-Tracking-Application/internal/config"
	"github.com/Theo3883/Hour-Tracking-Application/internal/handler"
	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/internal/repository"
	"github.com/Theo3883/Hour-Tracking-Application/internal/service"
	"github.com/Theo3883/Hour-Tracking-Application/internal/token"
)

// Repositories bundles every data access interface behind one handle.
type Repositories struct {
	Users           repository.IUserRepository
	Departments     repository.IDepartmentRepository
	Projects        repository.IProjectRepository
	Teams           repository.ITeamRepository
	ProjectTasks    repository.ITaskRepository
	DepartmentTasks repository.ITaskRepository
	ReportKeys      repository.IReportKeyRepository
	Tx              repository.TxRunner
}

// Services bundles the business layer.
type Services struct {
	Identity        *service.IdentityService
	Membership      *service.MembershipService
	Directory       *service.DirectoryService
	Coordinator     *service.CoordinatorService
	ProjectTasks    *service.TaskService
	DepartmentTasks *service.TaskService
	Stats           *service.StatsService
	ReportKeys      *service.ReportKeyService
	Tokens          *token.Manager
}

// Handlers bundles the HTTP layer.
type Handlers struct {
	Auth            *handler.AuthHandler
	User            *handler.UserHandler
	Directory       *handler.DirectoryHandler
	Team            *handler.TeamHandler
	ProjectTasks    *handler.TaskHandler
	DepartmentTasks *handler.TaskHandler
	Stats           *handler.StatsHandler
	ReportKeys      *handler.ReportKeyHandler
	Report          *handler.ReportHandler
}

func InitRepositories(client *mongo.Client, db *mongo.Database) *Repositories {
	return &Repositories{
		Users:           repository.NewUserRepository(db),
		Departments:     repository.NewDepartmentRepository(db),
		Projects:        repository.NewProjectRepository(db),
		Teams:           repository.NewTeamRepository(db),
		ProjectTasks:    repository.NewProjectTaskRepository(db),
		DepartmentTasks: repository.NewDepartmentTaskRepository(db),
		ReportKeys:      repository.NewReportKeyRepository(db),
		Tx:              repository.NewTxRunner(client),
	}
}

func InitServices(cfg *config.Config, repos *Repositories, logger *zap.Logger) *Services {
	identity := service.NewIdentityService(repos.Users, repos.Departments, repos.Projects, cfg.Ledger, logger)
	membership := service.NewMembershipService(
		repos.Users, repos.Departments, repos.Projects, repos.Teams,
		repos.ProjectTasks, repos.DepartmentTasks, repos.Tx, logger,
	)
	return &Services{
		Identity:    identity,
		Membership:  membership,
		Directory:   service.NewDirectoryService(repos.Users, repos.Departments, repos.Projects, logger),
		Coordinator: service.NewCoordinatorService(repos.Users, membership, logger),
		ProjectTasks: service.NewTaskService(
			repos.ProjectTasks, repos.Users, service.NewProjectContainers(repos.Projects), cfg.Ledger, logger,
		),
		DepartmentTasks: service.NewTaskService(
			repos.DepartmentTasks, repos.Users, service.NewDepartmentContainers(repos.Departments), cfg.Ledger, logger,
		),
		Stats:      service.NewStatsService(repos.Users, repos.Departments, repos.ProjectTasks, repos.DepartmentTasks, cfg.Ledger, logger),
		ReportKeys: service.NewReportKeyService(repos.ReportKeys, cfg.ReportKeyCacheTTLSecond, logger),
		Tokens:     token.NewManager(cfg.Auth),
	}
}

func InitHandlers(services *Services) *Handlers {
	return &Handlers{
		Auth:            handler.NewAuthHandler(services.Identity, services.Tokens),
		User:            handler.NewUserHandler(services.Identity, services.Membership),
		Directory:       handler.NewDirectoryHandler(services.Directory, services.Coordinator),
		Team:            handler.NewTeamHandler(services.Membership),
		ProjectTasks:    handler.NewTaskHandler(services.ProjectTasks),
		DepartmentTasks: handler.NewTaskHandler(services.DepartmentTasks),
		Stats:           handler.NewStatsHandler(services.Stats),
		ReportKeys:      handler.NewReportKeyHandler(services.ReportKeys),
		Report:          handler.NewReportHandler(services.Stats),
	}
}

// PopulateInitialData seeds the fallback department so first sign-ins always
// have a home, and makes sure the unique indexes exist.
func PopulateInitialData(cfg *config.Config, db *mongo.Database, repos *Repositories, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := repository.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	existing, err := repos.Departments.FindByName(ctx, cfg.Ledger.FallbackDepartment)
	if err != nil {
		return fmt.Errorf("look up fallback department: %w", err)
	}
	if existing != nil {
		return nil
	}

	dept := &model.Department{Name: cfg.Ledger.FallbackDepartment}
	if err := repos.Departments.Insert(ctx, dept); err != nil {
		return fmt.Errorf("seed fallback department: %w", err)
	}
	logger.Info("seeded fallback department",
		zap.String("name", dept.Name),
		zap.String("id", dept.ID.Hex()))
	return nil
}

package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/internal/repository"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/apperror"
)

// DirectoryService manages the container catalog itself: the departments and
// projects tasks are scoped to.
type DirectoryService struct {
	users       repository.IUserRepository
	departments repository.IDepartmentRepository
	projects    repository.IProjectRepository
	logger      *zap.Logger
}

func NewDirectoryService(
	users repository.IUserRepository,
	departments repository.IDepartmentRepository,
	projects repository.IProjectRepository,
	logger *zap.Logger,
) *DirectoryService {
	return &DirectoryService{users: users, departments: departments, projects: projects, logger: logger}
}

// ListDepartments returns every department.
func (s *DirectoryService) ListDepartments(ctx context.Context) ([]*model.Department, error) {
	return s.departments.FindAll(ctx)
}

// CreateDepartment creates a uniquely named department. Admin only.
func (s *DirectoryService) CreateDepartment(ctx context.Context, actor model.Principal, name string) (*model.Department, error) {
	if !actor.IsAdmin() {
		return nil, apperror.Forbidden("only an admin may create departments")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.InvalidInput("department name is required")
	}

	existing, err := s.departments.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("department %q already exists", name)
	}

	department := &model.Department{Name: name}
	if err := s.departments.Insert(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

// ListProjects returns every project.
func (s *DirectoryService) ListProjects(ctx context.Context) ([]*model.Project, error) {
	return s.projects.FindAll(ctx)
}

// CreateProject creates a project with its unique code and an optional
// initial coordinator. Admin only.
func (s *DirectoryService) CreateProject(ctx context.Context, actor model.Principal, req model.CreateProjectRequest) (*model.Project, error) {
	if !actor.IsAdmin() {
		return nil, apperror.Forbidden("only an admin may create projects")
	}
	code := strings.TrimSpace(req.Code)
	name := strings.TrimSpace(req.Name)
	if code == "" || name == "" {
		return nil, apperror.InvalidInput("project code and name are required")
	}

	project := &model.Project{Code: code, Name: name}
	if req.CoordinatorID != "" {
		coordinatorID, err := primitive.ObjectIDFromHex(req.CoordinatorID)
		if err != nil {
			return nil, apperror.InvalidInput("invalid coordinatorID: %q", req.CoordinatorID)
		}
		if _, err := s.users.FindByID(ctx, coordinatorID); err != nil {
			return nil, err
		}
		project.CoordinatorID = coordinatorID
	}

	if err := s.projects.Insert(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

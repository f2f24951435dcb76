package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Theo3883/Hour-Tracking-Application/internal/config"
	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/internal/repository"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/apperror"
)

// IdentityService resolves authenticated principals to user records and
// provisions first-time sign-ins into the fallback department.
type IdentityService struct {
	users       repository.IUserRepository
	departments repository.IDepartmentRepository
	projects    repository.IProjectRepository
	cfg         config.LedgerConfig
	logger      *zap.Logger
}

func NewIdentityService(
	users repository.IUserRepository,
	departments repository.IDepartmentRepository,
	projects repository.IProjectRepository,
	cfg config.LedgerConfig,
	logger *zap.Logger,
) *IdentityService {
	return &IdentityService{
		users:       users,
		departments: departments,
		projects:    projects,
		cfg:         cfg,
		logger:      logger,
	}
}

// Resolve maps a principal id to its backing user record.
func (s *IdentityService) Resolve(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return s.users.FindByID(ctx, id)
}

// ResolveOrProvision finds the user for a verified Google profile, creating
// one on first sign-in: name split from the display name, role user, and the
// fallback department as the home department.
func (s *IdentityService) ResolveOrProvision(ctx context.Context, req model.GoogleLoginRequest) (*model.User, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		return nil, apperror.InvalidInput("email is required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	fallback, err := s.departments.FindByName(ctx, s.cfg.FallbackDepartment)
	if err != nil {
		return nil, err
	}
	if fallback == nil {
		return nil, apperror.NotFound("fallback department %q does not exist", s.cfg.FallbackDepartment)
	}

	firstName, lastName := splitDisplayName(req.Name)
	user = &model.User{
		MemberCode:   uuid.NewString(),
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		DepartmentID: fallback.ID,
		Role:         model.RoleUser,
		GoogleID:     strings.SplitN(email, "@", 2)[0],
		Image:        req.Image,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("provisioned user from first sign-in",
		zap.String("email", email),
		zap.String("department", fallback.Name))
	return user, nil
}

// PromoteToAdmin sets the role of the user with the given email to admin.
func (s *IdentityService) PromoteToAdmin(ctx context.Context, email string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("no user with email %q", email)
	}

	if user.Role != model.RoleAdmin {
		if err := s.users.UpdateRole(ctx, user.ID, model.RoleAdmin); err != nil {
			return nil, err
		}
		user.Role = model.RoleAdmin
	}
	return user, nil
}

// ListUsers returns every user record.
func (s *IdentityService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.users.FindAll(ctx)
}

// IsDepartmentCoordinator derives coordinator status for a department.
func (s *IdentityService) IsDepartmentCoordinator(ctx context.Context, principal model.Principal, departmentID primitive.ObjectID) (bool, error) {
	department, err := s.departments.FindByID(ctx, departmentID)
	if err != nil {
		return false, err
	}
	return department.CoordinatorID == principal.ID, nil
}

// IsProjectCoordinator derives coordinator status for a project.
func (s *IdentityService) IsProjectCoordinator(ctx context.Context, principal model.Principal, projectID primitive.ObjectID) (bool, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return false, err
	}
	return project.CoordinatorID == principal.ID, nil
}

// splitDisplayName splits a Google display name into first/last parts,
// falling back to "New"/"User" the way first sign-ins have always been
// provisioned.
func splitDisplayName(name string) (string, string) {
	parts := strings.Fields(strings.TrimSpace(name))
	switch len(parts) {
	case 0:
		return "New", "User"
	case 1:
		return parts[0], "User"
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

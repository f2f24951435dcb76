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

// MembershipService maintains the two membership axes and runs the
// destructive cascades that keep the task ledgers consistent with them.
type MembershipService struct {
	users           repository.IUserRepository
	departments     repository.IDepartmentRepository
	projects        repository.IProjectRepository
	teams           repository.ITeamRepository
	projectTasks    repository.ITaskRepository
	departmentTasks repository.ITaskRepository
	tx              repository.TxRunner
	logger          *zap.Logger
}

func NewMembershipService(
	users repository.IUserRepository,
	departments repository.IDepartmentRepository,
	projects repository.IProjectRepository,
	teams repository.ITeamRepository,
	projectTasks repository.ITaskRepository,
	departmentTasks repository.ITaskRepository,
	tx repository.TxRunner,
	logger *zap.Logger,
) *MembershipService {
	return &MembershipService{
		users:           users,
		departments:     departments,
		projects:        projects,
		teams:           teams,
		projectTasks:    projectTasks,
		departmentTasks: departmentTasks,
		tx:              tx,
		logger:          logger,
	}
}

// canManageProject allows admins and the project's coordinator.
func (s *MembershipService) canManageProject(ctx context.Context, actor model.Principal, projectID primitive.ObjectID) error {
	if actor.IsAdmin() {
		return nil
	}
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project.CoordinatorID != actor.ID {
		return apperror.Forbidden("only the project coordinator or an admin may manage this team")
	}
	return nil
}

// canManageDepartment allows admins and the department's coordinator.
func (s *MembershipService) canManageDepartment(ctx context.Context, actor model.Principal, departmentID primitive.ObjectID) error {
	if actor.IsAdmin() {
		return nil
	}
	department, err := s.departments.FindByID(ctx, departmentID)
	if err != nil {
		return err
	}
	if department.CoordinatorID != actor.ID {
		return apperror.Forbidden("only the department coordinator or an admin may manage membership")
	}
	return nil
}

// AddTeamMember creates a (user, project) membership. Duplicate pairs are
// rejected with Conflict; the compound unique index backs this up under
// concurrent inserts.
func (s *MembershipService) AddTeamMember(ctx context.Context, actor model.Principal, userID, projectID primitive.ObjectID) (*model.TeamMembership, error) {
	if err := s.canManageProject(ctx, actor, projectID); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		return nil, err
	}

	existing, err := s.teams.FindPair(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("user is already a member of this project")
	}

	membership := &model.TeamMembership{UserID: userID, ProjectID: projectID}
	if err := s.teams.Insert(ctx, membership); err != nil {
		return nil, err
	}
	return membership, nil
}

// RemoveTeamMember deletes the membership and every project task the member
// holds in that project, approved or not. Both happen in one transaction.
func (s *MembershipService) RemoveTeamMember(ctx context.Context, actor model.Principal, userID, projectID primitive.ObjectID) error {
	if err := s.canManageProject(ctx, actor, projectID); err != nil {
		return err
	}

	return s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.teams.DeletePair(txCtx, userID, projectID); err != nil {
			return err
		}
		removed, err := s.projectTasks.DeleteByUserAndContainer(txCtx, userID, projectID)
		if err != nil {
			return err
		}
		s.logger.Info("removed team member",
			zap.String("userID", userID.Hex()),
			zap.String("projectID", projectID.Hex()),
			zap.Int64("tasksRemoved", removed))
		return nil
	})
}

// ChangeUserDepartment moves a user to a new department and deletes the
// user's department tasks scoped to the old one. Project tasks survive:
// projects are cross-department.
func (s *MembershipService) ChangeUserDepartment(ctx context.Context, actor model.Principal, userID, newDepartmentID primitive.ObjectID) (*model.User, error) {
	if err := s.canManageDepartment(ctx, actor, newDepartmentID); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.departments.FindByID(ctx, newDepartmentID); err != nil {
		return nil, err
	}
	if user.DepartmentID == newDepartmentID {
		return user, nil
	}

	oldDepartmentID := user.DepartmentID
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.users.UpdateDepartment(txCtx, userID, newDepartmentID); err != nil {
			return err
		}
		removed, err := s.departmentTasks.DeleteByUserAndContainer(txCtx, userID, oldDepartmentID)
		if err != nil {
			return err
		}
		s.logger.Info("changed user department",
			zap.String("userID", userID.Hex()),
			zap.String("oldDepartmentID", oldDepartmentID.Hex()),
			zap.String("newDepartmentID", newDepartmentID.Hex()),
			zap.Int64("departmentTasksRemoved", removed))
		return nil
	})
	if err != nil {
		return nil, err
	}

	user.DepartmentID = newDepartmentID
	return user, nil
}

// UpdateUser edits name parts and, when the department reference changes,
// routes through the same cascade as ChangeUserDepartment.
func (s *MembershipService) UpdateUser(ctx context.Context, actor model.Principal, userID primitive.ObjectID, req model.UpdateUserRequest) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && actor.ID != userID {
		return nil, apperror.Forbidden("users may only edit their own account")
	}

	if name := strings.TrimSpace(req.FirstName); name != "" {
		user.FirstName = name
	}
	if name := strings.TrimSpace(req.LastName); name != "" {
		user.LastName = name
	}

	var newDepartmentID primitive.ObjectID
	departmentChanged := false
	if req.DepartmentID != "" {
		newDepartmentID, err = primitive.ObjectIDFromHex(req.DepartmentID)
		if err != nil {
			return nil, apperror.InvalidInput("invalid departmentID: %q", req.DepartmentID)
		}
		if _, err := s.departments.FindByID(ctx, newDepartmentID); err != nil {
			return nil, err
		}
		departmentChanged = newDepartmentID != user.DepartmentID
	}

	if !departmentChanged {
		if err := s.users.Replace(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	}

	oldDepartmentID := user.DepartmentID
	user.DepartmentID = newDepartmentID
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.users.Replace(txCtx, user); err != nil {
			return err
		}
		_, err := s.departmentTasks.DeleteByUserAndContainer(txCtx, userID, oldDepartmentID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// SetDepartmentCoordinator overwrites the department's coordinator reference.
func (s *MembershipService) SetDepartmentCoordinator(ctx context.Context, departmentID, userID primitive.ObjectID) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	return s.departments.SetCoordinator(ctx, departmentID, userID)
}

// SetProjectCoordinator overwrites the project's coordinator reference.
func (s *MembershipService) SetProjectCoordinator(ctx context.Context, projectID, userID primitive.ObjectID) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	return s.projects.SetCoordinator(ctx, projectID, userID)
}

// ListDepartmentMembers returns the users currently homed in a department.
func (s *MembershipService) ListDepartmentMembers(ctx context.Context, departmentID primitive.ObjectID) ([]*model.User, error) {
	if _, err := s.departments.FindByID(ctx, departmentID); err != nil {
		return nil, err
	}
	return s.users.FindByDepartment(ctx, departmentID)
}

// ListProjectMembers joins the project's membership rows with user records.
// Memberships whose user no longer resolves are skipped.
func (s *MembershipService) ListProjectMembers(ctx context.Context, projectID primitive.ObjectID) ([]model.TeamMemberView, error) {
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		return nil, err
	}
	memberships, err := s.teams.FindByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	views := make([]model.TeamMemberView, 0, len(memberships))
	for _, m := range memberships {
		user, err := s.users.FindByID(ctx, m.UserID)
		if err != nil {
			if apperror.IsKind(err, apperror.KindNotFound) {
				continue
			}
			return nil, err
		}
		views = append(views, model.TeamMemberView{
			MembershipID: m.ID.Hex(),
			User:         user.Ref(),
		})
	}
	return views, nil
}

// ListTeams returns every membership row.
func (s *MembershipService) ListTeams(ctx context.Context) ([]*model.TeamMembership, error) {
	return s.teams.FindAll(ctx)
}

// ListTeamsByUser joins a user's membership rows with project records.
func (s *MembershipService) ListTeamsByUser(ctx context.Context, userID primitive.ObjectID) ([]model.TeamProjectView, error) {
	memberships, err := s.teams.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]model.TeamProjectView, 0, len(memberships))
	for _, m := range memberships {
		project, err := s.projects.FindByID(ctx, m.ProjectID)
		if err != nil {
			if apperror.IsKind(err, apperror.KindNotFound) {
				continue
			}
			return nil, err
		}
		views = append(views, model.TeamProjectView{
			MembershipID: m.ID.Hex(),
			ProjectID:    project.ID.Hex(),
			ProjectCode:  project.Code,
			ProjectName:  project.Name,
		})
	}
	return views, nil
}

package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/internal/repository"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/apperror"
)

// CoordinatorService assigns the single approval authority of a project or
// department, resolving the coordinator by email.
type CoordinatorService struct {
	users      repository.IUserRepository
	membership *MembershipService
	logger     *zap.Logger
}

func NewCoordinatorService(users repository.IUserRepository, membership *MembershipService, logger *zap.Logger) *CoordinatorService {
	return &CoordinatorService{users: users, membership: membership, logger: logger}
}

// Assign resolves the email to a user and overwrites the container's
// coordinator reference. Department assignments are admin-only; project
// assignments also allow the project's current coordinator to hand over.
func (s *CoordinatorService) Assign(ctx context.Context, actor model.Principal, kind model.ContainerKind, containerID primitive.ObjectID, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("no user with email %q", email)
	}

	switch kind {
	case model.KindDepartment:
		if !actor.IsAdmin() {
			return apperror.Forbidden("only an admin may assign a department coordinator")
		}
		err = s.membership.SetDepartmentCoordinator(ctx, containerID, user.ID)
	case model.KindProject:
		if !actor.IsAdmin() {
			if authzErr := s.membership.canManageProject(ctx, actor, containerID); authzErr != nil {
				return authzErr
			}
		}
		err = s.membership.SetProjectCoordinator(ctx, containerID, user.ID)
	default:
		return apperror.InvalidInput("unknown container kind %q", kind)
	}
	if err != nil {
		return err
	}

	s.logger.Info("coordinator assigned",
		zap.String("kind", string(kind)),
		zap.String("containerID", containerID.Hex()),
		zap.String("coordinator", email))
	return nil
}

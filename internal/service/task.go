package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Theo3883/Hour-Tracking-Application/internal/config"
	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/internal/repository"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/apperror"
)

// TaskService owns one task namespace. The project and department ledgers are
// two instances of this type differing only in their container resolver and
// backing collection, so the state machine and validation cannot drift apart.
type TaskService struct {
	tasks       repository.ITaskRepository
	users       repository.IUserRepository
	containers  ContainerResolver
	resetOnEdit bool
	logger      *zap.Logger
}

func NewTaskService(
	tasks repository.ITaskRepository,
	users repository.IUserRepository,
	containers ContainerResolver,
	cfg config.LedgerConfig,
	logger *zap.Logger,
) *TaskService {
	return &TaskService{
		tasks:       tasks,
		users:       users,
		containers:  containers,
		resetOnEdit: cfg.ApprovalResetOnEdit,
		logger:      logger,
	}
}

// Kind reports which namespace this instance serves.
func (s *TaskService) Kind() model.ContainerKind { return s.containers.Kind() }

// canModerate allows admins and the container's coordinator.
func canModerate(actor model.Principal, container *ContainerInfo) bool {
	return actor.IsAdmin() || (!container.CoordinatorID.IsZero() && container.CoordinatorID == actor.ID)
}

// Create logs hours for a contributor. The contributor defaults to the
// actor; logging on behalf of someone else requires coordinator or admin
// standing. Tasks always start unapproved.
func (s *TaskService) Create(ctx context.Context, actor model.Principal, contributorID, containerID primitive.ObjectID, name string, hours float64) (*model.Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.InvalidInput("task name is required")
	}
	if hours < 0 {
		return nil, apperror.InvalidInput("hours_worked must be non-negative")
	}

	if contributorID.IsZero() {
		contributorID = actor.ID
	}
	if _, err := s.users.FindByID(ctx, contributorID); err != nil {
		return nil, err
	}
	container, err := s.containers.Resolve(ctx, containerID)
	if err != nil {
		return nil, err
	}
	if contributorID != actor.ID && !canModerate(actor, container) {
		return nil, apperror.Forbidden("only a coordinator or admin may log hours for another user")
	}

	task := &model.Task{
		UserID:      contributorID,
		ContainerID: containerID,
		Name:        name,
		HoursWorked: hours,
		Approved:    false,
	}
	if err := s.tasks.Insert(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// SetApproval flips the approval flag. Only the container's coordinator or
// an admin may approve, and never the contributor on their own task. The
// transition is idempotent in both directions.
func (s *TaskService) SetApproval(ctx context.Context, actor model.Principal, taskID primitive.ObjectID, approved bool) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	container, err := s.containers.Resolve(ctx, task.ContainerID)
	if err != nil {
		return nil, err
	}

	if task.UserID == actor.ID {
		return nil, apperror.Forbidden("contributors may not approve their own tasks")
	}
	if !canModerate(actor, container) {
		return nil, apperror.Forbidden("only the %s coordinator or an admin may change approval", s.Kind())
	}

	if task.Approved == approved {
		return task, nil
	}
	task.Approved = approved
	// Replace reports NotFound if the task was deleted in the meantime.
	if err := s.tasks.Replace(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Update applies a partial edit. Contributor, coordinator, and admin may
// edit; approval is left alone unless the reset-on-edit knob is enabled.
func (s *TaskService) Update(ctx context.Context, actor model.Principal, taskID primitive.ObjectID, req model.UpdateTaskRequest) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	container, err := s.containers.Resolve(ctx, task.ContainerID)
	if err != nil {
		return nil, err
	}
	if task.UserID != actor.ID && !canModerate(actor, container) {
		return nil, apperror.Forbidden("only the contributor, the coordinator, or an admin may edit this task")
	}

	changed := false
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperror.InvalidInput("task name is required")
		}
		if name != task.Name {
			task.Name = name
			changed = true
		}
	}
	if req.HoursWorked != nil {
		if *req.HoursWorked < 0 {
			return nil, apperror.InvalidInput("hours_worked must be non-negative")
		}
		if *req.HoursWorked != task.HoursWorked {
			task.HoursWorked = *req.HoursWorked
			changed = true
		}
	}

	if changed && s.resetOnEdit && task.Approved {
		task.Approved = false
		s.logger.Info("approval reset on edit",
			zap.String("taskID", task.ID.Hex()),
			zap.String("kind", string(s.Kind())))
	}
	if err := s.tasks.Replace(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a single task. Contributor, coordinator, and admin may
// delete; a repeat delete observes NotFound.
func (s *TaskService) Delete(ctx context.Context, actor model.Principal, taskID primitive.ObjectID) error {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return err
	}
	container, err := s.containers.Resolve(ctx, task.ContainerID)
	if err != nil {
		return err
	}
	if task.UserID != actor.ID && !canModerate(actor, container) {
		return apperror.Forbidden("only the contributor, the coordinator, or an admin may delete this task")
	}
	return s.tasks.Remove(ctx, taskID)
}

// ListAll returns the whole namespace with references resolved.
func (s *TaskService) ListAll(ctx context.Context) ([]model.TaskView, error) {
	tasks, err := s.tasks.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, tasks), nil
}

// ListByContainer returns the tasks scoped to one project or department.
func (s *TaskService) ListByContainer(ctx context.Context, containerID primitive.ObjectID) ([]model.TaskView, error) {
	if _, err := s.containers.Resolve(ctx, containerID); err != nil {
		return nil, err
	}
	tasks, err := s.tasks.FindByContainer(ctx, containerID)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, tasks), nil
}

// toViews resolves weak references best-effort: a dangling contributor or
// container leaves a zero ref on the view rather than failing the read.
func (s *TaskService) toViews(ctx context.Context, tasks []*model.Task) []model.TaskView {
	views := make([]model.TaskView, 0, len(tasks))
	for _, task := range tasks {
		view := model.TaskView{
			ID:          task.ID.Hex(),
			Kind:        s.Kind(),
			Name:        task.Name,
			HoursWorked: task.HoursWorked,
			Approved:    task.Approved,
		}
		if user, err := s.users.FindByID(ctx, task.UserID); err == nil {
			view.Contributor = user.Ref()
		}
		if container, err := s.containers.Resolve(ctx, task.ContainerID); err == nil {
			view.Container = container.Ref()
		}
		views = append(views, view)
	}
	return views
}

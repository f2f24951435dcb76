package service

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Theo3883/Hour-Tracking-Application/internal/config"
	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/internal/repository"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/apperror"
)

// StatsService computes approved-hour aggregates. It holds no cache: every
// call is a fresh fold over ledger state, safe to run concurrently.
type StatsService struct {
	users           repository.IUserRepository
	departments     repository.IDepartmentRepository
	projectTasks    repository.ITaskRepository
	departmentTasks repository.ITaskRepository
	leaderboardSize int
	logger          *zap.Logger
}

func NewStatsService(
	users repository.IUserRepository,
	departments repository.IDepartmentRepository,
	projectTasks repository.ITaskRepository,
	departmentTasks repository.ITaskRepository,
	cfg config.LedgerConfig,
	logger *zap.Logger,
) *StatsService {
	size := cfg.LeaderboardSize
	if size <= 0 {
		size = config.DefaultLeaderboardSize
	}
	return &StatsService{
		users:           users,
		departments:     departments,
		projectTasks:    projectTasks,
		departmentTasks: departmentTasks,
		leaderboardSize: size,
		logger:          logger,
	}
}

// ApprovedHoursForUser sums approved hours across both namespaces for one
// contributor. Department tasks count regardless of which department they
// were logged in; the department-change cascade already removed stale ones.
func (s *StatsService) ApprovedHoursForUser(ctx context.Context, userID primitive.ObjectID) (model.UserHours, error) {
	hours := model.UserHours{UserID: userID.Hex()}

	projectTasks, err := s.projectTasks.FindApprovedByUser(ctx, userID)
	if err != nil {
		return hours, err
	}
	for _, t := range projectTasks {
		hours.ProjectHours += t.HoursWorked
	}

	departmentTasks, err := s.departmentTasks.FindApprovedByUser(ctx, userID)
	if err != nil {
		return hours, err
	}
	for _, t := range departmentTasks {
		hours.DepartmentHours += t.HoursWorked
	}

	hours.TotalHours = hours.ProjectHours + hours.DepartmentHours
	return hours, nil
}

// DepartmentLeaderboard builds the top-N view for one department:
// seed every current member at zero, fold approved department tasks scoped
// to the department (historical contributors included), then fold approved
// project tasks for contributors already present — cross-department project
// hours attribute to the member's current department. Members with zero
// total hours are dropped, the rest sorted by total descending.
func (s *StatsService) DepartmentLeaderboard(ctx context.Context, departmentID primitive.ObjectID) (*model.DepartmentLeaderboard, error) {
	department, err := s.departments.FindByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	members, err := s.users.FindByDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	stats := make(map[primitive.ObjectID]*model.MemberHours, len(members))
	for _, member := range members {
		stats[member.ID] = &model.MemberHours{
			ID:        member.ID.Hex(),
			FirstName: member.FirstName,
			LastName:  member.LastName,
			Email:     member.Email,
		}
	}

	departmentTasks, err := s.departmentTasks.FindApprovedByContainer(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	for _, task := range departmentTasks {
		row, ok := stats[task.UserID]
		if !ok {
			// Historical contributor no longer homed here; a deleted user
			// reference is skipped, not surfaced.
			user, err := s.users.FindByID(ctx, task.UserID)
			if err != nil {
				if apperror.IsKind(err, apperror.KindNotFound) {
					continue
				}
				return nil, err
			}
			row = &model.MemberHours{
				ID:        user.ID.Hex(),
				FirstName: user.FirstName,
				LastName:  user.LastName,
				Email:     user.Email,
			}
			stats[task.UserID] = row
		}
		row.DepartmentHours += task.HoursWorked
		row.TotalHours += task.HoursWorked
	}

	projectTasks, err := s.projectTasks.FindApproved(ctx)
	if err != nil {
		return nil, err
	}
	for _, task := range projectTasks {
		if row, ok := stats[task.UserID]; ok {
			row.ProjectHours += task.HoursWorked
			row.TotalHours += task.HoursWorked
		}
	}

	rows := make([]model.MemberHours, 0, len(stats))
	for _, row := range stats {
		if row.TotalHours > 0 {
			rows = append(rows, *row)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalHours > rows[j].TotalHours
	})
	if len(rows) > s.leaderboardSize {
		rows = rows[:s.leaderboardSize]
	}

	return &model.DepartmentLeaderboard{
		DepartmentID:   department.ID.Hex(),
		DepartmentName: department.Name,
		Members:        rows,
	}, nil
}

// AllDepartmentLeaderboards produces the full report feed, one leaderboard
// per department. Departments that vanish mid-iteration are skipped.
func (s *StatsService) AllDepartmentLeaderboards(ctx context.Context) ([]model.DepartmentLeaderboard, error) {
	departments, err := s.departments.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	boards := make([]model.DepartmentLeaderboard, 0, len(departments))
	for _, department := range departments {
		board, err := s.DepartmentLeaderboard(ctx, department.ID)
		if err != nil {
			if apperror.IsKind(err, apperror.KindNotFound) {
				continue
			}
			return nil, err
		}
		boards = append(boards, *board)
	}
	return boards, nil
}

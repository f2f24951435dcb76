package service

import (
	"context"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Theo3883/Hour-Tracking-Application/internal/config"
	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/apperror"
)

type statsFixture struct {
	svc             *StatsService
	users           *mockUserRepo
	departments     *mockDepartmentRepo
	projectTasks    *mockTaskRepo
	departmentTasks *mockTaskRepo
	dept            *model.Department
}

func setupTestStats(t *testing.T, cfg config.LedgerConfig) *statsFixture {
	t.Helper()
	ctx := context.Background()

	users := newMockUserRepo()
	departments := newMockDepartmentRepo()
	projectTasks := newMockTaskRepo()
	departmentTasks := newMockTaskRepo()

	dept := &model.Department{Name: "Mechanics"}
	if err := departments.Insert(ctx, dept); err != nil {
		t.Fatalf("insert department: %v", err)
	}

	svc := NewStatsService(users, departments, projectTasks, departmentTasks, cfg, zap.NewNop())
	return &statsFixture{
		svc:             svc,
		users:           users,
		departments:     departments,
		projectTasks:    projectTasks,
		departmentTasks: departmentTasks,
		dept:            dept,
	}
}

func (f *statsFixture) addMember(t *testing.T, email string) *model.User {
	t.Helper()
	user := &model.User{Email: email, FirstName: email, LastName: "Member", DepartmentID: f.dept.ID}
	if err := f.users.Insert(context.Background(), user); err != nil {
		t.Fatalf("insert user: %v", err)
	}
	return user
}

func TestApprovedHoursForUser(t *testing.T) {
	f := setupTestStats(t, config.LedgerConfig{})
	ctx := context.Background()
	user := f.addMember(t, "mia@example.com")
	projectID := primitive.NewObjectID()

	seedProject := []*model.Task{
		{UserID: user.ID, ContainerID: projectID, Name: "a", HoursWorked: 2, Approved: true},
		{UserID: user.ID, ContainerID: projectID, Name: "b", HoursWorked: 10}, // pending, ignored
	}
	for _, task := range seedProject {
		if err := f.projectTasks.Insert(ctx, task); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	if err := f.departmentTasks.Insert(ctx, &model.Task{UserID: user.ID, ContainerID: f.dept.ID, Name: "c", HoursWorked: 3, Approved: true}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	hours, err := f.svc.ApprovedHoursForUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ApprovedHoursForUser: %v", err)
	}
	if hours.ProjectHours != 2 || hours.DepartmentHours != 3 || hours.TotalHours != 5 {
		t.Errorf("hours = %+v, want 2/3/5", hours)
	}
}

func TestDepartmentLeaderboardOrderingAndFiltering(t *testing.T) {
	f := setupTestStats(t, config.LedgerConfig{})
	ctx := context.Background()

	low := f.addMember(t, "low@example.com")
	high := f.addMember(t, "high@example.com")
	f.addMember(t, "idle@example.com") // zero hours, must be filtered

	projectID := primitive.NewObjectID()
	seed := []struct {
		repo  *mockTaskRepo
		tasks []*model.Task
	}{
		{f.departmentTasks, []*model.Task{
			{UserID: low.ID, ContainerID: f.dept.ID, Name: "a", HoursWorked: 1, Approved: true},
			{UserID: high.ID, ContainerID: f.dept.ID, Name: "b", HoursWorked: 4, Approved: true},
			{UserID: high.ID, ContainerID: f.dept.ID, Name: "pending", HoursWorked: 50},
		}},
		{f.projectTasks, []*model.Task{
			{UserID: high.ID, ContainerID: projectID, Name: "c", HoursWorked: 2, Approved: true},
		}},
	}
	for _, group := range seed {
		for _, task := range group.tasks {
			if err := group.repo.Insert(ctx, task); err != nil {
				t.Fatalf("insert: %v", err)
			}
		}
	}

	board, err := f.svc.DepartmentLeaderboard(ctx, f.dept.ID)
	if err != nil {
		t.Fatalf("DepartmentLeaderboard: %v", err)
	}
	if board.DepartmentName != "Mechanics" {
		t.Errorf("department name = %q", board.DepartmentName)
	}
	if len(board.Members) != 2 {
		t.Fatalf("len(members) = %d, want 2 (zero-hour member filtered)", len(board.Members))
	}
	if board.Members[0].Email != "high@example.com" || board.Members[0].TotalHours != 6 {
		t.Errorf("top row = %+v, want high@example.com with 6", board.Members[0])
	}
	if board.Members[1].Email != "low@example.com" || board.Members[1].TotalHours != 1 {
		t.Errorf("second row = %+v, want low@example.com with 1", board.Members[1])
	}
}

func TestDepartmentLeaderboardIncludesHistoricalContributors(t *testing.T) {
	f := setupTestStats(t, config.LedgerConfig{})
	ctx := context.Background()

	// Contributor who has since moved to another department but still has
	// approved tasks scoped to this one.
	other := &model.Department{Name: "Software"}
	if err := f.departments.Insert(ctx, other); err != nil {
		t.Fatalf("insert department: %v", err)
	}
	mover := &model.User{Email: "mover@example.com", FirstName: "Mo", LastName: "Ver", DepartmentID: other.ID}
	if err := f.users.Insert(ctx, mover); err != nil {
		t.Fatalf("insert user: %v", err)
	}
	if err := f.departmentTasks.Insert(ctx, &model.Task{UserID: mover.ID, ContainerID: f.dept.ID, Name: "legacy", HoursWorked: 7, Approved: true}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	// Deleted user reference is skipped, not surfaced.
	if err := f.departmentTasks.Insert(ctx, &model.Task{UserID: primitive.NewObjectID(), ContainerID: f.dept.ID, Name: "orphan", HoursWorked: 9, Approved: true}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	board, err := f.svc.DepartmentLeaderboard(ctx, f.dept.ID)
	if err != nil {
		t.Fatalf("DepartmentLeaderboard: %v", err)
	}
	if len(board.Members) != 1 {
		t.Fatalf("len(members) = %d, want 1", len(board.Members))
	}
	if board.Members[0].Email != "mover@example.com" || board.Members[0].TotalHours != 7 {
		t.Errorf("row = %+v", board.Members[0])
	}
}

func TestDepartmentLeaderboardCapsAtConfiguredSize(t *testing.T) {
	f := setupTestStats(t, config.LedgerConfig{LeaderboardSize: 5})
	ctx := context.Background()

	for i := 1; i <= 8; i++ {
		user := f.addMember(t, fmt.Sprintf("m%d@example.com", i))
		task := &model.Task{UserID: user.ID, ContainerID: f.dept.ID, Name: "t", HoursWorked: float64(i), Approved: true}
		if err := f.departmentTasks.Insert(ctx, task); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	board, err := f.svc.DepartmentLeaderboard(ctx, f.dept.ID)
	if err != nil {
		t.Fatalf("DepartmentLeaderboard: %v", err)
	}
	if len(board.Members) != 5 {
		t.Fatalf("len(members) = %d, want 5", len(board.Members))
	}
	for i, row := range board.Members {
		want := float64(8 - i)
		if row.TotalHours != want {
			t.Errorf("row %d total = %v, want %v", i, row.TotalHours, want)
		}
	}
}

func TestDepartmentLeaderboardUnknownDepartment(t *testing.T) {
	f := setupTestStats(t, config.LedgerConfig{})
	if _, err := f.svc.DepartmentLeaderboard(context.Background(), primitive.NewObjectID()); !apperror.IsKind(err, apperror.KindNotFound) {
		t.Errorf("err = %v, want NotFound", err)
	}
}

func TestAllDepartmentLeaderboards(t *testing.T) {
	f := setupTestStats(t, config.LedgerConfig{})
	ctx := context.Background()

	other := &model.Department{Name: "Software"}
	if err := f.departments.Insert(ctx, other); err != nil {
		t.Fatalf("insert department: %v", err)
	}
	user := f.addMember(t, "mia@example.com")
	if err := f.departmentTasks.Insert(ctx, &model.Task{UserID: user.ID, ContainerID: f.dept.ID, Name: "t", HoursWorked: 2, Approved: true}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	boards, err := f.svc.AllDepartmentLeaderboards(ctx)
	if err != nil {
		t.Fatalf("AllDepartmentLeaderboards: %v", err)
	}
	if len(boards) != 2 {
		t.Fatalf("len(boards) = %d, want 2", len(boards))
	}
	var withRows int
	for _, board := range boards {
		if len(board.Members) > 0 {
			withRows++
		}
	}
	if withRows != 1 {
		t.Errorf("boards with rows = %d, want 1", withRows)
	}
}

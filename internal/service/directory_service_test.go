package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/apperror"
)

func TestCreateDepartment(t *testing.T) {
	f := setupTestMembership(t)
	ctx := context.Background()
	svc := NewDirectoryService(f.users, f.departments, f.projects, zap.NewNop())

	dept, err := svc.CreateDepartment(ctx, f.admin, "  Avionics  ")
	if err != nil {
		t.Fatalf("CreateDepartment: %v", err)
	}
	if dept.Name != "Avionics" {
		t.Errorf("name = %q, want trimmed", dept.Name)
	}

	if _, err := svc.CreateDepartment(ctx, f.admin, "Avionics"); !apperror.IsKind(err, apperror.KindConflict) {
		t.Errorf("duplicate name: err = %v, want Conflict", err)
	}
	if _, err := svc.CreateDepartment(ctx, f.admin, "  "); !apperror.IsKind(err, apperror.KindInvalidInput) {
		t.Errorf("blank name: err = %v, want InvalidInput", err)
	}
	if _, err := svc.CreateDepartment(ctx, f.coordinator, "Ops"); !apperror.IsKind(err, apperror.KindForbidden) {
		t.Errorf("non-admin: err = %v, want Forbidden", err)
	}
}

func TestCreateProject(t *testing.T) {
	f := setupTestMembership(t)
	ctx := context.Background()
	svc := NewDirectoryService(f.users, f.departments, f.projects, zap.NewNop())

	project, err := svc.CreateProject(ctx, f.admin, model.CreateProjectRequest{
		Code:          "PRJ-9",
		Name:          "Lander",
		CoordinatorID: f.member.ID.Hex(),
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if project.CoordinatorID != f.member.ID {
		t.Error("initial coordinator not set")
	}

	if _, err := svc.CreateProject(ctx, f.admin, model.CreateProjectRequest{Code: "PRJ-9", Name: "Dup"}); !apperror.IsKind(err, apperror.KindConflict) {
		t.Errorf("duplicate code: err = %v, want Conflict", err)
	}
	if _, err := svc.CreateProject(ctx, f.admin, model.CreateProjectRequest{Code: "PRJ-10", Name: "X", CoordinatorID: "bad"}); !apperror.IsKind(err, apperror.KindInvalidInput) {
		t.Errorf("bad coordinatorID: err = %v, want InvalidInput", err)
	}
	if _, err := svc.CreateProject(ctx, f.coordinator, model.CreateProjectRequest{Code: "PRJ-11", Name: "Y"}); !apperror.IsKind(err, apperror.KindForbidden) {
		t.Errorf("non-admin: err = %v, want Forbidden", err)
	}

	projects, err := svc.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(projects) != 2 { // fixture project + PRJ-9
		t.Errorf("len(projects) = %d, want 2", len(projects))
	}
}

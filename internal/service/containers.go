package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/internal/repository"
)

// ContainerInfo is the slice of a project or department the task ledger
// needs: identity for views and the coordinator reference for authorization.
type ContainerInfo struct {
	ID            primitive.ObjectID
	Name          string
	Code          string // project code; empty for departments
	CoordinatorID primitive.ObjectID
}

func (c *ContainerInfo) Ref() model.ContainerRef {
	return model.ContainerRef{ID: c.ID.Hex(), Name: c.Name, Code: c.Code}
}

// ContainerResolver abstracts the container axis so one task service
// implementation handles both namespaces.
type ContainerResolver interface {
	Kind() model.ContainerKind
	Resolve(ctx context.Context, id primitive.ObjectID) (*ContainerInfo, error)
}

type projectContainers struct {
	repo repository.IProjectRepository
}

// NewProjectContainers resolves tasks' containers against the project axis.
func NewProjectContainers(repo repository.IProjectRepository) ContainerResolver {
	return &projectContainers{repo: repo}
}

func (p *projectContainers) Kind() model.ContainerKind { return model.KindProject }

func (p *projectContainers) Resolve(ctx context.Context, id primitive.ObjectID) (*ContainerInfo, error) {
	project, err := p.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ContainerInfo{
		ID:            project.ID,
		Name:          project.Name,
		Code:          project.Code,
		CoordinatorID: project.CoordinatorID,
	}, nil
}

type departmentContainers struct {
	repo repository.IDepartmentRepository
}

// NewDepartmentContainers resolves tasks' containers against the department axis.
func NewDepartmentContainers(repo repository.IDepartmentRepository) ContainerResolver {
	return &departmentContainers{repo: repo}
}

func (d *departmentContainers) Kind() model.ContainerKind { return model.KindDepartment }

func (d *departmentContainers) Resolve(ctx context.Context, id primitive.ObjectID) (*ContainerInfo, error) {
	department, err := d.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ContainerInfo{
		ID:            department.ID,
		Name:          department.Name,
		CoordinatorID: department.CoordinatorID,
	}, nil
}

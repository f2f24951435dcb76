package service

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/apperror"
)

// Map-backed repository fakes shared by the service tests.

type mockUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[primitive.ObjectID]*model.User)}
}

func (m *mockUserRepo) Insert(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return apperror.Conflict("user already exists")
		}
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, apperror.NotFound("user not found")
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepo) Replace(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return apperror.NotFound("user not found")
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindAll(_ context.Context) ([]*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.User, 0, len(m.users))
	for _, user := range m.users {
		copied := *user
		out = append(out, &copied)
	}
	return out, nil
}

func (m *mockUserRepo) FindByDepartment(_ context.Context, departmentID primitive.ObjectID) ([]*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.User
	for _, user := range m.users {
		if user.DepartmentID == departmentID {
			copied := *user
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *mockUserRepo) UpdateDepartment(_ context.Context, userID, departmentID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[userID]
	if !ok {
		return apperror.NotFound("user not found")
	}
	user.DepartmentID = departmentID
	return nil
}

func (m *mockUserRepo) UpdateRole(_ context.Context, userID primitive.ObjectID, role model.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[userID]
	if !ok {
		return apperror.NotFound("user not found")
	}
	user.Role = role
	return nil
}

type mockDepartmentRepo struct {
	mu          sync.Mutex
	departments map[primitive.ObjectID]*model.Department
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{departments: make(map[primitive.ObjectID]*model.Department)}
}

func (m *mockDepartmentRepo) Insert(_ context.Context, department *model.Department) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if department.ID.IsZero() {
		department.ID = primitive.NewObjectID()
	}
	for _, d := range m.departments {
		if d.Name == department.Name {
			return apperror.Conflict("department already exists")
		}
	}
	copied := *department
	m.departments[department.ID] = &copied
	return nil
}

func (m *mockDepartmentRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	department, ok := m.departments[id]
	if !ok {
		return nil, apperror.NotFound("department not found")
	}
	copied := *department
	return &copied, nil
}

func (m *mockDepartmentRepo) FindByName(_ context.Context, name string) (*model.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, department := range m.departments {
		if department.Name == name {
			copied := *department
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockDepartmentRepo) FindAll(_ context.Context) ([]*model.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.Department, 0, len(m.departments))
	for _, department := range m.departments {
		copied := *department
		out = append(out, &copied)
	}
	return out, nil
}

func (m *mockDepartmentRepo) SetCoordinator(_ context.Context, departmentID, userID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	department, ok := m.departments[departmentID]
	if !ok {
		return apperror.NotFound("department not found")
	}
	department.CoordinatorID = userID
	return nil
}

type mockProjectRepo struct {
	mu       sync.Mutex
	projects map[primitive.ObjectID]*model.Project
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{projects: make(map[primitive.ObjectID]*model.Project)}
}

func (m *mockProjectRepo) Insert(_ context.Context, project *model.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if project.ID.IsZero() {
		project.ID = primitive.NewObjectID()
	}
	for _, p := range m.projects {
		if p.Code == project.Code {
			return apperror.Conflict("project already exists")
		}
	}
	copied := *project
	m.projects[project.ID] = &copied
	return nil
}

func (m *mockProjectRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	project, ok := m.projects[id]
	if !ok {
		return nil, apperror.NotFound("project not found")
	}
	copied := *project
	return &copied, nil
}

func (m *mockProjectRepo) FindAll(_ context.Context) ([]*model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.Project, 0, len(m.projects))
	for _, project := range m.projects {
		copied := *project
		out = append(out, &copied)
	}
	return out, nil
}

func (m *mockProjectRepo) SetCoordinator(_ context.Context, projectID, userID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	project, ok := m.projects[projectID]
	if !ok {
		return apperror.NotFound("project not found")
	}
	project.CoordinatorID = userID
	return nil
}

type mockTeamRepo struct {
	mu          sync.Mutex
	memberships map[primitive.ObjectID]*model.TeamMembership
}

func newMockTeamRepo() *mockTeamRepo {
	return &mockTeamRepo{memberships: make(map[primitive.ObjectID]*model.TeamMembership)}
}

func (m *mockTeamRepo) Insert(_ context.Context, membership *model.TeamMembership) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if membership.ID.IsZero() {
		membership.ID = primitive.NewObjectID()
	}
	for _, existing := range m.memberships {
		if existing.UserID == membership.UserID && existing.ProjectID == membership.ProjectID {
			return apperror.Conflict("membership already exists")
		}
	}
	copied := *membership
	m.memberships[membership.ID] = &copied
	return nil
}

func (m *mockTeamRepo) FindPair(_ context.Context, userID, projectID primitive.ObjectID) (*model.TeamMembership, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, membership := range m.memberships {
		if membership.UserID == userID && membership.ProjectID == projectID {
			copied := *membership
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockTeamRepo) FindByUser(_ context.Context, userID primitive.ObjectID) ([]*model.TeamMembership, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.TeamMembership
	for _, membership := range m.memberships {
		if membership.UserID == userID {
			copied := *membership
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *mockTeamRepo) FindByProject(_ context.Context, projectID primitive.ObjectID) ([]*model.TeamMembership, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.TeamMembership
	for _, membership := range m.memberships {
		if membership.ProjectID == projectID {
			copied := *membership
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *mockTeamRepo) FindAll(_ context.Context) ([]*model.TeamMembership, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.TeamMembership, 0, len(m.memberships))
	for _, membership := range m.memberships {
		copied := *membership
		out = append(out, &copied)
	}
	return out, nil
}

func (m *mockTeamRepo) DeletePair(_ context.Context, userID, projectID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, membership := range m.memberships {
		if membership.UserID == userID && membership.ProjectID == projectID {
			delete(m.memberships, id)
			return nil
		}
	}
	return apperror.NotFound("membership not found")
}

type mockTaskRepo struct {
	mu    sync.Mutex
	tasks map[primitive.ObjectID]*model.Task
}

func newMockTaskRepo() *mockTaskRepo {
	return &mockTaskRepo{tasks: make(map[primitive.ObjectID]*model.Task)}
}

func (m *mockTaskRepo) Insert(_ context.Context, task *model.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	copied := *task
	m.tasks[task.ID] = &copied
	return nil
}

func (m *mockTaskRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	task, ok := m.tasks[id]
	if !ok {
		return nil, apperror.NotFound("task not found")
	}
	copied := *task
	return &copied, nil
}

func (m *mockTaskRepo) Replace(_ context.Context, task *model.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tasks[task.ID]; !ok {
		return apperror.NotFound("task not found")
	}
	copied := *task
	m.tasks[task.ID] = &copied
	return nil
}

func (m *mockTaskRepo) Remove(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tasks[id]; !ok {
		return apperror.NotFound("task not found")
	}
	delete(m.tasks, id)
	return nil
}

func (m *mockTaskRepo) FindAll(_ context.Context) ([]*model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		copied := *task
		out = append(out, &copied)
	}
	return out, nil
}

func (m *mockTaskRepo) FindByContainer(_ context.Context, containerID primitive.ObjectID) ([]*model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Task
	for _, task := range m.tasks {
		if task.ContainerID == containerID {
			copied := *task
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *mockTaskRepo) FindApproved(_ context.Context) ([]*model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Task
	for _, task := range m.tasks {
		if task.Approved {
			copied := *task
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *mockTaskRepo) FindApprovedByUser(_ context.Context, userID primitive.ObjectID) ([]*model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Task
	for _, task := range m.tasks {
		if task.Approved && task.UserID == userID {
			copied := *task
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *mockTaskRepo) FindApprovedByContainer(_ context.Context, containerID primitive.ObjectID) ([]*model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Task
	for _, task := range m.tasks {
		if task.Approved && task.ContainerID == containerID {
			copied := *task
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *mockTaskRepo) DeleteByUserAndContainer(_ context.Context, userID, containerID primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var removed int64
	for id, task := range m.tasks {
		if task.UserID == userID && task.ContainerID == containerID {
			delete(m.tasks, id)
			removed++
		}
	}
	return removed, nil
}

func (m *mockTaskRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

type mockReportKeyRepo struct {
	mu   sync.Mutex
	keys map[primitive.ObjectID]*model.ReportKey
}

func newMockReportKeyRepo() *mockReportKeyRepo {
	return &mockReportKeyRepo{keys: make(map[primitive.ObjectID]*model.ReportKey)}
}

func (m *mockReportKeyRepo) Insert(_ context.Context, key *model.ReportKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if key.ID.IsZero() {
		key.ID = primitive.NewObjectID()
	}
	copied := *key
	m.keys[key.ID] = &copied
	return nil
}

func (m *mockReportKeyRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.ReportKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, ok := m.keys[id]
	if !ok {
		return nil, apperror.NotFound("report key not found")
	}
	copied := *key
	return &copied, nil
}

func (m *mockReportKeyRepo) FindAll(_ context.Context) ([]*model.ReportKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.ReportKey, 0, len(m.keys))
	for _, key := range m.keys {
		copied := *key
		out = append(out, &copied)
	}
	return out, nil
}

func (m *mockReportKeyRepo) FindActive(_ context.Context) ([]*model.ReportKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.ReportKey
	for _, key := range m.keys {
		if key.IsActive {
			copied := *key
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *mockReportKeyRepo) SetActive(_ context.Context, id primitive.ObjectID, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, ok := m.keys[id]
	if !ok {
		return apperror.NotFound("report key not found")
	}
	key.IsActive = active
	return nil
}

func (m *mockReportKeyRepo) UpdateLastUsed(_ context.Context, id primitive.ObjectID) error {
	return nil
}

func (m *mockReportKeyRepo) Remove(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.keys[id]; !ok {
		return apperror.NotFound("report key not found")
	}
	delete(m.keys, id)
	return nil
}

// fakeTxRunner runs the callback directly; the mocks have no sessions.
type fakeTxRunner struct{}

func (fakeTxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

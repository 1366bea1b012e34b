package app_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"taskdo/internal/model"
)

type fakeUserStore struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		nextID: 1,
		users:  make(map[uint]model.User),
	}
}

func (s *fakeUserStore) Create(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextID
	s.nextID++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = *user
	return nil
}

func (s *fakeUserStore) GetByEmail(email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email && !u.DeletedAt.Valid {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) GetByEmailAnyState(email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) GetByID(id uint) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok || u.DeletedAt.Valid {
		return nil, nil
	}
	out := u
	return &out, nil
}

func (s *fakeUserStore) List() ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []model.User
	for _, u := range s.users {
		if !u.DeletedAt.Valid {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *fakeUserStore) Update(id uint, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil
	}
	if v, ok := fields["name"]; ok {
		u.Name = v.(string)
	}
	if v, ok := fields["email"]; ok {
		u.Email = v.(string)
	}
	u.UpdatedAt = time.Now()
	s.users[id] = u
	return nil
}

func (s *fakeUserStore) Delete(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[user.ID]
	if !ok {
		return nil
	}
	deletedAt := gorm.DeletedAt{Time: time.Now(), Valid: true}
	u.DeletedAt = deletedAt
	s.users[user.ID] = u
	user.DeletedAt = deletedAt
	return nil
}

type fakePriorityStore struct {
	mu         sync.Mutex
	nextID     uint
	priorities map[uint]model.Priority
	tasks      *fakeTaskStore
}

func newFakePriorityStore(tasks *fakeTaskStore) *fakePriorityStore {
	return &fakePriorityStore{
		nextID:     1,
		priorities: make(map[uint]model.Priority),
		tasks:      tasks,
	}
}

func (s *fakePriorityStore) Create(priority *model.Priority) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	priority.ID = s.nextID
	s.nextID++
	s.priorities[priority.ID] = *priority
	return nil
}

func (s *fakePriorityStore) List() ([]model.Priority, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var priorities []model.Priority
	for _, p := range s.priorities {
		priorities = append(priorities, p)
	}
	sort.Slice(priorities, func(i, j int) bool { return priorities[i].ID < priorities[j].ID })
	return priorities, nil
}

func (s *fakePriorityStore) GetByID(id uint) (*model.Priority, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.priorities[id]
	if !ok {
		return nil, nil
	}
	out := p
	return &out, nil
}

func (s *fakePriorityStore) Update(id uint, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.priorities[id]
	if !ok {
		return nil
	}
	if v, ok := fields["description"]; ok {
		p.Description = v.(string)
	}
	s.priorities[id] = p
	return nil
}

func (s *fakePriorityStore) DeleteGuarded(id uint) (bool, bool, error) {
	if s.tasks != nil && s.tasks.countActiveByPriority(id) > 0 {
		return false, true, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.priorities[id]; !ok {
		return false, false, nil
	}
	delete(s.priorities, id)
	return true, false, nil
}

type fakeTaskStore struct {
	mu         sync.Mutex
	nextID     uint
	tasks      map[uint]model.Task
	priorities *fakePriorityStore
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{
		nextID: 1,
		tasks:  make(map[uint]model.Task),
	}
}

func (s *fakeTaskStore) Create(task *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = s.nextID
	s.nextID++
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now
	s.tasks[task.ID] = *task
	return nil
}

func (s *fakeTaskStore) ListByUserID(userID uint) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tasks []model.Task
	for _, t := range s.tasks {
		if t.UserID == userID && !t.DeletedAt.Valid {
			tasks = append(tasks, s.withPriority(t))
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].DayToDo.Before(tasks[j].DayToDo) })
	return tasks, nil
}

func (s *fakeTaskStore) GetByIDAndUserID(taskID, userID uint) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[taskID]
	if !ok || t.UserID != userID || t.DeletedAt.Valid {
		return nil, nil
	}
	out := s.withPriority(t)
	return &out, nil
}

func (s *fakeTaskStore) Update(id uint, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil
	}
	if v, ok := fields["title"]; ok {
		t.Title = v.(string)
	}
	if v, ok := fields["description"]; ok {
		t.Description = v.(string)
	}
	if v, ok := fields["completed"]; ok {
		t.Completed = v.(bool)
	}
	if v, ok := fields["day_to_do"]; ok {
		t.DayToDo = v.(time.Time)
	}
	if v, ok := fields["priority_id"]; ok {
		t.PriorityID = v.(uint)
	}
	t.UpdatedAt = time.Now()
	s.tasks[id] = t
	return nil
}

func (s *fakeTaskStore) Delete(task *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[task.ID]
	if !ok {
		return nil
	}
	deletedAt := gorm.DeletedAt{Time: time.Now(), Valid: true}
	t.DeletedAt = deletedAt
	s.tasks[task.ID] = t
	task.DeletedAt = deletedAt
	return nil
}

func (s *fakeTaskStore) countActiveByPriority(priorityID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, t := range s.tasks {
		if t.PriorityID == priorityID && !t.DeletedAt.Valid {
			count++
		}
	}
	return count
}

func (s *fakeTaskStore) withPriority(t model.Task) model.Task {
	if s.priorities != nil {
		if p, ok := s.priorities.priorities[t.PriorityID]; ok {
			t.Priority = p
		}
	}
	return t
}

type fakePriorityCache struct {
	mu          sync.Mutex
	list        []model.Priority
	warm        bool
	invalidated int
}

func (c *fakePriorityCache) GetList(context.Context) ([]model.Priority, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.warm {
		return nil, false, nil
	}
	return c.list, true, nil
}

func (c *fakePriorityCache) SetList(_ context.Context, priorities []model.Priority) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = priorities
	c.warm = true
	return nil
}

func (c *fakePriorityCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = nil
	c.warm = false
	c.invalidated++
	return nil
}

type fakeActivityPublisher struct {
	mu         sync.Mutex
	activities []model.TaskActivity
}

func (p *fakeActivityPublisher) Publish(_ context.Context, activity model.TaskActivity) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activities = append(p.activities, activity)
	return nil
}

func (p *fakeActivityPublisher) actions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.activities))
	for _, a := range p.activities {
		out = append(out, a.Action)
	}
	return out
}

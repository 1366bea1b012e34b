package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"taskdo/internal/model"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidPriority = errors.New("invalid priority")
)

const (
	ActivityTaskCreated = "created"
	ActivityTaskUpdated = "updated"
	ActivityTaskDeleted = "deleted"
)

type TaskStore interface {
	Create(task *model.Task) error
	ListByUserID(userID uint) ([]model.Task, error)
	GetByIDAndUserID(taskID, userID uint) (*model.Task, error)
	Update(id uint, fields map[string]any) error
	Delete(task *model.Task) error
}

type AsyncActivityPublisher interface {
	Publish(ctx context.Context, activity model.TaskActivity) error
}

type TaskService struct {
	store      TaskStore
	priorities *PriorityService
	publisher  AsyncActivityPublisher
}

type CreateTaskInput struct {
	Title       string
	Description string
	DayToDo     string
	PriorityID  uint
}

// UpdateTaskInput uses pointer fields so clearing description to "" or
// setting completed back to false is distinguishable from omitting the field.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Completed   *bool
	DayToDo     *string
	PriorityID  *uint
}

func NewTaskService(store TaskStore, priorities *PriorityService, publisher AsyncActivityPublisher) *TaskService {
	return &TaskService{
		store:      store,
		priorities: priorities,
		publisher:  publisher,
	}
}

func (s *TaskService) Create(userID uint, input CreateTaskInput) (*model.Task, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}

	title := strings.TrimSpace(input.Title)
	if title == "" || strings.TrimSpace(input.DayToDo) == "" || input.PriorityID == 0 {
		return nil, ErrInvalidInput
	}

	dayToDo, err := parseDay(input.DayToDo)
	if err != nil {
		return nil, ErrInvalidInput
	}

	if _, err := s.priorities.Get(input.PriorityID); err != nil {
		if errors.Is(err, ErrPriorityNotFound) {
			return nil, ErrInvalidPriority
		}
		return nil, err
	}

	task := &model.Task{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Completed:   false,
		DayToDo:     dayToDo,
		UserID:      userID,
		PriorityID:  input.PriorityID,
	}
	if err := s.store.Create(task); err != nil {
		return nil, err
	}
	s.publishActivity(task.ID, userID, ActivityTaskCreated)
	return s.store.GetByIDAndUserID(task.ID, userID)
}

func (s *TaskService) List(userID uint) ([]model.Task, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.store.ListByUserID(userID)
}

// Get treats another user's task the same as a missing one so task ids
// cannot be probed across accounts.
func (s *TaskService) Get(userID, taskID uint) (*model.Task, error) {
	if userID == 0 || taskID == 0 {
		return nil, ErrInvalidInput
	}
	task, err := s.store.GetByIDAndUserID(taskID, userID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskService) Update(userID, taskID uint, input UpdateTaskInput) (*model.Task, error) {
	task, err := s.Get(userID, taskID)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrInvalidInput
		}
		fields["title"] = title
	}
	if input.Description != nil {
		fields["description"] = strings.TrimSpace(*input.Description)
	}
	if input.Completed != nil {
		fields["completed"] = *input.Completed
	}
	if input.DayToDo != nil {
		dayToDo, err := parseDay(*input.DayToDo)
		if err != nil {
			return nil, ErrInvalidInput
		}
		fields["day_to_do"] = dayToDo
	}
	if input.PriorityID != nil {
		if _, err := s.priorities.Get(*input.PriorityID); err != nil {
			if errors.Is(err, ErrPriorityNotFound) {
				return nil, ErrInvalidPriority
			}
			return nil, err
		}
		fields["priority_id"] = *input.PriorityID
	}
	if len(fields) == 0 {
		return task, nil
	}

	if err := s.store.Update(taskID, fields); err != nil {
		return nil, err
	}
	s.publishActivity(taskID, userID, ActivityTaskUpdated)
	return s.Get(userID, taskID)
}

// Remove soft-deletes the task and returns the row as it stands after the
// deleted_at timestamp is set.
func (s *TaskService) Remove(userID, taskID uint) (*model.Task, error) {
	task, err := s.Get(userID, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.store.Delete(task); err != nil {
		return nil, err
	}
	s.publishActivity(taskID, userID, ActivityTaskDeleted)
	return task, nil
}

func (s *TaskService) ListPriorities() ([]model.Priority, error) {
	return s.priorities.List()
}

func (s *TaskService) publishActivity(taskID, userID uint, action string) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.Publish(context.Background(), model.TaskActivity{
		TaskID:    taskID,
		UserID:    userID,
		Action:    action,
		CreatedAt: time.Now(),
	})
}

func parseDay(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"taskdo/internal/model"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(task *model.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("create task failed: %w", err)
	}
	return nil
}

func (r *TaskRepository) ListByUserID(userID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.
		Preload("Priority").
		Where("user_id = ?", userID).
		Order("day_to_do ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks failed: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) GetByIDAndUserID(taskID, userID uint) (*model.Task, error) {
	var task model.Task
	err := r.db.
		Preload("Priority").
		Where("id = ? AND user_id = ?", taskID, userID).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task failed: %w", err)
	}
	return &task, nil
}

func (r *TaskRepository) Update(id uint, fields map[string]any) error {
	if err := r.db.Model(&model.Task{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return fmt.Errorf("update task failed: %w", err)
	}
	return nil
}

// Delete soft-deletes the task and leaves the deleted_at timestamp set on the
// passed struct.
func (r *TaskRepository) Delete(task *model.Task) error {
	if err := r.db.Delete(task).Error; err != nil {
		return fmt.Errorf("delete task failed: %w", err)
	}
	return nil
}

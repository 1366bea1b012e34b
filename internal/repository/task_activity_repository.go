package repository

import (
	"fmt"

	"gorm.io/gorm"

	"taskdo/internal/model"
)

type TaskActivityRepository struct {
	db *gorm.DB
}

func NewTaskActivityRepository(db *gorm.DB) *TaskActivityRepository {
	return &TaskActivityRepository{db: db}
}

func (r *TaskActivityRepository) Create(activity *model.TaskActivity) error {
	if err := r.db.Create(activity).Error; err != nil {
		return fmt.Errorf("create task activity failed: %w", err)
	}
	return nil
}

func (r *TaskActivityRepository) ListByTaskID(taskID uint) ([]model.TaskActivity, error) {
	var activities []model.TaskActivity
	if err := r.db.Where("task_id = ?", taskID).Order("id ASC").Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("list task activities failed: %w", err)
	}
	return activities, nil
}

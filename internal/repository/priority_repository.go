package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"taskdo/internal/model"
)

type PriorityRepository struct {
	db *gorm.DB
}

func NewPriorityRepository(db *gorm.DB) *PriorityRepository {
	return &PriorityRepository{db: db}
}

func (r *PriorityRepository) Create(priority *model.Priority) error {
	if err := r.db.Create(priority).Error; err != nil {
		return fmt.Errorf("create priority failed: %w", err)
	}
	return nil
}

func (r *PriorityRepository) List() ([]model.Priority, error) {
	var priorities []model.Priority
	if err := r.db.Order("id ASC").Find(&priorities).Error; err != nil {
		return nil, fmt.Errorf("list priorities failed: %w", err)
	}
	return priorities, nil
}

func (r *PriorityRepository) GetByID(id uint) (*model.Priority, error) {
	var priority model.Priority
	if err := r.db.First(&priority, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query priority by id failed: %w", err)
	}
	return &priority, nil
}

func (r *PriorityRepository) Update(id uint, fields map[string]any) error {
	if err := r.db.Model(&model.Priority{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return fmt.Errorf("update priority failed: %w", err)
	}
	return nil
}

// DeleteGuarded removes the priority only when no non-deleted task references
// it. The reference count and the delete run in one transaction so a task
// created concurrently cannot slip in between.
func (r *PriorityRepository) DeleteGuarded(id uint) (deleted bool, inUse bool, err error) {
	txErr := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Task{}).Where("priority_id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("count tasks by priority failed: %w", err)
		}
		if count > 0 {
			inUse = true
			return nil
		}

		result := tx.Delete(&model.Priority{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete priority failed: %w", result.Error)
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if txErr != nil {
		return false, false, txErr
	}
	return deleted, inUse, nil
}

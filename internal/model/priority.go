package model

type Priority struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Description string `gorm:"size:255;not null" json:"description"`
}

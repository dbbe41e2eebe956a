package model

import "time"

// Project represents a project board. ManagerID is stored as an opaque
// identifier without a referential check against users.
type Project struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null;index"`
	Description string    `json:"description" gorm:"type:text"`
	Status      string    `json:"status" gorm:"size:50;default:'todo'"`
	ManagerID   string    `json:"manager_id" gorm:"size:64"`
	Deadline    string    `json:"deadline" gorm:"size:64"`
	Progress    int       `json:"progress" gorm:"default:0"`
	Color       string    `json:"color" gorm:"size:16;default:'#3b82f6'"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

package model

import "time"

// Task represents a Kanban card. ProjectID and AssignedTo are opaque
// identifiers; no existence check is made against projects or users.
type Task struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null;index"`
	Description string    `json:"description" gorm:"type:text"`
	ProjectID   string    `json:"project_id" gorm:"size:64;not null;index"`
	AssignedTo  string    `json:"assigned_to" gorm:"size:64"`
	Priority    string    `json:"priority" gorm:"size:50;default:'medium'"`
	Status      string    `json:"status" gorm:"size:50;default:'todo'"`
	DueDate     string    `json:"due_date" gorm:"size:64"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type Task struct {
	gorm.Model

	Name        string `gorm:"not null"`
	Description *string
	DueDate     time.Time `gorm:"not null"`
	Completed   bool      `gorm:"not null;default:false"`
	ProjectID   uint      `gorm:"not null;index"`

	// Relationships
	Project         Project          `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	TaskAssignments []TaskAssignment `gorm:"foreignKey:TaskID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

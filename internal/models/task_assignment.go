package models

import "gorm.io/gorm"

// TaskAssignment links one User to one Task, one row per (user, task) pair.
type TaskAssignment struct {
	gorm.Model

	UserID uint `gorm:"not null;uniqueIndex:idx_user_task"`
	TaskID uint `gorm:"not null;uniqueIndex:idx_user_task"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Task Task `gorm:"foreignKey:TaskID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

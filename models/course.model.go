package models

import (
	"gorm.io/gorm"
)

// Course metadata is immutable after creation. There is no update or
// delete path; courses come from seeding or an operator action.
type Course struct {
	gorm.Model
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"default:''" json:"category"`
	Level       string `gorm:"default:''" json:"level"` // Beginner, Intermediate, Advanced
	Duration    string `gorm:"default:''" json:"duration"`
	MentorID    *uint  `gorm:"index" json:"mentor_id"`

	Mentor *User `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`
}

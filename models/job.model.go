package models

import (
	"gorm.io/gorm"
)

// Job is a posting owned by exactly one recruiter.
type Job struct {
	gorm.Model
	Title        string `gorm:"not null" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	Company      string `gorm:"default:''" json:"company"`
	Location     string `gorm:"default:''" json:"location"`
	Requirements string `gorm:"type:text" json:"requirements"`
	SalaryRange  string `gorm:"default:''" json:"salary_range"`
	RecruiterID  uint   `gorm:"index;not null" json:"recruiter_id"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	Recruiter User `gorm:"foreignKey:RecruiterID" json:"-"`
}

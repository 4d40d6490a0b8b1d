package models

import (
	"gorm.io/gorm"
)

// User roles. Role is fixed at signup and never changes afterwards.
const (
	RoleLearner   = "LEARNER"
	RoleMentor    = "MENTOR"
	RoleRecruiter = "RECRUITER"
)

type User struct {
	gorm.Model
	Name       string `gorm:"not null" json:"name"`
	Email      string `gorm:"unique;not null" json:"email"`
	Password   string `gorm:"not null" json:"-"`
	Phone      string `gorm:"default:''" json:"phone"`
	Location   string `gorm:"default:''" json:"location"`
	Education  string `gorm:"default:''" json:"education"`
	SkillLevel string `gorm:"default:''" json:"skill_level"`
	Role       string `gorm:"not null;default:'LEARNER'" json:"role"` // LEARNER, MENTOR, RECRUITER

	// Learner specific fields
	Interests string `gorm:"default:''" json:"interests"`

	// Mentor specific fields
	Expertise       string `gorm:"default:''" json:"expertise"`
	ExperienceYears int    `gorm:"default:0" json:"experience_years"`

	// Recruiter specific fields
	Company  string `gorm:"default:''" json:"company"`
	Position string `gorm:"default:''" json:"position"`
}

// IsLearner reports whether the user holds the learner role.
func (u *User) IsLearner() bool { return u.Role == RoleLearner }

// IsMentor reports whether the user holds the mentor role.
func (u *User) IsMentor() bool { return u.Role == RoleMentor }

// IsRecruiter reports whether the user holds the recruiter role.
func (u *User) IsRecruiter() bool { return u.Role == RoleRecruiter }

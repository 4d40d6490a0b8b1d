package models

import (
	"time"

	"gorm.io/gorm"
)

// Application statuses. The status column is constrained to this set at
// the service boundary; anything else is rejected before it reaches storage.
const (
	ApplicationPending     = "pending"
	ApplicationReviewed    = "reviewed"
	ApplicationShortlisted = "shortlisted"
	ApplicationRejected    = "rejected"
)

// ValidApplicationStatus reports whether s belongs to the closed status set.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationPending, ApplicationReviewed, ApplicationShortlisted, ApplicationRejected:
		return true
	}
	return false
}

// Application links a learner to a job posting. One application per
// (user, job) pair, enforced by the composite unique index.
type Application struct {
	gorm.Model
	UserID      uint      `gorm:"not null;uniqueIndex:idx_user_job" json:"user_id"`
	JobID       uint      `gorm:"not null;uniqueIndex:idx_user_job" json:"job_id"`
	Status      string    `gorm:"default:'pending'" json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
	Resume      string    `gorm:"default:''" json:"resume"`
	CoverLetter string    `gorm:"type:text" json:"cover_letter"`

	User User `gorm:"foreignKey:UserID" json:"user"`
	Job  Job  `gorm:"foreignKey:JobID" json:"job"`
}

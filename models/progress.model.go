package models

import (
	"time"

	"gorm.io/gorm"
)

// Progress tracks a learner's enrollment in a course. One record per
// (user, course) pair, enforced by the composite unique index. Completed
// and CertificateIssued are one-way flags: once set they never revert,
// even if the reported percentage later drops below 100.
type Progress struct {
	gorm.Model
	UserID             uint       `gorm:"not null;uniqueIndex:idx_user_course" json:"user_id"`
	CourseID           uint       `gorm:"not null;uniqueIndex:idx_user_course" json:"course_id"`
	ProgressPercentage float64    `gorm:"default:0" json:"progress_percentage"` // 0-100
	Completed          bool       `gorm:"default:false" json:"completed"`
	CertificateIssued  bool       `gorm:"default:false" json:"certificate_issued"`
	LastAccessed       time.Time  `json:"last_accessed"`
	StartedAt          time.Time  `json:"started_at"`
	CompletedAt        *time.Time `json:"completed_at"`

	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Course Course `gorm:"foreignKey:CourseID" json:"course"`
}

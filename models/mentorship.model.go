package models

import (
	"time"

	"gorm.io/gorm"
)

// Mentorship statuses. Pending is the only non-terminal state.
const (
	MentorshipPending  = "pending"
	MentorshipAccepted = "accepted"
	MentorshipRejected = "rejected"
)

// Mentorship links a learner (mentee) to a mentor. One request per
// (mentee, mentor) pair for the lifetime of both accounts — a rejected
// request cannot be retried by creating a new row.
type Mentorship struct {
	gorm.Model
	MenteeID      uint       `gorm:"not null;uniqueIndex:idx_mentee_mentor" json:"mentee_id"`
	MentorID      uint       `gorm:"not null;uniqueIndex:idx_mentee_mentor" json:"mentor_id"`
	Status        string     `gorm:"default:'pending'" json:"status"`
	RequestedAt   time.Time  `json:"requested_at"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	Feedback      string     `gorm:"type:text" json:"feedback"`
	SessionNotes  string     `gorm:"type:text" json:"session_notes"`
	ReminderSent  bool       `gorm:"default:false" json:"-"`

	Mentee User `gorm:"foreignKey:MenteeID" json:"mentee"`
	Mentor User `gorm:"foreignKey:MentorID" json:"mentor"`
}

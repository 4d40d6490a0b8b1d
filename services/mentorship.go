package services

import (
	"errors"
	"fmt"
	"time"

	"shehub/models"

	"gorm.io/gorm"
)

// RequestMentorship creates a pending request from the caller to the
// given mentor. Only learners may request. One request per
// (mentee, mentor) pair for good — a rejected request stays on record
// and blocks re-requesting.
func RequestMentorship(db *gorm.DB, caller *models.User, mentorID uint, notes string) (*models.Mentorship, error) {
	if !caller.IsLearner() {
		return nil, ErrForbidden
	}

	var mentor models.User
	if err := db.Where("id = ? AND role = ?", mentorID, models.RoleMentor).First(&mentor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	mentorship := models.Mentorship{
		MenteeID:     caller.ID,
		MentorID:     mentor.ID,
		Status:       models.MentorshipPending,
		RequestedAt:  time.Now(),
		SessionNotes: notes,
	}

	if err := db.Create(&mentorship).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	return &mentorship, nil
}

// RespondToRequest lets the addressed mentor accept or reject a request.
// There is no guard on the current status; re-responding simply
// overwrites it.
func RespondToRequest(db *gorm.DB, caller *models.User, requestID uint, decision string) (*models.Mentorship, error) {
	var status string
	switch decision {
	case "accept":
		status = models.MentorshipAccepted
	case "reject":
		status = models.MentorshipRejected
	default:
		return nil, fmt.Errorf("%w: decision must be accept or reject", ErrValidation)
	}

	var mentorship models.Mentorship
	if err := db.Where("id = ?", requestID).First(&mentorship).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if mentorship.MentorID != caller.ID {
		return nil, ErrForbidden
	}

	mentorship.Status = status
	if err := db.Save(&mentorship).Error; err != nil {
		return nil, err
	}

	return &mentorship, nil
}

// ScheduleSession sets the session date on a mentorship. Only the owning
// mentor may schedule. Scheduling is allowed regardless of the request
// status.
func ScheduleSession(db *gorm.DB, caller *models.User, mentorshipID uint, when time.Time) (*models.Mentorship, error) {
	if !caller.IsMentor() {
		return nil, ErrForbidden
	}

	var mentorship models.Mentorship
	if err := db.Where("id = ?", mentorshipID).First(&mentorship).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if mentorship.MentorID != caller.ID {
		return nil, ErrForbidden
	}

	mentorship.ScheduledDate = &when
	mentorship.ReminderSent = false
	if err := db.Save(&mentorship).Error; err != nil {
		return nil, err
	}

	return &mentorship, nil
}

// PendingRequests returns the pending requests addressed to the caller.
func PendingRequests(db *gorm.DB, caller *models.User) ([]models.Mentorship, error) {
	if !caller.IsMentor() {
		return nil, ErrForbidden
	}

	var requests []models.Mentorship
	if err := db.Where("mentor_id = ? AND status = ?", caller.ID, models.MentorshipPending).
		Preload("Mentee").Order("requested_at desc").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// AcceptedMentees returns the caller's accepted mentorships.
func AcceptedMentees(db *gorm.DB, caller *models.User) ([]models.Mentorship, error) {
	if !caller.IsMentor() {
		return nil, ErrForbidden
	}

	var mentees []models.Mentorship
	if err := db.Where("mentor_id = ? AND status = ?", caller.ID, models.MentorshipAccepted).
		Preload("Mentee").Find(&mentees).Error; err != nil {
		return nil, err
	}
	return mentees, nil
}

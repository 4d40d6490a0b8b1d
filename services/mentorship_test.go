package services

import (
	"testing"
	"time"

	"shehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestMentorshipCreatesPending(t *testing.T) {
	db := setupTestDB(t)
	learner := createUser(t, db, models.RoleLearner)
	mentor := createUser(t, db, models.RoleMentor)

	mentorship, err := RequestMentorship(db, learner, mentor.ID, "looking for guidance")
	require.NoError(t, err)

	assert.Equal(t, models.MentorshipPending, mentorship.Status)
	assert.Equal(t, learner.ID, mentorship.MenteeID)
	assert.Equal(t, mentor.ID, mentorship.MentorID)
	assert.Equal(t, "looking for guidance", mentorship.SessionNotes)
}

func TestRequestMentorshipRequiresLearnerRole(t *testing.T) {
	db := setupTestDB(t)
	mentor := createUser(t, db, models.RoleMentor)
	target := createUser(t, db, models.RoleMentor)
	recruiter := createUser(t, db, models.RoleRecruiter)

	_, err := RequestMentorship(db, mentor, target.ID, "")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = RequestMentorship(db, recruiter, target.ID, "")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRequestMentorshipTargetMustBeMentor(t *testing.T) {
	db := setupTestDB(t)
	learner := createUser(t, db, models.RoleLearner)
	other := createUser(t, db, models.RoleLearner)

	_, err := RequestMentorship(db, learner, other.ID, "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = RequestMentorship(db, learner, 9999, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRejectedRequestStaysBlocked(t *testing.T) {
	db := setupTestDB(t)
	learner := createUser(t, db, models.RoleLearner)
	mentor := createUser(t, db, models.RoleMentor)

	mentorship, err := RequestMentorship(db, learner, mentor.ID, "")
	require.NoError(t, err)

	_, err = RespondToRequest(db, mentor, mentorship.ID, "reject")
	require.NoError(t, err)

	// The pair is used up; a rejected request cannot be re-sent
	_, err = RequestMentorship(db, learner, mentor.ID, "")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestRespondInvalidDecision(t *testing.T) {
	db := setupTestDB(t)
	learner := createUser(t, db, models.RoleLearner)
	mentor := createUser(t, db, models.RoleMentor)

	mentorship, err := RequestMentorship(db, learner, mentor.ID, "")
	require.NoError(t, err)

	_, err = RespondToRequest(db, mentor, mentorship.ID, "maybe")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRespondUnknownRequest(t *testing.T) {
	db := setupTestDB(t)
	mentor := createUser(t, db, models.RoleMentor)

	_, err := RespondToRequest(db, mentor, 9999, "accept")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMentorshipLifecycleScenario(t *testing.T) {
	db := setupTestDB(t)
	learner := createUser(t, db, models.RoleLearner)
	mentor := createUser(t, db, models.RoleMentor)
	otherMentor := createUser(t, db, models.RoleMentor)

	// Request goes to pending
	mentorship, err := RequestMentorship(db, learner, mentor.ID, "")
	require.NoError(t, err)
	assert.Equal(t, models.MentorshipPending, mentorship.Status)

	// Requesting the same mentor again is blocked
	_, err = RequestMentorship(db, learner, mentor.ID, "")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// A different mentor cannot respond to the request
	_, err = RespondToRequest(db, otherMentor, mentorship.ID, "accept")
	assert.ErrorIs(t, err, ErrForbidden)

	// Neither can the mentee
	_, err = RespondToRequest(db, learner, mentorship.ID, "accept")
	assert.ErrorIs(t, err, ErrForbidden)

	// The addressed mentor accepts
	mentorship, err = RespondToRequest(db, mentor, mentorship.ID, "accept")
	require.NoError(t, err)
	assert.Equal(t, models.MentorshipAccepted, mentorship.Status)
}

func TestScheduleSessionOwnership(t *testing.T) {
	db := setupTestDB(t)
	learner := createUser(t, db, models.RoleLearner)
	mentor := createUser(t, db, models.RoleMentor)
	otherMentor := createUser(t, db, models.RoleMentor)

	mentorship, err := RequestMentorship(db, learner, mentor.ID, "")
	require.NoError(t, err)

	when := time.Now().Add(48 * time.Hour)

	// Learners cannot schedule
	_, err = ScheduleSession(db, learner, mentorship.ID, when)
	assert.ErrorIs(t, err, ErrForbidden)

	// Another mentor cannot schedule someone else's session
	_, err = ScheduleSession(db, otherMentor, mentorship.ID, when)
	assert.ErrorIs(t, err, ErrForbidden)

	// The owning mentor can, regardless of request status
	updated, err := ScheduleSession(db, mentor, mentorship.ID, when)
	require.NoError(t, err)
	require.NotNil(t, updated.ScheduledDate)
	assert.Equal(t, when.Unix(), updated.ScheduledDate.Unix())
}

func TestPendingRequestsAndMenteesAreMentorOnly(t *testing.T) {
	db := setupTestDB(t)
	learner := createUser(t, db, models.RoleLearner)
	mentor := createUser(t, db, models.RoleMentor)

	mentorship, err := RequestMentorship(db, learner, mentor.ID, "")
	require.NoError(t, err)

	_, err = PendingRequests(db, learner)
	assert.ErrorIs(t, err, ErrForbidden)

	requests, err := PendingRequests(db, mentor)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, learner.ID, requests[0].MenteeID)

	_, err = RespondToRequest(db, mentor, mentorship.ID, "accept")
	require.NoError(t, err)

	mentees, err := AcceptedMentees(db, mentor)
	require.NoError(t, err)
	require.Len(t, mentees, 1)

	// Accepted requests no longer show as pending
	requests, err = PendingRequests(db, mentor)
	require.NoError(t, err)
	assert.Empty(t, requests)
}

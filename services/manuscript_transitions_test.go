package services

import (
	"strings"
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func mustManuscript(t *testing.T, db *gorm.DB, authorID uint, status entity.ManuscriptStatus) *entity.Manuscript {
	t.Helper()
	m := &entity.Manuscript{
		Title:      "on testing",
		AuthorName: "A. Author",
		Keywords:   "testing;workflow",
		FilePath:   "uploads/on_testing.pdf",
		AuthorID:   authorID,
		Status:     status,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func reload(t *testing.T, db *gorm.DB, id uint) *entity.Manuscript {
	t.Helper()
	var m entity.Manuscript
	require.NoError(t, db.Preload("Review").First(&m, id).Error)
	return &m
}

func TestWorkflowHappyPath(t *testing.T) {
	db := setupDB(t)
	svc := newManuscriptService(t, db)
	author := mustUser(t, db, "author1", entity.RoleAuthor)
	expert := mustUser(t, db, "expert1", entity.RoleExpert)

	m := mustManuscript(t, db, author.ID, entity.StatusPendingAssign)

	require.NoError(t, svc.Assign(m.ID, expert.ID))
	got := reload(t, db, m.ID)
	assert.Equal(t, entity.StatusPendingReview, got.Status)
	require.NotNil(t, got.ExpertID)
	assert.Equal(t, expert.ID, *got.ExpertID)

	require.NoError(t, svc.Review(expert.ID, m.ID, 85, "solid methodology"))
	got = reload(t, db, m.ID)
	assert.Equal(t, entity.StatusReviewed, got.Status)
	require.NotNil(t, got.Review)
	assert.Equal(t, 85, got.Review.Score)
	assert.Equal(t, "solid methodology", got.Review.Opinion)

	require.NoError(t, svc.Decide(m.ID, true))
	assert.Equal(t, entity.StatusAccepted, reload(t, db, m.ID).Status)

	require.NoError(t, svc.Publish(m.ID, 3))
	got = reload(t, db, m.ID)
	assert.Equal(t, entity.StatusPublished, got.Status)
	require.NotNil(t, got.SortNum)
	assert.Equal(t, 3, *got.SortNum)
	assert.NotNil(t, got.PublishTime)
}

func TestAssignGuards(t *testing.T) {
	db := setupDB(t)
	svc := newManuscriptService(t, db)
	author := mustUser(t, db, "author1", entity.RoleAuthor)
	expert := mustUser(t, db, "expert1", entity.RoleExpert)
	editor := mustUser(t, db, "editor1", entity.RoleEditor)

	t.Run("assignee must be an expert", func(t *testing.T) {
		m := mustManuscript(t, db, author.ID, entity.StatusPendingAssign)
		assert.Error(t, svc.Assign(m.ID, editor.ID))
		assert.Error(t, svc.Assign(m.ID, 999))
		assert.Equal(t, entity.StatusPendingAssign, reload(t, db, m.ID).Status)
	})

	t.Run("only pending_assign can be assigned", func(t *testing.T) {
		for _, status := range []entity.ManuscriptStatus{
			entity.StatusPendingReview, entity.StatusReviewed,
			entity.StatusAccepted, entity.StatusRejected, entity.StatusPublished,
		} {
			m := mustManuscript(t, db, author.ID, status)
			assert.ErrorIs(t, svc.Assign(m.ID, expert.ID), ErrInvalidTransition,
				"status %s", status)
		}
	})
}

func TestReviewGuards(t *testing.T) {
	db := setupDB(t)
	svc := newManuscriptService(t, db)
	author := mustUser(t, db, "author1", entity.RoleAuthor)
	expert := mustUser(t, db, "expert1", entity.RoleExpert)
	other := mustUser(t, db, "expert2", entity.RoleExpert)

	m := mustManuscript(t, db, author.ID, entity.StatusPendingAssign)
	require.NoError(t, svc.Assign(m.ID, expert.ID))

	t.Run("score bounds", func(t *testing.T) {
		assert.ErrorIs(t, svc.Review(expert.ID, m.ID, -1, "ok"), ErrInvalidScore)
		assert.ErrorIs(t, svc.Review(expert.ID, m.ID, 101, "ok"), ErrInvalidScore)
	})

	t.Run("opinion required and capped", func(t *testing.T) {
		assert.ErrorIs(t, svc.Review(expert.ID, m.ID, 50, "  "), ErrOpinionRequired)
		long := strings.Repeat("a", 201)
		assert.ErrorIs(t, svc.Review(expert.ID, m.ID, 50, long), ErrOpinionRequired)
	})

	t.Run("only the assigned expert may review", func(t *testing.T) {
		assert.ErrorIs(t, svc.Review(other.ID, m.ID, 50, "fine"), ErrNotAssigned)
		assert.ErrorIs(t, svc.RejectReview(other.ID, m.ID, "not my field"), ErrNotAssigned)
	})

	t.Run("score of zero is accepted", func(t *testing.T) {
		require.NoError(t, svc.Review(expert.ID, m.ID, 0, "fails on every count"))
		got := reload(t, db, m.ID)
		assert.Equal(t, entity.StatusReviewed, got.Status)
		assert.Equal(t, 0, got.Review.Score)
	})
}

func TestRejectReviewAndReassign(t *testing.T) {
	db := setupDB(t)
	svc := newManuscriptService(t, db)
	author := mustUser(t, db, "author1", entity.RoleAuthor)
	expert := mustUser(t, db, "expert1", entity.RoleExpert)
	other := mustUser(t, db, "expert2", entity.RoleExpert)

	m := mustManuscript(t, db, author.ID, entity.StatusPendingAssign)
	require.NoError(t, svc.Assign(m.ID, expert.ID))

	assert.ErrorIs(t, svc.RejectReview(expert.ID, m.ID, ""), ErrReasonRequired)
	require.NoError(t, svc.RejectReview(expert.ID, m.ID, "outside my expertise"))

	got := reload(t, db, m.ID)
	assert.Equal(t, entity.StatusRejectedReview, got.Status)
	require.NotNil(t, got.Review)
	assert.Equal(t, "outside my expertise", got.Review.RejectReason)

	// reassignment hands it to the new expert and clears the old reason
	require.NoError(t, svc.Reassign(m.ID, other.ID))
	got = reload(t, db, m.ID)
	assert.Equal(t, entity.StatusPendingReview, got.Status)
	require.NotNil(t, got.ExpertID)
	assert.Equal(t, other.ID, *got.ExpertID)
	require.NotNil(t, got.Review)
	assert.Empty(t, got.Review.RejectReason)

	// a review by the new expert replaces the record wholesale
	require.NoError(t, svc.Review(other.ID, m.ID, 70, "acceptable after revision"))
	got = reload(t, db, m.ID)
	assert.Equal(t, 70, got.Review.Score)
	assert.Empty(t, got.Review.RejectReason)
}

func TestDecideAndPublishGuards(t *testing.T) {
	db := setupDB(t)
	svc := newManuscriptService(t, db)
	author := mustUser(t, db, "author1", entity.RoleAuthor)

	t.Run("decide requires reviewed", func(t *testing.T) {
		m := mustManuscript(t, db, author.ID, entity.StatusPendingAssign)
		assert.ErrorIs(t, svc.Decide(m.ID, true), ErrInvalidTransition)
	})

	t.Run("reject ends the workflow", func(t *testing.T) {
		m := mustManuscript(t, db, author.ID, entity.StatusReviewed)
		require.NoError(t, svc.Decide(m.ID, false))
		got := reload(t, db, m.ID)
		assert.Equal(t, entity.StatusRejected, got.Status)
		assert.ErrorIs(t, svc.Publish(m.ID, 1), ErrInvalidTransition)
	})

	t.Run("publish requires accepted", func(t *testing.T) {
		m := mustManuscript(t, db, author.ID, entity.StatusReviewed)
		assert.ErrorIs(t, svc.Publish(m.ID, 1), ErrInvalidTransition)
		require.NoError(t, svc.Decide(m.ID, true))
		require.NoError(t, svc.Publish(m.ID, 1))
		assert.ErrorIs(t, svc.Publish(m.ID, 1), ErrInvalidTransition)
	})
}

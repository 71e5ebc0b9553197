package services

import (
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPapersForAuthor(t *testing.T) {
	db := setupDB(t)
	svc := newManuscriptService(t, db)
	author := mustUser(t, db, "author1", entity.RoleAuthor)
	other := mustUser(t, db, "author2", entity.RoleAuthor)

	mustManuscript(t, db, author.ID, entity.StatusPendingAssign)
	mustManuscript(t, db, author.ID, entity.StatusPendingReview)
	mustManuscript(t, db, author.ID, entity.StatusRejected)
	mustManuscript(t, db, author.ID, entity.StatusPublished)
	mustManuscript(t, db, other.ID, entity.StatusPendingAssign)

	papers, err := svc.PapersForAuthor(author.ID)
	require.NoError(t, err)
	assert.Len(t, papers.Pending, 2)
	assert.Len(t, papers.History, 2)
}

func TestWorklistsForEditor(t *testing.T) {
	db := setupDB(t)
	svc := newManuscriptService(t, db)
	author := mustUser(t, db, "author1", entity.RoleAuthor)
	mustUser(t, db, "expert1", entity.RoleExpert)
	mustUser(t, db, "expert2", entity.RoleExpert)
	mustUser(t, db, "editor1", entity.RoleEditor)

	mustManuscript(t, db, author.ID, entity.StatusPendingAssign)
	mustManuscript(t, db, author.ID, entity.StatusPendingAssign)
	mustManuscript(t, db, author.ID, entity.StatusPendingReview)
	mustManuscript(t, db, author.ID, entity.StatusRejectedReview)
	mustManuscript(t, db, author.ID, entity.StatusReviewed)
	mustManuscript(t, db, author.ID, entity.StatusPublished)

	w, err := svc.WorklistsForEditor()
	require.NoError(t, err)
	assert.Len(t, w.PendingAssign, 2)
	assert.Len(t, w.PendingReview, 1)
	assert.Len(t, w.RejectedReview, 1)
	assert.Len(t, w.Reviewed, 1)
	assert.Len(t, w.Experts, 2)
}

func TestQueueForExpert(t *testing.T) {
	db := setupDB(t)
	svc := newManuscriptService(t, db)
	author := mustUser(t, db, "author1", entity.RoleAuthor)
	expert := mustUser(t, db, "expert1", entity.RoleExpert)
	other := mustUser(t, db, "expert2", entity.RoleExpert)

	mine := mustManuscript(t, db, author.ID, entity.StatusPendingAssign)
	require.NoError(t, svc.Assign(mine.ID, expert.ID))
	theirs := mustManuscript(t, db, author.ID, entity.StatusPendingAssign)
	require.NoError(t, svc.Assign(theirs.ID, other.ID))

	queue, err := svc.QueueForExpert(expert.ID)
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, mine.ID, queue[0].ID)

	// reviewed manuscripts leave the queue
	require.NoError(t, svc.Review(expert.ID, mine.ID, 80, "fine"))
	queue, err = svc.QueueForExpert(expert.ID)
	require.NoError(t, err)
	assert.Empty(t, queue)
}

func TestPublishedOrdering(t *testing.T) {
	db := setupDB(t)
	svc := newManuscriptService(t, db)
	author := mustUser(t, db, "author1", entity.RoleAuthor)

	first := mustManuscript(t, db, author.ID, entity.StatusAccepted)
	second := mustManuscript(t, db, author.ID, entity.StatusAccepted)
	require.NoError(t, svc.Publish(first.ID, 5))
	require.NoError(t, svc.Publish(second.ID, 1))

	published, err := svc.PublishedPapers()
	require.NoError(t, err)
	require.Len(t, published, 2)
	assert.Equal(t, second.ID, published[0].ID)
	assert.Equal(t, first.ID, published[1].ID)
}

func TestFileForDownload(t *testing.T) {
	db := setupDB(t)
	svc := newManuscriptService(t, db)
	author := mustUser(t, db, "author1", entity.RoleAuthor)
	stranger := mustUser(t, db, "author2", entity.RoleAuthor)
	editor := mustUser(t, db, "editor1", entity.RoleEditor)
	expert := mustUser(t, db, "expert1", entity.RoleExpert)
	other := mustUser(t, db, "expert2", entity.RoleExpert)
	chief := mustUser(t, db, "chief1", entity.RoleChief)

	m := mustManuscript(t, db, author.ID, entity.StatusPendingAssign)
	require.NoError(t, svc.Assign(m.ID, expert.ID))

	cases := []struct {
		name    string
		userID  uint
		role    entity.Role
		wantErr error
	}{
		{"own author", author.ID, entity.RoleAuthor, nil},
		{"other author", stranger.ID, entity.RoleAuthor, ErrNotPermitted},
		{"editor", editor.ID, entity.RoleEditor, nil},
		{"assigned expert", expert.ID, entity.RoleExpert, nil},
		{"other expert", other.ID, entity.RoleExpert, ErrNotPermitted},
		{"chief before acceptance", chief.ID, entity.RoleChief, ErrNotPermitted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path, err := svc.FileForDownload(tc.userID, tc.role, m.ID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "uploads/on_testing.pdf", path)
		})
	}

	t.Run("chief after acceptance", func(t *testing.T) {
		require.NoError(t, svc.Review(expert.ID, m.ID, 90, "accept"))
		require.NoError(t, svc.Decide(m.ID, true))
		_, err := svc.FileForDownload(chief.ID, entity.RoleChief, m.ID)
		assert.NoError(t, err)
	})

	t.Run("missing manuscript", func(t *testing.T) {
		_, err := svc.FileForDownload(editor.ID, entity.RoleEditor, 999)
		assert.ErrorIs(t, err, ErrManuscriptNotFound)
	})
}

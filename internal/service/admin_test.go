package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratemyshots/ratemyshots-server/internal/errors"
)

func TestAdminActionsForbiddenWhileLocked(t *testing.T) {
	env := newTestEnv(t)
	admin := env.adminService(t)

	env.store.SetRating("bild-1", 4)

	err := admin.DeleteRating("bild-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrForbidden))

	_, err = admin.DeleteAllRatings()
	assert.True(t, errors.Is(err, errors.ErrForbidden))

	err = admin.DeleteComment("comment-x")
	assert.True(t, errors.Is(err, errors.ErrForbidden))

	_, err = admin.DeleteAllComments()
	assert.True(t, errors.Is(err, errors.ErrForbidden))

	// Nothing was touched.
	assert.True(t, env.store.HasRating("bild-1"))
}

func TestAdminDeleteRating(t *testing.T) {
	env := newTestEnv(t)
	admin := env.adminService(t)
	require.NoError(t, admin.Gate().Unlock(testAccessCode))

	env.store.SetRating("bild-1", 4)

	require.NoError(t, admin.DeleteRating("bild-1"))
	assert.False(t, env.store.HasRating("bild-1"))

	err := admin.DeleteRating("bild-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestAdminDeleteAllRatings(t *testing.T) {
	env := newTestEnv(t)
	admin := env.adminService(t)
	require.NoError(t, admin.Gate().Unlock(testAccessCode))

	env.store.SetRating("bild-1", 4)
	env.store.SetRating("bild-2", 2)

	n, err := admin.DeleteAllRatings()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 0, env.store.RatingCount())
}

func TestAdminDeleteComment(t *testing.T) {
	env := newTestEnv(t)
	admin := env.adminService(t)
	require.NoError(t, admin.Gate().Unlock(testAccessCode))

	c, err := env.commentService().Add(AddCommentInput{ImageID: "bild-1", Text: "bye"})
	require.NoError(t, err)

	require.NoError(t, admin.DeleteComment(c.ID))
	assert.Equal(t, 0, env.store.CommentCount())

	err = admin.DeleteComment(c.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestAdminDeleteAllComments(t *testing.T) {
	env := newTestEnv(t)
	admin := env.adminService(t)
	require.NoError(t, admin.Gate().Unlock(testAccessCode))

	svc := env.commentService()
	_, err := svc.Add(AddCommentInput{ImageID: "bild-1", Text: "one"})
	require.NoError(t, err)
	_, err = svc.Add(AddCommentInput{ImageID: "bild-2", Text: "two"})
	require.NoError(t, err)

	n, err := admin.DeleteAllComments()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 0, env.store.CommentCount())
}

func TestAdminRelockBlocksActions(t *testing.T) {
	env := newTestEnv(t)
	admin := env.adminService(t)
	require.NoError(t, admin.Gate().Unlock(testAccessCode))

	env.store.SetRating("bild-1", 4)
	admin.Gate().Lock()

	err := admin.DeleteRating("bild-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrForbidden))
}

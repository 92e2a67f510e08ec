package services

import (
	"testing"
	"time"

	"travel_backend/internal/models"
	"travel_backend/internal/services/dto"
	"travel_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t *testing.T, env *testEnv, at time.Time) {
	t.Helper()
	svc, ok := env.blog.(*blogService)
	require.True(t, ok)
	svc.now = func() time.Time { return at }
}

func TestCreatePost_DraftHasNoPublishDate(t *testing.T) {
	env := newTestEnv(t, nil)

	post, err := env.blog.CreatePost(env.db, &dto.PostRequest{
		Title:   "10 Things To Do In Goa",
		Content: "Beaches first.",
		Tags:    []string{"goa", " ", "beaches"},
	})
	require.NoError(t, err)

	assert.Equal(t, "10-things-to-do-in-goa", post.Slug)
	assert.Equal(t, models.PostStatusDraft, post.Status)
	assert.Nil(t, post.PublishedAt)
	assert.Equal(t, []string{"goa", "beaches"}, []string(post.Tags))

	_, err = env.blog.ReadPost(env.db, post.Slug)
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound, "drafts are not public")
}

func TestUpdatePost_PublishDateIsSetOnce(t *testing.T) {
	env := newTestEnv(t, nil)
	first := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	fixedClock(t, env, first)

	post, err := env.blog.CreatePost(env.db, &dto.PostRequest{Title: "Monsoon Kerala", Content: "Rain.", Status: "published"})
	require.NoError(t, err)
	require.NotNil(t, post.PublishedAt)
	assert.True(t, first.Equal(*post.PublishedAt))

	fixedClock(t, env, first.Add(72*time.Hour))

	req := &dto.PostRequest{Title: "Monsoon Kerala", Content: "Rain.", Status: "DRAFT"}
	post, err = env.blog.UpdatePost(env.db, post.ID, req)
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusDraft, post.Status)

	req.Status = "PUBLISHED"
	post, err = env.blog.UpdatePost(env.db, post.ID, req)
	require.NoError(t, err)
	require.NotNil(t, post.PublishedAt)
	assert.True(t, first.Equal(*post.PublishedAt), "republishing keeps the original date")
}

func TestReadPost_CountsViews(t *testing.T) {
	env := newTestEnv(t, nil)

	post, err := env.blog.CreatePost(env.db, &dto.PostRequest{Title: "Bali on a Budget", Content: "Cheap eats.", Status: "PUBLISHED"})
	require.NoError(t, err)

	for want := 1; want <= 3; want++ {
		got, err := env.blog.ReadPost(env.db, post.Slug)
		require.NoError(t, err)
		assert.Equal(t, want, got.Views)
	}

	stored, err := env.blog.GetPostByID(env.db, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Views)
}

func TestListPosts_PublicSkipsDrafts(t *testing.T) {
	env := newTestEnv(t, nil)

	_, err := env.blog.CreatePost(env.db, &dto.PostRequest{Title: "Live Post", Content: "x", Status: "PUBLISHED", Category: "Guides"})
	require.NoError(t, err)
	_, err = env.blog.CreatePost(env.db, &dto.PostRequest{Title: "Draft Post", Content: "x"})
	require.NoError(t, err)

	public, err := env.blog.ListPosts(env.db, &dto.PostListQuery{}, false)
	require.NoError(t, err)
	require.Len(t, public.Posts, 1)
	assert.Equal(t, "Live Post", public.Posts[0].Title)

	all, err := env.blog.ListPosts(env.db, &dto.PostListQuery{}, true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, all.Total)

	drafts, err := env.blog.ListPosts(env.db, &dto.PostListQuery{Status: "DRAFT"}, true)
	require.NoError(t, err)
	require.Len(t, drafts.Posts, 1)
	assert.Equal(t, "Draft Post", drafts.Posts[0].Title)
}

func TestPost_SlugConflictAndDelete(t *testing.T) {
	env := newTestEnv(t, nil)

	post, err := env.blog.CreatePost(env.db, &dto.PostRequest{Title: "Same Title", Content: "x"})
	require.NoError(t, err)

	_, err = env.blog.CreatePost(env.db, &dto.PostRequest{Title: "Same  Title!", Content: "y"})
	assert.ErrorIs(t, err, apperrors.ErrSlugTaken)

	require.NoError(t, env.blog.DeletePost(env.db, post.ID))
	assert.ErrorIs(t, env.blog.DeletePost(env.db, post.ID), apperrors.ErrPostNotFound)
}

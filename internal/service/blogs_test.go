package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carrierx/carrierx/internal/models"
)

func TestListBlogs(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &BlogService{Repo: r}
	author := seedUser(t, r, "ada@example.com", models.RoleAdmin)
	ctx := context.Background()

	published := time.Now()
	require.NoError(t, r.DB.Create(&models.Blog{
		AuthorID:    author.ID,
		Title:       "Interview Prep",
		Slug:        "interview-prep",
		Tags:        models.StringList{"Career", "Interviews"},
		PublishedAt: &published,
	}).Error)
	require.NoError(t, r.DB.Create(&models.Blog{
		AuthorID:    author.ID,
		Title:       "Resume Tips",
		Slug:        "resume-tips",
		Tags:        models.StringList{"Career"},
		PublishedAt: &published,
	}).Error)
	require.NoError(t, r.DB.Create(&models.Blog{
		AuthorID: author.ID,
		Title:    "Unfinished Draft",
		Slug:     "unfinished-draft",
	}).Error)

	page, err := svc.List(ctx, "", 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Blogs, 2)
	assert.Equal(t, int64(2), page.Total)
	for _, b := range page.Blogs {
		require.NotNil(t, b.Author)
	}

	all, err := svc.List(ctx, "All", 1, 10)
	require.NoError(t, err)
	assert.Len(t, all.Blogs, 2)

	byCategory, err := svc.List(ctx, "interviews", 1, 10)
	require.NoError(t, err)
	require.Len(t, byCategory.Blogs, 1)
	assert.Equal(t, "Interview Prep", byCategory.Blogs[0].Title)

	// A wildcard category matches nothing rather than everything.
	wildcard, err := svc.List(ctx, "%", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, wildcard.Blogs)
}

func TestGetBlogBySlug(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &BlogService{Repo: r}
	author := seedUser(t, r, "ada@example.com", models.RoleAdmin)
	ctx := context.Background()

	published := time.Now()
	require.NoError(t, r.DB.Create(&models.Blog{
		AuthorID:    author.ID,
		Title:       "Interview Prep",
		Slug:        "interview-prep",
		PublishedAt: &published,
	}).Error)
	require.NoError(t, r.DB.Create(&models.Blog{
		AuthorID: author.ID,
		Title:    "Unfinished Draft",
		Slug:     "unfinished-draft",
	}).Error)

	blog, err := svc.GetBySlug(ctx, "interview-prep")
	require.NoError(t, err)
	assert.Equal(t, "Interview Prep", blog.Title)

	_, err = svc.GetBySlug(ctx, "unfinished-draft")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetBySlug(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

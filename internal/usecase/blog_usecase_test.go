package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/enertrics/storefront-backend/internal/domain"
	"github.com/enertrics/storefront-backend/pkg/e"
	"github.com/enertrics/storefront-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePostRepo struct {
	posts []domain.Post
}

func (f *fakePostRepo) Posts(_ context.Context) ([]domain.Post, error) {
	return f.posts, nil
}

func (f *fakePostRepo) PostBySlug(_ context.Context, slug string) (*domain.Post, error) {
	for _, p := range f.posts {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, e.ErrPostNotFound
}

func testPosts() []domain.Post {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }
	return []domain.Post{
		{Slug: "solid-state", Title: "Solid-State Batteries", Excerpt: "What comes next", Date: day(1), Tags: []string{"batteries"}, Featured: true},
		{Slug: "charging-networks", Title: "Charging Networks in 2024", Excerpt: "Infrastructure overview", Date: day(15), Tags: []string{"charging", "infrastructure"}},
		{Slug: "motor-efficiency", Title: "Motor Efficiency Gains", Excerpt: "Squeezing out losses", Date: day(7), Tags: []string{"motors"}},
	}
}

func TestBlogUC_ListPosts_SortedNewestFirst(t *testing.T) {
	uc := NewBlogUC(&fakePostRepo{posts: testPosts()}, logger.NewSlogLogger())

	res, err := uc.ListPosts(context.Background(), &ListPostsReq{})

	require.NoError(t, err)
	require.Equal(t, 3, res.Total)
	assert.Equal(t, "charging-networks", res.Posts[0].Slug)
	assert.Equal(t, "motor-efficiency", res.Posts[1].Slug)
	assert.Equal(t, "solid-state", res.Posts[2].Slug)
}

func TestBlogUC_ListPosts_ByTag(t *testing.T) {
	uc := NewBlogUC(&fakePostRepo{posts: testPosts()}, logger.NewSlogLogger())

	res, err := uc.ListPosts(context.Background(), &ListPostsReq{Tag: "motors"})

	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "motor-efficiency", res.Posts[0].Slug)
}

func TestBlogUC_ListPosts_FeaturedWithLimit(t *testing.T) {
	uc := NewBlogUC(&fakePostRepo{posts: testPosts()}, logger.NewSlogLogger())

	res, err := uc.ListPosts(context.Background(), &ListPostsReq{Featured: true, Limit: 5})

	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "solid-state", res.Posts[0].Slug)
}

func TestBlogUC_ListPosts_Search(t *testing.T) {
	uc := NewBlogUC(&fakePostRepo{posts: testPosts()}, logger.NewSlogLogger())

	res, err := uc.ListPosts(context.Background(), &ListPostsReq{Search: "infrastructure"})

	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "charging-networks", res.Posts[0].Slug)
}

func TestBlogUC_GetPostBySlug_NotFound(t *testing.T) {
	uc := NewBlogUC(&fakePostRepo{posts: testPosts()}, logger.NewSlogLogger())

	_, err := uc.GetPostBySlug(context.Background(), "unknown")

	assert.ErrorIs(t, err, e.ErrPostNotFound)
}

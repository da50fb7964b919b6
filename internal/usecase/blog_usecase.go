package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/enertrics/storefront-backend/internal/domain"
	"github.com/enertrics/storefront-backend/pkg/e"
	"github.com/enertrics/storefront-backend/pkg/logger"
)

// BlogUseCase реализует чтение публикаций блога поверх статических фикстур.
type BlogUseCase struct {
	postRepo PostRepository
	logger   logger.Logger
}

func NewBlogUC(postRepo PostRepository, logger logger.Logger) *BlogUseCase {
	return &BlogUseCase{
		postRepo: postRepo,
		logger:   logger,
	}
}

// ListPosts возвращает публикации, отфильтрованные по признаку featured,
// тегу и поисковой строке, отсортированные от новых к старым.
func (b *BlogUseCase) ListPosts(ctx context.Context, req *ListPostsReq) (*ListPostsRes, error) {
	const op = "BlogUseCase.ListPosts"

	posts, err := b.postRepo.Posts(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	filtered := make([]domain.Post, 0, len(posts))
	for _, post := range posts {
		if req.Featured && !post.Featured {
			continue
		}
		if req.Tag != "" && !post.HasTag(req.Tag) {
			continue
		}
		if req.Search != "" && !postMatches(&post, req.Search) {
			continue
		}
		filtered = append(filtered, post)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	if req.Limit > 0 && req.Limit < len(filtered) {
		filtered = filtered[:req.Limit]
	}

	return NewListPostsRes(filtered), nil
}

// GetPostBySlug возвращает публикацию по слагу.
func (b *BlogUseCase) GetPostBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	const op = "BlogUseCase.GetPostBySlug"

	post, err := b.postRepo.PostBySlug(ctx, slug)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return post, nil
}

// postMatches проверяет вхождение поисковой строки в заголовок,
// аннотацию или теги публикации без учета регистра.
func postMatches(post *domain.Post, search string) bool {
	search = strings.ToLower(search)

	if strings.Contains(strings.ToLower(post.Title), search) {
		return true
	}
	if strings.Contains(strings.ToLower(post.Excerpt), search) {
		return true
	}
	for _, tag := range post.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}

	return false
}

// Package feed implements the community feed: posts, comments, likes.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	feedRepo "weddify/database/repository/feed"
	"weddify/models"
	"weddify/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	feedCacheKey = "feed:page:0"
	feedCacheTTL = 2 * time.Minute
	pageSize     = 20
)

// FeedService defines community feed operations.
type FeedService interface {
	CreatePost(authorID, authorType, content string, images []string) (*models.Post, error)
	GetFeedPage(ctx context.Context, offset int64) (*models.FeedPage, error)
	LikePost(postID string) error
	DeletePost(authorID, postID string) error
	AddComment(authorID, postID, content string) (*models.Comment, error)
	ListComments(postID string) ([]models.Comment, error)
}

// DefaultFeedService is the production implementation. The first feed
// page is cached in Redis since it absorbs almost all read traffic.
type DefaultFeedService struct {
	Repo  feedRepo.FeedRepository
	Cache *redis.Client
}

func (s *DefaultFeedService) CreatePost(authorID, authorType, content string, images []string) (*models.Post, error) {
	if content == "" && len(images) == 0 {
		return nil, fmt.Errorf("post must have content or images")
	}
	if authorType != "user" && authorType != "vendor" {
		return nil, fmt.Errorf("invalid author type: %s", authorType)
	}

	now := time.Now()
	post := &models.Post{
		ID:         uuid.New().String(),
		AuthorID:   authorID,
		AuthorType: authorType,
		Content:    content,
		Images:     images,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.CreatePost(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	s.invalidateCache()
	return post, nil
}

// GetFeedPage returns one page of the feed, newest first.
func (s *DefaultFeedService) GetFeedPage(ctx context.Context, offset int64) (*models.FeedPage, error) {
	if offset == 0 && s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, feedCacheKey).Result(); err == nil {
			var page models.FeedPage
			if err := json.Unmarshal([]byte(raw), &page); err == nil {
				return &page, nil
			}
		}
	}

	posts, err := s.Repo.ListPosts(offset, pageSize+1)
	if err != nil {
		return nil, fmt.Errorf("failed to load feed: %w", err)
	}

	page := &models.FeedPage{HasMore: len(posts) > pageSize}
	if page.HasMore {
		posts = posts[:pageSize]
	}
	page.Posts = posts
	page.NextOffset = int(offset) + len(posts)

	if offset == 0 && s.Cache != nil {
		if raw, err := json.Marshal(page); err == nil {
			if err := s.Cache.Set(ctx, feedCacheKey, raw, feedCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache feed page", zap.Error(err))
			}
		}
	}
	return page, nil
}

func (s *DefaultFeedService) LikePost(postID string) error {
	if err := s.Repo.IncrementLikes(postID, 1); err != nil {
		return fmt.Errorf("failed to like post: %w", err)
	}
	s.invalidateCache()
	return nil
}

func (s *DefaultFeedService) DeletePost(authorID, postID string) error {
	post, err := s.Repo.GetPost(postID)
	if err != nil {
		return err
	}
	if post == nil {
		return fmt.Errorf("post with id %s not found", postID)
	}
	if post.AuthorID != authorID {
		return fmt.Errorf("post %s does not belong to %s", postID, authorID)
	}
	if err := s.Repo.DeletePost(postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	s.invalidateCache()
	return nil
}

func (s *DefaultFeedService) AddComment(authorID, postID, content string) (*models.Comment, error) {
	if content == "" {
		return nil, fmt.Errorf("comment content is required")
	}
	post, err := s.Repo.GetPost(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("post with id %s not found", postID)
	}

	comment := &models.Comment{
		ID:        uuid.New().String(),
		PostID:    postID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.CreateComment(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

func (s *DefaultFeedService) ListComments(postID string) ([]models.Comment, error) {
	return s.Repo.ListComments(postID)
}

func (s *DefaultFeedService) invalidateCache() {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Del(ctx, feedCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate feed cache", zap.Error(err))
	}
}

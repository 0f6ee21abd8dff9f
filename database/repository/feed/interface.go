package feedRepo

import "weddify/models"

// FeedRepository defines methods for social feed persistence.
type FeedRepository interface {
	CreatePost(post *models.Post) error
	GetPost(id string) (*models.Post, error)
	ListPosts(offset, limit int64) ([]models.Post, error)
	DeletePost(id string) error
	IncrementLikes(postID string, delta int) error

	CreateComment(comment *models.Comment) error
	ListComments(postID string) ([]models.Comment, error)
	DeleteComment(id string) error
}

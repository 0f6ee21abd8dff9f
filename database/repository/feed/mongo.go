package feedRepo

import (
	"context"
	"fmt"
	"time"

	"weddify/database"
	"weddify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFeedRepo implements FeedRepository using MongoDB.
type MongoFeedRepo struct {
	posts    *mongo.Collection
	comments *mongo.Collection
}

// NewMongoFeedRepo creates a new instance of FeedRepository using MongoDB.
func NewMongoFeedRepo() FeedRepository {
	return &MongoFeedRepo{
		posts:    database.Collection("posts"),
		comments: database.Collection("comments"),
	}
}

func (r *MongoFeedRepo) CreatePost(post *models.Post) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.posts.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *MongoFeedRepo) GetPost(id string) (*models.Post, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var post models.Post
	if err := r.posts.FindOne(ctx, bson.M{"id": id}).Decode(&post); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch post with id %s: %w", id, err)
	}
	return &post, nil
}

func (r *MongoFeedRepo) ListPosts(offset, limit int64) ([]models.Post, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(offset).
		SetLimit(limit)
	cursor, err := r.posts.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer cursor.Close(ctx)
	var posts []models.Post
	for cursor.Next(ctx) {
		var p models.Post
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, cursor.Err()
}

func (r *MongoFeedRepo) DeletePost(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.posts.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete post with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("post with id %s not found", id)
	}
	// Comments are orphan-cleaned alongside their post.
	_, _ = r.comments.DeleteMany(ctx, bson.M{"postId": id})
	return nil
}

func (r *MongoFeedRepo) IncrementLikes(postID string, delta int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	update := bson.M{"$inc": bson.M{"likes": delta}}
	result, err := r.posts.UpdateOne(ctx, bson.M{"id": postID}, update)
	if err != nil {
		return fmt.Errorf("failed to update likes for post %s: %w", postID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("post with id %s not found", postID)
	}
	return nil
}

func (r *MongoFeedRepo) CreateComment(comment *models.Comment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.comments.InsertOne(ctx, comment); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *MongoFeedRepo) ListComments(postID string) ([]models.Comment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.comments.Find(ctx, bson.M{"postId": postID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for post %s: %w", postID, err)
	}
	defer cursor.Close(ctx)
	var comments []models.Comment
	for cursor.Next(ctx) {
		var c models.Comment
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, cursor.Err()
}

func (r *MongoFeedRepo) DeleteComment(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.comments.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete comment with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("comment with id %s not found", id)
	}
	return nil
}

package models

import "time"

type Post struct {
	ID         string    `bson:"id" json:"id"`
	AuthorID   string    `bson:"authorId" json:"authorId"`
	AuthorType string    `bson:"authorType" json:"authorType"` // "user" or "vendor"
	Content    string    `bson:"content" json:"content"`
	Images     []string  `bson:"images,omitempty" json:"images,omitempty"`
	Likes      int       `bson:"likes" json:"likes"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

type Comment struct {
	ID        string    `bson:"id" json:"id"`
	PostID    string    `bson:"postId" json:"postId"`
	AuthorID  string    `bson:"authorId" json:"authorId"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// FeedPage is one assembled page of the social feed.
type FeedPage struct {
	Posts      []Post `json:"posts"`
	NextOffset int    `json:"nextOffset"`
	HasMore    bool   `json:"hasMore"`
}

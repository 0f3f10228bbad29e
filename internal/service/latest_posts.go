package service

import (
	"context"
	"fmt"

	"github.com/bloglite/internal/db"
	"gorm.io/gorm"
)

// LatestPosts serves the homepage "last N posts" query.
type LatestPosts struct {
	db *gorm.DB
}

// NewLatestPosts returns a LatestPosts query bound to gdb.
func NewLatestPosts(gdb *gorm.DB) *LatestPosts {
	return &LatestPosts{db: gdb}
}

// Get returns the count most recent posts, newest first.
func (q *LatestPosts) Get(ctx context.Context, count int) ([]db.Post, error) {
	if count < 1 {
		return []db.Post{}, nil
	}

	var posts []db.Post
	if err := q.db.WithContext(ctx).Order(recencyOrder).Limit(count).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("latest posts: %w", err)
	}
	return posts, nil
}

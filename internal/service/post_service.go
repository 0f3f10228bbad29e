package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/bloglite/internal/db"
	"gorm.io/gorm"
)

// recencyOrder 保证同一时间创建的文章也有稳定顺序。
const recencyOrder = "created_at desc, id desc"

// PostService wraps read-only queries against the post table.
type PostService struct {
	db *gorm.DB
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{db: gdb}
}

// GetList returns one page of posts ordered by recency.
// page 小于 1 时按第 1 页处理；limit 小于 1 或偏移量溢出时直接返回空列表。
func (s *PostService) GetList(ctx context.Context, page, limit int) ([]db.Post, error) {
	if limit < 1 {
		return []db.Post{}, nil
	}
	if page < 1 {
		page = 1
	}
	// 偏移量溢出 int 的页码必然超出末页
	if page-1 > math.MaxInt/limit {
		return []db.Post{}, nil
	}

	var posts []db.Post
	if err := s.db.WithContext(ctx).
		Order(recencyOrder).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// GetTotalCount returns the number of posts in storage.
func (s *PostService) GetTotalCount(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&db.Post{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return total, nil
}

// GetByURLKey fetches the post whose url_key equals slug.
// 未找到时返回 nil, nil，调用方据此渲染 not-found 页面。
func (s *PostService) GetByURLKey(ctx context.Context, slug string) (*db.Post, error) {
	var post db.Post
	if err := s.db.WithContext(ctx).Where("url_key = ?", slug).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get post by url key: %w", err)
	}
	return &post, nil
}

package db

import "time"

// Post 是博客唯一的领域实体，本服务只读不写。
type Post struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"not null"`
	Content   string    `gorm:"type:text"`
	Excerpt   string
	URLKey    string    `gorm:"column:url_key;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName 沿用原有数据表名 post。
func (Post) TableName() string {
	return "post"
}

package models

import (
	"time"
)

type Post struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Title        string     `json:"title" gorm:"not null"`
	Content      string     `json:"content" gorm:"type:text"`
	ThumbnailURL string     `json:"thumbnailUrl" gorm:"column:thumbnail_url"`
	Categories   []Category `json:"categories,omitempty" gorm:"many2many:post_categories;"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (Post) TableName() string {
	return "posts"
}

// PostCategory is the join row linking a post to a category. It is declared
// explicitly (instead of letting gorm manage an implicit join table) so the
// association sync can diff current rows against a target set.
type PostCategory struct {
	PostID     uint      `json:"postId" gorm:"primaryKey;autoIncrement:false"`
	CategoryID uint      `json:"categoryId" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (PostCategory) TableName() string {
	return "post_categories"
}

// CategoryRef is how clients reference an existing category in a post payload.
type CategoryRef struct {
	ID uint `json:"id" binding:"required"`
}

type CreatePostRequest struct {
	Title        string        `json:"title" binding:"required"`
	Content      string        `json:"content" binding:"required"`
	ThumbnailURL string        `json:"thumbnailUrl"`
	Categories   []CategoryRef `json:"categories"`
}

type UpdatePostRequest struct {
	Title        string        `json:"title" binding:"required"`
	Content      string        `json:"content" binding:"required"`
	ThumbnailURL string        `json:"thumbnailUrl"`
	Categories   []CategoryRef `json:"categories"`
}

// PostView is the client-facing projection of a post: timestamps as RFC3339
// strings and category names inlined in ascending category-id order.
type PostView struct {
	ID           uint           `json:"id"`
	Title        string         `json:"title"`
	Content      string         `json:"content"`
	ThumbnailURL string         `json:"thumbnailUrl"`
	CreatedAt    string         `json:"createdAt"`
	UpdatedAt    string         `json:"updatedAt"`
	Categories   []CategoryView `json:"categories"`
}

type CategoryView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ToView projects a post (with its Categories preloaded) into the shape the
// API returns. It never returns a nil Categories slice so the JSON field is
// always an array.
func (p *Post) ToView() PostView {
	categories := make([]CategoryView, 0, len(p.Categories))
	for _, cat := range p.Categories {
		categories = append(categories, CategoryView{ID: cat.ID, Name: cat.Name})
	}

	return PostView{
		ID:           p.ID,
		Title:        p.Title,
		Content:      p.Content,
		ThumbnailURL: p.ThumbnailURL,
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    p.UpdatedAt.UTC().Format(time.RFC3339),
		Categories:   categories,
	}
}

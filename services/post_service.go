package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"blogapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// preloadCategories orders the joined categories by id so every read of a
// post returns them in the same stable order.
func preloadCategories(db *gorm.DB) *gorm.DB {
	return db.Preload("Categories", func(db *gorm.DB) *gorm.DB {
		return db.Order("categories.id ASC")
	})
}

func (s *PostService) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := preloadCategories(s.db.WithContext(ctx)).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (s *PostService) GetPostByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := preloadCategories(s.db.WithContext(ctx)).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost inserts the post and its category associations in one
// transaction; a bad category reference rolls back the post row too.
func (s *PostService) CreatePost(ctx context.Context, req *models.CreatePostRequest) (*models.Post, error) {
	post := models.Post{
		Title:        req.Title,
		Content:      req.Content,
		ThumbnailURL: req.ThumbnailURL,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return err
		}
		return syncCategories(tx, post.ID, categoryIDs(req.Categories))
	})
	if err != nil {
		return nil, err
	}

	return s.GetPostByID(ctx, post.ID)
}

// UpdatePost rewrites the post's fields and makes its association set match
// the submitted categories. The post row is locked for the whole transaction
// so two concurrent updates of the same post serialize instead of
// interleaving their diffs.
func (s *PostService) UpdatePost(ctx context.Context, id uint, req *models.UpdatePostRequest) (*models.Post, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&post, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		post.Title = req.Title
		post.Content = req.Content
		post.ThumbnailURL = req.ThumbnailURL
		if err := tx.Save(&post).Error; err != nil {
			return err
		}

		return syncCategories(tx, post.ID, categoryIDs(req.Categories))
	})
	if err != nil {
		return nil, err
	}

	return s.GetPostByID(ctx, id)
}

// DeletePost removes the post and all of its join rows. The post owns its
// associations, so the cascade is unconditional.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&post, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if err := tx.Where("post_id = ?", id).Delete(&models.PostCategory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}

func categoryIDs(refs []models.CategoryRef) []uint {
	ids := make([]uint, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}
	return ids
}

// syncCategories makes the post_categories rows for postID match exactly the
// target id set. It diffs the current rows against the target and only
// deletes the removed ids and inserts the added ones, so an overlapping
// re-tag never passes through an empty state and untouched rows keep their
// identity. Must run inside the caller's transaction.
func syncCategories(tx *gorm.DB, postID uint, ids []uint) error {
	// Duplicate ids in the payload collapse to one membership. The sorted
	// slice keeps query argument order stable.
	target := make(map[uint]struct{}, len(ids))
	targetIDs := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, seen := target[id]; !seen {
			target[id] = struct{}{}
			targetIDs = append(targetIDs, id)
		}
	}
	sort.Slice(targetIDs, func(i, j int) bool { return targetIDs[i] < targetIDs[j] })

	// Every target id must be a real category before anything is written.
	if len(targetIDs) > 0 {
		var count int64
		if err := tx.Model(&models.Category{}).Where("id IN ?", targetIDs).Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(targetIDs)) {
			return ErrInvalidCategoryReference
		}
	}

	var current []models.PostCategory
	if err := tx.Where("post_id = ?", postID).Find(&current).Error; err != nil {
		return err
	}

	existing := make(map[uint]struct{}, len(current))
	var removed []uint
	for _, row := range current {
		existing[row.CategoryID] = struct{}{}
		if _, keep := target[row.CategoryID]; !keep {
			removed = append(removed, row.CategoryID)
		}
	}

	added := make([]models.PostCategory, 0, len(targetIDs))
	for _, id := range targetIDs {
		if _, have := existing[id]; !have {
			added = append(added, models.PostCategory{PostID: postID, CategoryID: id})
		}
	}

	if len(removed) > 0 {
		err := tx.Where("post_id = ? AND category_id IN ?", postID, removed).
			Delete(&models.PostCategory{}).Error
		if err != nil {
			return err
		}
	}
	if len(added) > 0 {
		if err := tx.Create(&added).Error; err != nil {
			if strings.Contains(err.Error(), "foreign key") {
				return ErrInvalidCategoryReference
			}
			return err
		}
	}

	return nil
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPostToView(t *testing.T) {
	created := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	updated := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	post := Post{
		ID:           7,
		Title:        "Hello",
		Content:      "<p>body</p>",
		ThumbnailURL: "https://example.com/t.png",
		CreatedAt:    created,
		UpdatedAt:    updated,
		Categories: []Category{
			{ID: 1, Name: "Tech"},
			{ID: 2, Name: "Life"},
		},
	}

	view := post.ToView()

	assert.Equal(t, uint(7), view.ID)
	assert.Equal(t, "2025-06-01T09:30:00Z", view.CreatedAt)
	assert.Equal(t, "2025-06-02T10:00:00Z", view.UpdatedAt)
	assert.Equal(t, []CategoryView{
		{ID: 1, Name: "Tech"},
		{ID: 2, Name: "Life"},
	}, view.Categories)
}

func TestPostToView_Deterministic(t *testing.T) {
	post := Post{
		ID:        1,
		Title:     "Hello",
		CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Categories: []Category{
			{ID: 2, Name: "Life"},
		},
	}

	assert.Equal(t, post.ToView(), post.ToView())
}

func TestPostToView_NoCategories(t *testing.T) {
	post := Post{ID: 1, Title: "Hello"}

	view := post.ToView()

	// categories must serialize as [] rather than null
	assert.NotNil(t, view.Categories)
	assert.Empty(t, view.Categories)
}

func TestPostToView_NonUTCTimestamps(t *testing.T) {
	loc := time.FixedZone("JST", 9*60*60)
	post := Post{
		ID:        1,
		CreatedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, loc),
		UpdatedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, loc),
	}

	view := post.ToView()

	assert.Equal(t, "2025-06-01T00:00:00Z", view.CreatedAt)
}

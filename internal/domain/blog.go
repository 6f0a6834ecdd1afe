package domain

import (
	"fmt"
	"time"
)

// Blog is a published post on the portfolio site.
type Blog struct {
	ID        string
	Title     string
	Content   string
	Author    string
	Tags      []string
	Thumbnail string
	Category  string
	Loves     []string // user ids that loved this post
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBlog creates a Blog with the original defaulting rules: missing author
// becomes "Anonymous", nil tags become an empty list.
func NewBlog(id, title, content, author, thumbnail, category string, tags []string, now time.Time) *Blog {
	if author == "" {
		author = "Anonymous"
	}
	if tags == nil {
		tags = []string{}
	}
	return &Blog{
		ID:        id,
		Title:     title,
		Content:   content,
		Author:    author,
		Tags:      tags,
		Thumbnail: thumbnail,
		Category:  category,
		Loves:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ValidateBlog validates a Blog instance.
func ValidateBlog(b *Blog) error {
	if b == nil {
		return fmt.Errorf("blog cannot be nil")
	}
	if b.ID == "" {
		return fmt.Errorf("blog ID is required")
	}
	if b.Title == "" || b.Content == "" {
		return NewDomainError(ErrCodeValidation, "title and content are required")
	}
	return nil
}

package domain

import "time"

// Comment is a visitor comment on a blog post.
type Comment struct {
	ID        string
	BlogID    string
	Username  string
	Content   string
	CreatedAt time.Time
}

// CommentLike records that a user liked a comment. Likes toggle: liking an
// already-liked comment removes the like.
type CommentLike struct {
	CommentID string
	UserID    string
	CreatedAt time.Time
}

// ValidateComment validates a Comment instance.
func ValidateComment(c *Comment) error {
	if c.BlogID == "" || c.Username == "" || c.Content == "" {
		return NewDomainError(ErrCodeValidation, "blogId, username, and content are required")
	}
	return nil
}

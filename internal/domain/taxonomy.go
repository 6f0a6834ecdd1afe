package domain

import "time"

// Tag labels blog posts. Names are unique.
type Tag struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Category groups blog posts. Names are unique.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

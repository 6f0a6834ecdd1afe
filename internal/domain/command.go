package domain

import "time"

// Command is one entry of the global assistant command history: a prompt and
// the answer it produced. Unlike chat sessions, command history is a single
// shared log.
type Command struct {
	ID        string
	Command   string
	Response  string
	CreatedAt time.Time
}

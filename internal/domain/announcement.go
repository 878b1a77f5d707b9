package domain

import "time"

// Announcement запись append-only ленты объявлений администрации
type Announcement struct {
	ID       int64
	Title    string
	Content  string
	AuthorID int64

	CreatedAt time.Time
}

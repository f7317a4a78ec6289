package model

import "time"

// Shortlist marks an internship as saved by a user. One row per
// (user, internship) pair, enforced by a unique index.
type Shortlist struct {
	ID           int64     `db:"id"`
	UserID       int64     `db:"user_id"`
	InternshipID int64     `db:"internship_id"`
	CreatedAt    time.Time `db:"created_at"`
}

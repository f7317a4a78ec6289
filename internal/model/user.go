package model

import (
	"time"
)

type User struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Mobile       string    `db:"mobile"`
	CreatedAt    time.Time `db:"created_at"`

	// Profile fields, empty until the first profile submission
	FullName      string     `db:"full_name"`
	DOB           string     `db:"dob"`
	Phone         string     `db:"phone"`
	State         string     `db:"state"`
	City          string     `db:"city"`
	LinkedIn      string     `db:"linkedin"`
	GitHub        string     `db:"github"`
	About         string     `db:"about"`
	College       string     `db:"college"`
	Qualification string     `db:"qualification"`
	Stream        string     `db:"stream"`
	Year          int        `db:"year"`
	Location      string     `db:"location"`
	Skills        StringList `db:"skills"`
	Interests     StringList `db:"interests"`
	Photo         string     `db:"photo"`
}

// HasCollege reports whether the user has filled in college info.
// Login uses it to pick between the dashboard and recommendations pages.
func (u *User) HasCollege() bool {
	return u.College != ""
}

// ContactPhone returns the profile phone, falling back to the signup mobile.
func (u *User) ContactPhone() string {
	if u.Phone != "" {
		return u.Phone
	}
	return u.Mobile
}

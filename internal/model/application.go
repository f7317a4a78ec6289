package model

import "time"

const (
	StatusApplied     = "Applied"
	StatusUnderReview = "Under Review"
	StatusShortlisted = "Shortlisted"
)

type Application struct {
	ID              int64     `db:"id"`
	UserID          int64     `db:"user_id"`
	InternshipID    int64     `db:"internship_id"`
	InternshipTitle string    `db:"internship_title"`
	InternshipOrg   string    `db:"internship_org"`
	Status          string    `db:"status"`
	WhyHire         string    `db:"why_hire"`
	WorkSample      string    `db:"work_sample"`
	AppliedOn       time.Time `db:"applied_on"`
}

// DisplayStatus derives the status shown to the user from the time elapsed
// since the application was submitted. Applications older than two weeks show
// as Shortlisted, older than one week as Under Review, otherwise the stored
// status. The stored column is never rewritten by this rule.
func (a *Application) DisplayStatus(now time.Time) string {
	elapsed := now.Sub(a.AppliedOn)
	switch {
	case elapsed > 14*24*time.Hour:
		return StatusShortlisted
	case elapsed > 7*24*time.Hour:
		return StatusUnderReview
	default:
		return a.Status
	}
}

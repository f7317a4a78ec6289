package repository

import (
	"errors"
	"time"

	"github.com/internhub/internhub/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrAlreadyApplied = errors.New("application already exists for this internship")
)

type ApplicationRepository interface {
	Create(app *model.Application) error
	ByUser(userID int64) ([]*model.Application, error)
	CountByUserAndInternship(userID, internshipID int64) (int, error)
}

type applicationRepository struct {
	db *sqlx.DB
}

func NewApplicationRepository(db *sqlx.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create inserts a new application. The UNIQUE(user_id, internship_id) index
// closes the check-then-insert race: a concurrent duplicate surfaces as
// ErrAlreadyApplied instead of a second row.
func (r *applicationRepository) Create(app *model.Application) error {
	if app.Status == "" {
		app.Status = model.StatusApplied
	}
	if app.AppliedOn.IsZero() {
		app.AppliedOn = time.Now().UTC()
	}

	query := `INSERT INTO applications (user_id, internship_id, internship_title, internship_org, status, why_hire, work_sample, applied_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	result, err := r.db.Exec(query,
		app.UserID,
		app.InternshipID,
		app.InternshipTitle,
		app.InternshipOrg,
		app.Status,
		app.WhyHire,
		app.WorkSample,
		app.AppliedOn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyApplied
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	app.ID = id
	return nil
}

func (r *applicationRepository) ByUser(userID int64) ([]*model.Application, error) {
	var apps []*model.Application
	query := `SELECT * FROM applications WHERE user_id = $1 ORDER BY applied_on DESC`

	err := r.db.Select(&apps, query, userID)
	if err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *applicationRepository) CountByUserAndInternship(userID, internshipID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM applications WHERE user_id = $1 AND internship_id = $2`
	err := r.db.QueryRow(query, userID, internshipID).Scan(&count)
	return count, err
}

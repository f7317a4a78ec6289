package repository

import (
	"time"

	"github.com/jmoiron/sqlx"
)

type ShortlistRepository interface {
	Add(userID, internshipID int64) error
	Remove(userID, internshipID int64) error
	InternshipIDs(userID int64) ([]int64, error)
	Count(userID, internshipID int64) (int, error)
}

type shortlistRepository struct {
	db *sqlx.DB
}

func NewShortlistRepository(db *sqlx.DB) ShortlistRepository {
	return &shortlistRepository{db: db}
}

// Add inserts a shortlist row. A duplicate insert is a no-op success, so add
// is idempotent even under concurrent requests.
func (r *shortlistRepository) Add(userID, internshipID int64) error {
	query := `INSERT INTO shortlists (user_id, internship_id, created_at)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (user_id, internship_id) DO NOTHING`

	_, err := r.db.Exec(query, userID, internshipID, time.Now().UTC())
	return err
}

// Remove deletes the row if present. Removing a missing row is a no-op success.
func (r *shortlistRepository) Remove(userID, internshipID int64) error {
	query := `DELETE FROM shortlists WHERE user_id = $1 AND internship_id = $2`

	_, err := r.db.Exec(query, userID, internshipID)
	return err
}

func (r *shortlistRepository) InternshipIDs(userID int64) ([]int64, error) {
	ids := []int64{}
	query := `SELECT internship_id FROM shortlists WHERE user_id = $1`

	err := r.db.Select(&ids, query, userID)
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *shortlistRepository) Count(userID, internshipID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM shortlists WHERE user_id = $1 AND internship_id = $2`
	err := r.db.QueryRow(query, userID, internshipID).Scan(&count)
	return count, err
}

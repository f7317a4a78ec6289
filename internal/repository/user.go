package repository

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/internhub/internhub/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

type UserRepository interface {
	Create(user *model.User) error
	ByID(id int64) (*model.User, error)
	ByEmail(email string) (*model.User, error)
	UpdateProfile(user *model.User) error
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO users (email, password_hash, mobile, full_name, created_at, skills, interests)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	result, err := r.db.Exec(query, user.Email, user.PasswordHash, user.Mobile, user.FullName, user.CreatedAt, user.Skills, user.Interests)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	user.ID = id
	return nil
}

func (r *userRepository) ByID(id int64) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE id = $1`

	err := r.db.Get(user, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *userRepository) ByEmail(email string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.Get(user, query, email)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

// UpdateProfile overwrites every profile column in one transaction. Account
// columns (email, password_hash, mobile) are not touched.
func (r *userRepository) UpdateProfile(user *model.User) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}

	query := `UPDATE users
	          SET full_name = $1, dob = $2, phone = $3, state = $4, city = $5,
	              linkedin = $6, github = $7, about = $8, college = $9,
	              qualification = $10, stream = $11, year = $12, location = $13,
	              skills = $14, interests = $15, photo = $16
	          WHERE id = $17`

	result, err := tx.Exec(query,
		user.FullName,
		user.DOB,
		user.Phone,
		user.State,
		user.City,
		user.LinkedIn,
		user.GitHub,
		user.About,
		user.College,
		user.Qualification,
		user.Stream,
		user.Year,
		user.Location,
		user.Skills,
		user.Interests,
		user.Photo,
		user.ID,
	)
	if err != nil {
		tx.Rollback()
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if rows == 0 {
		tx.Rollback()
		return ErrUserNotFound
	}

	return tx.Commit()
}

// isUniqueViolation checks for a unique constraint error (SQLite and PostgreSQL)
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value")
}

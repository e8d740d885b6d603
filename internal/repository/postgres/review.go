package postgres

import (
	"database/sql"
	"time"

	"toolrent/internal/domain"
)

// ReviewRepo implements repository.ReviewRepository
type ReviewRepo struct {
	db *sql.DB
}

// NewReviewRepo creates a new review repository
func NewReviewRepo(db *sql.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

// Create appends a review and returns its id.
func (r *ReviewRepo) Create(userID int64, userName, text string, createdAt time.Time) (int64, error) {
	var id int64
	query := `
		INSERT INTO reviews (user_id, user_name, text, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(query, userID, userName, text, createdAt).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListRecent returns up to limit reviews, most recent first.
// An empty table yields an empty slice, not an error.
func (r *ReviewRepo) ListRecent(limit int) ([]domain.Review, error) {
	query := `
		SELECT id, user_id, user_name, text, created_at
		FROM reviews
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.UserID, &rev.UserName, &rev.Text, &rev.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}

	return reviews, rows.Err()
}

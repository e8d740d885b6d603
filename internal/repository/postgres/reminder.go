package postgres

import (
	"database/sql"
	"time"

	"toolrent/internal/domain"
)

// ReminderRepo implements repository.ReminderRepository
type ReminderRepo struct {
	db *sql.DB
}

// NewReminderRepo creates a new reminder repository
func NewReminderRepo(db *sql.DB) *ReminderRepo {
	return &ReminderRepo{db: db}
}

// Create inserts a reminder and returns its id.
// dueAt is stored as passed; callers normalize to UTC.
func (r *ReminderRepo) Create(userID, chatID int64, dueAt time.Time, note string) (int64, error) {
	var id int64
	query := `
		INSERT INTO reminders (user_id, chat_id, due_at, note)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(query, userID, chatID, dueAt, note).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListPending returns reminders due strictly after the given instant,
// soonest first. Used to re-arm timers after a restart.
func (r *ReminderRepo) ListPending(after time.Time) ([]domain.Reminder, error) {
	query := `
		SELECT id, user_id, chat_id, due_at, note
		FROM reminders
		WHERE due_at > $1
		ORDER BY due_at
	`
	rows, err := r.db.Query(query, after)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []domain.Reminder
	for rows.Next() {
		var rem domain.Reminder
		if err := rows.Scan(&rem.ID, &rem.UserID, &rem.ChatID, &rem.DueAt, &rem.Note); err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}

	return reminders, rows.Err()
}

package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/slack-standup-bot/internal/domain/contract"
	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
)

type standupRepo struct {
	db dbConn
}

func newStandupRepo(db dbConn) contract.StandupRepo {
	return &standupRepo{db: db}
}

const standupColumns = `id, channel_id, user_id, standup_date, queue_order, state,
	yesterday, today, conflicts, auto_skipped_count, reason, created_at, updated_at`

func scanStandup(row *sql.Row) (*entity.Standup, error) {
	s := &entity.Standup{}
	err := row.Scan(
		&s.ID,
		&s.ChannelID,
		&s.UserID,
		&s.StandupDate,
		&s.QueueOrder,
		&s.State,
		&s.Yesterday,
		&s.Today,
		&s.Conflicts,
		&s.AutoSkippedCount,
		&s.Reason,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get standup: %w", err)
	}
	return s, nil
}

func (r *standupRepo) Create(standup *entity.Standup) error {
	query := `
		INSERT INTO standups (channel_id, user_id, standup_date, queue_order, state,
			yesterday, today, conflicts, auto_skipped_count, reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		standup.ChannelID,
		standup.UserID,
		standup.StandupDate,
		standup.QueueOrder,
		standup.State,
		standup.Yesterday,
		standup.Today,
		standup.Conflicts,
		standup.AutoSkippedCount,
		standup.Reason,
	)
	if err != nil {
		return fmt.Errorf("failed to create standup: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	standup.ID = id
	return nil
}

func (r *standupRepo) GetByID(id int64) (*entity.Standup, error) {
	query := `SELECT ` + standupColumns + ` FROM standups WHERE id = ?`
	return scanStandup(r.db.QueryRow(query, id))
}

func (r *standupRepo) GetByUserChannelAndDay(userID, channelID int64, day string) (*entity.Standup, error) {
	query := `
		SELECT ` + standupColumns + `
		FROM standups
		WHERE user_id = ? AND channel_id = ? AND standup_date = ?
	`
	return scanStandup(r.db.QueryRow(query, userID, channelID, day))
}

func (r *standupRepo) ListByChannelAndDay(channelID int64, day string) ([]*entity.Standup, error) {
	query := `
		SELECT ` + standupColumns + `
		FROM standups
		WHERE channel_id = ? AND standup_date = ?
		ORDER BY queue_order ASC
	`

	rows, err := r.db.Query(query, channelID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list standups: %w", err)
	}
	defer rows.Close()

	var standups []*entity.Standup
	for rows.Next() {
		s := &entity.Standup{}
		err := rows.Scan(
			&s.ID,
			&s.ChannelID,
			&s.UserID,
			&s.StandupDate,
			&s.QueueOrder,
			&s.State,
			&s.Yesterday,
			&s.Today,
			&s.Conflicts,
			&s.AutoSkippedCount,
			&s.Reason,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan standup: %w", err)
		}
		standups = append(standups, s)
	}

	return standups, nil
}

func (r *standupRepo) CountPendingByChannelAndDay(channelID int64, day string) (int, error) {
	query := `
		SELECT COUNT(*) FROM standups
		WHERE channel_id = ? AND standup_date = ? AND state = ?
	`

	var count int
	err := r.db.QueryRow(query, channelID, day, entity.StateIdle).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending standups: %w", err)
	}

	return count, nil
}

func (r *standupRepo) MaxOrderByChannelAndDay(channelID int64, day string) (int, error) {
	query := `
		SELECT COALESCE(MAX(queue_order), 0) FROM standups
		WHERE channel_id = ? AND standup_date = ?
	`

	var max int
	err := r.db.QueryRow(query, channelID, day).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("failed to get max queue order: %w", err)
	}

	return max, nil
}

func (r *standupRepo) FirstCreatedAtByChannelAndDay(channelID int64, day string) (time.Time, error) {
	query := `
		SELECT COALESCE(MIN(created_at), '') FROM standups
		WHERE channel_id = ? AND standup_date = ?
	`

	var raw sql.NullString
	err := r.db.QueryRow(query, channelID, day).Scan(&raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get first created_at: %w", err)
	}
	return parseTimestamp(raw.String)
}

func (r *standupRepo) LastUpdatedAtByChannelAndDay(channelID int64, day string) (time.Time, error) {
	query := `
		SELECT COALESCE(MAX(updated_at), '') FROM standups
		WHERE channel_id = ? AND standup_date = ?
	`

	var raw sql.NullString
	err := r.db.QueryRow(query, channelID, day).Scan(&raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last updated_at: %w", err)
	}
	return parseTimestamp(raw.String)
}

// parseTimestamp handles the formats sqlite emits for aggregated
// DATETIME columns, which bypass the driver's automatic conversion.
func parseTimestamp(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02 15:04:05",
		time.RFC3339Nano,
	} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse timestamp %q", raw)
}

func (r *standupRepo) Update(standup *entity.Standup) error {
	query := `
		UPDATE standups SET
			queue_order = ?,
			state = ?,
			yesterday = ?,
			today = ?,
			conflicts = ?,
			auto_skipped_count = ?,
			reason = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		standup.QueueOrder,
		standup.State,
		standup.Yesterday,
		standup.Today,
		standup.Conflicts,
		standup.AutoSkippedCount,
		standup.Reason,
		time.Now(),
		standup.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update standup: %w", err)
	}

	return nil
}

package database

import (
	"database/sql"
	"fmt"

	"github.com/diegoclair/slack-standup-bot/internal/domain/contract"
	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
)

type settingRepo struct {
	db dbConn
}

func newSettingRepo(db dbConn) contract.SettingRepo {
	return &settingRepo{db: db}
}

func (r *settingRepo) Get() (*entity.Setting, error) {
	setting := &entity.Setting{}
	query := `
		SELECT id, bot_name, kickoff_time, auto_skip_timeout, skip_weekends
		FROM settings
		ORDER BY id ASC
		LIMIT 1
	`

	err := r.db.QueryRow(query).Scan(
		&setting.ID,
		&setting.BotName,
		&setting.KickoffTime,
		&setting.AutoSkipTimeout,
		&setting.SkipWeekends,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return setting, nil
}

func (r *settingRepo) Update(setting *entity.Setting) error {
	query := `
		UPDATE settings SET
			bot_name = ?,
			kickoff_time = ?,
			auto_skip_timeout = ?,
			skip_weekends = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		setting.BotName,
		setting.KickoffTime,
		setting.AutoSkipTimeout,
		setting.SkipWeekends,
		setting.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	return nil
}

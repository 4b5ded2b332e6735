package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-standup-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db          *DB
	channelRepo contract.ChannelRepo
	userRepo    contract.UserRepo
	standupRepo contract.StandupRepo
	settingRepo contract.SettingRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := &instance{
		db: db,
	}
	i.repoInstances()
	return i
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.channelRepo = newChannelRepo(i.db.conn)
	i.userRepo = newUserRepo(i.db.conn)
	i.standupRepo = newStandupRepo(i.db.conn)
	i.settingRepo = newSettingRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		channelRepo: newChannelRepo(db),
		userRepo:    newUserRepo(db),
		standupRepo: newStandupRepo(db),
		settingRepo: newSettingRepo(db),
	}
}

// Channel returns the channel repository
func (i *instance) Channel() contract.ChannelRepo {
	return i.channelRepo
}

// User returns the user repository
func (i *instance) User() contract.UserRepo {
	return i.userRepo
}

// Standup returns the standup repository
func (i *instance) Standup() contract.StandupRepo {
	return i.standupRepo
}

// Setting returns the settings repository
func (i *instance) Setting() contract.SettingRepo {
	return i.settingRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}

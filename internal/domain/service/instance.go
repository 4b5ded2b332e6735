package service

import (
	"github.com/diegoclair/slack-standup-bot/internal/domain/contract"
)

type Instance struct {
	Standup   *standupService
	Scheduler *scheduler
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient) *Instance {
	standupService := newStandup(dm, slackClient)

	return &Instance{
		Standup:   standupService,
		Scheduler: newScheduler(dm, standupService, slackClient),
	}
}

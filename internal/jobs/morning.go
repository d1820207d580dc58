// Package jobs wires the background work that runs outside request
// handling: currently only the morning sweep that fills today's sessions
// with generated content.
package jobs

import (
	"context"
	"time"

	"alcyxob/sportplan/internal/logger"
	"alcyxob/sportplan/internal/service"

	"github.com/robfig/cron/v3"
)

// sweepTimeout bounds one full generation sweep, not a single session.
const sweepTimeout = 10 * time.Minute

// MorningGeneration runs the daily content-generation sweep on a cron
// schedule.
type MorningGeneration struct {
	cron    *cron.Cron
	content service.ContentService
	log     *logger.Logger
}

// NewMorningGeneration prepares the job; Start schedules it.
func NewMorningGeneration(content service.ContentService, log *logger.Logger) *MorningGeneration {
	return &MorningGeneration{
		cron:    cron.New(),
		content: content,
		log:     log,
	}
}

// Start registers the sweep under the given cron spec and starts the
// scheduler.
func (m *MorningGeneration) Start(spec string) error {
	_, err := m.cron.AddFunc(spec, m.run)
	if err != nil {
		return err
	}
	m.cron.Start()
	m.log.Info("morning generation scheduled", "spec", spec)
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (m *MorningGeneration) Stop() {
	<-m.cron.Stop().Done()
}

func (m *MorningGeneration) run() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	generated, err := m.content.GenerateToday(ctx)
	if err != nil {
		m.log.Error("morning generation sweep failed", "error", err)
		return
	}
	m.log.Info("morning generation sweep finished", "generated", generated)
}

package monitoring

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/creatorhub/creatorhub-be/internal/services"
)

// Pruner removes aged-out activity events on a cron schedule.
type Pruner struct {
	eventSvc  services.EventServiceProvider
	schedule  cron.Schedule
	retention time.Duration
	ticker    *time.Ticker
	done      chan bool
	nextRun   time.Time
}

// NewPruner creates a pruner that deletes events older than retention each
// time the cron expression fires.
func NewPruner(eventSvc services.EventServiceProvider, cronExpr string, retention time.Duration) (*Pruner, error) {
	schedule, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return nil, err
	}
	return &Pruner{
		eventSvc:  eventSvc,
		schedule:  schedule,
		retention: retention,
		done:      make(chan bool),
		nextRun:   schedule.Next(time.Now()),
	}, nil
}

// Run starts the pruner's ticking loop.
func (p *Pruner) Run() {
	log.Info().Time("next_run", p.nextRun).Msg("Starting event retention pruner")
	p.ticker = time.NewTicker(1 * time.Minute)
	defer p.ticker.Stop()

	for {
		select {
		case <-p.done:
			log.Info().Msg("Stopping event retention pruner")
			return
		case <-p.ticker.C:
			now := time.Now()
			if now.After(p.nextRun) {
				p.prune()
				p.nextRun = p.schedule.Next(now)
			}
		}
	}
}

// Stop halts the pruner.
func (p *Pruner) Stop() {
	p.done <- true
}

func (p *Pruner) prune() {
	removed, err := p.eventSvc.Prune(p.retention)
	if err != nil {
		log.Error().Err(err).Msg("Failed to prune aged events")
		return
	}
	log.Info().Int64("removed", removed).Msg("Pruned aged events")
}

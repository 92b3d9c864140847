package scheduler

import (
	"context"
	"time"

	"toyauction/internal/usecase"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const defaultSchedule = "@every 1m"

// Sweeper periodically closes expired auctions. It is the only component
// that calls CloseExpiredAuctions on a timer; the admin force-end paths use
// the same closure logic on demand.

type Sweeper struct {
	auctions usecase.IAuctionUseCase
	schedule string
	cron     *cron.Cron
}

func NewSweeper(auctions usecase.IAuctionUseCase, schedule string) *Sweeper {
	if schedule == "" {
		schedule = defaultSchedule
	}
	return &Sweeper{auctions: auctions, schedule: schedule}
}

func (s *Sweeper) Start() error {
	c := cron.New()
	if _, err := c.AddFunc(s.schedule, s.sweep); err != nil {
		return err
	}
	c.Start()
	s.cron = c

	logrus.WithField("schedule", s.schedule).Info("auction sweeper started")
	return nil
}

func (s *Sweeper) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := s.auctions.CloseExpiredAuctions(ctx, time.Now().UTC()); err != nil {
		logrus.WithError(err).Error("auction sweep failed")
	}
}

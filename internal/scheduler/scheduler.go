package scheduler

import (
	"context"
	"fmt"

	"github.com/equilease/lease-service/internal/config"
	"github.com/equilease/lease-service/internal/models"
	"github.com/equilease/lease-service/internal/notify"
	"github.com/equilease/lease-service/internal/service"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler runs the recurring pending-deals digest. The schedule is a
// standard five-field cron expression from configuration.
type Scheduler struct {
	cfg    *config.Config
	svc    *service.Service
	sender *notify.Sender
	log    *logrus.Logger
	cron   *cron.Cron
}

// NewScheduler initializes a new scheduler.
func NewScheduler(cfg *config.Config, svc *service.Service, sender *notify.Sender, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cfg:    cfg,
		svc:    svc,
		sender: sender,
		log:    log,
		cron:   cron.New(),
	}
}

// Start registers the digest job and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.DigestSchedule, s.runDigest); err != nil {
		return fmt.Errorf("invalid digest schedule %q: %w", s.cfg.DigestSchedule, err)
	}
	s.cron.Start()
	s.log.Infof("Pending-deals digest scheduled: %s", s.cfg.DigestSchedule)
	return nil
}

// Stop halts the cron loop, waiting for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runDigest() {
	ctx := context.Background()

	pending, err := s.svc.ListDeals(ctx, models.DealFilter{Status: models.StatusPending})
	if err != nil {
		s.log.Errorf("Digest: failed to list pending deals: %v", err)
		return
	}
	if len(pending) == 0 {
		s.log.Debug("Digest: no pending deals, skipping")
		return
	}

	if err := s.sender.SendPendingDigest(s.cfg.LandlordEmail, pending); err != nil {
		s.log.Errorf("Digest: %v", err)
		return
	}
	s.log.Infof("Digest: %d pending deal(s) reported to %s", len(pending), s.cfg.LandlordEmail)
}

package scheduler_test

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/equilease/lease-service/internal/config"
	"github.com/equilease/lease-service/internal/notify"
	"github.com/equilease/lease-service/internal/repository"
	"github.com/equilease/lease-service/internal/scheduler"
	"github.com/equilease/lease-service/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduler(t *testing.T, schedule string) *scheduler.Scheduler {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{
		DigestSchedule: schedule,
		LandlordEmail:  "landlord@example.com",
		SenderEmail:    "deals@equilease.local",
	}
	store, err := repository.NewFileStore(filepath.Join(t.TempDir(), "deals.json"))
	require.NoError(t, err)
	svc := service.NewService(store, nil, log)
	return scheduler.NewScheduler(cfg, svc, notify.NewSender(cfg, log), log)
}

func TestScheduler_StartStop(t *testing.T) {
	s := newScheduler(t, "0 8 * * *")
	require.NoError(t, s.Start())
	s.Stop()
}

func TestScheduler_RejectsInvalidSchedule(t *testing.T) {
	s := newScheduler(t, "not a cron spec")
	assert.Error(t, s.Start())
}

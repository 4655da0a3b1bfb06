package service

import (
	"context"
	"fmt"
	"time"

	"github.com/equilease/lease-service/internal/models"
	"github.com/equilease/lease-service/internal/proposal"
	"github.com/equilease/lease-service/internal/repository"
	"github.com/equilease/lease-service/internal/underwriting"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Notifier delivers proposal emails. Optional: when the SMTP transport is
// unconfigured the service has no notifier and delivery is rejected.
type Notifier interface {
	SendProposal(to []string, businessName, proposalText string) error
}

// Service orchestrates the deal lifecycle: scoring, terms generation,
// proposal rendering and persistence happen as one unit at creation, and
// status transitions flow through here afterwards.
type Service struct {
	store    repository.DealStore
	notifier Notifier
	log      *logrus.Logger
}

// NewService initializes a new service. notifier may be nil.
func NewService(store repository.DealStore, notifier Notifier, log *logrus.Logger) *Service {
	return &Service{store: store, notifier: notifier, log: log}
}

// CreateDeal underwrites a profile and persists the resulting deal. The
// profile gets a fresh id if it does not carry one. Fails only on invalid
// numeric input or a persistence error.
func (s *Service) CreateDeal(ctx context.Context, profile models.BusinessProfile) (*models.Deal, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}

	now := time.Now().UTC()
	score := underwriting.Score(profile)
	terms := underwriting.GenerateTerms(profile, score)
	proposalText := proposal.RenderProposal(profile, terms, now)

	deal := models.NewDeal(profile, terms, proposalText, now)
	if err := s.store.Save(ctx, &deal); err != nil {
		return nil, fmt.Errorf("failed to persist deal: %w", err)
	}

	s.log.Infof("Deal created: %s (%s, risk %.1f)", deal.ID, deal.BusinessName, deal.RiskScore)
	return &deal, nil
}

// SetStatus transitions a deal and stamps the matching timestamp. The
// transition table is permissive: approved and rejected deals may be
// re-transitioned. Unknown ids surface repository.ErrDealNotFound.
func (s *Service) SetStatus(ctx context.Context, id, status string) (*models.Deal, error) {
	if !models.ValidStatus(status) {
		return nil, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", status)}
	}

	deal, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	deal.Status = status
	deal.UpdatedAt = now
	switch status {
	case models.StatusApproved:
		deal.ApprovedAt = &now
	case models.StatusRejected:
		deal.RejectedAt = &now
	}

	if err := s.store.Update(ctx, deal); err != nil {
		return nil, fmt.Errorf("failed to persist status change for deal %s: %w", id, err)
	}

	s.log.Infof("Deal %s status set to %s", id, status)
	return deal, nil
}

// GetDeal returns the full record for an id.
func (s *Service) GetDeal(ctx context.Context, id string) (*models.Deal, error) {
	return s.store.Get(ctx, id)
}

// ListDeals returns all deals passing the filter.
func (s *Service) ListDeals(ctx context.Context, filter models.DealFilter) ([]models.Deal, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Deal, 0, len(all))
	for i := range all {
		if filter.Matches(&all[i]) {
			filtered = append(filtered, all[i])
		}
	}
	return filtered, nil
}

// RenderContract produces the draft contract for an existing deal.
func (s *Service) RenderContract(ctx context.Context, id string) (string, error) {
	deal, err := s.store.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return proposal.RenderContract(*deal, time.Now().UTC()), nil
}

// SendProposal mails the stored proposal text to the given recipients.
func (s *Service) SendProposal(ctx context.Context, id string, recipients []string) error {
	if s.notifier == nil {
		return fmt.Errorf("email delivery is not configured")
	}
	if len(recipients) == 0 {
		return &ValidationError{Field: "recipients", Reason: "at least one recipient is required"}
	}

	deal, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.notifier.SendProposal(recipients, deal.BusinessName, deal.Proposal); err != nil {
		return fmt.Errorf("failed to send proposal for deal %s: %w", id, err)
	}
	s.log.Infof("Proposal for deal %s sent to %d recipient(s)", id, len(recipients))
	return nil
}

// PortfolioStats aggregates dashboard metrics over all deals.
func (s *Service) PortfolioStats(ctx context.Context) (*models.PortfolioStats, error) {
	deals, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.PortfolioStats{
		TotalDeals: len(deals),
		RiskDistribution: map[string]int{
			models.BucketLow:    0,
			models.BucketMedium: 0,
			models.BucketHigh:   0,
		},
	}

	var riskSum float64
	for i := range deals {
		d := &deals[i]
		switch d.Status {
		case models.StatusPending:
			stats.PendingDeals++
		case models.StatusApproved:
			stats.ApprovedDeals++
		case models.StatusRejected:
			stats.RejectedDeals++
		}
		stats.RiskDistribution[models.BucketForScore(d.RiskScore)]++
		riskSum += d.RiskScore
	}

	if stats.TotalDeals > 0 {
		stats.ApprovalRate = float64(stats.ApprovedDeals) / float64(stats.TotalDeals) * 100
		stats.AverageRisk = riskSum / float64(stats.TotalDeals)
	}
	return stats, nil
}

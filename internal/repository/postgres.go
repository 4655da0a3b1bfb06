package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/equilease/lease-service/internal/models"
)

const dealsSchema = `
CREATE TABLE IF NOT EXISTS deals (
    id                    TEXT PRIMARY KEY,
    business_name         TEXT NOT NULL,
    business_type         TEXT NOT NULL,
    industry              TEXT NOT NULL DEFAULT '',
    location              TEXT NOT NULL,
    space_size            INTEGER NOT NULL,
    lease_duration        TEXT NOT NULL DEFAULT '',
    current_revenue       DOUBLE PRECISION NOT NULL DEFAULT 0,
    projected_revenue_12m DOUBLE PRECISION NOT NULL DEFAULT 0,
    projected_revenue_24m DOUBLE PRECISION NOT NULL DEFAULT 0,
    burn_rate             DOUBLE PRECISION NOT NULL DEFAULT 0,
    funding_raised        DOUBLE PRECISION NOT NULL DEFAULT 0,
    runway_months         INTEGER NOT NULL DEFAULT 0,
    team_size             INTEGER NOT NULL DEFAULT 1,
    founder_experience    TEXT NOT NULL DEFAULT '',
    has_funding           BOOLEAN NOT NULL DEFAULT FALSE,
    has_revenue           BOOLEAN NOT NULL DEFAULT FALSE,
    has_customers         BOOLEAN NOT NULL DEFAULT FALSE,
    business_model        TEXT NOT NULL DEFAULT '',
    target_market         TEXT NOT NULL DEFAULT '',
    competitive_advantage TEXT NOT NULL DEFAULT '',
    growth_strategy       TEXT NOT NULL DEFAULT '',
    risk_score            DOUBLE PRECISION NOT NULL,
    upfront_rent_percent  DOUBLE PRECISION NOT NULL,
    equity_percent        DOUBLE PRECISION NOT NULL,
    revenue_share_percent DOUBLE PRECISION NOT NULL,
    revenue_share_years   INTEGER NOT NULL,
    monthly_rent          DOUBLE PRECISION NOT NULL,
    monthly_market_rent   DOUBLE PRECISION NOT NULL,
    deferred_amount       DOUBLE PRECISION NOT NULL,
    annual_market_rent    DOUBLE PRECISION NOT NULL,
    revenue_trigger       DOUBLE PRECISION NOT NULL,
    proposal              TEXT NOT NULL DEFAULT '',
    status                TEXT NOT NULL DEFAULT 'pending',
    created_at            TIMESTAMPTZ NOT NULL,
    updated_at            TIMESTAMPTZ NOT NULL,
    approved_at           TIMESTAMPTZ,
    rejected_at           TIMESTAMPTZ
)`

const dealColumns = `
	id, business_name, business_type, industry, location, space_size,
	lease_duration, current_revenue, projected_revenue_12m,
	projected_revenue_24m, burn_rate, funding_raised, runway_months,
	team_size, founder_experience, has_funding, has_revenue, has_customers,
	business_model, target_market, competitive_advantage, growth_strategy,
	risk_score, upfront_rent_percent, equity_percent, revenue_share_percent,
	revenue_share_years, monthly_rent, monthly_market_rent, deferred_amount,
	annual_market_rent, revenue_trigger, proposal, status, created_at,
	updated_at, approved_at, rejected_at`

// PostgresStore persists deals in a PostgreSQL table. Each operation is a
// single statement, so it relies on per-statement atomicity rather than the
// file store's process-wide mutex.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore initializes the store and applies the deals schema.
func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	if _, err := db.Exec(dealsSchema); err != nil {
		return nil, fmt.Errorf("failed to apply deals schema: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// Save inserts a new deal record.
func (s *PostgresStore) Save(ctx context.Context, deal *models.Deal) error {
	query := `INSERT INTO deals (` + dealColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27,
			$28, $29, $30, $31, $32, $33, $34, $35, $36, $37, $38)`
	_, err := s.db.ExecContext(ctx, query,
		deal.ID, deal.BusinessName, deal.BusinessType, deal.Industry,
		deal.Location, deal.SpaceSize, deal.LeaseDuration, deal.CurrentRevenue,
		deal.ProjectedRevenue12M, deal.ProjectedRevenue24M, deal.BurnRate,
		deal.FundingRaised, deal.RunwayMonths, deal.TeamSize,
		deal.FounderExperience, deal.HasFunding, deal.HasRevenue,
		deal.HasCustomers, deal.BusinessModel, deal.TargetMarket,
		deal.CompetitiveAdvantage, deal.GrowthStrategy, deal.RiskScore,
		deal.UpfrontRentPercent, deal.EquityPercent, deal.RevenueSharePercent,
		deal.RevenueShareYears, deal.MonthlyRent, deal.MonthlyMarketRent,
		deal.DeferredAmount, deal.AnnualMarketRent, deal.RevenueTrigger,
		deal.Proposal, deal.Status, deal.CreatedAt, deal.UpdatedAt,
		deal.ApprovedAt, deal.RejectedAt)
	if err != nil {
		return fmt.Errorf("failed to save deal %s: %w", deal.ID, err)
	}
	return nil
}

// Get retrieves a deal by id.
func (s *PostgresStore) Get(ctx context.Context, id string) (*models.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE id = $1`
	deal, err := scanDeal(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrDealNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get deal %s: %w", id, err)
	}
	return deal, nil
}

// Update overwrites an existing deal, matched by id.
func (s *PostgresStore) Update(ctx context.Context, deal *models.Deal) error {
	query := `UPDATE deals SET
		status = $2, updated_at = $3, approved_at = $4, rejected_at = $5,
		business_name = $6, location = $7, proposal = $8
		WHERE id = $1`
	res, err := s.db.ExecContext(ctx, query, deal.ID, deal.Status,
		deal.UpdatedAt, deal.ApprovedAt, deal.RejectedAt, deal.BusinessName,
		deal.Location, deal.Proposal)
	if err != nil {
		return fmt.Errorf("failed to update deal %s: %w", deal.ID, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update deal %s: %w", deal.ID, err)
	}
	if rows == 0 {
		return ErrDealNotFound
	}
	return nil
}

// List returns all deals, newest first.
func (s *PostgresStore) List(ctx context.Context) ([]models.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals ORDER BY created_at DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}
	defer rows.Close()

	var deals []models.Deal
	for rows.Next() {
		deal, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deal row: %w", err)
		}
		deals = append(deals, *deal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}
	return deals, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDeal(row rowScanner) (*models.Deal, error) {
	var d models.Deal
	var approvedAt, rejectedAt sql.NullTime
	err := row.Scan(
		&d.ID, &d.BusinessName, &d.BusinessType, &d.Industry, &d.Location,
		&d.SpaceSize, &d.LeaseDuration, &d.CurrentRevenue,
		&d.ProjectedRevenue12M, &d.ProjectedRevenue24M, &d.BurnRate,
		&d.FundingRaised, &d.RunwayMonths, &d.TeamSize, &d.FounderExperience,
		&d.HasFunding, &d.HasRevenue, &d.HasCustomers, &d.BusinessModel,
		&d.TargetMarket, &d.CompetitiveAdvantage, &d.GrowthStrategy,
		&d.RiskScore, &d.UpfrontRentPercent, &d.EquityPercent,
		&d.RevenueSharePercent, &d.RevenueShareYears, &d.MonthlyRent,
		&d.MonthlyMarketRent, &d.DeferredAmount, &d.AnnualMarketRent,
		&d.RevenueTrigger, &d.Proposal, &d.Status, &d.CreatedAt, &d.UpdatedAt,
		&approvedAt, &rejectedAt)
	if err != nil {
		return nil, err
	}
	if approvedAt.Valid {
		d.ApprovedAt = &approvedAt.Time
	}
	if rejectedAt.Valid {
		d.RejectedAt = &rejectedAt.Time
	}
	return &d, nil
}

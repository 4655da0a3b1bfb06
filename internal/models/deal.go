package models

import "time"

// Deal statuses. A deal starts pending; approval and rejection do not lock
// the record, so repeated transitions are allowed.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidStatus reports whether s is a known deal status.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Risk buckets classify a risk score for filtering. Boundaries are
// inclusive: 40 is still low, 70 is still medium.
const (
	BucketLow    = "low"    // 0-40
	BucketMedium = "medium" // 41-70
	BucketHigh   = "high"   // 71-100
)

// BucketForScore maps a risk score to its bucket.
func BucketForScore(score float64) string {
	switch {
	case score <= 40:
		return BucketLow
	case score <= 70:
		return BucketMedium
	default:
		return BucketHigh
	}
}

// Deal is the persisted aggregate: the applicant profile, the generated
// terms, the proposal text rendered once at creation, and lifecycle fields.
// The record is flat so it serializes the way the store expects.
type Deal struct {
	// Profile fields.
	ID                   string  `json:"id"`
	BusinessName         string  `json:"business_name"`
	BusinessType         string  `json:"business_type"`
	Industry             string  `json:"industry"`
	Location             string  `json:"location"`
	SpaceSize            int     `json:"space_size"`
	LeaseDuration        string  `json:"lease_duration"`
	CurrentRevenue       float64 `json:"current_revenue"`
	ProjectedRevenue12M  float64 `json:"projected_revenue_12m"`
	ProjectedRevenue24M  float64 `json:"projected_revenue_24m"`
	BurnRate             float64 `json:"burn_rate"`
	FundingRaised        float64 `json:"funding_raised"`
	RunwayMonths         int     `json:"runway_months"`
	TeamSize             int     `json:"team_size"`
	FounderExperience    string  `json:"founder_experience"`
	HasFunding           bool    `json:"has_funding"`
	HasRevenue           bool    `json:"has_revenue"`
	HasCustomers         bool    `json:"has_customers"`
	BusinessModel        string  `json:"business_model"`
	TargetMarket         string  `json:"target_market,omitempty"`
	CompetitiveAdvantage string  `json:"competitive_advantage,omitempty"`
	GrowthStrategy       string  `json:"growth_strategy,omitempty"`

	// Terms fields.
	RiskScore           float64 `json:"risk_score"`
	UpfrontRentPercent  float64 `json:"upfront_rent_percent"`
	EquityPercent       float64 `json:"equity_percent"`
	RevenueSharePercent float64 `json:"revenue_share_percent"`
	RevenueShareYears   int     `json:"revenue_share_years"`
	MonthlyRent         float64 `json:"monthly_rent"`
	MonthlyMarketRent   float64 `json:"monthly_market_rent"`
	DeferredAmount      float64 `json:"deferred_amount"`
	AnnualMarketRent    float64 `json:"annual_market_rent"`
	RevenueTrigger      float64 `json:"revenue_trigger"`

	// Lifecycle fields.
	Proposal   string     `json:"proposal"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	RejectedAt *time.Time `json:"rejected_at,omitempty"`
}

// NewDeal composes the persisted record from a profile, its terms and the
// rendered proposal. Status starts pending.
func NewDeal(p BusinessProfile, t DealTerms, proposal string, now time.Time) Deal {
	return Deal{
		ID:                   p.ID,
		BusinessName:         p.BusinessName,
		BusinessType:         p.BusinessType,
		Industry:             p.Industry,
		Location:             p.Location,
		SpaceSize:            p.SpaceSize,
		LeaseDuration:        p.LeaseDuration,
		CurrentRevenue:       p.CurrentRevenue,
		ProjectedRevenue12M:  p.ProjectedRevenue12M,
		ProjectedRevenue24M:  p.ProjectedRevenue24M,
		BurnRate:             p.BurnRate,
		FundingRaised:        p.FundingRaised,
		RunwayMonths:         p.RunwayMonths,
		TeamSize:             p.TeamSize,
		FounderExperience:    p.FounderExperience,
		HasFunding:           p.HasFunding,
		HasRevenue:           p.HasRevenue,
		HasCustomers:         p.HasCustomers,
		BusinessModel:        p.BusinessModel,
		TargetMarket:         p.TargetMarket,
		CompetitiveAdvantage: p.CompetitiveAdvantage,
		GrowthStrategy:       p.GrowthStrategy,

		RiskScore:           t.RiskScore,
		UpfrontRentPercent:  t.UpfrontRentPercent,
		EquityPercent:       t.EquityPercent,
		RevenueSharePercent: t.RevenueSharePercent,
		RevenueShareYears:   t.RevenueShareYears,
		MonthlyRent:         t.MonthlyRent,
		MonthlyMarketRent:   t.MonthlyMarketRent,
		DeferredAmount:      t.DeferredAmount,
		AnnualMarketRent:    t.AnnualMarketRent,
		RevenueTrigger:      t.RevenueTrigger,

		Proposal:  proposal,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Terms reconstructs the DealTerms embedded in the record.
func (d *Deal) Terms() DealTerms {
	return DealTerms{
		RiskScore:           d.RiskScore,
		UpfrontRentPercent:  d.UpfrontRentPercent,
		EquityPercent:       d.EquityPercent,
		RevenueSharePercent: d.RevenueSharePercent,
		RevenueShareYears:   d.RevenueShareYears,
		MonthlyRent:         d.MonthlyRent,
		MonthlyMarketRent:   d.MonthlyMarketRent,
		DeferredAmount:      d.DeferredAmount,
		AnnualMarketRent:    d.AnnualMarketRent,
		RevenueTrigger:      d.RevenueTrigger,
		SpaceSize:           d.SpaceSize,
	}
}

// DealFilter holds independent predicates for listing deals. Zero values
// mean "no constraint".
type DealFilter struct {
	Status       string `json:"status,omitempty"`
	BusinessType string `json:"business_type,omitempty"`
	Location     string `json:"location,omitempty"`
	RiskBucket   string `json:"risk_bucket,omitempty"`
}

// Matches reports whether the deal passes every set predicate.
func (f DealFilter) Matches(d *Deal) bool {
	if f.Status != "" && d.Status != f.Status {
		return false
	}
	if f.BusinessType != "" && d.BusinessType != f.BusinessType {
		return false
	}
	if f.Location != "" && d.Location != f.Location {
		return false
	}
	if f.RiskBucket != "" && BucketForScore(d.RiskScore) != f.RiskBucket {
		return false
	}
	return true
}

package underwriting

import (
	"math"

	"github.com/equilease/lease-service/internal/models"
)

// RentPerSquareFoot is the fixed policy rent in USD per square foot per
// year. All market-rent figures derive from it; there is no market lookup.
const RentPerSquareFoot = 25

const (
	baseUpfrontRent  = 30 // percent of market rent paid in cash
	baseEquity       = 5  // percent of the business
	baseRevenueShare = 3  // percent of gross monthly revenue
	baseShareYears   = 3

	minRevenueTrigger = 5000 // USD monthly revenue floor for the share to kick in
)

// GenerateTerms derives the lease structure from a profile and its risk
// score. Pure and deterministic: identical inputs yield identical terms.
// A higher score moves every lever against the tenant — more cash upfront,
// more equity, a larger revenue share.
func GenerateTerms(p models.BusinessProfile, riskScore float64) models.DealTerms {
	r := (riskScore - 50) / 50

	upfront := clamp(baseUpfrontRent+r*15, 20, 50)
	equity := clamp(baseEquity+r*4, 2, 12)
	revShare := clamp(baseRevenueShare+r*2, 1, 6)

	shareYears := baseShareYears
	switch p.BusinessType {
	case models.BusinessTypeSaaS, models.BusinessTypeEcommerce:
		shareYears = 4
	case models.BusinessTypeRestaurant:
		shareYears = 2
	}

	annualMarketRent := float64(p.SpaceSize * RentPerSquareFoot)
	monthlyMarketRent := annualMarketRent / 12
	monthlyRent := monthlyMarketRent * (upfront / 100)
	deferred := monthlyMarketRent - monthlyRent

	trigger := math.Max(p.CurrentRevenue*1.5, minRevenueTrigger)

	return models.DealTerms{
		RiskScore:           riskScore,
		UpfrontRentPercent:  round1(upfront),
		EquityPercent:       round1(equity),
		RevenueSharePercent: round1(revShare),
		RevenueShareYears:   shareYears,
		MonthlyRent:         math.Round(monthlyRent),
		MonthlyMarketRent:   math.Round(monthlyMarketRent),
		DeferredAmount:      math.Round(deferred),
		AnnualMarketRent:    math.Round(annualMarketRent),
		RevenueTrigger:      math.Round(trigger),
		SpaceSize:           p.SpaceSize,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

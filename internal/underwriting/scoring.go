package underwriting

import (
	"math"

	"github.com/equilease/lease-service/internal/models"
)

// Scoring starts from a neutral base and applies additive adjustments from
// the policy tables below. The result is clamped to [5, 95] and rounded to
// one decimal place. Higher means riskier.
const (
	baseScore = 50
	minScore  = 5
	maxScore  = 95
)

// businessTypeRisk adjusts for the structural risk of the business model.
// Unrecognized values fall back to the "Other" adjustment.
var businessTypeRisk = map[string]float64{
	models.BusinessTypeSaaS:          -10,
	models.BusinessTypeEcommerce:     -5,
	models.BusinessTypeProfServices:  -8,
	models.BusinessTypeManufacturing: 0,
	models.BusinessTypeRestaurant:    +25,
	models.BusinessTypeRetailStore:   +15,
	models.BusinessTypeFranchise:     -5,
	models.BusinessTypeOther:         +10,
}

// industryRisk adjusts for sector-level failure rates. Unrecognized values
// fall back to the "Other" adjustment.
var industryRisk = map[string]float64{
	models.IndustryTechnology:   -8,
	models.IndustryHealthcare:   -5,
	models.IndustryFinance:      -3,
	models.IndustryEducation:    0,
	models.IndustryFoodBeverage: +20,
	models.IndustryRetail:       +12,
	models.IndustryRealEstate:   +5,
	models.IndustryOther:        +8,
}

// experienceRisk adjusts for founder track record. Unrecognized values are
// scored like a first-time founder.
var experienceRisk = map[string]float64{
	models.ExperienceSuccessfulExit:  -20,
	models.ExperienceSerial:          -15,
	models.ExperienceIndustryVeteran: -12,
	models.ExperienceFirstTime:       +10,
}

func lookup(table map[string]float64, key string, fallback float64) float64 {
	if adj, ok := table[key]; ok {
		return adj
	}
	return fallback
}

// Score computes the risk score for a business profile. It is a pure
// function of the profile: no I/O, no failure modes for well-formed input.
func Score(p models.BusinessProfile) float64 {
	score := float64(baseScore)

	score += lookup(businessTypeRisk, p.BusinessType, businessTypeRisk[models.BusinessTypeOther])
	score += lookup(industryRisk, p.Industry, industryRisk[models.IndustryOther])

	// Revenue tiers, highest threshold first.
	switch {
	case p.CurrentRevenue > 10000:
		score -= 15
	case p.CurrentRevenue > 5000:
		score -= 10
	case p.CurrentRevenue > 1000:
		score -= 5
	default:
		score += 10
	}

	switch {
	case p.TeamSize > 20:
		score -= 10
	case p.TeamSize > 10:
		score -= 8
	case p.TeamSize > 5:
		score -= 5
	case p.TeamSize < 2:
		score += 15
	}

	// Funding only counts once the applicant has actually raised.
	if p.HasFunding {
		switch {
		case p.FundingRaised > 1000000:
			score -= 20
		case p.FundingRaised > 500000:
			score -= 15
		case p.FundingRaised > 100000:
			score -= 10
		default:
			score -= 5
		}
	}

	// Runway branches are evaluated in this exact order; the <3 case is
	// shadowed by <6 and kept as written in the policy table.
	switch {
	case p.RunwayMonths > 18:
		score -= 10
	case p.RunwayMonths > 12:
		score -= 5
	case p.RunwayMonths < 6:
		score += 15
	case p.RunwayMonths < 3:
		score += 25
	}

	score += lookup(experienceRisk, p.FounderExperience, experienceRisk[models.ExperienceFirstTime])

	// Market validation signals are independently additive.
	if p.HasCustomers {
		score -= 10
	}
	if p.HasRevenue {
		score -= 8
	}

	switch {
	case p.SpaceSize > 5000:
		score += 8
	case p.SpaceSize > 3000:
		score += 5
	case p.SpaceSize < 500:
		score -= 3
	}

	score = math.Max(minScore, math.Min(maxScore, score))
	return math.Round(score*10) / 10
}

package service

import (
	"fmt"

	"github.com/equilease/lease-service/internal/models"
)

// ValidationError reports a profile or request field that fails fast
// before any underwriting runs.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// validateProfile checks the numeric fields the underwriting arithmetic
// depends on. Categorical fields are not validated: scoring defines a
// default adjustment for every unrecognized value.
func validateProfile(p models.BusinessProfile) error {
	if p.SpaceSize <= 0 {
		return &ValidationError{Field: "space_size", Reason: "must be positive"}
	}
	if p.TeamSize <= 0 {
		return &ValidationError{Field: "team_size", Reason: "must be positive"}
	}
	if p.RunwayMonths < 0 {
		return &ValidationError{Field: "runway_months", Reason: "must not be negative"}
	}

	currency := []struct {
		name  string
		value float64
	}{
		{"current_revenue", p.CurrentRevenue},
		{"projected_revenue_12m", p.ProjectedRevenue12M},
		{"projected_revenue_24m", p.ProjectedRevenue24M},
		{"burn_rate", p.BurnRate},
		{"funding_raised", p.FundingRaised},
	}
	for _, c := range currency {
		if c.value < 0 {
			return &ValidationError{Field: c.name, Reason: "must not be negative"}
		}
	}
	return nil
}

package models

// DealTerms is the lease structure derived from a profile and its risk
// score. Percentages carry one decimal place, monetary amounts are whole
// dollars.
type DealTerms struct {
	RiskScore           float64 `json:"risk_score"`
	UpfrontRentPercent  float64 `json:"upfront_rent_percent"`  // [20, 50]
	EquityPercent       float64 `json:"equity_percent"`        // [2, 12]
	RevenueSharePercent float64 `json:"revenue_share_percent"` // [1, 6]
	RevenueShareYears   int     `json:"revenue_share_years"`
	MonthlyRent         float64 `json:"monthly_rent"`
	MonthlyMarketRent   float64 `json:"monthly_market_rent"`
	DeferredAmount      float64 `json:"deferred_amount"`
	AnnualMarketRent    float64 `json:"annual_market_rent"`
	RevenueTrigger      float64 `json:"revenue_trigger"`
	SpaceSize           int     `json:"space_size"`
}

package models

// Business type values recognized by the underwriting tables. Any other
// value is scored with the "Other" adjustment.
const (
	BusinessTypeSaaS          = "SaaS Startup"
	BusinessTypeEcommerce     = "E-commerce"
	BusinessTypeRestaurant    = "Restaurant"
	BusinessTypeRetailStore   = "Retail Store"
	BusinessTypeFranchise     = "Franchise"
	BusinessTypeProfServices  = "Professional Services"
	BusinessTypeManufacturing = "Manufacturing"
	BusinessTypeOther         = "Other"
)

// Industry values recognized by the underwriting tables.
const (
	IndustryTechnology   = "Technology"
	IndustryFoodBeverage = "Food & Beverage"
	IndustryRetail       = "Retail"
	IndustryHealthcare   = "Healthcare"
	IndustryFinance      = "Finance"
	IndustryEducation    = "Education"
	IndustryRealEstate   = "Real Estate"
	IndustryOther        = "Other"
)

// Founder experience values recognized by the underwriting tables.
const (
	ExperienceFirstTime       = "First-time founder"
	ExperienceSerial          = "Serial entrepreneur"
	ExperienceIndustryVeteran = "Industry veteran (10+ years)"
	ExperienceSuccessfulExit  = "Previous successful exit"
)

// BusinessProfile is the tenant-supplied application data. It is immutable
// input to the underwriting engine; the presentation layer is responsible
// for required-field presence.
type BusinessProfile struct {
	ID                   string  `json:"id"`
	BusinessName         string  `json:"business_name"`
	BusinessType         string  `json:"business_type"`
	Industry             string  `json:"industry"`
	Location             string  `json:"location"`
	SpaceSize            int     `json:"space_size"` // square feet
	LeaseDuration        string  `json:"lease_duration"`
	CurrentRevenue       float64 `json:"current_revenue"` // monthly, USD
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
}

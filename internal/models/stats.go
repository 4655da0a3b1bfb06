package models

// PortfolioStats represents landlord dashboard metrics over all deals
type PortfolioStats struct {
	TotalDeals       int            `json:"total_deals"`
	PendingDeals     int            `json:"pending_deals"`
	ApprovedDeals    int            `json:"approved_deals"`
	RejectedDeals    int            `json:"rejected_deals"`
	ApprovalRate     float64        `json:"approval_rate"` // percent of total
	AverageRisk      float64        `json:"average_risk_score"`
	RiskDistribution map[string]int `json:"risk_distribution"` // bucket -> count
}

package proposal

import (
	"fmt"
	"strings"
	"time"

	"github.com/equilease/lease-service/internal/models"
)

const (
	validityDays = 30
	divider      = "================================================================"
)

// Figures are the derived display values shown in proposals and contracts.
// Everything here is reproducible from the profile and terms alone.
type Figures struct {
	AnnualRent         float64 // cash rent over a year
	AnnualRevenueShare float64 // projected yearly revenue-share income
	TotalReturn        float64 // rent + revenue share, year one
	ROIImprovement     float64 // percent over the market-rate baseline
	ROIDifference      float64 // dollar gain over the market-rate baseline
}

// ComputeFigures derives the landlord-return comparison. ROI improvement is
// defined as 0 when the annual market rent is zero.
func ComputeFigures(p models.BusinessProfile, t models.DealTerms) Figures {
	annualShare := p.ProjectedRevenue12M * 12 * (t.RevenueSharePercent / 100)
	annualRent := t.MonthlyRent * 12
	total := annualRent + annualShare

	var roi float64
	if t.AnnualMarketRent > 0 {
		roi = (total/t.AnnualMarketRent - 1) * 100
	}

	return Figures{
		AnnualRent:         annualRent,
		AnnualRevenueShare: annualShare,
		TotalReturn:        total,
		ROIImprovement:     roi,
		ROIDifference:      total - t.AnnualMarketRent,
	}
}

// ProposalID derives the short human-facing identifier from the deal id.
func ProposalID(id string) string {
	short := id
	if len(short) > 8 {
		short = short[:8]
	}
	return "EQL-" + strings.ToUpper(short)
}

func yesNo(b bool, yes, no string) string {
	if b {
		return yes
	}
	return no
}

// RenderProposal produces the full text proposal for a scored application.
// It is rendered once, at deal creation, and stored verbatim on the record.
func RenderProposal(p models.BusinessProfile, t models.DealTerms, now time.Time) string {
	f := ComputeFigures(p, t)
	bucket := models.BucketForScore(t.RiskScore)

	var b strings.Builder
	w := func(format string, args ...interface{}) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	w("EQUILEASE DEAL PROPOSAL")
	w("Generated: %s", now.Format("January 2, 2006 at 3:04 PM"))
	w("Proposal ID: %s", ProposalID(p.ID))
	w("Valid Until: %s", now.AddDate(0, 0, validityDays).Format("January 2, 2006"))
	w("")
	w(divider)
	w("TENANT INFORMATION")
	w(divider)
	w("")
	w("Business Name:       %s", p.BusinessName)
	w("Business Type:       %s", p.BusinessType)
	w("Industry:            %s", p.Industry)
	w("Desired Location:    %s", p.Location)
	w("Space Requirements:  %d square feet", p.SpaceSize)
	w("Lease Duration:      %s", p.LeaseDuration)
	w("Team Size:           %d employees", p.TeamSize)
	w("Founder Experience:  %s", p.FounderExperience)
	w("Business Model:      %s", p.BusinessModel)
	w("")
	w(divider)
	w("FINANCIAL OVERVIEW")
	w(divider)
	w("")
	w("Current Monthly Revenue:  $%.0f", p.CurrentRevenue)
	w("12-Month Projection:      $%.0f", p.ProjectedRevenue12M)
	w("24-Month Projection:      $%.0f", p.ProjectedRevenue24M)
	w("Current Burn Rate:        $%.0f/month", p.BurnRate)
	w("Cash Runway:              %d months", p.RunwayMonths)
	w("Total Funding Raised:     $%.0f", p.FundingRaised)
	w("")
	w("Funding Status:           %s", yesNo(p.HasFunding, "Funded", "Bootstrapped"))
	w("Revenue Status:           %s", yesNo(p.HasRevenue, "Revenue Generating", "Pre-Revenue"))
	w("Customer Base:            %s", yesNo(p.HasCustomers, "Has Customers", "Pre-Customer"))
	w("")
	w(divider)
	w("RISK ASSESSMENT")
	w(divider)
	w("")
	w("Overall Risk Score:  %.1f/100", t.RiskScore)
	w("Risk Category:       %s", strings.ToUpper(bucket))
	w("")
	w(divider)
	w("PROPOSED LEASE STRUCTURE")
	w(divider)
	w("")
	w("Standard Market Rent:  $%.0f/month", t.MonthlyMarketRent)
	w("Annual Market Value:   $%.0f/year", t.AnnualMarketRent)
	w("")
	w("UPFRONT RENT COMPONENT:")
	w("Monthly Payment:       $%.0f", t.MonthlyRent)
	w("Percentage of Market:  %.1f%%", t.UpfrontRentPercent)
	w("Annual Payment:        $%.0f", f.AnnualRent)
	w("")
	w("DEFERRED RENT COMPONENT:")
	w("Monthly Deferred:      $%.0f", t.DeferredAmount)
	w("Percentage of Market:  %.1f%%", 100-t.UpfrontRentPercent)
	w("Annual Deferred:       $%.0f", t.DeferredAmount*12)
	w("")
	w(divider)
	w("EQUITY PARTICIPATION")
	w(divider)
	w("")
	w("Equity Stake:       %.1f%% of business", t.EquityPercent)
	w("Structure:          Convertible equity (SAFE-like instrument)")
	w("Conversion Events:  Series A, acquisition, or IPO")
	w("")
	w(divider)
	w("REVENUE SHARING AGREEMENT")
	w(divider)
	w("")
	w("Revenue Share:       %.1f%% of gross monthly revenue", t.RevenueSharePercent)
	w("Duration:            %d years from lease commencement", t.RevenueShareYears)
	w("Revenue Threshold:   activated when monthly revenue > $%.0f", t.RevenueTrigger)
	w("Reporting:           monthly, within 15 days of month-end")
	w("")
	w("Projected Annual Revenue Share:   $%.0f", f.AnnualRevenueShare)
	w("Total Revenue Share (Full Term):  $%.0f", f.AnnualRevenueShare*float64(t.RevenueShareYears))
	w("")
	w(divider)
	w("LANDLORD RETURN ANALYSIS")
	w(divider)
	w("")
	w("Traditional Lease (Year 1):  $%.0f", t.AnnualMarketRent)
	w("EquiLease Hybrid (Year 1):   $%.0f rent + $%.0f revenue share = $%.0f",
		f.AnnualRent, f.AnnualRevenueShare, f.TotalReturn)
	w("")
	w("IMPROVEMENT OVER MARKET: %+.1f%% ($%+.0f)", f.ROIImprovement, f.ROIDifference)
	w("")
	w(divider)
	w("")
	w("This proposal is valid for %d days from generation date.", validityDays)
	w("All terms subject to final due diligence and documentation.")

	return b.String()
}

package proposal

import (
	"fmt"
	"strings"
	"time"

	"github.com/equilease/lease-service/internal/models"
)

// RenderContract produces the draft hybrid lease agreement for a deal. It
// is rendered on demand from the stored record.
func RenderContract(d models.Deal, now time.Time) string {
	var b strings.Builder
	w := func(format string, args ...interface{}) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	w("EQUILEASE HYBRID LEASE AGREEMENT")
	w("")
	w("This Agreement is entered into on %s between:", now.Format("January 2, 2006"))
	w("")
	w("LANDLORD: [LANDLORD NAME AND ADDRESS]")
	w("TENANT: %s", d.BusinessName)
	w("")
	w("PREMISES: %s", d.Location)
	w("SPACE: %d square feet", d.SpaceSize)
	w("")
	w("ARTICLE 1: RENT TERMS")
	w("1.1 Base Rent: $%.0f per month", d.MonthlyRent)
	w("1.2 Market Rate: $%.0f per month", d.MonthlyMarketRent)
	w("1.3 Upfront Percentage: %.1f%% of market rate", d.UpfrontRentPercent)
	w("1.4 Deferred Amount: $%.0f per month", d.DeferredAmount)
	w("")
	w("ARTICLE 2: EQUITY PARTICIPATION")
	w("2.1 Equity Percentage: %.1f%% of Tenant's business", d.EquityPercent)
	w("2.2 Structure: Convertible equity instrument")
	w("2.3 Conversion Events: Series A funding, acquisition, IPO")
	w("")
	w("ARTICLE 3: REVENUE SHARING")
	w("3.1 Revenue Share: %.1f%% of gross monthly revenue", d.RevenueSharePercent)
	w("3.2 Duration: %d years from lease commencement", d.RevenueShareYears)
	w("3.3 Threshold: activated when monthly revenue exceeds $%.0f", d.RevenueTrigger)
	w("")
	w("[Additional standard commercial lease terms to be added by legal counsel]")
	w("")
	w("Agreement ID: %s-CONTRACT", ProposalID(d.ID))
	w("Date: %s", now.Format("January 2, 2006"))
	w("")
	w("SIGNATURES:")
	w("LANDLORD: _________________ DATE: _________")
	w("TENANT:   _________________ DATE: _________")

	return b.String()
}

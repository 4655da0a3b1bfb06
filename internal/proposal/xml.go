package proposal

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
	"github.com/equilease/lease-service/internal/models"
)

// RenderDealXML serializes a deal record as a standalone XML document for
// handoff to external document-management systems. Timestamps are RFC 3339.
func RenderDealXML(d models.Deal) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("deal")
	root.CreateAttr("id", d.ID)
	root.CreateAttr("status", d.Status)

	tenant := root.CreateElement("tenant")
	addText(tenant, "businessName", d.BusinessName)
	addText(tenant, "businessType", d.BusinessType)
	addText(tenant, "industry", d.Industry)
	addText(tenant, "location", d.Location)
	addText(tenant, "spaceSize", fmt.Sprintf("%d", d.SpaceSize))
	addText(tenant, "leaseDuration", d.LeaseDuration)
	addText(tenant, "teamSize", fmt.Sprintf("%d", d.TeamSize))
	addText(tenant, "founderExperience", d.FounderExperience)

	financials := root.CreateElement("financials")
	addMoney(financials, "currentRevenue", d.CurrentRevenue)
	addMoney(financials, "projectedRevenue12m", d.ProjectedRevenue12M)
	addMoney(financials, "projectedRevenue24m", d.ProjectedRevenue24M)
	addMoney(financials, "burnRate", d.BurnRate)
	addMoney(financials, "fundingRaised", d.FundingRaised)
	addText(financials, "runwayMonths", fmt.Sprintf("%d", d.RunwayMonths))
	addText(financials, "hasFunding", fmt.Sprintf("%t", d.HasFunding))
	addText(financials, "hasRevenue", fmt.Sprintf("%t", d.HasRevenue))
	addText(financials, "hasCustomers", fmt.Sprintf("%t", d.HasCustomers))

	terms := root.CreateElement("terms")
	addText(terms, "riskScore", fmt.Sprintf("%.1f", d.RiskScore))
	addText(terms, "riskBucket", models.BucketForScore(d.RiskScore))
	addText(terms, "upfrontRentPercent", fmt.Sprintf("%.1f", d.UpfrontRentPercent))
	addText(terms, "equityPercent", fmt.Sprintf("%.1f", d.EquityPercent))
	addText(terms, "revenueSharePercent", fmt.Sprintf("%.1f", d.RevenueSharePercent))
	addText(terms, "revenueShareYears", fmt.Sprintf("%d", d.RevenueShareYears))
	addMoney(terms, "monthlyRent", d.MonthlyRent)
	addMoney(terms, "monthlyMarketRent", d.MonthlyMarketRent)
	addMoney(terms, "deferredAmount", d.DeferredAmount)
	addMoney(terms, "annualMarketRent", d.AnnualMarketRent)
	addMoney(terms, "revenueTrigger", d.RevenueTrigger)

	lifecycle := root.CreateElement("lifecycle")
	addText(lifecycle, "createdAt", d.CreatedAt.Format(time.RFC3339))
	addText(lifecycle, "updatedAt", d.UpdatedAt.Format(time.RFC3339))
	if d.ApprovedAt != nil {
		addText(lifecycle, "approvedAt", d.ApprovedAt.Format(time.RFC3339))
	}
	if d.RejectedAt != nil {
		addText(lifecycle, "rejectedAt", d.RejectedAt.Format(time.RFC3339))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize deal %s to XML: %w", d.ID, err)
	}
	return out, nil
}

func addText(parent *etree.Element, name, value string) {
	parent.CreateElement(name).SetText(value)
}

func addMoney(parent *etree.Element, name string, value float64) {
	addText(parent, name, fmt.Sprintf("%.0f", value))
}

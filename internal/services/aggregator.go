package services

import (
	"fmt"
	"strings"
	"time"

	"quotation-service/internal/models"
)

// grandTotalTolerance is the permitted drift between the stored grand
// total and the sum of its parts, in currency units.
const grandTotalTolerance = 0.01

// MintQuotationNumber derives a quotation number from a point in
// time. Uniqueness is enforced by the storage layer; a collision at
// human-driven submission rates is retried with a fresh mint.
func MintQuotationNumber(now time.Time) string {
	return fmt.Sprintf("QT-%d", now.Unix())
}

// BuildQuotation combines the customer, date, and computed line items
// into a persisted-ready quotation with validated totals, a freshly
// minted number, and the tax regime percentages frozen on.
func BuildQuotation(customer models.CustomerInput, date, placeOfSupply string, items []models.LineItemResult, regime models.TaxRegime) (*models.Quotation, error) {
	if len(items) == 0 {
		return nil, &ValidationError{Field: "items", Reason: "no items"}
	}

	issueDate, err := time.Parse("2006-01-02", strings.TrimSpace(date))
	if err != nil {
		return nil, newValidationError("date", "must be a calendar date in YYYY-MM-DD form")
	}

	var totalBasic, totalGST, grandTotal float64
	quotationItems := make([]models.QuotationItem, 0, len(items))
	for _, item := range items {
		totalBasic += item.BasicAmount
		totalGST += item.GSTAmount
		grandTotal += item.TotalAmount

		quotationItems = append(quotationItems, models.QuotationItem{
			Description: item.Description,
			Qty:         item.Qty,
			Rate:        item.Rate,
			Unit:        item.Unit,
			GSTRate:     item.GSTRatePct,
			BasicAmount: item.BasicAmount,
			GSTAmount:   item.GSTAmount,
			TotalAmount: item.TotalAmount,
		})
	}

	totalBasic = roundMoney(totalBasic)
	totalGST = roundMoney(totalGST)
	grandTotal = roundMoney(grandTotal)

	// Validated input cannot break this; treat a drift as an internal
	// failure rather than persisting an irreconcilable document.
	if diff := grandTotal - (totalBasic + totalGST); diff > grandTotalTolerance || diff < -grandTotalTolerance {
		return nil, &ComputationError{
			Reason: fmt.Sprintf("grand total %.2f does not reconcile with basic %.2f + gst %.2f", grandTotal, totalBasic, totalGST),
		}
	}

	if strings.TrimSpace(placeOfSupply) == "" {
		placeOfSupply = customer.State
	}

	return &models.Quotation{
		QuotationNumber: MintQuotationNumber(time.Now()),
		Date:            issueDate,
		PlaceOfSupply:   placeOfSupply,
		TotalBasic:      totalBasic,
		TotalGST:        totalGST,
		GrandTotal:      grandTotal,
		PercentageCGST:  regime.CGSTPct,
		PercentageSGST:  regime.SGSTPct,
		PercentageIGST:  regime.IGSTPct,
		Items:           quotationItems,
	}, nil
}

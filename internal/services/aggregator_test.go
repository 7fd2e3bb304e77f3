package services

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"quotation-service/internal/models"
)

func testLineItem(basic, gst float64) models.LineItemResult {
	return models.LineItemResult{
		Description: "item",
		Qty:         1,
		Rate:        basic,
		Unit:        DefaultUnit,
		GSTRatePct:  18,
		BasicAmount: basic,
		GSTAmount:   gst,
		TotalAmount: roundMoney(basic + gst),
	}
}

func TestBuildQuotation_Totals(t *testing.T) {
	items := []models.LineItemResult{
		testLineItem(200.00, 36.00),
		testLineItem(99.99, 18.00),
	}
	regime := models.TaxRegime{CGSTPct: 9, SGSTPct: 9}

	q, err := BuildQuotation(models.CustomerInput{Name: "Acme", State: "Puducherry"}, "2025-04-01", "", items, regime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q.TotalBasic != 299.99 {
		t.Errorf("expected total basic 299.99, got %v", q.TotalBasic)
	}
	if q.TotalGST != 54.00 {
		t.Errorf("expected total gst 54.00, got %v", q.TotalGST)
	}
	if q.GrandTotal != 353.99 {
		t.Errorf("expected grand total 353.99, got %v", q.GrandTotal)
	}
	if diff := math.Abs(q.GrandTotal - (q.TotalBasic + q.TotalGST)); diff > 0.01 {
		t.Errorf("grand total drifts from parts by %v", diff)
	}
	if len(q.Items) != 2 {
		t.Errorf("expected 2 items on the aggregate, got %d", len(q.Items))
	}
}

func TestBuildQuotation_NoItems(t *testing.T) {
	_, err := BuildQuotation(models.CustomerInput{Name: "Acme"}, "2025-04-01", "", nil, models.TaxRegime{IGSTPct: 18})

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if validationErr.Reason != "no items" {
		t.Fatalf("expected reason %q, got %q", "no items", validationErr.Reason)
	}
}

func TestBuildQuotation_BadDate(t *testing.T) {
	items := []models.LineItemResult{testLineItem(100, 18)}

	for _, date := range []string{"", "01-04-2025", "2025/04/01", "yesterday"} {
		_, err := BuildQuotation(models.CustomerInput{Name: "Acme"}, date, "", items, models.TaxRegime{IGSTPct: 18})
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("date %q: expected ValidationError, got %v", date, err)
			continue
		}
		if validationErr.Field != "date" {
			t.Errorf("date %q: expected field date, got %q", date, validationErr.Field)
		}
	}
}

func TestBuildQuotation_PlaceOfSupplyDefaultsToCustomerState(t *testing.T) {
	items := []models.LineItemResult{testLineItem(100, 18)}

	q, err := BuildQuotation(models.CustomerInput{Name: "Acme", State: "Tamil Nadu"}, "2025-04-01", "", items, models.TaxRegime{IGSTPct: 18})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.PlaceOfSupply != "Tamil Nadu" {
		t.Fatalf("expected place of supply to default to customer state, got %q", q.PlaceOfSupply)
	}

	q, err = BuildQuotation(models.CustomerInput{Name: "Acme", State: "Tamil Nadu"}, "2025-04-01", "Puducherry", items, models.TaxRegime{IGSTPct: 18})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.PlaceOfSupply != "Puducherry" {
		t.Fatalf("expected explicit place of supply to win, got %q", q.PlaceOfSupply)
	}
}

func TestBuildQuotation_FreezesTaxRegime(t *testing.T) {
	items := []models.LineItemResult{testLineItem(100, 18)}
	regime := models.TaxRegime{CGSTPct: 9, SGSTPct: 9}

	q, err := BuildQuotation(models.CustomerInput{Name: "Acme"}, "2025-04-01", "Puducherry", items, regime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.PercentageCGST != 9 || q.PercentageSGST != 9 || q.PercentageIGST != 0 {
		t.Fatalf("expected frozen 9/9/0 snapshot, got %v/%v/%v", q.PercentageCGST, q.PercentageSGST, q.PercentageIGST)
	}
}

func TestMintQuotationNumber(t *testing.T) {
	now := time.Date(2025, 4, 1, 10, 30, 0, 0, time.UTC)
	number := MintQuotationNumber(now)

	if !strings.HasPrefix(number, "QT-") {
		t.Fatalf("expected QT- prefix, got %q", number)
	}
	if number != "QT-1743503400" {
		t.Fatalf("expected QT-1743503400, got %q", number)
	}
	if MintQuotationNumber(now) != number {
		t.Fatalf("expected minting to be deterministic for a fixed time")
	}
}

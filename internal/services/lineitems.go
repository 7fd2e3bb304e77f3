package services

import (
	"math"
	"strconv"
	"strings"

	"quotation-service/internal/models"
)

// DefaultUnit is applied when an item row carries no unit label.
const DefaultUnit = "NOS"

// roundMoney rounds to two decimal places, half away from zero. Every
// stored monetary value passes through here so that item amounts and
// quotation totals stay reconcilable.
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeLineItems validates and computes the submitted item rows.
// Rows whose description is blank after trimming are silently dropped:
// the form may submit a sparse table and empty rows must not break the
// aggregation. Any remaining row that fails validation rejects the
// whole submission.
func ComputeLineItems(inputs []models.LineItemInput) ([]models.LineItemResult, error) {
	results := make([]models.LineItemResult, 0, len(inputs))
	for i, in := range inputs {
		desc := strings.TrimSpace(in.Description)
		if desc == "" {
			continue
		}

		item, err := computeLineItem(i, desc, in)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}
	return results, nil
}

func computeLineItem(row int, desc string, in models.LineItemInput) (models.LineItemResult, error) {
	qty, err := parseQuantity(in.Qty)
	if err != nil {
		return models.LineItemResult{}, newValidationError("qty", "row %d: %v", row+1, err)
	}

	rate, err := parseNonNegative(in.Rate)
	if err != nil {
		return models.LineItemResult{}, newValidationError("rate", "row %d: %v", row+1, err)
	}

	gstRate, err := parseNonNegative(in.GSTRate)
	if err != nil {
		return models.LineItemResult{}, newValidationError("gstRate", "row %d: %v", row+1, err)
	}

	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = DefaultUnit
	}

	basic := roundMoney(float64(qty) * rate)
	gst := roundMoney(basic * gstRate / 100)
	total := roundMoney(basic + gst)

	return models.LineItemResult{
		Description: desc,
		Qty:         qty,
		Rate:        rate,
		Unit:        unit,
		GSTRatePct:  gstRate,
		BasicAmount: basic,
		GSTAmount:   gst,
		TotalAmount: total,
	}, nil
}

// parseQuantity parses a quantity cell. An empty cell counts as zero;
// anything else must be a plain non-negative integer.
func parseQuantity(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errNotAnInteger
	}
	if n < 0 {
		return 0, errNegative
	}
	return n, nil
}

// parseNonNegative parses a rate or percentage cell. An empty cell
// counts as zero; anything else must be a plain non-negative number.
func parseNonNegative(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotANumber
	}
	if v < 0 {
		return 0, errNegative
	}
	return v, nil
}

var (
	errNotAnInteger = &ValidationError{Reason: "must be a whole number"}
	errNotANumber   = &ValidationError{Reason: "must be a number"}
	errNegative     = &ValidationError{Reason: "must not be negative"}
)

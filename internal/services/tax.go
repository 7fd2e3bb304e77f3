package services

import (
	"strings"

	"quotation-service/internal/models"
)

// DetermineTaxRegime decides the intra-state vs inter-state tax
// treatment from the two GSTIN state-code prefixes.
//
// When the customer GSTIN shares the company's two-character state
// code the supply is intra-state: the standard rate is split evenly
// between CGST and SGST. In every other case, including a missing or
// malformed customer GSTIN, the supply is treated as inter-state and
// the full standard rate applies as IGST. This function never fails.
func DetermineTaxRegime(companyGSTIN, customerGSTIN string, standardRate float64) models.TaxRegime {
	companyState := gstinStateCode(companyGSTIN)
	customerState := gstinStateCode(customerGSTIN)

	if companyState != "" && customerState != "" && companyState == customerState {
		half := standardRate / 2
		return models.TaxRegime{CGSTPct: half, SGSTPct: half}
	}
	return models.TaxRegime{IGSTPct: standardRate}
}

// gstinStateCode extracts the two-character state code prefix of a
// GSTIN, or "" when the identifier is too short to carry one.
func gstinStateCode(gstin string) string {
	g := strings.TrimSpace(gstin)
	if len(g) < 2 {
		return ""
	}
	return g[:2]
}

package models

// CustomerInput identifies or describes the billed party of a
// quotation. When ID is set the existing customer is updated with the
// submitted details; otherwise a new customer is created alongside
// the quotation.
type CustomerInput struct {
	ID      *uint  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	GSTIN   string `json:"gstin"`
	State   string `json:"state"`
}

// LineItemInput is one raw row of the submitted item table. Numeric
// fields arrive as strings because the form may submit sparse or
// partially filled rows; parsing is explicit and fails closed on
// anything that is neither empty nor a plain number.
type LineItemInput struct {
	Description string `json:"description"`
	Qty         string `json:"qty"`
	Rate        string `json:"rate"`
	Unit        string `json:"unit"`
	GSTRate     string `json:"gstRate"`
}

// CreateQuotationRequest is the submission payload for a new
// quotation. AI-extracted data is resubmitted through this same shape
// and receives the same validation as manual input.
type CreateQuotationRequest struct {
	Customer      CustomerInput   `json:"customer" binding:"required"`
	Date          string          `json:"date" binding:"required"`
	PlaceOfSupply string          `json:"placeOfSupply"`
	Items         []LineItemInput `json:"items" binding:"required"`
}

// TaxRegime is the percentage split frozen onto a quotation. Exactly
// one of CGST+SGST or IGST is non-zero.
type TaxRegime struct {
	CGSTPct float64 `json:"cgstPct"`
	SGSTPct float64 `json:"sgstPct"`
	IGSTPct float64 `json:"igstPct"`
}

// LineItemResult is a validated, fully computed line item.
type LineItemResult struct {
	Description string  `json:"description"`
	Qty         int     `json:"qty"`
	Rate        float64 `json:"rate"`
	Unit        string  `json:"unit"`
	GSTRatePct  float64 `json:"gstRatePct"`
	BasicAmount float64 `json:"basicAmount"`
	GSTAmount   float64 `json:"gstAmount"`
	TotalAmount float64 `json:"totalAmount"`
}

// QuotationResponse is the view payload for a single quotation,
// including the printable amount line.
type QuotationResponse struct {
	Quotation     *Quotation `json:"quotation"`
	Company       *Company   `json:"company"`
	AmountInWords string     `json:"amountInWords"`
}

// ExtractedQuotation is the best-effort structured guess produced by
// the document extraction collaborator. Every field is untrusted and
// must pass through normal quotation validation before persistence.
type ExtractedQuotation struct {
	Customer      CustomerInput   `json:"customer"`
	Date          string          `json:"date"`
	PlaceOfSupply string          `json:"placeOfSupply"`
	Items         []LineItemInput `json:"items"`
}

package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"quotation-service/internal/models"
	"quotation-service/internal/repository"
)

// maxMintAttempts bounds quotation-number re-minting when the storage
// layer reports a uniqueness violation.
const maxMintAttempts = 3

// QuotationStore is the persistence surface Submit depends on.
// *repository.QuotationRepository satisfies it.
type QuotationStore interface {
	CreateQuotation(ctx context.Context, input models.CustomerInput, quotation *models.Quotation) error
}

// Engine is the single entry point invoked when a quotation is
// submitted. It composes tax determination, line item computation,
// and aggregation, producing a fully computed, internally consistent
// quotation or a precise validation failure.
type Engine struct {
	repo         QuotationStore
	logger       *logrus.Entry
	standardRate float64
}

// NewEngine creates a quotation engine. standardRate is the combined
// GST percentage applied before the intra/inter-state split.
func NewEngine(repo QuotationStore, logger *logrus.Logger, standardRate float64) *Engine {
	return &Engine{
		repo:         repo,
		logger:       logger.WithField("component", "services.engine"),
		standardRate: standardRate,
	}
}

// Compute validates and computes a quotation without touching
// storage. The company record is passed in by the caller; the engine
// never reaches into a global store for it.
func (e *Engine) Compute(company *models.Company, req models.CreateQuotationRequest) (*models.Quotation, error) {
	// The name is required even when an existing customer ID is
	// supplied: persistence updates the stored record with the
	// submitted details, and a stored customer must never end up
	// with a blank name.
	if strings.TrimSpace(req.Customer.Name) == "" {
		return nil, &ValidationError{Field: "customer.name", Reason: "required"}
	}

	items, err := ComputeLineItems(req.Items)
	if err != nil {
		return nil, err
	}

	regime := DetermineTaxRegime(company.GSTIN, req.Customer.GSTIN, e.standardRate)

	return BuildQuotation(req.Customer, req.Date, req.PlaceOfSupply, items, regime)
}

// Submit computes and atomically persists a quotation. A uniqueness
// violation on the quotation number is retried with a fresh mint; if
// the attempts are exhausted the caller receives a ConflictError and
// may resubmit.
func (e *Engine) Submit(ctx context.Context, company *models.Company, req models.CreateQuotationRequest) (*models.Quotation, error) {
	quotation, err := e.Compute(company, req)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxMintAttempts; attempt++ {
		if attempt > 0 {
			quotation.QuotationNumber = MintQuotationNumber(time.Now().Add(time.Duration(attempt) * time.Second))
		}

		err = e.repo.CreateQuotation(ctx, req.Customer, quotation)
		if err == nil {
			return quotation, nil
		}
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, &ValidationError{Field: "customer.id", Reason: "customer not found"}
		}
		if !repository.IsUniqueViolation(err, "quotation_number") {
			return nil, err
		}

		e.logger.WithFields(logrus.Fields{
			"quotation_number": quotation.QuotationNumber,
			"attempt":          attempt + 1,
		}).Warn("Quotation number collision, re-minting")
	}

	return nil, &ConflictError{Resource: "quotation_number", Err: err}
}

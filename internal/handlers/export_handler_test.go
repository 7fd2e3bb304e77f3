package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"quotation-service/internal/models"
)

type stubQuotationLister struct {
	quotations []models.Quotation
	err        error
}

func (s *stubQuotationLister) ListQuotations(ctx context.Context) ([]models.Quotation, error) {
	return s.quotations, s.err
}

// brokenWriter simulates a client that disconnects mid-download.
type brokenWriter struct {
	header http.Header
}

func (w *brokenWriter) Header() http.Header        { return w.header }
func (w *brokenWriter) Write([]byte) (int, error)  { return 0, errors.New("client went away") }
func (w *brokenWriter) WriteHeader(statusCode int) {}

func exportFixture() []models.Quotation {
	return []models.Quotation{
		{
			QuotationNumber: "QT-1743503400",
			Date:            time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			Customer:        models.Customer{Name: "Test Buyer", GSTIN: "34XXXXXXXXXXXXX"},
			PlaceOfSupply:   "Puducherry",
			TotalBasic:      200.00,
			TotalGST:        36.00,
			GrandTotal:      236.00,
			PercentageCGST:  9,
			PercentageSGST:  9,
		},
	}
}

func TestExportQuotations_StreamsWorkbook(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, hook := test.NewNullLogger()
	handler := NewExportHandler(&stubQuotationLister{quotations: exportFixture()}, logger)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/quotations/export", nil)

	handler.ExportQuotations(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if disposition := w.Header().Get("Content-Disposition"); !strings.Contains(disposition, "quotations_") {
		t.Fatalf("expected an attachment disposition, got %q", disposition)
	}
	if w.Body.Len() == 0 {
		t.Fatalf("expected a non-empty workbook body")
	}
	for _, entry := range hook.AllEntries() {
		if entry.Level <= logrus.WarnLevel {
			t.Fatalf("unexpected %s log on the happy path: %s", entry.Level, entry.Message)
		}
	}
}

func TestExportQuotations_LogsStreamFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, hook := test.NewNullLogger()
	handler := NewExportHandler(&stubQuotationLister{quotations: exportFixture()}, logger)

	c, _ := gin.CreateTestContext(&brokenWriter{header: http.Header{}})
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/quotations/export", nil)

	handler.ExportQuotations(c)

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatalf("expected a log entry for the failed stream")
	}
	if entry.Level != logrus.WarnLevel {
		t.Fatalf("expected a warning, got %s", entry.Level)
	}
	if !strings.Contains(entry.Message, "export") {
		t.Fatalf("expected the entry to mention the export, got %q", entry.Message)
	}
}

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"quotation-service/internal/models"
)

// quotationLister is the read surface the export needs.
type quotationLister interface {
	ListQuotations(ctx context.Context) ([]models.Quotation, error)
}

// ExportHandler produces the quotation register as a spreadsheet.
type ExportHandler struct {
	repo   quotationLister
	logger *logrus.Entry
}

// NewExportHandler creates a new export handler
func NewExportHandler(repo quotationLister, logger *logrus.Logger) *ExportHandler {
	return &ExportHandler{
		repo:   repo,
		logger: logger.WithField("component", "handlers.export"),
	}
}

// ExportQuotations handles GET /api/v1/quotations/export
func (h *ExportHandler) ExportQuotations(c *gin.Context) {
	quotations, err := h.repo.ListQuotations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list quotations",
			"message": err.Error(),
		})
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Quotations"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	headers := []string{
		"Quotation No", "Date", "Customer", "Customer GSTIN", "Place of Supply",
		"Basic Amount", "GST Amount", "Grand Total", "CGST %", "SGST %", "IGST %",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)

		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 18)
	}

	for i, q := range quotations {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), q.QuotationNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), q.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), q.Customer.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), q.Customer.GSTIN)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), q.PlaceOfSupply)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), q.TotalBasic)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), q.TotalGST)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), q.GrandTotal)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), q.PercentageCGST)
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), q.PercentageSGST)
		f.SetCellValue(sheetName, fmt.Sprintf("K%d", row), q.PercentageIGST)
	}

	filename := fmt.Sprintf("quotations_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+filename)

	// Headers are already sent; a failure here means a truncated
	// download, which must at least be diagnosable.
	if err := f.Write(c.Writer); err != nil {
		h.logger.WithError(err).Warn("Failed to stream quotation export")
	}
}

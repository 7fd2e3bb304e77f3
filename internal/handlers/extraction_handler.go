package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"quotation-service/internal/extraction"
)

// maxUploadBytes caps extraction uploads at 10 MB.
const maxUploadBytes = 10 << 20

// ExtractionHandler handles document upload and field extraction.
type ExtractionHandler struct {
	extractor *extraction.Extractor
	logger    *logrus.Entry
}

// NewExtractionHandler creates a new extraction handler. extractor
// may be nil when the feature is disabled.
func NewExtractionHandler(extractor *extraction.Extractor, logger *logrus.Logger) *ExtractionHandler {
	return &ExtractionHandler{
		extractor: extractor,
		logger:    logger.WithField("component", "handlers.extraction"),
	}
}

// ExtractQuotation handles POST /api/v1/quotations/extract
// The returned structure is a best-effort guess for the client to
// review; it is only persisted after resubmission through the normal
// quotation endpoint and its validation.
func (h *ExtractionHandler) ExtractQuotation(c *gin.Context) {
	if h.extractor == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Document extraction is not configured",
		})
		return
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing document upload",
			"message": err.Error(),
		})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": "Document exceeds the 10 MB upload limit",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to read upload",
			"message": err.Error(),
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to read upload",
			"message": err.Error(),
		})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	documentID := uuid.New()
	h.logger.WithFields(logrus.Fields{
		"document_id": documentID,
		"filename":    fileHeader.Filename,
		"size":        fileHeader.Size,
	}).Info("Extracting quotation fields from uploaded document")

	extracted, err := h.extractor.Extract(c.Request.Context(), data, mimeType)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Extraction failed",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"documentId": documentID,
		"extracted":  extracted,
		"note":       "Extracted values are a best-effort guess and must be reviewed before submission",
	})
}

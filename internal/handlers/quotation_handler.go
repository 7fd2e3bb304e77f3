package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"quotation-service/internal/events"
	"quotation-service/internal/models"
	"quotation-service/internal/repository"
	"quotation-service/internal/services"
)

// QuotationHandler handles quotation HTTP requests
type QuotationHandler struct {
	engine *services.Engine
	repo   *repository.QuotationRepository
	logger *logrus.Entry
}

// NewQuotationHandler creates a new quotation handler
func NewQuotationHandler(engine *services.Engine, repo *repository.QuotationRepository, logger *logrus.Logger) *QuotationHandler {
	return &QuotationHandler{
		engine: engine,
		repo:   repo,
		logger: logger.WithField("component", "handlers.quotation"),
	}
}

// CreateQuotation handles POST /api/v1/quotations
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var req models.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"message": err.Error(),
		})
		return
	}

	company, err := h.repo.GetCompany(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load company record",
			"message": err.Error(),
		})
		return
	}

	quotation, err := h.engine.Submit(c.Request.Context(), company, req)
	if err != nil {
		h.respondSubmitError(c, err)
		return
	}

	if pub := events.GetPublisher(); pub != nil {
		go func() {
			if err := pub.PublishQuotationCreated(quotation); err != nil {
				h.logger.WithError(err).Warn("Failed to publish quotation.created event")
			}
		}()
	}

	c.JSON(http.StatusCreated, quotation)
}

func (h *QuotationHandler) respondSubmitError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"field":   validationErr.Field,
			"message": validationErr.Reason,
		})
		return
	}

	var conflictErr *services.ConflictError
	if errors.As(err, &conflictErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Quotation number conflict, please retry",
			"message": conflictErr.Error(),
		})
		return
	}

	var computationErr *services.ComputationError
	if errors.As(err, &computationErr) {
		h.logger.WithError(err).Error("Quotation computation produced inconsistent totals")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal computation failure",
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Failed to create quotation",
		"message": err.Error(),
	})
}

// ListQuotations handles GET /api/v1/quotations
func (h *QuotationHandler) ListQuotations(c *gin.Context) {
	quotations, err := h.repo.ListQuotations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list quotations",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, quotations)
}

// GetQuotation handles GET /api/v1/quotations/:id
// The response carries the grand total spelled out in words with the
// fixed "Only" suffix, ready for the printable document.
func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quotation ID"})
		return
	}

	quotation, err := h.repo.GetQuotation(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quotation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load quotation",
			"message": err.Error(),
		})
		return
	}

	company, err := h.repo.GetCompany(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load company record",
			"message": err.Error(),
		})
		return
	}

	amountInWords := services.AmountInWords(int64(math.Round(quotation.GrandTotal))) + " Only"

	c.JSON(http.StatusOK, models.QuotationResponse{
		Quotation:     quotation,
		Company:       company,
		AmountInWords: amountInWords,
	})
}

// DeleteQuotation handles DELETE /api/v1/quotations/:id
func (h *QuotationHandler) DeleteQuotation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quotation ID"})
		return
	}

	quotation, err := h.repo.GetQuotation(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quotation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load quotation",
			"message": err.Error(),
		})
		return
	}

	if err := h.repo.DeleteQuotation(c.Request.Context(), uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to delete quotation",
			"message": err.Error(),
		})
		return
	}

	if pub := events.GetPublisher(); pub != nil {
		go func() {
			if err := pub.PublishQuotationDeleted(quotation.ID, quotation.QuotationNumber); err != nil {
				h.logger.WithError(err).Warn("Failed to publish quotation.deleted event")
			}
		}()
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quotation deleted successfully"})
}

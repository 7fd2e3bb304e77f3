package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"quotation-service/internal/repository"
)

// CompanyHandler handles company settings HTTP requests
type CompanyHandler struct {
	repo *repository.QuotationRepository
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(repo *repository.QuotationRepository) *CompanyHandler {
	return &CompanyHandler{repo: repo}
}

// GetCompany handles GET /api/v1/company
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.repo.GetCompany(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load company record",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, company)
}

// companySettingsRequest is the settings update payload.
type companySettingsRequest struct {
	Name         string `json:"name" binding:"required"`
	AddressLine1 string `json:"addressLine1" binding:"required"`
	State        string `json:"state" binding:"required"`
	GSTIN        string `json:"gstin" binding:"required"`
	Phone        string `json:"phone"`
}

// UpdateCompany handles PUT /api/v1/company
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	var req companySettingsRequest
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

	company.Name = strings.TrimSpace(req.Name)
	company.AddressLine1 = req.AddressLine1
	company.State = req.State
	company.GSTIN = strings.TrimSpace(req.GSTIN)
	company.Phone = req.Phone

	if err := h.repo.UpdateCompany(c.Request.Context(), company); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to update company record",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, company)
}

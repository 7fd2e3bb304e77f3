package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"quotation-service/internal/models"
	"quotation-service/internal/repository"
)

// defaultCustomerSearchLimit caps autocomplete result sets.
const defaultCustomerSearchLimit = 20

// CustomerHandler handles customer HTTP requests
type CustomerHandler struct {
	repo *repository.QuotationRepository
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(repo *repository.QuotationRepository) *CustomerHandler {
	return &CustomerHandler{repo: repo}
}

// ListCustomers handles GET /api/v1/customers?q=
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	limit := defaultCustomerSearchLimit
	if query != "" {
		limit = 10
	}

	customers, err := h.repo.ListCustomers(c.Request.Context(), query, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list customers",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomer handles GET /api/v1/customers/:id
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	customer, err := h.repo.GetCustomer(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load customer",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, customer)
}

// CreateCustomer handles POST /api/v1/customers
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var input models.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"message": err.Error(),
		})
		return
	}

	if strings.TrimSpace(input.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Validation failed",
			"field": "name",
		})
		return
	}

	customer := models.Customer{
		Name:    strings.TrimSpace(input.Name),
		Address: input.Address,
		GSTIN:   input.GSTIN,
		State:   input.State,
	}
	if err := h.repo.CreateCustomer(c.Request.Context(), &customer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create customer",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer handles PUT /api/v1/customers/:id
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	var input models.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"message": err.Error(),
		})
		return
	}

	customer, err := h.repo.GetCustomer(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load customer",
			"message": err.Error(),
		})
		return
	}

	customer.Name = strings.TrimSpace(input.Name)
	customer.Address = input.Address
	customer.GSTIN = input.GSTIN
	customer.State = input.State

	if err := h.repo.UpdateCustomer(c.Request.Context(), customer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to update customer",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /api/v1/customers/:id
// A customer referenced by quotations cannot be deleted.
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	if err := h.repo.DeleteCustomer(c.Request.Context(), uint(id)); err != nil {
		switch {
		case errors.Is(err, repository.ErrCustomerInUse):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Customer is referenced by quotations and cannot be deleted",
			})
		case errors.Is(err, repository.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to delete customer",
				"message": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

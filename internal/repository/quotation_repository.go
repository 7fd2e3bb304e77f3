package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"quotation-service/internal/models"
)

// Cache TTL constants for customer lookups
const (
	CustomerCacheTTL = 15 * time.Minute
	cacheKeyPrefix   = "quotation:customers:"
)

var (
	// ErrCustomerNotFound is returned when a submission references a
	// customer ID that does not exist.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrCustomerInUse is returned when deleting a customer that is
	// referenced by at least one quotation.
	ErrCustomerInUse = errors.New("customer is referenced by quotations")
)

// QuotationRepository handles company, customer, and quotation data
// operations.
type QuotationRepository struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewQuotationRepository creates a new repository with optional Redis
// caching for customer lookups.
func NewQuotationRepository(db *gorm.DB, redisClient *redis.Client) *QuotationRepository {
	return &QuotationRepository{
		db:    db,
		redis: redisClient,
	}
}

// IsUniqueViolation checks if the error is a unique constraint
// violation on the given column.
func IsUniqueViolation(err error, column string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	errStr := err.Error()
	// PostgreSQL unique violation error code 23505
	return (strings.Contains(errStr, "23505") || strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "unique constraint")) &&
		strings.Contains(errStr, column)
}

func customerCacheKey(id uint) string {
	return fmt.Sprintf("%scustomer:%d", cacheKeyPrefix, id)
}

func (r *QuotationRepository) invalidateCustomerCache(ctx context.Context, id uint) {
	if r.redis == nil {
		return
	}
	r.redis.Del(ctx, customerCacheKey(id))
}

// ==================== Company ====================

// GetCompany returns the singleton company record.
func (r *QuotationRepository) GetCompany(ctx context.Context) (*models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// UpdateCompany applies a settings update to the company record.
func (r *QuotationRepository) UpdateCompany(ctx context.Context, company *models.Company) error {
	company.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(company).Error
}

// ==================== Customers ====================

// ListCustomers lists customers ordered by name, optionally filtered
// by a case-insensitive name search.
func (r *QuotationRepository) ListCustomers(ctx context.Context, query string, limit int) ([]models.Customer, error) {
	var customers []models.Customer
	q := r.db.WithContext(ctx).Order("name")
	if query != "" {
		q = q.Where("name ILIKE ?", "%"+query+"%")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&customers).Error
	return customers, err
}

// GetCustomer retrieves a customer by ID (with caching).
func (r *QuotationRepository) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	// Try to get from cache first
	if r.redis != nil {
		val, err := r.redis.Get(ctx, customerCacheKey(id)).Result()
		if err == nil {
			var customer models.Customer
			if err := json.Unmarshal([]byte(val), &customer); err == nil {
				return &customer, nil
			}
		}
	}

	var customer models.Customer
	err := r.db.WithContext(ctx).First(&customer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}

	// Cache the result
	if r.redis != nil {
		if data, marshalErr := json.Marshal(customer); marshalErr == nil {
			r.redis.Set(ctx, customerCacheKey(id), data, CustomerCacheTTL)
		}
	}

	return &customer, nil
}

// CreateCustomer creates a new customer.
func (r *QuotationRepository) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// UpdateCustomer updates a customer.
func (r *QuotationRepository) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	customer.UpdatedAt = time.Now()
	err := r.db.WithContext(ctx).Save(customer).Error
	if err == nil {
		r.invalidateCustomerCache(ctx, customer.ID)
	}
	return err
}

// DeleteCustomer deletes a customer. Deletion is refused while any
// quotation references the customer.
func (r *QuotationRepository) DeleteCustomer(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Quotation{}).Where("customer_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrCustomerInUse
		}

		result := tx.Delete(&models.Customer{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCustomerNotFound
		}
		return nil
	})
	if err == nil {
		r.invalidateCustomerCache(ctx, id)
	}
	return err
}

// ==================== Quotations ====================

// CreateQuotation persists a computed quotation together with its
// items and the customer it references, all in one transaction. When
// the input carries a customer ID the existing record is updated with
// the submitted details; otherwise a new customer is created. Either
// the full aggregate is written or nothing is.
func (r *QuotationRepository) CreateQuotation(ctx context.Context, input models.CustomerInput, quotation *models.Quotation) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if input.ID != nil {
			if err := tx.First(&customer, *input.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrCustomerNotFound
				}
				return err
			}
			customer.Name = input.Name
			customer.Address = input.Address
			customer.GSTIN = input.GSTIN
			customer.State = input.State
			if err := tx.Save(&customer).Error; err != nil {
				return err
			}
		} else {
			customer = models.Customer{
				Name:    input.Name,
				Address: input.Address,
				GSTIN:   input.GSTIN,
				State:   input.State,
			}
			if err := tx.Create(&customer).Error; err != nil {
				return err
			}
		}

		quotation.CustomerID = customer.ID
		// Creating the quotation also creates its items through the
		// association, inside the same transaction.
		if err := tx.Create(quotation).Error; err != nil {
			return err
		}

		quotation.Customer = customer
		return nil
	})
	if err == nil && input.ID != nil {
		r.invalidateCustomerCache(ctx, *input.ID)
	}
	return err
}

// ListQuotations lists quotations newest first with their customers.
func (r *QuotationRepository) ListQuotations(ctx context.Context) ([]models.Quotation, error) {
	var quotations []models.Quotation
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Order("date DESC, id DESC").
		Find(&quotations).Error
	return quotations, err
}

// GetQuotation retrieves a quotation with its customer and items.
func (r *QuotationRepository) GetQuotation(ctx context.Context, id uint) (*models.Quotation, error) {
	var quotation models.Quotation
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items").
		First(&quotation, id).Error
	if err != nil {
		return nil, err
	}
	return &quotation, nil
}

// DeleteQuotation deletes a quotation and its items as a whole.
func (r *QuotationRepository) DeleteQuotation(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quotation_id = ?", id).Delete(&models.QuotationItem{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Quotation{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

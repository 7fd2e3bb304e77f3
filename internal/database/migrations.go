package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"quotation-service/internal/models"
)

// RunMigrations runs all pending database migrations and seeds the
// singleton company record.
func RunMigrations(db *gorm.DB) error {
	log.Println("Starting database migrations...")

	modelsToMigrate := []struct {
		name  string
		model interface{}
	}{
		{"Company", &models.Company{}},
		{"Customer", &models.Customer{}},
		{"Quotation", &models.Quotation{}},
		{"QuotationItem", &models.QuotationItem{}},
	}
	for _, m := range modelsToMigrate {
		log.Printf("  → Migrating %s...", m.name)
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("failed to auto-migrate %s: %w", m.name, err)
		}
	}
	log.Println("  ✓ Schema migrations complete")

	if err := seedCompany(db); err != nil {
		return fmt.Errorf("failed to seed company record: %w", err)
	}

	log.Println("✓ All database migrations complete")
	return nil
}

// seedCompany ensures exactly one company record exists. The
// placeholder is replaced through the settings endpoint.
func seedCompany(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Company{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("  → No company record found, seeding placeholder...")
	company := models.Company{
		Name:         "SRI VASAVI AGENCIES",
		AddressLine1: "No.54, West Car Street, Villianur, Puducherry-605 110.",
		State:        "Puducherry",
		GSTIN:        "34AGLPV5711E1ZC",
		Phone:        "99436 77409",
	}
	return db.Create(&company).Error
}

package models

import (
	"time"
)

// Company is the issuing business. Exactly one row exists for the
// lifetime of the system; it is seeded at first startup and mutated
// only through the settings endpoint. The first two characters of its
// GSTIN are the reference state code for tax regime determination.
type Company struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"type:varchar(100);not null"`
	AddressLine1 string    `json:"addressLine1" gorm:"type:varchar(200);not null"`
	State        string    `json:"state" gorm:"type:varchar(50);not null"`
	GSTIN        string    `json:"gstin" gorm:"type:varchar(20);not null"`
	Phone        string    `json:"phone" gorm:"type:varchar(20)"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Customer is a billed party. A customer referenced by at least one
// quotation cannot be deleted.
type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	Address   string    `json:"address" gorm:"type:varchar(255)"`
	GSTIN     string    `json:"gstin" gorm:"type:varchar(20)"`
	State     string    `json:"state" gorm:"type:varchar(50)"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relationships
	Quotations []Quotation `json:"quotations,omitempty" gorm:"foreignKey:CustomerID"`
}

// Quotation is the document aggregate. Totals and the three tax
// percentages are frozen at creation time; later changes to the
// configured standard rate never alter a stored quotation. Created
// atomically with its items, deleted as a whole.
type Quotation struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	QuotationNumber string    `json:"quotationNumber" gorm:"type:varchar(20);uniqueIndex;not null"`
	Date            time.Time `json:"date" gorm:"type:date;not null"`
	CustomerID      uint      `json:"customerId" gorm:"not null;index"`
	PlaceOfSupply   string    `json:"placeOfSupply" gorm:"type:varchar(100)"`

	// Financial snapshots
	TotalBasic     float64 `json:"totalBasic" gorm:"type:decimal(12,2);default:0"`
	TotalGST       float64 `json:"totalGst" gorm:"type:decimal(12,2);default:0"`
	GrandTotal     float64 `json:"grandTotal" gorm:"type:decimal(12,2);default:0"`
	PercentageCGST float64 `json:"percentageCgst" gorm:"type:decimal(5,2);default:0"`
	PercentageSGST float64 `json:"percentageSgst" gorm:"type:decimal(5,2);default:0"`
	PercentageIGST float64 `json:"percentageIgst" gorm:"type:decimal(5,2);default:0"`

	CreatedAt time.Time `json:"createdAt"`

	// Relationships
	Customer Customer        `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Items    []QuotationItem `json:"items,omitempty" gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE"`
}

// QuotationItem is one billable line, owned exclusively by its parent
// quotation. The three amount fields are derived: basic = qty * rate,
// gst = basic * gst_rate / 100, total = basic + gst, each rounded to
// two decimals.
type QuotationItem struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	QuotationID uint    `json:"quotationId" gorm:"not null;index"`
	Description string  `json:"description" gorm:"type:varchar(255);not null"`
	Qty         int     `json:"qty" gorm:"not null"`
	Rate        float64 `json:"rate" gorm:"type:decimal(12,2);not null"`
	Unit        string  `json:"unit" gorm:"type:varchar(10);default:'NOS'"`
	GSTRate     float64 `json:"gstRate" gorm:"type:decimal(5,2);default:18"`

	BasicAmount float64 `json:"basicAmount" gorm:"type:decimal(12,2);not null"`
	GSTAmount   float64 `json:"gstAmount" gorm:"type:decimal(12,2);not null"`
	TotalAmount float64 `json:"totalAmount" gorm:"type:decimal(12,2);not null"`
}

package model

import (
	"time"

	"gorm.io/gorm"
)

// Product represents the product master data
type Product struct {
	ProductID       uint           `json:"product_id" gorm:"primarykey"`
	Name            string         `json:"name" gorm:"type:varchar(255);not null"`
	Description     string         `json:"description" gorm:"type:text"`
	Barcode         string         `json:"barcode" gorm:"type:varchar(100);unique;not null"`
	CategoryID      uint           `json:"category_id" gorm:"index"`
	UnitPrice       float64        `json:"unit_price" gorm:"not null"`
	CostPrice       float64        `json:"cost_price"`
	QuantityInStock int            `json:"quantity_in_stock" gorm:"default:0"`
	ReorderLevel    int            `json:"reorder_level" gorm:"default:0"`
	SupplierID      uint           `json:"supplier_id" gorm:"index"`
	DateOfEntry     *time.Time     `json:"date_of_entry,omitempty"`
	Size            string         `json:"size" gorm:"type:varchar(50)"`
	Color           string         `json:"color" gorm:"type:varchar(50)"`
	Material        string         `json:"material" gorm:"type:varchar(100)"`
	StyleDesign     string         `json:"style_design" gorm:"type:varchar(100)"`
	ProductImage    string         `json:"product_image" gorm:"type:text"`
	Dimensions      string         `json:"dimensions" gorm:"type:varchar(100)"`
	Weight          float64        `json:"weight"`
	Brand           string         `json:"brand" gorm:"type:varchar(100)"`
	Season          string         `json:"season" gorm:"type:varchar(50)"`
	ExpirationDate  *time.Time     `json:"expiration_date,omitempty"`
	Status          string         `json:"status" gorm:"type:varchar(50);default:'active'"`
	Location        string         `json:"location" gorm:"type:varchar(100)"`
	Discount        float64        `json:"discount" gorm:"default:0"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// ProductCategory represents product categories
type ProductCategory struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Name      string         `json:"name" gorm:"type:varchar(100);not null;unique"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

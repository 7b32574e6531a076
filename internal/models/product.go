package models

// Product — the products table.
type Product struct {
	Base
	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Stock       int     `gorm:"not null;default:0" json:"stock"`
	Image       string  `gorm:"not null" json:"image"` // relative path, e.g. "uploads/abc123.jpg"
}

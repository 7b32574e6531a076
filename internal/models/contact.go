package models

// ContactMessage — the contact_messages table. Append-only: rows are
// written on submit and never updated or deleted by the API.
type ContactMessage struct {
	Base
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Phone   string `gorm:"not null" json:"phone"`
	Message string `gorm:"type:text;not null" json:"message"`
}

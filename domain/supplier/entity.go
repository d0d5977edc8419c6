package supplier

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Supplier represents a supplier entity in the system.
type Supplier struct {
	ID            string    `gorm:"primaryKey;type:text" json:"id"`
	Name          string    `gorm:"not null;type:text" json:"name"`
	Email         string    `gorm:"not null;type:text" json:"email"`
	Country       string    `gorm:"not null;type:text" json:"country"`
	ContactPerson string    `gorm:"not null;type:text" json:"contact_person"`
	Phone         string    `gorm:"not null;type:text" json:"phone"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName returns the table name for the Supplier entity.
func (Supplier) TableName() string {
	return "suppliers"
}

// ValidationError reports a field that failed validation during construction.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "supplier validation failed: " + e.Field + " " + e.Reason
}

// New constructs a Supplier, validating that every attribute is non-empty.
// Validation is done at construction so an invalid supplier can never
// reach the repository.
func New(name, email, country, contactPerson, phone string) (*Supplier, error) {
	fields := []struct {
		name  string
		value string
	}{
		{"name", name},
		{"email", email},
		{"country", country},
		{"contact_person", contactPerson},
		{"phone", phone},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return nil, &ValidationError{Field: f.name, Reason: "is required"}
		}
	}

	now := time.Now()
	return &Supplier{
		ID:            uuid.New().String(),
		Name:          strings.TrimSpace(name),
		Email:         strings.TrimSpace(email),
		Country:       strings.TrimSpace(country),
		ContactPerson: strings.TrimSpace(contactPerson),
		Phone:         strings.TrimSpace(phone),
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

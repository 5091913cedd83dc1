package domain

import (
	"strings"

	"github.com/Apurer/shop-backoffice/internal/shared/apperr"
	"github.com/Apurer/shop-backoffice/internal/shared/projection"
)

// Customer is a buyer that orders reference by identifier.
type Customer struct {
	ID       int64
	Name     string
	Email    string
	Phone    string
	Address  string
	Province string
	City     string
	Type     string
	Notes    string
	ImageURL string
	Metadata projection.Metadata
}

func (c *Customer) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
	c.Province = strings.TrimSpace(c.Province)
	c.City = strings.TrimSpace(c.City)
	c.Type = strings.TrimSpace(c.Type)
	c.Notes = strings.TrimSpace(c.Notes)
	c.ImageURL = strings.TrimSpace(c.ImageURL)
}

// Validate reports every missing required field; an email without "@" counts as missing.
func (c *Customer) Validate() error {
	var fields []string
	if strings.TrimSpace(c.Name) == "" {
		fields = append(fields, "name")
	}
	if !strings.Contains(c.Email, "@") {
		fields = append(fields, "email")
	}
	if strings.TrimSpace(c.Phone) == "" {
		fields = append(fields, "phone")
	}
	if strings.TrimSpace(c.Province) == "" {
		fields = append(fields, "province")
	}
	if strings.TrimSpace(c.City) == "" {
		fields = append(fields, "city")
	}
	return apperr.NewValidation("customer", fields...)
}

func (c *Customer) Clone() *Customer {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

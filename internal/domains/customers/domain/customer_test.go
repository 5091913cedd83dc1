package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/shop-backoffice/internal/shared/apperr"
)

func TestCustomerValidate(t *testing.T) {
	tests := []struct {
		name     string
		customer Customer
		fields   []string
	}{
		{
			name:     "complete",
			customer: Customer{Name: "Aini", Email: "aini@example.com", Phone: "0812", Province: "Jawa Barat", City: "Bandung"},
		},
		{
			name:     "empty",
			customer: Customer{},
			fields:   []string{"name", "email", "phone", "province", "city"},
		},
		{
			name:     "malformed email",
			customer: Customer{Name: "Aini", Email: "aini.example.com", Phone: "0812", Province: "Jawa Barat", City: "Bandung"},
			fields:   []string{"email"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.customer.Validate()
			if tt.fields == nil {
				require.NoError(t, err)
				return
			}
			var validation *apperr.ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, "customer", validation.Entity)
			assert.Equal(t, tt.fields, validation.Fields)
		})
	}
}

package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/shop-backoffice/internal/shared/apperr"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
	}{
		{"Pending", StatusPending},
		{"processing", StatusProcessing},
		{" COMPLETED ", StatusCompleted},
		{"Cancelled", StatusCancelled},
		{"Canceled", StatusCancelled},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseStatus("shipped")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = ParseStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestNormalizeQuantity(t *testing.T) {
	assert.Equal(t, 1, NormalizeQuantity(0))
	assert.Equal(t, 1, NormalizeQuantity(-4))
	assert.Equal(t, 3, NormalizeQuantity(3))
}

func TestLinePrice_IsExact(t *testing.T) {
	price := LinePrice(decimal.RequireFromString("0.1"), 3)
	assert.True(t, decimal.RequireFromString("0.3").Equal(price))
	assert.True(t, decimal.NewFromInt(300000).Equal(LinePrice(decimal.NewFromInt(150000), 2)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2024-03-09T17:45:00+07:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", FormatDate(d))

	for _, raw := range []string{"", "yesterday", "2024-13-01"} {
		_, err := ParseDate(raw)
		assert.ErrorIs(t, err, ErrInvalidDate, raw)
	}
}

func TestOrderValidate(t *testing.T) {
	order := &Order{}
	var validation *apperr.ValidationError
	require.ErrorAs(t, order.Validate(), &validation)
	assert.Equal(t, []string{"customerId", "productId", "qty", "date", "status"}, validation.Fields)

	valid := &Order{CustomerID: 1, ProductID: 7, Quantity: 2, Price: decimal.NewFromInt(300000),
		Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Status: StatusPending}
	require.NoError(t, valid.Validate())
}

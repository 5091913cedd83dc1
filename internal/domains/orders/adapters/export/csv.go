// Package export serializes order views for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Apurer/shop-backoffice/internal/domains/orders/application/types"
	"github.com/Apurer/shop-backoffice/internal/domains/orders/domain"
)

// Header is the fixed column order of the CSV export.
var Header = []string{"Order ID", "Customer", "Product", "Qty", "Price", "Date", "Status"}

// ContentType for HTTP downloads of the export.
const ContentType = "text/csv; charset=utf-8"

// Filename suggested to clients.
const Filename = "orders.csv"

// WriteCSV writes one row per view in the order given. Fields containing
// commas, quotes or newlines are quoted.
func WriteCSV(w io.Writer, views []*types.OrderView) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, view := range views {
		if err := cw.Write(Row(view)); err != nil {
			return fmt.Errorf("write csv row %d: %w", view.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Row renders a single view in Header order.
func Row(view *types.OrderView) []string {
	return []string{
		strconv.FormatInt(view.ID, 10),
		view.CustomerName,
		view.ProductName,
		strconv.Itoa(view.Quantity),
		view.Price.String(),
		domain.FormatDate(view.Date),
		string(view.Status),
	}
}

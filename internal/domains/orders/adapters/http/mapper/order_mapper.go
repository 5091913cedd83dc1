package mapper

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	ordertypes "github.com/Apurer/shop-backoffice/internal/domains/orders/application/types"
	orderdomain "github.com/Apurer/shop-backoffice/internal/domains/orders/domain"
)

// FlexInt decodes a JSON number or a numeric string. Anything else, including
// null, booleans and empty strings, decodes to zero so that defaulting rules apply.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*f = FlexInt(parseLenient(raw))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(parseLenient(n.String()))
	return nil
}

func parseLenient(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if d, err := decimal.NewFromString(raw); err == nil {
		d = d.Truncate(0)
		if d.GreaterThan(maxInt64) || d.LessThan(minInt64) {
			return 0
		}
		return d.IntPart()
	}
	return 0
}

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

// OrderRequest is the create/update body. Price is never read from clients.
type OrderRequest struct {
	CustomerID FlexInt `json:"customerId"`
	ProductID  FlexInt `json:"productId"`
	Qty        FlexInt `json:"qty"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
}

// StatusRequest is the inline status change body.
type StatusRequest struct {
	Status string `json:"status"`
}

// Order is the view record returned to clients.
type Order struct {
	ID           int64           `json:"id"`
	CustomerID   int64           `json:"customerId"`
	CustomerName string          `json:"customerName"`
	ProductID    int64           `json:"productId"`
	ProductName  string          `json:"productName"`
	Qty          int             `json:"qty"`
	Price        decimal.Decimal `json:"price"`
	Date         string          `json:"date"`
	Status       string          `json:"status"`
}

func ToOrderInput(req OrderRequest) ordertypes.OrderInput {
	return ordertypes.OrderInput{
		CustomerID: int64(req.CustomerID),
		ProductID:  int64(req.ProductID),
		Quantity:   int(req.Qty),
		Date:       req.Date,
		Status:     req.Status,
	}
}

func FromOrderView(view *ordertypes.OrderView) Order {
	if view == nil {
		return Order{}
	}
	return Order{
		ID:           view.ID,
		CustomerID:   view.CustomerID,
		CustomerName: view.CustomerName,
		ProductID:    view.ProductID,
		ProductName:  view.ProductName,
		Qty:          view.Quantity,
		Price:        view.Price,
		Date:         orderdomain.FormatDate(view.Date),
		Status:       string(view.Status),
	}
}

func FromOrderViews(views []*ordertypes.OrderView) []Order {
	out := make([]Order, 0, len(views))
	for _, view := range views {
		out = append(out, FromOrderView(view))
	}
	return out
}

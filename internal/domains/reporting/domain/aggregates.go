// Package domain holds the dashboard aggregates. Every function is pure and
// recomputed from its inputs on each call; nothing here is persisted.
package domain

import (
	"sort"
	"strings"

	ordertypes "github.com/Apurer/shop-backoffice/internal/domains/orders/application/types"
)

// DefaultRecentLimit is the dashboard feed size when the caller gives none.
const DefaultRecentLimit = 5

// UncategorizedLabel buckets products with a blank category.
const UncategorizedLabel = "Uncategorized"

// Counts is the headline tile set of the dashboard.
type Counts struct {
	Products  int
	Customers int
	Orders    int
}

// MonthlyHistogram counts orders per calendar month, January at index 0.
type MonthlyHistogram [12]int

// OrdersByMonth buckets views by the month of their order date, ignoring the year.
func OrdersByMonth(views []*ordertypes.OrderView) MonthlyHistogram {
	var histogram MonthlyHistogram
	for _, view := range views {
		if view == nil || view.Date.IsZero() {
			continue
		}
		histogram[int(view.Date.Month())-1]++
	}
	return histogram
}

// CategoryDistribution counts products per category label.
func CategoryDistribution(categories []string) map[string]int {
	distribution := make(map[string]int, len(categories))
	for _, category := range categories {
		label := strings.TrimSpace(category)
		if label == "" {
			label = UncategorizedLabel
		}
		distribution[label]++
	}
	return distribution
}

// RecentOrders keeps the limit highest ids, most recent first. Recency is
// insertion order, not order date. A limit <= 0 uses DefaultRecentLimit.
func RecentOrders(views []*ordertypes.OrderView, limit int) []*ordertypes.OrderView {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	sorted := make([]*ordertypes.OrderView, 0, len(views))
	for _, view := range views {
		if view != nil {
			sorted = append(sorted, view)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID > sorted[j].ID })
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

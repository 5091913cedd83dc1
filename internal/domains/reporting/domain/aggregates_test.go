package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	ordertypes "github.com/Apurer/shop-backoffice/internal/domains/orders/application/types"
)

func viewOn(id int64, month time.Month) *ordertypes.OrderView {
	return &ordertypes.OrderView{ID: id, Date: time.Date(2024, month, 10, 0, 0, 0, 0, time.UTC)}
}

func TestOrdersByMonth_EmptyIsTwelveZeros(t *testing.T) {
	assert.Equal(t, MonthlyHistogram{}, OrdersByMonth(nil))
	assert.Len(t, OrdersByMonth(nil), 12)
}

func TestOrdersByMonth_MarchLandsAtIndexTwo(t *testing.T) {
	histogram := OrdersByMonth([]*ordertypes.OrderView{viewOn(1, time.March)})
	assert.Equal(t, MonthlyHistogram{0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0}, histogram)
}

func TestOrdersByMonth_IgnoresYear(t *testing.T) {
	views := []*ordertypes.OrderView{
		viewOn(1, time.December),
		{ID: 2, Date: time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)},
		viewOn(3, time.January),
	}
	histogram := OrdersByMonth(views)
	assert.Equal(t, 2, histogram[11])
	assert.Equal(t, 1, histogram[0])
}

func TestCategoryDistribution(t *testing.T) {
	distribution := CategoryDistribution([]string{"Cakes", "Bread", "Cakes", " "})
	assert.Equal(t, map[string]int{"Cakes": 2, "Bread": 1, UncategorizedLabel: 1}, distribution)
}

func TestRecentOrders_MostRecentFirstByID(t *testing.T) {
	views := []*ordertypes.OrderView{viewOn(1, 1), viewOn(2, 1), viewOn(3, 1), viewOn(4, 1), viewOn(5, 1), viewOn(6, 1)}

	recent := RecentOrders(views, 0)
	ids := make([]int64, 0, len(recent))
	for _, v := range recent {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []int64{6, 5, 4, 3, 2}, ids)
	assert.Len(t, RecentOrders(views, 2), 2)
	assert.Len(t, RecentOrders(views[:1], 10), 1)
}

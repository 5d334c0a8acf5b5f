package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/example/mely/internal/models"
)

func orderAt(created time.Time, amount string, status models.OrderStatus) models.Order {
	o := models.Order{Status: status, TotalAmount: decimal.RequireFromString(amount)}
	o.CreatedAt = created
	return o
}

func day(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestAggregateDeliveredRevenue_SumsSameDayAndSkipsPending(t *testing.T) {
	orders := []models.Order{
		orderAt(day(2024, 1, 5, 9), "20", models.OrderStatusDelivered),
		orderAt(day(2024, 1, 5, 18), "30", models.OrderStatusDelivered),
		orderAt(day(2024, 1, 6, 10), "10", models.OrderStatusPending),
	}

	points, err := AggregateDeliveredRevenue(orders, 3, day(2024, 2, 1, 0))
	require.NoError(t, err)

	require.Len(t, points, 1)
	assert.Equal(t, "Jan 5", points[0].Date)
	assert.True(t, points[0].Amount.Equal(decimal.NewFromInt(50)))
}

func TestAggregateDeliveredRevenue_Chronological(t *testing.T) {
	orders := []models.Order{
		orderAt(day(2024, 3, 2, 0), "5", models.OrderStatusDelivered),
		orderAt(day(2024, 1, 20, 0), "7.5", models.OrderStatusDelivered),
		orderAt(day(2024, 3, 2, 12), "1.25", models.OrderStatusDelivered),
		orderAt(day(2024, 2, 14, 0), "3", models.OrderStatusShipped),
	}

	points, err := AggregateDeliveredRevenue(orders, 6, day(2024, 3, 10, 0))
	require.NoError(t, err)

	require.Len(t, points, 2)
	assert.Equal(t, "Jan 20", points[0].Date)
	assert.Equal(t, "Mar 2", points[1].Date)
	assert.Equal(t, "6.25", points[1].Amount.String())
}

func TestAggregateDeliveredRevenue_Window(t *testing.T) {
	now := day(2024, 6, 1, 0)
	// 3 x 30 days before June 1 is March 3.
	orders := []models.Order{
		orderAt(day(2024, 3, 2, 23), "100", models.OrderStatusDelivered),
		orderAt(day(2024, 3, 3, 0), "40", models.OrderStatusDelivered),
	}

	points, err := AggregateDeliveredRevenue(orders, 3, now)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "Mar 3", points[0].Date)

	points, err = AggregateDeliveredRevenue(orders, 6, now)
	require.NoError(t, err)
	assert.Len(t, points, 2)
}

func TestAggregateDeliveredRevenue_DayFollowsNowLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	orders := []models.Order{
		orderAt(day(2024, 1, 5, 20), "10", models.OrderStatusDelivered),
	}

	points, err := AggregateDeliveredRevenue(orders, 3, time.Date(2024, 2, 1, 0, 0, 0, 0, loc))
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "Jan 6", points[0].Date)
}

func TestAggregateDeliveredRevenue_PureAndRestartable(t *testing.T) {
	orders := []models.Order{
		orderAt(day(2024, 1, 5, 9), "20", models.OrderStatusDelivered),
		orderAt(day(2024, 1, 7, 9), "2", models.OrderStatusDelivered),
	}
	now := day(2024, 2, 1, 0)

	first, err := AggregateDeliveredRevenue(orders, 12, now)
	require.NoError(t, err)
	second, err := AggregateDeliveredRevenue(orders, 12, now)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAggregateDeliveredRevenue_InvalidWindow(t *testing.T) {
	for _, months := range []int{0, 1, 4, 24, -3} {
		_, err := AggregateDeliveredRevenue(nil, months, time.Now())
		assert.ErrorIs(t, err, ErrInvalidWindow, "months=%d", months)
	}
}

func TestCountPending(t *testing.T) {
	orders := []models.Order{
		{Status: models.OrderStatusPending},
		{Status: models.OrderStatusShipped},
		{Status: models.OrderStatusPending},
		{Status: models.OrderStatusDelivered},
	}
	assert.Equal(t, 2, CountPending(orders))
	assert.Equal(t, 0, CountPending(nil))
}

func TestFinanceService_Sales(t *testing.T) {
	orders := new(mockOrderRepo)
	svc := NewFinanceService(orders)
	now := day(2024, 2, 1, 12)
	svc.now = func() time.Time { return now }

	since := now.Add(-90 * 24 * time.Hour)
	orders.On("ListDeliveredSince", mock.Anything, since).Return([]models.Order{
		orderAt(day(2024, 1, 5, 9), "20", models.OrderStatusDelivered),
		orderAt(day(2024, 1, 6, 9), "19.99", models.OrderStatusDelivered),
	}, nil)

	summary, err := svc.Sales(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.WindowMonths)
	assert.Equal(t, since, summary.Since)
	assert.Equal(t, "39.99", summary.Total.String())
	assert.Len(t, summary.Points, 2)
	orders.AssertExpectations(t)
}

func TestFinanceService_SalesErrors(t *testing.T) {
	orders := new(mockOrderRepo)
	svc := NewFinanceService(orders)

	_, err := svc.Sales(context.Background(), 5)
	assert.ErrorIs(t, err, ErrInvalidWindow)
	orders.AssertNotCalled(t, "ListDeliveredSince", mock.Anything, mock.Anything)

	orders.On("ListDeliveredSince", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
	_, err = svc.Sales(context.Background(), 12)
	assert.ErrorContains(t, err, "db down")
}

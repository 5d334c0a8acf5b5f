package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/mely/internal/models"
	"github.com/example/mely/internal/repository"
)

// windowMonth is the fixed month length used for trailing windows.
const windowMonth = 30 * 24 * time.Hour

// SalesDataPoint is the revenue of delivered orders on one calendar day.
type SalesDataPoint struct {
	Date   string          `json:"date"`
	Day    time.Time       `json:"day"`
	Amount decimal.Decimal `json:"amount"`
}

// SalesSummary is what the finance view shows for one trailing window.
type SalesSummary struct {
	WindowMonths int              `json:"window_months"`
	Since        time.Time        `json:"since"`
	Total        decimal.Decimal  `json:"total"`
	Points       []SalesDataPoint `json:"points"`
}

// ValidWindow reports whether months is one of the offered trailing windows.
func ValidWindow(months int) bool {
	return months == 3 || months == 6 || months == 12
}

// WindowStart returns now minus months × 30 days.
func WindowStart(now time.Time, months int) time.Time {
	return now.Add(-time.Duration(months) * windowMonth)
}

// AggregateDeliveredRevenue sums delivered orders created inside the window by
// calendar day in now's location. Points are ordered by day.
func AggregateDeliveredRevenue(orders []models.Order, windowMonths int, now time.Time) ([]SalesDataPoint, error) {
	if !ValidWindow(windowMonths) {
		return nil, ErrInvalidWindow
	}

	cutoff := WindowStart(now, windowMonths)
	loc := now.Location()

	points := make([]SalesDataPoint, 0)
	index := make(map[string]int)
	for _, o := range orders {
		if o.Status != models.OrderStatusDelivered || o.CreatedAt.Before(cutoff) {
			continue
		}

		local := o.CreatedAt.In(loc)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		key := day.Format("2006-01-02")

		if i, ok := index[key]; ok {
			points[i].Amount = points[i].Amount.Add(o.TotalAmount)
			continue
		}
		index[key] = len(points)
		points = append(points, SalesDataPoint{
			Date:   day.Format("Jan 2"),
			Day:    day,
			Amount: o.TotalAmount,
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Day.Before(points[j].Day)
	})
	return points, nil
}

// CountPending returns how many orders are still pending.
func CountPending(orders []models.Order) int {
	n := 0
	for _, o := range orders {
		if o.Status == models.OrderStatusPending {
			n++
		}
	}
	return n
}

// FinanceService backs the admin finance view.
type FinanceService struct {
	orders repository.OrderRepository
	now    func() time.Time
}

// NewFinanceService constructs FinanceService.
func NewFinanceService(orders repository.OrderRepository) *FinanceService {
	return &FinanceService{orders: orders, now: time.Now}
}

// Sales returns delivered revenue for the trailing window.
func (s *FinanceService) Sales(ctx context.Context, months int) (*SalesSummary, error) {
	if !ValidWindow(months) {
		return nil, ErrInvalidWindow
	}

	now := s.now()
	since := WindowStart(now, months)

	orders, err := s.orders.ListDeliveredSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("load delivered orders: %w", err)
	}

	points, err := AggregateDeliveredRevenue(orders, months, now)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, p := range points {
		total = total.Add(p.Amount)
	}

	return &SalesSummary{
		WindowMonths: months,
		Since:        since,
		Total:        total,
		Points:       points,
	}, nil
}

package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"seacoff/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// dashboardRepository implements the DashboardRepository interface using
// PostgreSQL. All queries are read-only aggregates over orders and
// order_items; canceled orders are excluded from revenue figures.
type dashboardRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewDashboardRepository creates a new PostgreSQL-backed dashboard repository.
func NewDashboardRepository(pool *pgxpool.Pool, logger zerolog.Logger) DashboardRepository {
	return &dashboardRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "dashboard").Logger(),
	}
}

// dateFilter appends optional created_at bounds to a query.
func dateFilter(r model.DateRange, args []any, column string) (string, []any) {
	var b strings.Builder
	if r.Start != nil {
		args = append(args, *r.Start)
		fmt.Fprintf(&b, " AND %s >= $%d", column, len(args))
	}
	if r.End != nil {
		args = append(args, *r.End)
		fmt.Fprintf(&b, " AND %s <= $%d", column, len(args))
	}
	return b.String(), args
}

// SalesPerDay aggregates sales totals per calendar day.
func (r *dashboardRepository) SalesPerDay(ctx context.Context, rng model.DateRange, limit int) ([]model.DailySales, error) {
	args := []any{}
	filter, args := dateFilter(rng, args, "created_at")
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT DATE(created_at) AS day,
		       COALESCE(SUM(total_amount), 0) AS total_sales,
		       COUNT(*) AS total_orders,
		       COALESCE(AVG(total_amount), 0) AS avg_order_value
		FROM orders
		WHERE status != 'canceled'%s
		GROUP BY DATE(created_at)
		ORDER BY day DESC
		LIMIT $%d
	`, filter, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query sales per day")
		return nil, fmt.Errorf("failed to query sales per day: %w", err)
	}
	defer rows.Close()

	var result []model.DailySales
	for rows.Next() {
		var d model.DailySales
		if err := rows.Scan(&d.Date, &d.TotalSales, &d.TotalOrders, &d.AvgOrder); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan daily sales row")
			return nil, fmt.Errorf("failed to scan daily sales: %w", err)
		}
		result = append(result, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily sales: %w", err)
	}

	return result, nil
}

// BestSellers ranks products by quantity sold.
func (r *dashboardRepository) BestSellers(ctx context.Context, rng model.DateRange, limit int) ([]model.BestSeller, error) {
	args := []any{}
	filter, args := dateFilter(rng, args, "o.created_at")
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT oi.product_name,
		       SUM(oi.quantity) AS total_sold,
		       SUM(oi.line_total) AS total_revenue,
		       COUNT(DISTINCT o.id) AS total_orders
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status != 'canceled'%s
		GROUP BY oi.product_name
		ORDER BY total_sold DESC
		LIMIT $%d
	`, filter, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query best sellers")
		return nil, fmt.Errorf("failed to query best sellers: %w", err)
	}
	defer rows.Close()

	var result []model.BestSeller
	for rows.Next() {
		var b model.BestSeller
		if err := rows.Scan(&b.ProductName, &b.TotalSold, &b.TotalRevenue, &b.TotalOrders); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan best seller row")
			return nil, fmt.Errorf("failed to scan best seller: %w", err)
		}
		result = append(result, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating best sellers: %w", err)
	}

	return result, nil
}

// Overview summarises activity over the trailing periodDays.
func (r *dashboardRepository) Overview(ctx context.Context, periodDays int) (*model.Overview, error) {
	since := time.Now().AddDate(0, 0, -periodDays)

	o := &model.Overview{
		PeriodDays:  periodDays,
		GeneratedAt: time.Now(),
	}

	salesQuery := `
		SELECT COALESCE(SUM(total_amount), 0),
		       COUNT(*),
		       COALESCE(AVG(total_amount), 0),
		       COUNT(DISTINCT customer_id)
		FROM orders
		WHERE status != 'canceled' AND created_at >= $1
	`
	err := r.pool.QueryRow(ctx, salesQuery, since).Scan(&o.TotalSales, &o.TotalOrders, &o.AvgOrderValue, &o.TotalCustomers)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query overview totals")
		return nil, fmt.Errorf("failed to query overview totals: %w", err)
	}

	statusQuery := `
		SELECT status, COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE created_at >= $1
		GROUP BY status
	`
	rows, err := r.pool.Query(ctx, statusQuery, since)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders by status")
		return nil, fmt.Errorf("failed to query orders by status: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s model.StatusCount
		if err := rows.Scan(&s.Status, &s.Count, &s.TotalValue); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan status count row")
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		o.OrdersByStatus = append(o.OrdersByStatus, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status counts: %w", err)
	}

	return o, nil
}

// RevenueTrend buckets revenue over the trailing days using the given
// to_char format (e.g. YYYY-MM-DD for daily, YYYY-MM for monthly buckets).
func (r *dashboardRepository) RevenueTrend(ctx context.Context, bucketFormat string, days int) ([]model.RevenuePoint, error) {
	since := time.Now().AddDate(0, 0, -days)

	query := `
		SELECT to_char(created_at, $1) AS period,
		       COALESCE(SUM(total_amount), 0) AS revenue,
		       COUNT(*) AS orders
		FROM orders
		WHERE status != 'canceled' AND created_at >= $2
		GROUP BY to_char(created_at, $1)
		ORDER BY period ASC
	`

	rows, err := r.pool.Query(ctx, query, bucketFormat, since)
	if err != nil {
		r.logger.Error().Err(err).Str("bucket", bucketFormat).Msg("failed to query revenue trend")
		return nil, fmt.Errorf("failed to query revenue trend: %w", err)
	}
	defer rows.Close()

	var result []model.RevenuePoint
	for rows.Next() {
		var p model.RevenuePoint
		if err := rows.Scan(&p.Period, &p.Revenue, &p.Orders); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan revenue point row")
			return nil, fmt.Errorf("failed to scan revenue point: %w", err)
		}
		result = append(result, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating revenue trend: %w", err)
	}

	return result, nil
}

// TopCustomers ranks customers by total spend.
func (r *dashboardRepository) TopCustomers(ctx context.Context, rng model.DateRange, limit int) ([]model.TopCustomer, error) {
	args := []any{}
	filter, args := dateFilter(rng, args, "created_at")
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT customer_name,
		       COUNT(*) AS total_orders,
		       SUM(total_amount) AS total_spent,
		       AVG(total_amount) AS avg_order_value,
		       MAX(created_at) AS last_order_at
		FROM orders
		WHERE status != 'canceled'%s
		GROUP BY customer_name
		ORDER BY total_spent DESC
		LIMIT $%d
	`, filter, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query top customers")
		return nil, fmt.Errorf("failed to query top customers: %w", err)
	}
	defer rows.Close()

	var result []model.TopCustomer
	for rows.Next() {
		var c model.TopCustomer
		if err := rows.Scan(&c.CustomerName, &c.TotalOrders, &c.TotalSpent, &c.AvgOrderValue, &c.LastOrderAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan top customer row")
			return nil, fmt.Errorf("failed to scan top customer: %w", err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top customers: %w", err)
	}

	return result, nil
}

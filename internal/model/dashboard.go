package model

import "time"

// DailySales is the per-day sales aggregate row.
type DailySales struct {
	Date        time.Time `json:"date"`
	TotalSales  float64   `json:"totalSales"`
	TotalOrders int       `json:"totalOrders"`
	AvgOrder    float64   `json:"avgOrderValue"`
}

// BestSeller is a product ranked by quantity sold.
type BestSeller struct {
	ProductName  string  `json:"productName"`
	TotalSold    int     `json:"totalSold"`
	TotalRevenue float64 `json:"totalRevenue"`
	TotalOrders  int     `json:"totalOrders"`
}

// StatusCount is the number and value of orders in one status.
type StatusCount struct {
	Status     string  `json:"status"`
	Count      int     `json:"count"`
	TotalValue float64 `json:"totalValue"`
}

// Overview summarises activity over a trailing period.
type Overview struct {
	PeriodDays     int           `json:"periodDays"`
	TotalSales     float64       `json:"totalSales"`
	TotalOrders    int           `json:"totalOrders"`
	TotalCustomers int           `json:"totalCustomers"`
	AvgOrderValue  float64       `json:"avgOrderValue"`
	OrdersByStatus []StatusCount `json:"ordersByStatus"`
	GeneratedAt    time.Time     `json:"generatedAt"`
}

// RevenuePoint is one bucket of the revenue trend.
type RevenuePoint struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// TopCustomer is a customer ranked by total spend.
type TopCustomer struct {
	CustomerName  string    `json:"customerName"`
	TotalOrders   int       `json:"totalOrders"`
	TotalSpent    float64   `json:"totalSpent"`
	AvgOrderValue float64   `json:"avgOrderValue"`
	LastOrderAt   time.Time `json:"lastOrderAt"`
}

// DateRange bounds a dashboard query. Either side may be nil (unbounded).
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

package analytics

// SummaryRequest is the request for the analytics summary.
type SummaryRequest struct{}

// CategoryCount is a product count for one category value.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// StatusCount is a product count for one certification status value.
type StatusCount struct {
	CertificationStatus string `json:"certification_status"`
	Count               int64  `json:"count"`
}

// LowStockProduct is a product projected to the fields shown in the
// low-stock listing.
type LowStockProduct struct {
	Name          string `json:"name"`
	StockQuantity int    `json:"stock_quantity"`
}

// SummaryResponse merges the five aggregates into one object. The
// aggregates are computed by independent queries, so each reflects the
// data at the moment its query ran.
type SummaryResponse struct {
	TotalSuppliers     int64             `json:"totalSuppliers"`
	TotalProducts      int64             `json:"totalProducts"`
	ProductsByCategory []CategoryCount   `json:"productsByCategory"`
	CertificationStats []StatusCount     `json:"certificationStats"`
	LowStockProducts   []LowStockProduct `json:"lowStockProducts"`
}

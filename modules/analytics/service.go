package analytics

import (
	"context"

	"github.com/go-monolith/mono"
)

// summary handles the analytics.summary service request. The five
// aggregates run sequentially, recomputed from scratch on every call.
func (m *Module) summary(_ context.Context, _ SummaryRequest, _ *mono.Msg) (SummaryResponse, error) {
	totalSuppliers, err := m.repo.CountSuppliers()
	if err != nil {
		return SummaryResponse{}, err
	}

	totalProducts, err := m.repo.CountProducts()
	if err != nil {
		return SummaryResponse{}, err
	}

	byCategory, err := m.repo.CountByCategory()
	if err != nil {
		return SummaryResponse{}, err
	}

	byStatus, err := m.repo.CountByCertificationStatus()
	if err != nil {
		return SummaryResponse{}, err
	}

	lowStock, err := m.repo.LowStock()
	if err != nil {
		return SummaryResponse{}, err
	}

	if byCategory == nil {
		byCategory = []CategoryCount{}
	}
	if byStatus == nil {
		byStatus = []StatusCount{}
	}
	if lowStock == nil {
		lowStock = []LowStockProduct{}
	}

	return SummaryResponse{
		TotalSuppliers:     totalSuppliers,
		TotalProducts:      totalProducts,
		ProductsByCategory: byCategory,
		CertificationStats: byStatus,
		LowStockProducts:   lowStock,
	}, nil
}

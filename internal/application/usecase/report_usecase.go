package usecase

import (
	"context"

	"github.com/jhoicas/inventario-kiosco/internal/application/dto"
	"github.com/jhoicas/inventario-kiosco/internal/domain/repository"
)

// ReportUseCase consultas de solo lectura: utilidad acumulada y stock bajo.
type ReportUseCase struct {
	saleRepo  repository.SaleRepository
	productUC *ProductUseCase
	// Umbral por defecto para el reporte de stock bajo (configurable).
	defaultThreshold int64
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(saleRepo repository.SaleRepository, productUC *ProductUseCase, defaultThreshold int64) *ReportUseCase {
	if defaultThreshold <= 0 {
		defaultThreshold = 5
	}
	return &ReportUseCase{saleRepo: saleRepo, productUC: productUC, defaultThreshold: defaultThreshold}
}

// TotalProfit suma total_profit de todo el libro de ventas. Con el libro
// vacío devuelve cero, nunca un valor ausente. Las devoluciones no la alteran.
func (uc *ReportUseCase) TotalProfit(ctx context.Context) (*dto.TotalProfitResponse, error) {
	total, err := uc.saleRepo.TotalProfit(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.TotalProfitResponse{TotalProfit: total}, nil
}

// LowStock reporte de productos en o bajo el umbral. threshold <= 0 usa el
// umbral configurado.
func (uc *ReportUseCase) LowStock(ctx context.Context, threshold int64) (*dto.LowStockResponse, error) {
	if threshold <= 0 {
		threshold = uc.defaultThreshold
	}
	return uc.productUC.LowStock(ctx, threshold)
}

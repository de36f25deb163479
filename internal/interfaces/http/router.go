package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-kiosco/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	SalesUC   *usecase.SalesUseCase
	ReportUC  *usecase.ReportUseCase
	ReceiptUC *usecase.ReceiptUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Add)
	products.Get("/", productHandler.List)
	products.Delete("/:sku", productHandler.Remove)

	sales := NewSalesHandler(deps.SalesUC)
	api.Post("/sales", sales.RecordSale)
	api.Post("/refunds", sales.ProcessRefund)

	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/profit", reportHandler.TotalProfit)
	reports.Get("/low-stock", reportHandler.LowStock)

	receiptHandler := NewReceiptHandler(deps.ReceiptUC)
	api.Post("/receipts", receiptHandler.Generate)
}

package usecase_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/inventario-kiosco/internal/application/usecase"
	"github.com/jhoicas/inventario-kiosco/internal/domain"
	"github.com/jhoicas/inventario-kiosco/internal/domain/entity"
	"github.com/jhoicas/inventario-kiosco/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: reproducen el contrato de los adaptadores PostgreSQL,
// incluido el (nil, nil) cuando un SKU no existe y el rollback del TxRunner.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if _, ok := r.products[product.SKU]; ok {
		return domain.ErrDuplicateSKU
	}
	cp := *product
	r.products[product.SKU] = &cp
	return nil
}

func (r *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	p, ok := r.products[sku]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKUForUpdate(ctx context.Context, sku string) (*entity.Product, error) {
	return r.GetBySKU(ctx, sku)
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeProductRepo) ListLowStock(_ context.Context, threshold int64) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		if p.Quantity <= threshold {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeProductRepo) AdjustQuantity(_ context.Context, sku string, delta int64) error {
	p, ok := r.products[sku]
	if !ok {
		return domain.ErrUnknownSKU
	}
	p.Quantity += delta
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, sku string) error {
	delete(r.products, sku)
	return nil
}

func (r *fakeProductRepo) snapshot() map[string]*entity.Product {
	snap := make(map[string]*entity.Product, len(r.products))
	for k, v := range r.products {
		cp := *v
		snap[k] = &cp
	}
	return snap
}

type fakeSaleRepo struct {
	sales []*entity.Sale
	// createErr simula un fallo de almacenamiento en el insert del libro.
	createErr error
}

var _ repository.SaleRepository = (*fakeSaleRepo)(nil)

func (r *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *sale
	r.sales = append(r.sales, &cp)
	return nil
}

func (r *fakeSaleRepo) TotalProfit(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range r.sales {
		total = total.Add(s.TotalProfit)
	}
	return total, nil
}

// fakeTxRunner emula la transacción: toma una foto del estado antes de fn y
// la restaura si fn falla, igual que el Rollback real.
type fakeTxRunner struct {
	products *fakeProductRepo
	sales    *fakeSaleRepo
}

var _ usecase.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	productSnap := r.products.snapshot()
	saleSnap := make([]*entity.Sale, len(r.sales.sales))
	copy(saleSnap, r.sales.sales)

	if err := fn(r.products, r.sales); err != nil {
		r.products.products = productSnap
		r.sales.sales = saleSnap
		return err
	}
	return nil
}

// mustDecimal helper para literales de dinero en los tests.
func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

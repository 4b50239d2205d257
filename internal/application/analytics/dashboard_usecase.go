package analytics

import (
	"fmt"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	appinv "github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// recentLimit cantidad de movimientos recientes que muestra el dashboard.
const recentLimit = 5

// DashboardUseCase lee las cuatro colecciones en paralelo y ensambla el
// view-model completo del dashboard en una sola respuesta.
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	purchaseRepo repository.PurchaseRepository
	supplierRepo repository.SupplierRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	purchaseRepo repository.PurchaseRepository,
	supplierRepo repository.SupplierRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
	}
}

// GetDashboard arma el dashboard completo. Las cuatro consultas son
// independientes y se lanzan en paralelo; el ensamblado es puro.
func (uc *DashboardUseCase) GetDashboard(now time.Time) (*dto.DashboardResponse, error) {
	type productsResult struct {
		rows []*entity.Product
		err  error
	}
	type movementsResult struct {
		rows []entity.StockMovement
		err  error
	}
	type purchasesResult struct {
		rows []*entity.Purchase
		err  error
	}
	type suppliersResult struct {
		rows []*entity.Supplier
		err  error
	}

	prodChan := make(chan productsResult, 1)
	movChan := make(chan movementsResult, 1)
	purchChan := make(chan purchasesResult, 1)
	suppChan := make(chan suppliersResult, 1)

	go func() {
		rows, err := uc.productRepo.List()
		prodChan <- productsResult{rows, err}
	}()
	go func() {
		rows, err := uc.movementRepo.List()
		movChan <- movementsResult{rows, err}
	}()
	go func() {
		rows, err := uc.purchaseRepo.List()
		purchChan <- purchasesResult{rows, err}
	}()
	go func() {
		rows, err := uc.supplierRepo.List()
		suppChan <- suppliersResult{rows, err}
	}()

	prodRes := <-prodChan
	movRes := <-movChan
	purchRes := <-purchChan
	suppRes := <-suppChan

	if prodRes.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", prodRes.err)
	}
	if movRes.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos: %w", movRes.err)
	}
	if purchRes.err != nil {
		return nil, fmt.Errorf("dashboard: compras: %w", purchRes.err)
	}
	if suppRes.err != nil {
		return nil, fmt.Errorf("dashboard: proveedores: %w", suppRes.err)
	}

	recent := appinv.SortByRecency(movRes.rows)
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	recentDTOs := make([]dto.MovementResponse, 0, len(recent))
	for _, m := range recent {
		recentDTOs = append(recentDTOs, dto.MovementResponse{
			ID:           m.ID,
			Date:         m.Date,
			CreatedAt:    m.CreatedAt,
			Type:         m.Type,
			ProductID:    m.ProductID,
			ProductName:  m.ProductName,
			Quantity:     m.Quantity,
			UnitPrice:    m.UnitPrice,
			TotalValue:   m.TotalValue,
			SupplierID:   m.SupplierID,
			SupplierName: m.SupplierName,
		})
	}

	return &dto.DashboardResponse{
		Metrics:         Metrics(prodRes.rows, movRes.rows, purchRes.rows, suppRes.rows, now),
		MovementsByDay:  MovementsByDay(movRes.rows, now),
		StockStatus:     StockStatusCounts(prodRes.rows),
		Categories:      CategoryRollup(prodRes.rows, movRes.rows),
		RecentMovements: recentDTOs,
	}, nil
}

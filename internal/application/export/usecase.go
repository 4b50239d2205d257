// Package export genera los reportes descargables del almacén: CSV del
// inventario valorizado y de órdenes de compra, y el PDF del inventario.
package export

import (
	"context"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	appinv "github.com/jhoicas/Almacen-api/internal/application/inventory"
	dominv "github.com/jhoicas/Almacen-api/internal/domain/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// InventoryReportRow fila del reporte de inventario valorizado. Los montos se
// serializan con dos decimales fijos para que el CSV abra bien en planillas.
type InventoryReportRow struct {
	Code         string `csv:"codigo"`
	Name         string `csv:"nombre"`
	Category     string `csv:"categoria"`
	Unit         string `csv:"unidad"`
	Location     string `csv:"ubicacion"`
	InitialStock int    `csv:"stock_inicial"`
	Entries      int    `csv:"entradas"`
	Exits        int    `csv:"salidas"`
	CurrentStock int    `csv:"stock_actual"`
	MinStock     int    `csv:"stock_minimo"`
	Status       string `csv:"estado"`
	AverageCost  string `csv:"costo_promedio"`
	TotalValue   string `csv:"valor_total"`
}

// PurchaseReportRow fila del reporte de órdenes de compra.
type PurchaseReportRow struct {
	Date           string `csv:"fecha"`
	SupplierName   string `csv:"proveedor"`
	Status         string `csv:"estado"`
	DocumentNumber string `csv:"documento"`
	ItemCount      int    `csv:"lineas"`
	Discount       string `csv:"descuento"`
	TotalValue     string `csv:"total"`
}

// InventoryReport datos listos para render: los comparten el CSV y el PDF.
type InventoryReport struct {
	GeneratedAt time.Time
	Rows        []InventoryReportRow
	TotalValue  decimal.Decimal
}

// PDFGenerator puerto del render PDF del reporte de inventario.
type PDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, report *InventoryReport) ([]byte, error)
}

// UseCase casos de uso de exportación.
type UseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	purchaseRepo repository.PurchaseRepository
	pdf          PDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	purchaseRepo repository.PurchaseRepository,
	pdf PDFGenerator,
) *UseCase {
	return &UseCase{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		purchaseRepo: purchaseRepo,
		pdf:          pdf,
	}
}

// BuildInventoryReport arma el reporte de inventario valorizado: una fila por
// producto con su estado y su valor según el costo promedio del libro.
func (uc *UseCase) BuildInventoryReport() (*InventoryReport, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}

	report := &InventoryReport{
		GeneratedAt: time.Now(),
		Rows:        make([]InventoryReportRow, 0, len(products)),
		TotalValue:  decimal.Zero,
	}
	for _, p := range products {
		summary := dominv.Aggregate(movements, p.ID, p.CurrentStock)
		value := summary.AverageCost.Mul(decimal.NewFromInt(int64(p.CurrentStock)))
		report.TotalValue = report.TotalValue.Add(value)
		report.Rows = append(report.Rows, InventoryReportRow{
			Code:         p.Code,
			Name:         p.Name,
			Category:     p.Category,
			Unit:         p.Unit,
			Location:     p.Location,
			InitialStock: summary.InitialStock,
			Entries:      summary.Entries,
			Exits:        summary.Exits,
			CurrentStock: p.CurrentStock,
			MinStock:     p.MinStock,
			Status:       string(dominv.Classify(p.CurrentStock, p.MinStock)),
			AverageCost:  summary.AverageCost.StringFixed(2),
			TotalValue:   value.StringFixed(2),
		})
	}
	return report, nil
}

// InventoryCSV devuelve el reporte de inventario en CSV.
func (uc *UseCase) InventoryCSV() ([]byte, error) {
	report, err := uc.BuildInventoryReport()
	if err != nil {
		return nil, err
	}
	return gocsv.MarshalBytes(&report.Rows)
}

// InventoryPDF devuelve el reporte de inventario en PDF.
func (uc *UseCase) InventoryPDF(ctx context.Context) ([]byte, error) {
	report, err := uc.BuildInventoryReport()
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateInventoryPDF(ctx, report)
}

// MovementsCSV exporta el libro de movimientos completo por recencia.
func (uc *UseCase) MovementsCSV() ([]byte, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	type movementRow struct {
		Date        string `csv:"fecha"`
		Type        string `csv:"tipo"`
		ProductName string `csv:"producto"`
		Quantity    int    `csv:"cantidad"`
		UnitPrice   string `csv:"precio_unitario"`
		TotalValue  string `csv:"valor_total"`
		Supplier    string `csv:"proveedor"`
		Document    string `csv:"documento"`
		RequestedBy string `csv:"solicitante"`
		Department  string `csv:"departamento"`
	}
	sorted := appinv.SortByRecency(movements)
	rows := make([]movementRow, 0, len(sorted))
	for _, m := range sorted {
		r := movementRow{
			Date:        m.Date.Format("2006-01-02"),
			Type:        m.Type,
			ProductName: m.ProductName,
			Quantity:    m.Quantity,
			Supplier:    m.SupplierName,
			Document:    m.DocumentNumber,
			RequestedBy: m.RequestedBy,
			Department:  m.Department,
		}
		if m.UnitPrice != nil {
			r.UnitPrice = m.UnitPrice.StringFixed(2)
		}
		if m.TotalValue != nil {
			r.TotalValue = m.TotalValue.StringFixed(2)
		}
		rows = append(rows, r)
	}
	return gocsv.MarshalBytes(&rows)
}

// PurchasesCSV exporta las órdenes de compra.
func (uc *UseCase) PurchasesCSV() ([]byte, error) {
	purchases, err := uc.purchaseRepo.List()
	if err != nil {
		return nil, err
	}
	rows := make([]PurchaseReportRow, 0, len(purchases))
	for _, p := range purchases {
		rows = append(rows, PurchaseReportRow{
			Date:           p.Date.Format("2006-01-02"),
			SupplierName:   p.SupplierName,
			Status:         p.Status,
			DocumentNumber: p.DocumentNumber,
			ItemCount:      len(p.Items),
			Discount:       p.Discount.StringFixed(2),
			TotalValue:     p.TotalValue.StringFixed(2),
		})
	}
	return gocsv.MarshalBytes(&rows)
}

package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/inventory"
)

const productoID = "prod-1"

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func entrada(date time.Time, qty int, price *decimal.Decimal) entity.StockMovement {
	return entity.StockMovement{
		Type:      entity.MovementTypeEntry,
		ProductID: productoID,
		Date:      date,
		Quantity:  qty,
		UnitPrice: price,
	}
}

func salida(date time.Time, qty int) entity.StockMovement {
	return entity.StockMovement{
		Type:      entity.MovementTypeExit,
		ProductID: productoID,
		Date:      date,
		Quantity:  qty,
	}
}

// Escenario A de referencia: dos entradas con precio y 3 unidades salidas.
func TestAggregate_EscenarioDosEntradasConPrecio(t *testing.T) {
	d1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	d2 := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	movs := []entity.StockMovement{
		entrada(d1, 10, dec("5.00")),
		entrada(d2, 5, dec("6.00")),
		salida(d2, 3),
	}

	s := inventory.Aggregate(movs, productoID, 12)

	assert.Equal(t, 15, s.Entries)
	assert.Equal(t, 3, s.Exits)
	assert.Equal(t, 0, s.InitialStock, "12 − 15 + 3 = 0")
	// (10·5 + 5·6) / 15 = 80/15 ≈ 5.33
	assert.True(t, decimal.RequireFromString("5.33").Equal(s.AverageCost.Round(2)),
		"costo promedio ponderado esperado 5.33, obtenido %s", s.AverageCost)
	assert.True(t, decimal.RequireFromString("6.00").Equal(s.LastPurchasePrice),
		"la última compra es la entrada más reciente por fecha")
}

// Escenario B: libro vacío → todo cero salvo el stock inicial, que iguala al actual.
func TestAggregate_SinMovimientos(t *testing.T) {
	s := inventory.Aggregate(nil, productoID, 20)

	assert.Equal(t, 0, s.Entries)
	assert.Equal(t, 0, s.Exits)
	assert.Equal(t, 20, s.InitialStock)
	assert.True(t, s.AverageCost.IsZero(), "sin entradas con precio el costo promedio es 0, nunca NaN")
	assert.True(t, s.LastPurchasePrice.IsZero())
}

// Entradas sin precio no cuentan en el costo promedio (ni numerador ni denominador).
func TestAggregate_EntradasSinPrecioExcluidasDelCosto(t *testing.T) {
	d := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	movs := []entity.StockMovement{
		entrada(d, 100, nil),
		entrada(d.AddDate(0, 0, 1), 10, dec("2.00")),
	}

	s := inventory.Aggregate(movs, productoID, 110)

	assert.Equal(t, 110, s.Entries)
	assert.True(t, decimal.RequireFromString("2.00").Equal(s.AverageCost),
		"solo la entrada con precio pondera el costo")
	assert.True(t, decimal.RequireFromString("2.00").Equal(s.LastPurchasePrice))
}

// Un stock inicial negativo señala desvío libro/stock y se devuelve sin recortar.
func TestAggregate_StockInicialNegativoNoSeRecorta(t *testing.T) {
	d := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	movs := []entity.StockMovement{entrada(d, 50, nil)}

	s := inventory.Aggregate(movs, productoID, 10)

	assert.Equal(t, -40, s.InitialStock, "10 − 50 + 0 = −40; diagnóstico, no error")
}

// Identidad de conciliación: initialStock + entries − exits == currentStock, por construcción.
func TestAggregate_IdentidadDeConciliacion(t *testing.T) {
	d := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	movs := []entity.StockMovement{
		entrada(d, 7, dec("1.50")),
		salida(d.AddDate(0, 0, 2), 4),
		entrada(d.AddDate(0, 0, 3), 9, nil),
		salida(d.AddDate(0, 0, 5), 1),
	}
	for _, current := range []int{0, 5, 42, -3} {
		s := inventory.Aggregate(movs, productoID, current)
		assert.Equal(t, current, s.InitialStock+s.Entries-s.Exits)
	}
}

// Aggregate es idempotente y no muta el slice de entrada.
func TestAggregate_NoMutaLaEntrada(t *testing.T) {
	d := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	movs := []entity.StockMovement{
		entrada(d, 10, dec("5.00")),
		salida(d.AddDate(0, 0, 1), 2),
	}
	copia := make([]entity.StockMovement, len(movs))
	copy(copia, movs)

	primera := inventory.Aggregate(movs, productoID, 8)
	segunda := inventory.Aggregate(movs, productoID, 8)

	assert.Equal(t, primera, segunda, "dos llamadas con la misma entrada producen la misma salida")
	assert.Equal(t, copia, movs, "el libro de movimientos no se modifica")
}

// Movimientos de otros productos quedan fuera de la agregación.
func TestAggregate_FiltraPorProducto(t *testing.T) {
	d := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	otro := entity.StockMovement{
		Type: entity.MovementTypeEntry, ProductID: "prod-2", Date: d, Quantity: 99, UnitPrice: dec("9.99"),
	}
	movs := []entity.StockMovement{otro, entrada(d, 3, dec("1.00"))}

	s := inventory.Aggregate(movs, productoID, 3)

	assert.Equal(t, 3, s.Entries)
	assert.True(t, decimal.RequireFromString("1.00").Equal(s.LastPurchasePrice))
}

// Empate de fecha de negocio: gana el CreatedAt más reciente cuando ambos lo traen.
func TestAggregate_UltimaCompraDesempataPorCreatedAt(t *testing.T) {
	d := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	t1 := d.Add(9 * time.Hour)
	t2 := d.Add(17 * time.Hour)

	m1 := entrada(d, 5, dec("4.00"))
	m1.CreatedAt = &t1
	m2 := entrada(d, 5, dec("4.50"))
	m2.CreatedAt = &t2

	s := inventory.Aggregate([]entity.StockMovement{m2, m1}, productoID, 10)
	require.True(t, decimal.RequireFromString("4.50").Equal(s.LastPurchasePrice),
		"misma fecha: decide el CreatedAt más reciente, no el orden del slice")
}

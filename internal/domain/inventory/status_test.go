package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Almacen-api/internal/domain/inventory"
)

func TestClassify_Limites(t *testing.T) {
	min := 10

	assert.Equal(t, inventory.StatusCritical, inventory.Classify(min-1, min), "current < min es crítico (estricto)")
	assert.Equal(t, inventory.StatusWarning, inventory.Classify(min, min), "current == min ya es atención")
	assert.Equal(t, inventory.StatusWarning, inventory.Classify(min+10, min), "el margen de 10 incluye el extremo")
	assert.Equal(t, inventory.StatusNormal, inventory.Classify(min+11, min))
}

// Escenario C de referencia.
func TestClassify_CasosDeReferencia(t *testing.T) {
	assert.Equal(t, inventory.StatusCritical, inventory.Classify(8, 10))
	assert.Equal(t, inventory.StatusWarning, inventory.Classify(15, 10))
	assert.Equal(t, inventory.StatusNormal, inventory.Classify(25, 10))
}

// Función total: también definida para mínimos cero o negativos.
func TestClassify_MinimosDegenerados(t *testing.T) {
	assert.Equal(t, inventory.StatusWarning, inventory.Classify(0, 0))
	assert.Equal(t, inventory.StatusNormal, inventory.Classify(11, 0))
	assert.Equal(t, inventory.StatusNormal, inventory.Classify(20, -5))
	assert.Equal(t, inventory.StatusCritical, inventory.Classify(-1, 0))
}

func TestStockPercent(t *testing.T) {
	assert.Equal(t, 80, inventory.StockPercent(8, 10))
	assert.Equal(t, 150, inventory.StockPercent(15, 10))
	assert.Equal(t, 33, inventory.StockPercent(1, 3), "se redondea al entero más cercano")
	assert.Equal(t, 0, inventory.StockPercent(25, 0), "min 0 devuelve 0 en lugar de dividir por cero")
}

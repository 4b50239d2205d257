package inventory

import "math"

// Status clasificación del estado de stock de un producto.
type Status string

const (
	StatusCritical Status = "critical" // por debajo del mínimo
	StatusWarning  Status = "warning"  // hasta 10 unidades por encima del mínimo
	StatusNormal   Status = "normal"
)

// Margen absoluto de 10 unidades sobre el mínimo, independiente de la escala.
const warningBuffer = 10

// Classify clasifica el stock actual frente al mínimo. Función total: definida
// para cualquier par de enteros, incluidos mínimos cero o negativos.
func Classify(current, min int) Status {
	if current < min {
		return StatusCritical
	}
	if current <= min+warningBuffer {
		return StatusWarning
	}
	return StatusNormal
}

// StockPercent porcentaje del stock actual sobre el mínimo, redondeado.
// Devuelve 0 cuando min es 0: la guarda de división por cero es responsabilidad
// de la capa de presentación, no del clasificador.
func StockPercent(current, min int) int {
	if min == 0 {
		return 0
	}
	return int(math.Round(float64(current) / float64(min) * 100))
}

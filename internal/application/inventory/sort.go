package inventory

import (
	"sort"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// SortByRecency ordena movimientos del más reciente al más antiguo sin mutar
// la entrada. Cada movimiento se compara por su marca efectiva: CreatedAt si
// lo trae, si no la fecha de negocio. Comparar una sola marca por movimiento
// mantiene el criterio transitivo aunque la presencia de CreatedAt esté
// mezclada. El orden es estable, así que los empates conservan el orden de
// llegada.
func SortByRecency(movements []entity.StockMovement) []entity.StockMovement {
	sorted := make([]entity.StockMovement, len(movements))
	copy(sorted, movements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return recencyKey(&sorted[i]).After(recencyKey(&sorted[j]))
	})
	return sorted
}

func recencyKey(m *entity.StockMovement) time.Time {
	if m.CreatedAt != nil {
		return *m.CreatedAt
	}
	return m.Date
}

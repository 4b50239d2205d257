package truss

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de treliças atados a esa tx: el asiento del préstamo y la
// actualización del stock disponible se confirman o revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		trussRepo repository.TrussRepository,
		movRepo repository.TrussMovementRepository,
	) error) error
}

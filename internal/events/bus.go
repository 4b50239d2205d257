// Package events implementa la notificación de cambios en memoria: cada
// mutación publica el nombre de la tabla afectada y los suscriptores
// (el hub de websockets) reaccionan pidiendo a los clientes que recarguen.
// La señal es un disparador opaco: ninguna lógica de negocio depende de su forma.
package events

import (
	evbus "github.com/asaskevich/EventBus"
)

// Tablas publicadas en el feed de cambios.
const (
	TableProducts       = "products"
	TableMovements      = "stock_movements"
	TableSuppliers      = "suppliers"
	TablePurchases      = "purchases"
	TableTrusses        = "trusses"
	TableTrussMovements = "truss_movements"
	TableUsers          = "user_profiles"
)

const changedTopic = "storage.changed"

// Bus bus de cambios con ciclo de vida explícito de suscripción:
// Subscribe devuelve un handle y el dueño lo cierra al desmontar la vista.
type Bus struct {
	bus evbus.Bus
}

// NewBus crea el bus de cambios.
func NewBus() *Bus {
	return &Bus{bus: evbus.New()}
}

// Publish anuncia que una tabla cambió. Entrega síncrona a los suscriptores.
func (b *Bus) Publish(table string) {
	b.bus.Publish(changedTopic, table)
}

// Subscribe registra un callback para cambios y devuelve el handle que lo
// desregistra. El callback recibe solo el nombre de la tabla.
func (b *Bus) Subscribe(fn func(table string)) (*Subscription, error) {
	if err := b.bus.Subscribe(changedTopic, fn); err != nil {
		return nil, err
	}
	return &Subscription{bus: b.bus, fn: fn}, nil
}

// Subscription handle de una suscripción activa al feed de cambios.
type Subscription struct {
	bus    evbus.Bus
	fn     func(string)
	closed bool
}

// Close desregistra el callback. Idempotente.
func (s *Subscription) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.bus.Unsubscribe(changedTopic, s.fn)
}

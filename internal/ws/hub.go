// Package ws mantiene las conexiones websocket y retransmite las señales del
// feed de cambios para que los clientes conectados recarguen sus colecciones.
package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Almacen-api/internal/events"
)

// ChangeSignal payload enviado a los clientes: solo la tabla que cambió.
// Los clientes responden recargando; no hay más contrato que eso.
type ChangeSignal struct {
	Table string `json:"table"`
}

// Hub registra clientes websocket y les difunde mensajes.
type Hub struct {
	clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

// NewHub crea el hub vacío. Ejecutar Run en una goroutine propia.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte, 16),
	}
}

// Run atiende registros, bajas y difusión hasta que el proceso termina.
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.clients[conn] = true
			h.mutex.Unlock()
			log.Debug().Msg("cliente websocket conectado")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// AttachBus suscribe el hub al feed de cambios: cada tabla publicada se
// difunde como ChangeSignal. El handle devuelto cierra la suscripción.
func AttachBus(h *Hub, bus *events.Bus) (*events.Subscription, error) {
	return bus.Subscribe(func(table string) {
		payload, err := json.Marshal(ChangeSignal{Table: table})
		if err != nil {
			log.Error().Err(err).Str("table", table).Msg("serializar señal de cambio")
			return
		}
		h.Broadcast <- payload
	})
}

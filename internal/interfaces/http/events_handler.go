package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/ws"
)

// RegisterEventsRoute monta el feed de cambios websocket en /ws/events.
// El servidor solo empuja señales {"table": ...}; lo que llegue del cliente
// se lee y descarta para detectar el cierre de la conexión.
func RegisterEventsRoute(app *fiber.App, hub *ws.Hub) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/events", websocket.New(func(conn *websocket.Conn) {
		hub.Register <- conn
		defer func() { hub.Unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
}

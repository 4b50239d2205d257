package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// Action capacidad de la aplicación sujeta a control de acceso.
type Action string

const (
	ActionCatalogWrite   Action = "catalog.write"
	ActionMovementsWrite Action = "movements.write"
	ActionSuppliersWrite Action = "suppliers.write"
	ActionPurchasesWrite Action = "purchases.write"
	ActionTrussesWrite   Action = "trusses.write"
	ActionUsersManage    Action = "users.manage"
)

// capabilities tabla declarativa acción → roles permitidos. Toda la política
// de acceso vive acá; los handlers no hacen chequeos de rol propios. Las
// lecturas no figuran: cualquier usuario autenticado puede leer.
var capabilities = map[Action][]entity.Role{
	ActionCatalogWrite:   {entity.RoleAdmin, entity.RoleAlmoxarife},
	ActionMovementsWrite: {entity.RoleAdmin, entity.RoleAlmoxarife},
	ActionSuppliersWrite: {entity.RoleAdmin, entity.RoleCompras},
	ActionPurchasesWrite: {entity.RoleAdmin, entity.RoleCompras},
	ActionTrussesWrite:   {entity.RoleAdmin, entity.RoleAlmoxarife},
	ActionUsersManage:    {entity.RoleAdmin},
}

// Allowed indica si alguno de los roles dados habilita la acción.
func Allowed(action Action, roles []string) bool {
	allowed, ok := capabilities[action]
	if !ok {
		return false
	}
	for _, have := range roles {
		for _, want := range allowed {
			if entity.Role(have) == want {
				return true
			}
		}
	}
	return false
}

// RequireAction autoriza la petición contra la tabla de capacidades.
// Ejecutar después de AuthMiddleware.
func RequireAction(action Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !Allowed(action, GetRoles(c)) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code: "FORBIDDEN", Message: "rol sin permiso para esta operación",
			})
		}
		return c.Next()
	}
}

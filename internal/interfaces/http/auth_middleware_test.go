package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Almacen-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Almacen-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testEmail     = "usuario@almacen.test"
	testIssuer    = "almacen-api-test"
	testExpMin    = 60
)

// buildTestApp construye una app Fiber mínima con una ruta protegida por
// AuthMiddleware + RequireAction y un handler que devuelve los locals cargados.
func buildTestApp(action apphttp.Action) *fiber.App {
	app := fiber.New()
	app.Post("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireAction(action),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"user_id": apphttp.GetUserID(c),
				"email":   apphttp.GetEmail(c),
				"roles":   apphttp.GetRoles(c),
			})
		},
	)
	return app
}

// tokenForRoles genera un JWT con los roles indicados.
func tokenForRoles(t *testing.T, roles ...string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, roles, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza POST /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeaderRechaza(t *testing.T) {
	app := buildTestApp(apphttp.ActionCatalogWrite)

	resp := doRequest(t, app, "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalidoRechaza(t *testing.T) {
	app := buildTestApp(apphttp.ActionCatalogWrite)

	resp := doRequest(t, app, "Token abc123")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FirmaIncorrectaRechaza(t *testing.T) {
	app := buildTestApp(apphttp.ActionCatalogWrite)
	tok, err := pkgjwt.Generate("otro-secret", testUserID, testEmail, []string{"admin"}, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpiradoRechaza(t *testing.T) {
	app := buildTestApp(apphttp.ActionCatalogWrite)
	// Expiración negativa: el token ya nació vencido
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, []string{"admin"}, testIssuer, -5)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_CargaClaimsEnLocals(t *testing.T) {
	app := buildTestApp(apphttp.ActionCatalogWrite)

	resp := doRequest(t, app, tokenForRoles(t, "admin", "almoxarife"))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out struct {
		UserID string   `json:"user_id"`
		Email  string   `json:"email"`
		Roles  []string `json:"roles"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, testUserID, out.UserID)
	assert.Equal(t, testEmail, out.Email)
	assert.Equal(t, []string{"admin", "almoxarife"}, out.Roles)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAction (tabla de capacidades)
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAction_AdminPuedeTodo(t *testing.T) {
	for _, action := range []apphttp.Action{
		apphttp.ActionCatalogWrite,
		apphttp.ActionMovementsWrite,
		apphttp.ActionSuppliersWrite,
		apphttp.ActionPurchasesWrite,
		apphttp.ActionTrussesWrite,
		apphttp.ActionUsersManage,
	} {
		app := buildTestApp(action)
		resp := doRequest(t, app, tokenForRoles(t, "admin"))
		assert.Equal(t, http.StatusOK, resp.StatusCode, "admin debe poder %s", action)
	}
}

func TestRequireAction_AlmoxarifeEscribeInventarioNoCompras(t *testing.T) {
	token := tokenForRoles(t, "almoxarife")

	resp := doRequest(t, buildTestApp(apphttp.ActionMovementsWrite), token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, buildTestApp(apphttp.ActionPurchasesWrite), token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireAction_ComprasEscribeComprasNoInventario(t *testing.T) {
	token := tokenForRoles(t, "compras")

	resp := doRequest(t, buildTestApp(apphttp.ActionPurchasesWrite), token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, buildTestApp(apphttp.ActionCatalogWrite), token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireAction_SinRolesRechaza(t *testing.T) {
	app := buildTestApp(apphttp.ActionCatalogWrite)

	resp := doRequest(t, app, tokenForRoles(t))

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireAction_SoloAdminGestionaUsuarios(t *testing.T) {
	app := buildTestApp(apphttp.ActionUsersManage)

	resp := doRequest(t, app, tokenForRoles(t, "compras", "almoxarife"))

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"ningún rol operativo alcanza para gestionar usuarios")
}

func TestAllowed_AccionDesconocidaNiega(t *testing.T) {
	assert.False(t, apphttp.Allowed(apphttp.Action("inexistente"), []string{"admin"}),
		"una acción fuera de la tabla se niega incluso para admin")
}

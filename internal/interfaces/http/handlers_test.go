package http_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/techstore/inventario-api/internal/application/auth"
	"github.com/techstore/inventario-api/internal/application/dto"
	"github.com/techstore/inventario-api/internal/application/inventory"
	apihttp "github.com/techstore/inventario-api/internal/interfaces/http"
	"github.com/techstore/inventario-api/internal/infrastructure/pdf"
	"github.com/techstore/inventario-api/internal/infrastructure/ublxml"
	"github.com/techstore/inventario-api/pkg/jwt"
	"github.com/techstore/inventario-api/pkg/logger"
)

// newOfflineApp arma la app completa con el Store en modo offline (sin base de
// datos): las lecturas sirven los datos de muestra y las escrituras devuelven 503.
func newOfflineApp(t *testing.T) *fiber.App {
	t.Helper()

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	store := inventory.NewStore(log, inventory.Deps{})
	store.Initialize(context.Background())

	hash, err := bcrypt.GenerateFromPassword([]byte("clave123"), bcrypt.MinCost)
	require.NoError(t, err)
	authUC := auth.NewAuthUseCase("admin", string(hash), auth.JWTConfig{
		Secret: testSecret, ExpMinutes: 60, Issuer: "inventario-api",
	})

	app := fiber.New()
	apihttp.SetupRoutes(app, apihttp.RouterDeps{
		Store:      store,
		AuthUC:     authUC,
		PDFGen:     pdf.NewMarotoInvoiceGenerator("TechStore"),
		XMLBuilder: ublxml.NewBuilder(),
		JWTSecret:  testSecret,
	})
	return app
}

func bearerToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, "admin", "inventario-api", 60)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestHealth(t *testing.T) {
	app := newOfflineApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestStatus_OfflineEsPublico(t *testing.T) {
	app := newOfflineApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/status", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.StatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, inventory.StatusOffline, body.Status)
}

func TestLogin_CredencialesValidas(t *testing.T) {
	app := newOfflineApp(t)

	req := httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"clave123"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "admin", body.Username)
	assert.Equal(t, 3600, body.ExpiresIn)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	app := newOfflineApp(t)

	req := httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"incorrecta"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProducts_RequiereToken(t *testing.T) {
	app := newOfflineApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/products", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProducts_OfflineSirveDatosDeMuestra(t *testing.T) {
	app := newOfflineApp(t)

	req := httptest.NewRequest("GET", "/api/products", nil)
	req.Header.Set("Authorization", bearerToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body []dto.ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body, 3, "offline el catálogo son los productos de muestra")
}

func TestCreateMovement_OfflineDevuelve503(t *testing.T) {
	app := newOfflineApp(t)

	req := httptest.NewRequest("POST", "/api/inventory/movements",
		strings.NewReader(`{"product_id":"demo-1","type":"salida","quantity":1,"reason":"Venta"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "OFFLINE", body.Code)
}

func TestAlertas_OfflineDetectaStockBajo(t *testing.T) {
	app := newOfflineApp(t)

	req := httptest.NewRequest("GET", "/api/inventory/alerts", nil)
	req.Header.Set("Authorization", bearerToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body []dto.StockAlertResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	// En los datos de muestra el teclado (2/8) y un notebook (1/4) están bajos.
	assert.Len(t, body, 2)
}

func TestExportInventoryCSV_CabecerasDeDescarga(t *testing.T) {
	app := newOfflineApp(t)

	req := httptest.NewRequest("GET", "/api/export/inventory.csv", nil)
	req.Header.Set("Authorization", bearerToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".csv")
}

func TestInvoicePreview_CalculaTotales(t *testing.T) {
	app := newOfflineApp(t)

	payload := `{
		"customer_name": "María Pérez",
		"payment_method": "Efectivo",
		"discount_percent": "10",
		"items": [
			{"description": "Notebook", "quantity": 1, "unit_price": "950000"},
			{"description": "Teclado", "quantity": 2, "unit_price": "135000"}
		]
	}`
	req := httptest.NewRequest("POST", "/api/invoices/preview", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.InvoiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, strings.HasPrefix(body.Number, "FAC-"))
	assert.Equal(t, "1220000", body.Subtotal.String())
	assert.Equal(t, "122000", body.DiscountAmount.String())
	assert.Equal(t, "1098000", body.Total.String())
}

func TestInvoice_SinItemsEs400(t *testing.T) {
	app := newOfflineApp(t)

	req := httptest.NewRequest("POST", "/api/invoices/xml",
		strings.NewReader(`{"customer_name":"Cliente","payment_method":"Efectivo","items":[]}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

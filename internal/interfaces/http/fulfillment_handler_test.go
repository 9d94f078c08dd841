package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/warehouse-api/internal/application/fulfillment"
	"github.com/tu-usuario/warehouse-api/internal/domain"
	apphttp "github.com/tu-usuario/warehouse-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// stubFulfiller devuelve un resultado fijo y cuenta las llamadas, para verificar
// el mapeo error de dominio -> status HTTP sin tocar ninguna base de datos.
type stubFulfiller struct {
	id    int
	err   error
	calls int
}

func (s *stubFulfiller) Fulfill(_ context.Context, _ fulfillment.Input) (int, error) {
	s.calls++
	return s.id, s.err
}

func buildApp(stub *stubFulfiller) *fiber.App {
	app := fiber.New()
	h := apphttp.NewFulfillmentHandler(stub)
	app.Post("/api/warehouses/products", h.AddProductToWarehouse)
	return app
}

func postJSON(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/warehouses/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

const validBody = `{"id_product":1,"id_warehouse":5,"amount":3,"created_at":"2024-02-01T00:00:00Z"}`

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de estados del API (spec de respuesta del endpoint)
// ──────────────────────────────────────────────────────────────────────────────

// Éxito: 200 con el id del registro como entero JSON.
func TestAddProductToWarehouse_Exitoso(t *testing.T) {
	stub := &stubFulfiller{id: 123}
	app := buildApp(stub)

	resp := postJSON(t, app, validBody)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "123", strings.TrimSpace(readBody(t, resp)))
	assert.Equal(t, 1, stub.calls)
}

// Amount <= 0: 400 sin invocar el caso de uso (ni el store).
func TestAddProductToWarehouse_AmountInvalido(t *testing.T) {
	stub := &stubFulfiller{}
	app := buildApp(stub)

	resp := postJSON(t, app, `{"id_product":1,"id_warehouse":5,"amount":0,"created_at":"2024-02-01T00:00:00Z"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Amount must be greater than 0")
	assert.Equal(t, 0, stub.calls, "el caso de uso no debe invocarse")
}

// Cuerpo malformado: 400.
func TestAddProductToWarehouse_CuerpoInvalido(t *testing.T) {
	stub := &stubFulfiller{}
	app := buildApp(stub)

	resp := postJSON(t, app, `{esto no es json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, stub.calls)
}

// Campo obligatorio faltante (created_at): 400 por validación del DTO.
func TestAddProductToWarehouse_FaltaCreatedAt(t *testing.T) {
	stub := &stubFulfiller{}
	app := buildApp(stub)

	resp := postJSON(t, app, `{"id_product":1,"id_warehouse":5,"amount":3}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, stub.calls)
}

// Mapeo de errores de dominio a la tabla de estados.
func TestAddProductToWarehouse_MapeoDeErrores(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"producto no encontrado", domain.ErrProductNotFound, http.StatusNotFound, "Product not found"},
		{"bodega no encontrada", domain.ErrWarehouseNotFound, http.StatusNotFound, "Warehouse not found"},
		{"sin orden coincidente", domain.ErrNoMatchingOrder, http.StatusNotFound, "No valid order found for this product"},
		{"orden ya surtida", domain.ErrOrderFulfilled, http.StatusConflict, "Order is already fulfilled"},
		{"fallo de persistencia", domain.ErrPersistence, http.StatusInternalServerError, "An error occurred"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubFulfiller{err: tc.err}
			app := buildApp(stub)

			resp := postJSON(t, app, validBody)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			assert.Contains(t, readBody(t, resp), tc.wantMsg)
		})
	}
}

package purchase_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	purchasehandler "github.com/dsentered/lasatastore/internal/delivery/http/handler/purchase"
	"github.com/dsentered/lasatastore/internal/repository/memory"
	purchaseuc "github.com/dsentered/lasatastore/internal/usecase/purchase"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *string         `json:"error"`
}

func newTestApp(t *testing.T) (*fiber.App, *memory.PurchaseStore) {
	t.Helper()

	store := memory.NewPurchaseStore()
	h := purchasehandler.New(purchaseuc.New(store, purchaseuc.PolicyAllowNegative, nil))

	app := fiber.New()
	app.Get("/api/purchases", h.List)
	app.Post("/api/purchases", h.Create)
	app.Get("/api/purchases/:id", h.Get)
	app.Put("/api/purchases/:id", h.Update)
	app.Delete("/api/purchases/:id", h.Delete)
	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp.StatusCode, env
}

func TestCreateGetDeleteOverHTTP(t *testing.T) {
	app, store := newTestApp(t)

	supID := store.AddSupplier("Acme", "acme")
	prodID := store.AddProduct("Widget", "widget", 10)

	status, env := doJSON(t, app, fiber.MethodPost, "/api/purchases", fiber.Map{
		"supplierId": supID,
		"status":     "UNPAID",
		"items": []fiber.Map{
			{"productId": prodID, "productName": "Widget", "quantity": 5},
		},
	})
	require.Equal(t, fiber.StatusCreated, status)
	require.True(t, env.Success)
	require.Equal(t, "Purchase created successfully", env.Message)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, 15, store.StockQty(prodID))

	status, env = doJSON(t, app, fiber.MethodGet, "/api/purchases/"+created.ID, nil)
	require.Equal(t, fiber.StatusOK, status)
	require.True(t, env.Success)

	status, env = doJSON(t, app, fiber.MethodDelete, "/api/purchases/"+created.ID, nil)
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "Purchase deleted successfully", env.Message)
	require.Equal(t, 10, store.StockQty(prodID))
}

func TestErrorMappingOverHTTP(t *testing.T) {
	app, store := newTestApp(t)

	supID := store.AddSupplier("Acme", "acme")
	prodID := store.AddProduct("Widget", "widget", 0)

	// Missing supplier id fails validation.
	status, env := doJSON(t, app, fiber.MethodPost, "/api/purchases", fiber.Map{
		"items": []fiber.Map{{"productId": prodID, "quantity": 1}},
	})
	require.Equal(t, fiber.StatusBadRequest, status)
	require.False(t, env.Success)

	// Unknown order id.
	status, env = doJSON(t, app, fiber.MethodGet, "/api/purchases/no-such-order", nil)
	require.Equal(t, fiber.StatusNotFound, status)
	require.Equal(t, "Purchase Order not found", env.Message)

	// Client-supplied id colliding with an existing order.
	body := fiber.Map{
		"id":         "6f1c0c4e-5a57-4c3a-9a3f-6a1bd5f0a001",
		"supplierId": supID,
		"status":     "UNPAID",
		"items":      []fiber.Map{{"productId": prodID, "quantity": 1}},
	}
	status, _ = doJSON(t, app, fiber.MethodPost, "/api/purchases", body)
	require.Equal(t, fiber.StatusCreated, status)

	status, env = doJSON(t, app, fiber.MethodPost, "/api/purchases", body)
	require.Equal(t, fiber.StatusConflict, status)
	require.Equal(t, "Purchase with this ID already exists", env.Message)
	require.NotNil(t, env.Error)
}

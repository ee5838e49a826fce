package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-dashboard-api/internal/app"
	appanalytics "github.com/jhoicas/inventory-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/inventory-dashboard-api/internal/application/dto"
	apphttp "github.com/jhoicas/inventory-dashboard-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la aplicación completa sobre el dataset semilla, sin /docs y con serie determinista.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	clock := func() time.Time { return time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC) }
	a, err := app.New(app.Options{
		HTTP:       apphttp.AppConfig{Name: "inventory-dashboard-test"},
		KPIOptions: []appanalytics.Option{appanalytics.WithSeed(1), appanalytics.WithClock(clock)},
	})
	require.NoError(t, err)
	return a.HTTP
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out), string(raw))
}

type graphQLResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []struct {
		Message    string                 `json:"message"`
		Extensions map[string]interface{} `json:"extensions"`
	} `json:"errors"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests: /health y middlewares
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeJSON(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestDocs_SwaggerEmbebido(t *testing.T) {
	a, err := app.New(app.Options{HTTP: apphttp.AppConfig{Name: "inventory-dashboard-test", Docs: true}})
	require.NoError(t, err)

	resp := doRequest(t, a.HTTP, http.MethodGet, "/docs", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, a.HTTP, http.MethodGet, "/docs/swagger.json", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "/api/products/{id}/transfer")
	assert.Contains(t, string(raw), "Inventory Dashboard API")
}

func TestDocs_Deshabilitado(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodGet, "/docs", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRequestID_GeneradoYPropagado(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/health", "")
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))
}

func TestCORS_Permisivo(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/graphql", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := buildTestApp(t).Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests: /graphql
// ──────────────────────────────────────────────────────────────────────────────

func TestGraphQL_Products(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodPost, "/graphql",
		`{"query":"query P($w: String) { products(warehouse: $w) { id stock } }","variables":{"w":"BLR-A"}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body graphQLResponse
	decodeJSON(t, resp, &body)
	require.Empty(t, body.Errors)

	var products []struct {
		ID    string `json:"id"`
		Stock int    `json:"stock"`
	}
	require.NoError(t, json.Unmarshal(body.Data["products"], &products))
	require.Len(t, products, 2)
	assert.Equal(t, "P-1001", products[0].ID)
	assert.Equal(t, "P-1002", products[1].ID)
}

func TestGraphQL_GETConQuery(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodGet, "/graphql?query=%7B%20warehouses%20%7B%20code%20%7D%20%7D", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body graphQLResponse
	decodeJSON(t, resp, &body)
	require.Empty(t, body.Errors)
	assert.JSONEq(t, `[{"code":"BLR-A"},{"code":"PNQ-C"},{"code":"DEL-B"}]`, string(body.Data["warehouses"]))
}

func TestGraphQL_MutacionConError(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodPost, "/graphql",
		`{"query":"mutation { transferStock(id: \"P-1002\", from: \"PNQ-C\", to: \"DEL-B\", qty: 10) { id stock } }"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body graphQLResponse
	decodeJSON(t, resp, &body)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "Product not in source warehouse", body.Errors[0].Message)
	assert.Equal(t, "WRONG_SOURCE_WAREHOUSE", body.Errors[0].Extensions["code"])
}

func TestGraphQL_SinQuery(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodPost, "/graphql", `{"variables":{}}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body graphQLResponse
	decodeJSON(t, resp, &body)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "Must provide query string.", body.Errors[0].Message)
}

func TestGraphQL_CuerpoInvalido(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodPost, "/graphql", `{"query":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests: espejo REST
// ──────────────────────────────────────────────────────────────────────────────

func TestREST_ListProducts(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodGet, "/api/products?status=Critical", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ProductListResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, 2, body.Total)
	assert.Equal(t, "Critical", body.Items[0].Status)
}

func TestREST_GetProduct(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/products/P-1003", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var p dto.ProductResponse
	decodeJSON(t, resp, &p)
	assert.Equal(t, "Low", p.Status)

	resp = doRequest(t, app, http.MethodGet, "/api/products/P-0000", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var e dto.ErrorResponse
	decodeJSON(t, resp, &e)
	assert.Equal(t, "NOT_FOUND", e.Code)
}

func TestREST_UpdateDemand(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPut, "/api/products/P-1003/demand", `{"demand":100}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var p dto.ProductResponse
	decodeJSON(t, resp, &p)
	assert.Equal(t, 100, p.Demand)
	assert.Equal(t, "Critical", p.Status)

	resp = doRequest(t, app, http.MethodPut, "/api/products/P-1003/demand", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPut, "/api/products/P-1003/demand", `{"demand":-1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var e dto.ErrorResponse
	decodeJSON(t, resp, &e)
	assert.Equal(t, "VALIDATION", e.Code)
}

func TestREST_TransferStock(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/products/P-1001/transfer", `{"from":"BLR-A","to":"PNQ-C","qty":50}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var p dto.ProductResponse
	decodeJSON(t, resp, &p)
	assert.Equal(t, 130, p.Stock)

	resp = doRequest(t, app, http.MethodPost, "/api/products/P-1004/transfer", `{"from":"DEL-B","to":"BLR-A","qty":25}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var e dto.ErrorResponse
	decodeJSON(t, resp, &e)
	assert.Equal(t, "INSUFFICIENT_STOCK", e.Code)

	resp = doRequest(t, app, http.MethodPost, "/api/products/P-9999/transfer", `{"from":"BLR-A","to":"PNQ-C","qty":1}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// REST y GraphQL aplican las mismas reglas: "to" vacío se acepta y "from" vacío es bodega incorrecta.
func TestREST_TransferStockMismasReglasQueGraphQL(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/products/P-1001/transfer", `{"from":"BLR-A","to":"","qty":1}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var p dto.ProductResponse
	decodeJSON(t, resp, &p)
	assert.Equal(t, 179, p.Stock)

	resp = doRequest(t, app, http.MethodPost, "/graphql",
		`{"query":"mutation { transferStock(id: \"P-1001\", from: \"BLR-A\", to: \"\", qty: 1) { stock } }"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body graphQLResponse
	decodeJSON(t, resp, &body)
	require.Empty(t, body.Errors)
	assert.JSONEq(t, `{"stock":178}`, string(body.Data["transferStock"]))

	resp = doRequest(t, app, http.MethodPost, "/api/products/P-1001/transfer", `{"to":"PNQ-C","qty":1}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var e dto.ErrorResponse
	decodeJSON(t, resp, &e)
	assert.Equal(t, "WRONG_SOURCE_WAREHOUSE", e.Code)

	resp = doRequest(t, app, http.MethodPost, "/api/products/P-1001/transfer", `{"from":"BLR-A","to":"PNQ-C"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestREST_Warehouses(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/warehouses", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.WarehouseListResponse
	decodeJSON(t, resp, &list)
	assert.Equal(t, 3, list.Total)

	resp = doRequest(t, app, http.MethodGet, "/api/warehouses/XXX", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestREST_KPIs(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodGet, "/api/kpis?range=14d", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.KPISeriesResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, "14d", body.Range)
	require.Len(t, body.Points, 14)
	assert.Equal(t, "2026-10-18", body.Points[13].Date)
}

func TestREST_DashboardSummary(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodGet, "/api/dashboard/summary", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	decodeJSON(t, resp, &body)
	assert.EqualValues(t, 334, body["total_stock"])
	assert.EqualValues(t, 400, body["total_demand"])
	assert.Equal(t, "68.5", body["fill_rate"])
}

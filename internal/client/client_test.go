package client_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-dashboard-api/internal/app"
	"github.com/jhoicas/inventory-dashboard-api/internal/client"
)

// newServer levanta la API completa detrás de un servidor HTTP real.
func newServer(t *testing.T) *client.Client {
	t.Helper()
	a, err := app.New(app.Options{})
	require.NoError(t, err)
	srv := httptest.NewServer(adaptor.FiberApp(a.HTTP))
	t.Cleanup(srv.Close)
	return client.New(srv.URL + "/graphql")
}

func TestClient_Products(t *testing.T) {
	c := newServer(t)

	all, err := c.Products(context.Background(), client.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "12mm Hex Bolt", all[0].Name)

	critical, err := c.Products(context.Background(), client.Filter{Status: "Critical", Warehouse: "DEL-B"})
	require.NoError(t, err)
	require.Len(t, critical, 1)
	assert.Equal(t, "P-1004", critical[0].ID)
}

func TestClient_WarehousesYKPIs(t *testing.T) {
	c := newServer(t)

	warehouses, err := c.Warehouses(context.Background())
	require.NoError(t, err)
	assert.Len(t, warehouses, 3)

	points, err := c.KPIs(context.Background(), "14d")
	require.NoError(t, err)
	assert.Len(t, points, 14)
}

func TestClient_Mutaciones(t *testing.T) {
	c := newServer(t)

	p, err := c.UpdateDemand(context.Background(), "P-1003", 100)
	require.NoError(t, err)
	assert.Equal(t, 100, p.Demand)

	p, err = c.TransferStock(context.Background(), "P-1001", "BLR-A", "PNQ-C", 50)
	require.NoError(t, err)
	assert.Equal(t, 130, p.Stock)
}

func TestClient_ErrorGraphQL(t *testing.T) {
	c := newServer(t)

	_, err := c.TransferStock(context.Background(), "P-1004", "DEL-B", "BLR-A", 1000)
	require.Error(t, err)

	var respErr *client.ResponseError
	require.True(t, errors.As(err, &respErr))
	require.Len(t, respErr.Errors, 1)
	assert.Equal(t, "INSUFFICIENT_STOCK", respErr.Errors[0].Code())
	assert.EqualError(t, err, "Insufficient stock")
}

func TestClient_EndpointInalcanzable(t *testing.T) {
	c := client.New("http://127.0.0.1:1/graphql")
	_, err := c.Warehouses(context.Background())
	assert.Error(t, err)
}

func TestNew_EndpointPorDefecto(t *testing.T) {
	assert.NotNil(t, client.New(""))
	assert.Equal(t, "http://localhost:4000/graphql", client.DefaultEndpoint)
}

package cli_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/inventory-dashboard-api/internal/app"
	"github.com/jhoicas/inventory-dashboard-api/internal/cli"
	"github.com/jhoicas/inventory-dashboard-api/internal/client"
)

func newEndpoint(t *testing.T) string {
	t.Helper()
	a, err := app.New(app.Options{})
	require.NoError(t, err)
	srv := httptest.NewServer(adaptor.FiberApp(a.HTTP))
	t.Cleanup(srv.Close)
	return srv.URL + "/graphql"
}

// run ejecuta invctl con los argumentos dados y devuelve la salida estándar.
func run(t *testing.T, endpoint string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := cli.NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--endpoint", endpoint}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestWarehouses_Texto(t *testing.T) {
	out, err := run(t, newEndpoint(t), "warehouses")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "warehouses_text", []byte(out))
}

func TestProducts_JSON(t *testing.T) {
	out, err := run(t, newEndpoint(t), "--format", "json", "products", "--status", "Critical")
	require.NoError(t, err)

	var products []client.Product
	require.NoError(t, json.Unmarshal([]byte(out), &products))
	require.Len(t, products, 2)
	assert.Equal(t, "P-1002", products[0].ID)
	assert.Equal(t, "P-1004", products[1].ID)
}

func TestSummary_YAML(t *testing.T) {
	out, err := run(t, newEndpoint(t), "-o", "yaml", "summary")
	require.NoError(t, err)

	var view cli.SummaryView
	require.NoError(t, yaml.Unmarshal([]byte(out), &view))
	assert.Equal(t, 334, view.TotalStock)
	assert.Equal(t, 400, view.TotalDemand)
	assert.Equal(t, "68.5", view.FillRate)
}

func TestSummary_TextoConFiltro(t *testing.T) {
	out, err := run(t, newEndpoint(t), "summary", "--warehouse", "BLR-A")
	require.NoError(t, err)
	assert.Contains(t, out, "Fill Rate")
	assert.Contains(t, out, "85.0%")
}

func TestKPIs_Rango(t *testing.T) {
	out, err := run(t, newEndpoint(t), "--format", "json", "kpis", "--range", "14d")
	require.NoError(t, err)

	var points []client.KPIPoint
	require.NoError(t, json.Unmarshal([]byte(out), &points))
	assert.Len(t, points, 14)
}

func TestMutaciones(t *testing.T) {
	endpoint := newEndpoint(t)

	out, err := run(t, endpoint, "update-demand", "P-1003", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "Critical")

	out, err = run(t, endpoint, "-o", "json", "transfer", "P-1001", "--from", "BLR-A", "--to", "PNQ-C", "--qty", "50")
	require.NoError(t, err)
	var p client.Product
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, 130, p.Stock)

	_, err = run(t, endpoint, "transfer", "P-1002", "--from", "PNQ-C", "--to", "DEL-B", "--qty", "1")
	assert.EqualError(t, err, "Product not in source warehouse")
}

func TestArgumentosInvalidos(t *testing.T) {
	endpoint := newEndpoint(t)

	_, err := run(t, endpoint, "--format", "xml", "warehouses")
	assert.ErrorContains(t, err, "invalid format")

	_, err = run(t, endpoint, "update-demand", "P-1003", "muchos")
	assert.Error(t, err)

	_, err = run(t, endpoint, "transfer", "P-1001", "--from", "BLR-A")
	assert.Error(t, err, "--to y --qty son obligatorios")
}

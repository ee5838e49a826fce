package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-dashboard-api/internal/application/analytics"
)

var fixedNow = time.Date(2026, time.October, 18, 22, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestRangeDays(t *testing.T) {
	assert.Equal(t, 7, analytics.RangeDays("7d"))
	assert.Equal(t, 14, analytics.RangeDays("14d"))
	assert.Equal(t, 30, analytics.RangeDays("30d"))
	assert.Equal(t, analytics.DefaultRangeDays, analytics.RangeDays("90d"))
	assert.Equal(t, analytics.DefaultRangeDays, analytics.RangeDays(""))
}

func TestGenerate_LongitudOrdenYFechaFinal(t *testing.T) {
	gen := analytics.NewKPIGenerator(analytics.WithSeed(42), analytics.WithClock(fixedClock))

	for _, r := range []string{"7d", "14d", "30d", "1y"} {
		points := gen.Generate(r)
		require.Len(t, points, analytics.RangeDays(r), r)
		assert.Equal(t, "2026-10-18", points[len(points)-1].DateLabel(), r)
		for i := 1; i < len(points); i++ {
			assert.Equal(t, 24*time.Hour, points[i].Date.Sub(points[i-1].Date), "fechas consecutivas en %s", r)
		}
	}
}

func TestGenerate_Rango7d(t *testing.T) {
	gen := analytics.NewKPIGenerator(analytics.WithSeed(1), analytics.WithClock(fixedClock))
	points := gen.Generate("7d")
	require.Len(t, points, 7)
	assert.Equal(t, "2026-10-12", points[0].DateLabel())
}

func TestGenerate_ValoresDentroDeBanda(t *testing.T) {
	gen := analytics.NewKPIGenerator(analytics.WithSeed(7), analytics.WithClock(fixedClock))
	for _, p := range gen.Generate("30d") {
		// 334 * [0.9, 1.1] y 400 * [0.9, 1.1], redondeado.
		assert.GreaterOrEqual(t, p.Stock, 301)
		assert.LessOrEqual(t, p.Stock, 367)
		assert.GreaterOrEqual(t, p.Demand, 360)
		assert.LessOrEqual(t, p.Demand, 440)
	}
}

func TestGenerate_MismaSemillaMismaSerie(t *testing.T) {
	a := analytics.NewKPIGenerator(analytics.WithSeed(99), analytics.WithClock(fixedClock)).Generate("14d")
	b := analytics.NewKPIGenerator(analytics.WithSeed(99), analytics.WithClock(fixedClock)).Generate("14d")
	assert.Equal(t, a, b)
}

func TestGenerate_FechaEnUTC(t *testing.T) {
	// 23:30 en UTC-5 ya es el día siguiente en UTC.
	bogota := time.FixedZone("COT", -5*60*60)
	clock := func() time.Time { return time.Date(2026, time.October, 18, 23, 30, 0, 0, bogota) }
	gen := analytics.NewKPIGenerator(analytics.WithSeed(3), analytics.WithClock(clock))

	points := gen.Generate("7d")
	assert.Equal(t, "2026-10-19", points[len(points)-1].DateLabel())
}

package analytics

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/jhoicas/inventory-dashboard-api/internal/domain/entity"
)

// Línea base de la serie: totales del dataset semilla. No se leen del almacén.
const (
	baseStock  = 334
	baseDemand = 400
	variation  = 0.2 // ancho de la banda: factor uniforme en [0.9, 1.1]
)

// Rangos soportados y su longitud en días. Cualquier otro valor usa DefaultRangeDays.
var rangeDays = map[string]int{
	"7d":  7,
	"14d": 14,
	"30d": 30,
}

// DefaultRangeDays ventana usada para rangos no reconocidos.
const DefaultRangeDays = 30

// RangeDays traduce el rango ("7d", "14d", "30d") a días.
func RangeDays(r string) int {
	if d, ok := rangeDays[r]; ok {
		return d
	}
	return DefaultRangeDays
}

// KPIGenerator produce series sintéticas de stock/demanda. No es determinista salvo que
// se inyecte una fuente aleatoria con semilla fija.
type KPIGenerator struct {
	mu    sync.Mutex // *rand.Rand no es seguro para uso concurrente
	rnd   *rand.Rand
	clock func() time.Time
}

// Option configura el generador.
type Option func(*KPIGenerator)

// WithRand fija la fuente aleatoria.
func WithRand(r *rand.Rand) Option {
	return func(g *KPIGenerator) { g.rnd = r }
}

// WithSeed fija una semilla para obtener series reproducibles.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithClock fija el reloj usado para determinar "hoy".
func WithClock(clock func() time.Time) Option {
	return func(g *KPIGenerator) { g.clock = clock }
}

// NewKPIGenerator construye el generador; por defecto semilla por tiempo y reloj del sistema.
func NewKPIGenerator(opts ...Option) *KPIGenerator {
	g := &KPIGenerator{clock: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		g.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g
}

// Generate devuelve un punto por día calendario (UTC) terminando hoy, del más antiguo al más reciente.
func (g *KPIGenerator) Generate(r string) []entity.KPIPoint {
	days := RangeDays(r)
	now := g.clock().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	g.mu.Lock()
	defer g.mu.Unlock()

	points := make([]entity.KPIPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		points = append(points, entity.KPIPoint{
			Date:   today.AddDate(0, 0, -i),
			Stock:  g.perturb(baseStock),
			Demand: g.perturb(baseDemand),
		})
	}
	return points
}

func (g *KPIGenerator) perturb(base float64) int {
	return int(math.Round(base * (1 + (g.rnd.Float64()-0.5)*variation)))
}

package entity

import "time"

// KPIPoint agregado diario de stock y demanda para la gráfica de tendencia.
type KPIPoint struct {
	Date   time.Time // día calendario (UTC, 00:00)
	Stock  int
	Demand int
}

// DateLabel devuelve la fecha en formato ISO 8601 (YYYY-MM-DD).
func (k KPIPoint) DateLabel() string {
	return k.Date.Format(time.DateOnly)
}

package entity

// Status es la clasificación derivada de un producto.
type Status string

const (
	StatusAll      Status = "All"
	StatusHealthy  Status = "Healthy"
	StatusLow      Status = "Low"
	StatusCritical Status = "Critical"
)

// StatusOf aplica la regla: Healthy si stock > demand, Low si son iguales, Critical si stock < demand.
func StatusOf(stock, demand int) Status {
	switch {
	case stock > demand:
		return StatusHealthy
	case stock == demand:
		return StatusLow
	default:
		return StatusCritical
	}
}

// IsClassification indica si s es uno de los tres estados asignables a un producto.
func (s Status) IsClassification() bool {
	return s == StatusHealthy || s == StatusLow || s == StatusCritical
}

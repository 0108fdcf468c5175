package metrics

import "github.com/shopspring/decimal"

// TrendDirection polaridad de una tendencia para presentación.
type TrendDirection string

const (
	TrendPositive TrendDirection = "positive"
	TrendNegative TrendDirection = "negative"
	TrendNeutral  TrendDirection = "neutral"
)

// Trend variación porcentual de un KPI entre la ventana actual y la de
// comparación.
//
// Cuando el valor de comparación es cero y el actual es positivo, la mejora
// no es acotada: Unbounded=true con Value nil, para que la capa de
// presentación la muestre de forma distinta a un porcentaje (caso "∞").
type Trend struct {
	Value     *decimal.Decimal `json:"value,omitempty"`
	Unbounded bool             `json:"unbounded,omitempty"`
	Direction TrendDirection   `json:"direction"`
}

// TrendBetween calcula la tendencia de current respecto de previous.
//
//	previous == 0 y current > 0  => mejora no acotada, positiva
//	previous == 0 y current <= 0 => (0, neutral)
//	current == previous          => (0, neutral)
//	resto                        => (current - previous) / |previous| * 100
func TrendBetween(current, previous decimal.Decimal) Trend {
	if previous.IsZero() {
		if current.IsPositive() {
			return Trend{Unbounded: true, Direction: TrendPositive}
		}
		zero := decimal.Zero
		return Trend{Value: &zero, Direction: TrendNeutral}
	}
	if current.Equal(previous) {
		zero := decimal.Zero
		return Trend{Value: &zero, Direction: TrendNeutral}
	}

	change := current.Sub(previous).Div(previous.Abs()).Mul(hundred)
	direction := TrendNegative
	if change.IsPositive() {
		direction = TrendPositive
	}
	return Trend{Value: &change, Direction: direction}
}

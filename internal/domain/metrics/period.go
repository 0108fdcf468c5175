package metrics

import "time"

// TimeFilter selector de rango temporal del dashboard.
type TimeFilter string

const (
	TimeAll     TimeFilter = "ALL"
	TimeToday   TimeFilter = "TODAY"
	TimeWeek    TimeFilter = "WEEK"
	TimeMonth   TimeFilter = "MONTH"
	TimeQuarter TimeFilter = "QUARTER"
	TimeYear    TimeFilter = "YEAR"
	TimeCustom  TimeFilter = "CUSTOM"
)

// ComparisonFilter modo de comparación período-sobre-período.
type ComparisonFilter string

const (
	CompareNone           ComparisonFilter = "NONE"
	ComparePreviousPeriod ComparisonFilter = "PREVIOUS_PERIOD"
	ComparePreviousYear   ComparisonFilter = "PREVIOUS_YEAR"
)

// CustomRange fechas explícitas para TimeCustom (YYYY-MM-DD).
type CustomRange struct {
	Start string
	End   string
}

// DateRange ventana [Start, End] inclusiva; End apunta al final del día.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains indica si el instante t cae dentro de la ventana.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ResolveRange traduce el selector de tiempo a una ventana concreta relativa
// a now. Para TimeCustom con fecha de inicio o fin faltante la ventana
// colapsa a [now, now] (rango degenerado vacío, nunca error).
func ResolveRange(filter TimeFilter, custom CustomRange, now time.Time) DateRange {
	switch filter {
	case TimeToday:
		return DateRange{Start: startOfDay(now), End: endOfDay(now)}
	case TimeWeek:
		// Semana con inicio en domingo, igual que la vista original del dashboard.
		start := startOfDay(now.AddDate(0, 0, -int(now.Weekday())))
		return DateRange{Start: start, End: endOfDay(start.AddDate(0, 0, 6))}
	case TimeMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location())
		return DateRange{Start: start, End: endOfDay(end)}
	case TimeQuarter:
		qStart := time.Month((int(now.Month())-1)/3*3 + 1)
		start := time.Date(now.Year(), qStart, 1, 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year(), qStart+3, 0, 0, 0, 0, 0, now.Location())
		return DateRange{Start: start, End: endOfDay(end)}
	case TimeYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location())
		return DateRange{Start: start, End: endOfDay(end)}
	case TimeCustom:
		if custom.Start == "" || custom.End == "" {
			return DateRange{Start: now, End: now}
		}
		start, errS := time.ParseInLocation("2006-01-02", custom.Start, now.Location())
		end, errE := time.ParseInLocation("2006-01-02", custom.End, now.Location())
		if errS != nil || errE != nil {
			return DateRange{Start: now, End: now}
		}
		return DateRange{Start: start, End: endOfDay(end)}
	default: // TimeAll
		return DateRange{Start: time.Unix(0, 0), End: now}
	}
}

// Comparison deriva la ventana de comparación de idéntica duración.
//
//   - ComparePreviousPeriod: desplaza (díasDeDuración + 1) días hacia atrás,
//     de modo que ambas ventanas quedan contiguas y sin traslape.
//   - ComparePreviousYear: mismas fechas calendario un año antes.
//
// Devuelve ok=false cuando el modo es CompareNone.
func (r DateRange) Comparison(mode ComparisonFilter) (DateRange, bool) {
	switch mode {
	case ComparePreviousPeriod:
		shift := int(r.End.Sub(r.Start).Hours()/24) + 1
		return DateRange{
			Start: r.Start.AddDate(0, 0, -shift),
			End:   r.End.AddDate(0, 0, -shift),
		}, true
	case ComparePreviousYear:
		return DateRange{
			Start: r.Start.AddDate(-1, 0, 0),
			End:   r.End.AddDate(-1, 0, 0),
		}, true
	default:
		return DateRange{}, false
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

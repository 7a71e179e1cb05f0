package inventory

// Default thresholds for stock bands.
const (
	DefaultCriticalThreshold = 5
	DefaultLowThreshold      = 15
)

// StockBand is the colour class of a stock quantity.
type StockBand int

const (
	StockHealthy StockBand = iota
	StockLow
	StockCritical
)

func (b StockBand) String() string {
	switch b {
	case StockCritical:
		return "critical"
	case StockLow:
		return "low"
	default:
		return "healthy"
	}
}

// ClassifyStock bands qty using the default thresholds.
func ClassifyStock(qty int) StockBand {
	return ClassifyStockWith(qty, DefaultCriticalThreshold, DefaultLowThreshold)
}

// ClassifyStockWith bands qty: at or below critical is StockCritical, at or
// below low is StockLow, anything else StockHealthy.
func ClassifyStockWith(qty, critical, low int) StockBand {
	switch {
	case qty <= critical:
		return StockCritical
	case qty <= low:
		return StockLow
	default:
		return StockHealthy
	}
}

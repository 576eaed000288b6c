package engine

// Holding is the engine's view of a portfolio asset. Price is in
// cents; Value is always Price × Quantity.
type Holding struct {
	ID       uint
	Ticker   string
	Name     string
	Class    Class
	Price    int64
	Quantity int64
}

// Value returns the holding's market value in cents.
func (h Holding) Value() int64 {
	return h.Price * h.Quantity
}

// TotalValue returns the combined market value of the holdings in cents.
func TotalValue(holdings []Holding) int64 {
	var total int64
	for _, h := range holdings {
		total += h.Value()
	}
	return total
}

// ValueByClass groups holdings by allocation class and sums the value
// per class.
func ValueByClass(holdings []Holding) map[Class]int64 {
	values := make(map[Class]int64)
	for _, h := range holdings {
		values[h.Class] += h.Value()
	}
	return values
}

// PercentByClass returns each class's share of total portfolio value
// as a percentage in [0, 100]. A zero total value yields an empty map
// so absent classes read as 0, never NaN.
func PercentByClass(holdings []Holding) map[Class]float64 {
	total := TotalValue(holdings)
	percents := make(map[Class]float64)
	if total == 0 {
		return percents
	}
	for class, value := range ValueByClass(holdings) {
		percents[class] = float64(value) / float64(total) * 100
	}
	return percents
}

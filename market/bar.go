// Package market holds the bar (OHLCV sample) data model consumed by the
// indicator engine.
package market

// Bar is one OHLCV sample. Time is unix seconds; within a bar sequence times
// must be strictly increasing and unique. Indicators address bars by slice
// position, never by time lookup.
type Bar struct {
	Time   int64
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// HL2 returns the midpoint of the bar's range.
func (b Bar) HL2() float64 {
	return (b.High + b.Low) / 2
}

// TypicalPrice returns (high + low + close) / 3.
func (b Bar) TypicalPrice() float64 {
	return (b.High + b.Low + b.Close) / 3
}

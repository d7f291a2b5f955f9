package indicators

import "math"

// Streaming numeric kernels. Each kernel consumes one value per Update,
// index-ascending, and answers in O(1) amortized state per step; the
// windowed max/min and weighted kernels do a bounded scan over the active
// window. All kernels report NaN until their window has filled; that is the
// uniform warm-up contract every indicator honors.

// WindowSum is a sliding-window sum: values entering the window are added,
// the value leaving is subtracted.
type WindowSum struct {
	period int
	buf    []float64
	head   int
	count  int
	sum    float64
}

func NewWindowSum(period int) *WindowSum {
	return &WindowSum{period: period, buf: make([]float64, period)}
}

func (w *WindowSum) Update(v float64) {
	if w.count >= w.period {
		w.sum -= w.buf[w.head]
	} else {
		w.count++
	}
	w.buf[w.head] = v
	w.head = (w.head + 1) % w.period
	w.sum += v
}

func (w *WindowSum) Ready() bool { return w.count >= w.period }

func (w *WindowSum) Sum() float64 {
	if !w.Ready() {
		return math.NaN()
	}
	return w.sum
}

func (w *WindowSum) Mean() float64 {
	if !w.Ready() {
		return math.NaN()
	}
	return w.sum / float64(w.period)
}

func (w *WindowSum) Reset() {
	w.head, w.count, w.sum = 0, 0, 0
}

// EMA is an incremental exponential moving average, seeded with the simple
// average of the first period samples, then
// ema = (v*2 + (period-1)*ema) / (period+1).
type EMA struct {
	period    int
	count     int
	warmupSum float64
	ema       float64
}

func NewEMA(period int) *EMA { return &EMA{period: period} }

func (e *EMA) Update(v float64) {
	if e.count < e.period {
		e.warmupSum += v
		e.count++
		if e.count == e.period {
			e.ema = e.warmupSum / float64(e.period)
		}
		return
	}
	e.ema = (v*2 + float64(e.period-1)*e.ema) / float64(e.period+1)
}

func (e *EMA) Ready() bool { return e.count >= e.period }

func (e *EMA) Value() float64 {
	if !e.Ready() {
		return math.NaN()
	}
	return e.ema
}

func (e *EMA) Reset() { e.count, e.warmupSum, e.ema = 0, 0, 0 }

// Wilder is the recursive average used by ATR/DMI/ADX: seeded with the first
// sample, then acc = (acc*(period-1) + v) / period.
type Wilder struct {
	period int
	seeded bool
	acc    float64
}

func NewWilder(period int) *Wilder { return &Wilder{period: period} }

func (w *Wilder) Update(v float64) {
	if !w.seeded {
		w.acc = v
		w.seeded = true
		return
	}
	w.acc = (w.acc*float64(w.period-1) + v) / float64(w.period)
}

func (w *Wilder) Ready() bool { return w.seeded }

func (w *Wilder) Value() float64 {
	if !w.seeded {
		return math.NaN()
	}
	return w.acc
}

func (w *Wilder) Reset() { w.seeded, w.acc = false, 0 }

// MinMax tracks the highest and lowest value over the trailing window.
type MinMax struct {
	period int
	buf    []float64
	head   int
	count  int
}

func NewMinMax(period int) *MinMax {
	return &MinMax{period: period, buf: make([]float64, period)}
}

func (m *MinMax) Update(v float64) {
	m.buf[m.head] = v
	m.head = (m.head + 1) % m.period
	if m.count < m.period {
		m.count++
	}
}

func (m *MinMax) Ready() bool { return m.count >= m.period }

func (m *MinMax) Highest() float64 {
	if !m.Ready() {
		return math.NaN()
	}
	hi := m.buf[0]
	for _, v := range m.buf[1:] {
		if v > hi {
			hi = v
		}
	}
	return hi
}

func (m *MinMax) Lowest() float64 {
	if !m.Ready() {
		return math.NaN()
	}
	lo := m.buf[0]
	for _, v := range m.buf[1:] {
		if v < lo {
			lo = v
		}
	}
	return lo
}

func (m *MinMax) Reset() { m.head, m.count = 0, 0 }

// WindowStats tracks mean, mean absolute deviation, variance, and standard
// deviation over the trailing window. With sample set, variance divides by
// period-1 instead of period.
type WindowStats struct {
	period int
	sample bool
	buf    []float64
	head   int
	count  int
	sum    float64
}

func NewWindowStats(period int, sample bool) *WindowStats {
	return &WindowStats{period: period, sample: sample, buf: make([]float64, period)}
}

func (s *WindowStats) Update(v float64) {
	if s.count >= s.period {
		s.sum -= s.buf[s.head]
	} else {
		s.count++
	}
	s.buf[s.head] = v
	s.head = (s.head + 1) % s.period
	s.sum += v
}

func (s *WindowStats) Ready() bool { return s.count >= s.period }

func (s *WindowStats) Mean() float64 {
	if !s.Ready() {
		return math.NaN()
	}
	return s.sum / float64(s.period)
}

// MeanDev is the mean absolute deviation from the window mean.
func (s *WindowStats) MeanDev() float64 {
	if !s.Ready() {
		return math.NaN()
	}
	mean := s.sum / float64(s.period)
	dev := 0.0
	for _, v := range s.buf {
		dev += math.Abs(v - mean)
	}
	return dev / float64(s.period)
}

func (s *WindowStats) Variance() float64 {
	if !s.Ready() {
		return math.NaN()
	}
	mean := s.sum / float64(s.period)
	sq := 0.0
	for _, v := range s.buf {
		d := v - mean
		sq += d * d
	}
	div := float64(s.period)
	if s.sample {
		if s.period < 2 {
			return math.NaN()
		}
		div = float64(s.period - 1)
	}
	return sq / div
}

func (s *WindowStats) StdDev() float64 { return math.Sqrt(s.Variance()) }

func (s *WindowStats) Reset() { s.head, s.count, s.sum = 0, 0, 0 }

// LinReg fits a least-squares line over the trailing window and evaluates it
// at the window endpoint.
type LinReg struct {
	period int
	buf    []float64
	head   int
	count  int
}

func NewLinReg(period int) *LinReg {
	return &LinReg{period: period, buf: make([]float64, period)}
}

func (l *LinReg) Update(v float64) {
	l.buf[l.head] = v
	l.head = (l.head + 1) % l.period
	if l.count < l.period {
		l.count++
	}
}

func (l *LinReg) Ready() bool { return l.count >= l.period }

func (l *LinReg) Value() float64 {
	if !l.Ready() {
		return math.NaN()
	}
	n := float64(l.period)
	if l.period == 1 {
		return l.buf[(l.head+l.period-1)%l.period]
	}

	// x runs 0..period-1 oldest to newest; head points at the oldest slot.
	sumX := n * (n - 1) / 2
	sumXX := n * (n - 1) * (2*n - 1) / 6
	sumY, sumXY := 0.0, 0.0
	for i := 0; i < l.period; i++ {
		y := l.buf[(l.head+i)%l.period]
		sumY += y
		sumXY += float64(i) * y
	}

	slope := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / n
	return intercept + slope*(n-1)
}

func (l *LinReg) Reset() { l.head, l.count = 0, 0 }

// WeightedSum applies a fixed weight vector across the trailing window,
// oldest value first. WMA uses linear weights, ALMA Gaussian weights.
type WeightedSum struct {
	weights []float64
	total   float64
	buf     []float64
	head    int
	count   int
}

func NewWeightedSum(weights []float64) *WeightedSum {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	return &WeightedSum{weights: weights, total: total, buf: make([]float64, len(weights))}
}

func (w *WeightedSum) Update(v float64) {
	n := len(w.weights)
	w.buf[w.head] = v
	w.head = (w.head + 1) % n
	if w.count < n {
		w.count++
	}
}

func (w *WeightedSum) Ready() bool { return w.count >= len(w.weights) }

func (w *WeightedSum) Sum() float64 {
	if !w.Ready() {
		return math.NaN()
	}
	n := len(w.weights)
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += w.weights[i] * w.buf[(w.head+i)%n]
	}
	return sum
}

// Mean is the weighted sum normalized by the weight total.
func (w *WeightedSum) Mean() float64 { return w.Sum() / w.total }

func (w *WeightedSum) Reset() { w.head, w.count = 0, 0 }

// Delay replays the value pushed lag updates earlier.
type Delay struct {
	lag   int
	buf   []float64
	head  int
	count int
}

func NewDelay(lag int) *Delay {
	return &Delay{lag: lag, buf: make([]float64, lag+1)}
}

func (d *Delay) Update(v float64) {
	d.buf[d.head] = v
	d.head = (d.head + 1) % len(d.buf)
	if d.count < len(d.buf) {
		d.count++
	}
}

func (d *Delay) Ready() bool { return d.count >= len(d.buf) }

// Value returns the sample lag updates before the most recent one.
func (d *Delay) Value() float64 {
	if !d.Ready() {
		return math.NaN()
	}
	return d.buf[d.head]
}

func (d *Delay) Reset() { d.head, d.count = 0, 0 }

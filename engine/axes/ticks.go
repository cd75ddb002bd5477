package axes

import (
	"math"
	"strconv"
)

// Tick is a single tick mark: its data-space position and label.
type Tick struct {
	X    float64
	Text string
}

// TicksChanged reports whether any axis differs in tick count, position or label.
//
// Parameters:
//   - a, b: per-axis tick lists
//
// Returns:
//   - bool: true if the lists differ on any axis
func TicksChanged(a, b [3][]Tick) bool {
	for i := 0; i < 3; i++ {
		if len(a[i]) != len(b[i]) {
			return true
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return true
			}
		}
	}
	return false
}

// TickMode selects how CalcTicks places ticks.
type TickMode int

const (
	// TickModeAuto lets the calculator pick spacing from the request length.
	TickModeAuto TickMode = iota
	// TickModeManual uses Tick0 and DTick as given.
	TickModeManual
)

// TickRequest describes one axis's tick computation.
type TickRequest struct {
	// Range is the visible data range [lo, hi].
	Range [2]float64
	// AxisType is "linear" or "log"; log ranges are in log10 units.
	AxisType string
	Mode     TickMode
	// NTicks is the target tick count in auto mode.
	NTicks int
	Tick0  float64
	DTick  float64
}

// TickCalculator computes ticks for an axis.
type TickCalculator interface {
	// AutoTicks picks a round tick origin and spacing close to roughDTick.
	//
	// Parameters:
	//   - axisType: "linear" or "log"
	//   - roughDTick: desired spacing in data units
	//
	// Returns:
	//   - tick0, dtick: origin and spacing to pass back in a manual request
	AutoTicks(axisType string, roughDTick float64) (tick0, dtick float64)

	// CalcTicks lists the ticks inside req.Range.
	//
	// Parameters:
	//   - req: range, mode and spacing
	//
	// Returns:
	//   - []Tick: ticks in increasing order
	CalcTicks(req TickRequest) []Tick
}

// maxTicks bounds CalcTicks so a tiny DTick cannot produce an unbounded list.
const maxTicks = 1000

// LinearTicks is the default TickCalculator. Spacings are 1, 2 or 5 times a power of ten.
type LinearTicks struct{}

var _ TickCalculator = LinearTicks{}

func (LinearTicks) AutoTicks(axisType string, roughDTick float64) (float64, float64) {
	// log ranges are in decades; keep whole-decade spacing once a decade fits
	if axisType == "log" && roughDTick >= 1 {
		return 0, math.Round(roughDTick)
	}
	return 0, niceStep(roughDTick)
}

func (t LinearTicks) CalcTicks(req TickRequest) []Tick {
	lo, hi := req.Range[0], req.Range[1]
	if lo > hi {
		lo, hi = hi, lo
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) || math.IsNaN(lo) || math.IsNaN(hi) {
		return nil
	}

	tick0, dtick := req.Tick0, req.DTick
	if req.Mode == TickModeAuto || dtick <= 0 {
		n := req.NTicks
		if n <= 0 {
			n = 5
		}
		tick0, dtick = t.AutoTicks(req.AxisType, (hi-lo)/float64(n))
	}
	if dtick <= 0 || math.IsNaN(dtick) {
		return nil
	}

	digits := max(decimals(dtick), decimals(tick0))
	var out []Tick
	start := math.Ceil((lo-tick0)/dtick-1e-9)*dtick + tick0
	for k := 0; k < maxTicks; k++ {
		x := start + float64(k)*dtick
		if x > hi+dtick*1e-9 {
			break
		}
		if math.Abs(x) < dtick*1e-9 {
			x = 0
		}
		out = append(out, Tick{X: x, Text: formatTick(req.AxisType, x, digits)})
	}
	return out
}

func niceStep(rough float64) float64 {
	if rough <= 0 || math.IsNaN(rough) || math.IsInf(rough, 0) {
		return 1
	}
	base := math.Pow(10, math.Floor(math.Log10(rough)))
	f := rough / base
	switch {
	case f < 1.5:
		return base
	case f < 3.5:
		return 2 * base
	case f < 7.5:
		return 5 * base
	default:
		return 10 * base
	}
}

func formatTick(axisType string, x float64, digits int) string {
	if axisType == "log" {
		return strconv.FormatFloat(math.Pow(10, x), 'g', 6, 64)
	}
	return strconv.FormatFloat(x, 'f', digits, 64)
}

// decimals is the fewest fractional digits that write v exactly, capped at 15.
func decimals(v float64) int {
	v = math.Abs(v)
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	scaled := v
	for k := 0; k < 15; k++ {
		if math.Abs(scaled-math.Round(scaled)) <= 1e-9*math.Max(scaled, 1) {
			return k
		}
		scaled *= 10
	}
	return 15
}

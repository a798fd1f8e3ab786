package planner

import (
	"math"
	"time"

	"github.com/lokomat-fes/lokictl/pkg/types"
)

// FixedCadence is a synthetic gait source: both legs cycle with a constant
// stride period, the right leg half a stride out of phase with the left. It
// backs the offline plan preview; a treadmill-driven source would replace it
// once acquisition exists.
type FixedCadence struct {
	Period time.Duration
}

// StrideFraction implements GaitData.
func (g FixedCadence) StrideFraction(t time.Duration, side types.Side) float64 {
	if g.Period <= 0 {
		return 0
	}
	frac := math.Mod(t.Seconds()/g.Period.Seconds(), 1)
	if frac < 0 {
		frac += 1
	}
	if side == types.Right {
		frac = math.Mod(frac+0.5, 1)
	}
	return frac
}

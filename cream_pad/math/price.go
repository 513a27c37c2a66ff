package math

import (
	stdmath "math"

	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/shared"
)

// CalculatePrice evaluates the decay curve for the round after currentRound.
//
// totalBoost accumulates 1 - min(boost_i, timeShiftMax) over the first
// currentRound entries of boostHistory: a round that under-shot demand
// (boost 0) contributes a full unit of decay, a round at target contributes
// close to nothing. The curve is evaluated in f64 and the result truncated to
// the integer price unit, floored at ptmax.
//
// tmax must exceed 1; a single-round auction never evaluates the curve, and
// pad creation rejects tmax values the curve cannot handle.
func CalculatePrice(
	p0 uint64,
	ptmax uint64,
	tmax uint64,
	currentRound int,
	boostHistory []uint64,
	decayModel shared.DecayModelType,
	timeShiftMax uint64,
) uint64 {
	var totalBoost float64
	for i, boost := range boostHistory {
		if i >= currentRound {
			break
		}
		if boost > timeShiftMax {
			boost = timeShiftMax
		}
		totalBoost += 1.0 - float64(boost)
	}
	return evaluate(p0, ptmax, tmax, totalBoost, decayModel)
}

// CalculateCollectionPrice is the collection twin over a real-valued boost
// history.
func CalculateCollectionPrice(
	p0 uint64,
	ptmax uint64,
	tmax uint64,
	currentRound int,
	boostHistory []float64,
	decayModel shared.DecayModelType,
	timeShiftMax uint64,
) uint64 {
	var totalBoost float64
	for i, boost := range boostHistory {
		if i >= currentRound {
			break
		}
		if max := float64(timeShiftMax); boost > max {
			boost = max
		}
		totalBoost += 1.0 - boost
	}
	return evaluate(p0, ptmax, tmax, totalBoost, decayModel)
}

func evaluate(p0, ptmax, tmax uint64, totalBoost float64, decayModel shared.DecayModelType) uint64 {
	if decayModel == shared.DecayModelLinear {
		k0 := (float64(p0) - float64(ptmax)) / float64(tmax-1)
		price := float64(p0) - k0*totalBoost
		if floor := float64(ptmax); price < floor {
			price = floor
		}
		return uint64(price)
	}

	if p0 <= ptmax {
		return ptmax
	}
	lambda0 := (stdmath.Log(float64(p0)) - stdmath.Log(float64(ptmax))) / float64(tmax-1)
	price := float64(p0) * stdmath.Exp(-lambda0*totalBoost)
	if floor := float64(ptmax); price < floor {
		price = floor
	}
	return uint64(price)
}

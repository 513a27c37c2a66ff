package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/shared"
)

func TestCalculatePriceLinear(t *testing.T) {
	// p0=1000, ptmax=100, tmax=5 gives k0 = (1000-100)/4 = 225.
	t.Run("two units of decay", func(t *testing.T) {
		// Two fully missed rounds, boost 0 each, accumulate totalBoost=2.
		price := CalculatePrice(1000, 100, 5, 2, []uint64{0, 0}, shared.DecayModelLinear, 4)
		assert.Equal(t, uint64(550), price)
	})

	t.Run("boost at one cancels decay", func(t *testing.T) {
		price := CalculatePrice(1000, 100, 5, 2, []uint64{1, 1}, shared.DecayModelLinear, 4)
		assert.Equal(t, uint64(1000), price)
	})

	t.Run("floors at ptmax", func(t *testing.T) {
		price := CalculatePrice(1000, 100, 5, 4, []uint64{0, 0, 0, 0}, shared.DecayModelLinear, 4)
		assert.Equal(t, uint64(100), price)
	})

	t.Run("only first currentRound entries count", func(t *testing.T) {
		short := CalculatePrice(1000, 100, 5, 1, []uint64{0, 0, 0}, shared.DecayModelLinear, 4)
		full := CalculatePrice(1000, 100, 5, 3, []uint64{0, 0, 0}, shared.DecayModelLinear, 4)
		assert.Equal(t, uint64(775), short)
		assert.Equal(t, uint64(325), full)
	})

	t.Run("history boost capped at timeShiftMax", func(t *testing.T) {
		// Boost 100 with cap 4 reads as 4: totalBoost = 1-4 = -3, price rises
		// above p0 only as far as the stored value allows.
		price := CalculatePrice(1000, 100, 5, 1, []uint64{100}, shared.DecayModelLinear, 4)
		capped := CalculatePrice(1000, 100, 5, 1, []uint64{4}, shared.DecayModelLinear, 4)
		assert.Equal(t, capped, price)
	})
}

func TestCalculatePriceExponential(t *testing.T) {
	t.Run("full decay reaches ptmax", func(t *testing.T) {
		// lambda0 = (ln 1000 - ln 100) / 4; totalBoost 4 decays all the way.
		price := CalculatePrice(1000, 100, 5, 4, []uint64{0, 0, 0, 0}, shared.DecayModelExponential, 4)
		assert.Equal(t, uint64(100), price)
	})

	t.Run("monotone non-increasing in decay", func(t *testing.T) {
		prev := uint64(1000)
		history := []uint64{}
		for round := 1; round <= 4; round++ {
			history = append(history, 0)
			price := CalculatePrice(1000, 100, 5, round, history, shared.DecayModelExponential, 4)
			require.LessOrEqual(t, price, prev)
			require.GreaterOrEqual(t, price, uint64(100))
			prev = price
		}
	})

	t.Run("degenerate curve pins to ptmax", func(t *testing.T) {
		price := CalculatePrice(100, 100, 5, 2, []uint64{0, 0}, shared.DecayModelExponential, 4)
		assert.Equal(t, uint64(100), price)
	})
}

func TestCalculateCollectionPrice(t *testing.T) {
	t.Run("real valued boost", func(t *testing.T) {
		// totalBoost = (1-0.5)+(1-0.25) = 1.25; price = 1000 - 225*1.25.
		price := CalculateCollectionPrice(1000, 100, 5, 2, []float64{0.5, 0.25}, shared.DecayModelLinear, 4)
		assert.Equal(t, uint64(718), price)
	})

	t.Run("matches integer variant on integer history", func(t *testing.T) {
		a := CalculatePrice(1000, 100, 5, 2, []uint64{0, 1}, shared.DecayModelLinear, 4)
		b := CalculateCollectionPrice(1000, 100, 5, 2, []float64{0, 1}, shared.DecayModelLinear, 4)
		assert.Equal(t, a, b)
	})
}

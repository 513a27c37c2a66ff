package math

import (
	"math/big"
	"math/bits"

	"github.com/shopspring/decimal"

	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/shared"
)

// AdjustAmount rescales amount between two fixed-point decimal precisions.
// Scaling down floors toward zero; the discarded remainder is not carried.
func AdjustAmount(amount uint64, fromDecimals, toDecimals uint8) uint64 {
	if toDecimals > fromDecimals {
		return amount * pow10(toDecimals-fromDecimals)
	}
	return amount / pow10(fromDecimals-toDecimals)
}

// MulChecked multiplies two uint64 values and reports whether the product
// fits in 64 bits.
func MulChecked(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, false
	}
	return lo, true
}

func pow10(n uint8) uint64 {
	out := uint64(1)
	for i := uint8(0); i < n; i++ {
		out *= 10
	}
	return out
}

// CalculateTotalPrice computes amount * price in the payment mint's decimals.
// Both inputs are adjusted from the internal unit first, the product evaluated
// at full width and divided back by 10^outputDecimals, truncating.
func CalculateTotalPrice(amount, price uint64, fromDecimals, toDecimals, outputDecimals uint8) uint64 {
	adjustedAmount := AdjustAmount(amount, fromDecimals, toDecimals)
	adjustedPrice := AdjustAmount(price, fromDecimals, outputDecimals)

	a := decimal.NewFromBigInt(new(big.Int).SetUint64(adjustedAmount), 0)
	p := decimal.NewFromBigInt(new(big.Int).SetUint64(adjustedPrice), 0)
	total := a.Mul(p).Shift(-int32(outputDecimals)).Floor()
	return total.BigInt().Uint64()
}

// ApplyBasePoint returns floor(amount * bp / 10000).
func ApplyBasePoint(amount uint64, bp uint16) uint64 {
	d := decimal.NewFromBigInt(new(big.Int).SetUint64(amount), 0)
	return d.Mul(decimal.NewFromInt(int64(bp))).Shift(-4).Floor().BigInt().Uint64()
}

// ShareBasePoint returns floor(part * 10000 / whole). whole must be non-zero.
func ShareBasePoint(part, whole uint64) uint64 {
	n := new(big.Int).Mul(new(big.Int).SetUint64(part), big.NewInt(shared.BasePoint))
	return new(big.Int).Div(n, new(big.Int).SetUint64(whole)).Uint64()
}

// SplitUnsold divides unsold supply into the lock (or treasury) and
// distribution pools by basis points. Both shares floor independently; any
// 1-unit rounding loss stays unallocated.
func SplitUnsold(unsold uint64, lockBp, distributionBp uint16) (lockAmount, distributionAmount uint64) {
	return ApplyBasePoint(unsold, lockBp), ApplyBasePoint(unsold, distributionBp)
}

// SplitUnsoldToTreasury is the collection variant: a rounding remainder is
// allocated to the treasury side, never to distribution.
func SplitUnsoldToTreasury(unsold uint64, treasuryBp, distributionBp uint16) (treasuryAmount, distributionAmount uint64) {
	treasuryAmount, distributionAmount = SplitUnsold(unsold, treasuryBp, distributionBp)
	if treasuryAmount+distributionAmount != unsold {
		treasuryAmount++
	}
	return treasuryAmount, distributionAmount
}

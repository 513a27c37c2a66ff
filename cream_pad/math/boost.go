package math

// CalculateBoost converts a round's realized-vs-expected sales ratio into a
// capped boost value. Underperforming rounds (actual < expected) earn no
// boost. The ratio is evaluated in f64 and the result truncated to the
// fungible variant's integer boost unit.
//
// expectedSales must be non-zero; callers guarantee tmax >= 1 and derive
// expectedSales as totalSupply / tmax.
func CalculateBoost(actualSales, expectedSales, omega, alpha, timeShiftMax uint64) uint64 {
	if actualSales < expectedSales {
		return 0
	}
	ratio := float64(actualSales) / float64(expectedSales)
	boost := float64(alpha) * float64(omega) * ratio
	if max := float64(timeShiftMax); boost > max {
		boost = max
	}
	return uint64(boost)
}

// CalculateCollectionBoost is the collection variant: same rule, but the
// boost is carried as a real value end to end.
func CalculateCollectionBoost(actualSales, expectedSales, omega, alpha, timeShiftMax uint64) float64 {
	if actualSales < expectedSales {
		return 0
	}
	ratio := float64(actualSales) / float64(expectedSales)
	boost := float64(alpha) * float64(omega) * ratio
	if max := float64(timeShiftMax); boost > max {
		boost = max
	}
	return boost
}

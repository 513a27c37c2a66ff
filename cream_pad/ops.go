package cream_pad

// Engine operations take the current state of every record they touch and
// return fresh updated copies plus transfer deltas. Nothing is mutated in
// place; the caller commits all returned records in one transaction or none
// of them. Time is read once by the caller and passed in as now.

// TokenDelta is one token movement the caller must execute, already scaled
// to the mint's actual decimals.
type TokenDelta struct {
	Amount   uint64
	Decimals uint8
}

// LamportsDelta is a native-asset movement (minting fees).
type LamportsDelta struct {
	Amount uint64
}

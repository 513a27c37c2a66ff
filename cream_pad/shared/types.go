package shared

const (
	// BasePoint is the denominator for every percentage split in the program.
	BasePoint = 10_000

	// InternalDecimals is the fixed-point precision every economic quantity is
	// carried in, regardless of the actual mint's decimals.
	InternalDecimals = 9

	FirstRound = 1
)

type ProgramStatus uint8

const (
	ProgramStatusNormal ProgramStatus = 0
	ProgramStatusHalted ProgramStatus = 1
)

type AuctionStatus uint8

const (
	AuctionStatusStarted                         AuctionStatus = 0
	AuctionStatusEnded                           AuctionStatus = 1
	AuctionStatusSoldOut                         AuctionStatus = 2
	AuctionStatusUnsoldLockedAndDistributionOpen AuctionStatus = 3
	AuctionStatusUnsoldUnlocked                  AuctionStatus = 4
)

type AuctionRoundStatus uint8

const (
	AuctionRoundStatusStarted AuctionRoundStatus = 0
	AuctionRoundStatusEnded   AuctionRoundStatus = 1
)

type UserAuctionStatus uint8

const (
	UserAuctionStatusNone UserAuctionStatus = 0
)

type DecayModelType uint8

const (
	DecayModelLinear      DecayModelType = 0
	DecayModelExponential DecayModelType = 1
)

func (s AuctionStatus) String() string {
	switch s {
	case AuctionStatusStarted:
		return "Started"
	case AuctionStatusEnded:
		return "Ended"
	case AuctionStatusSoldOut:
		return "SoldOut"
	case AuctionStatusUnsoldLockedAndDistributionOpen:
		return "UnsoldLockedAndDistributionOpen"
	case AuctionStatusUnsoldUnlocked:
		return "UnsoldUnlocked"
	}
	return "Unknown"
}

func (s AuctionRoundStatus) String() string {
	if s == AuctionRoundStatusEnded {
		return "Ended"
	}
	return "Started"
}

func (m DecayModelType) String() string {
	if m == DecayModelExponential {
		return "Exponential"
	}
	return "Linear"
}

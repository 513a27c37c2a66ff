package cream_pad

import "errors"

// Program error set. Every operation fails terminally with one of these (or a
// wrapped form); there is no soft-error category and no partial commit.
var (
	ErrInvalidSigningAuthority             = errors.New("invalid signing authority")
	ErrInvalidBackAuthority                = errors.New("invalid back authority")
	ErrValueIsZero                         = errors.New("value is zero")
	ErrMathOverflow                        = errors.New("math overflow")
	ErrInvalidFeeBasePoint                 = errors.New("invalid fee base point")
	ErrInvalidDistributionAndLockBasePoint = errors.New("invalid distribution and lock base point")
	ErrProgramHalted                       = errors.New("program halted")
	ErrExceedRoundsLimit                   = errors.New("exceed rounds limit")
	ErrInvalidRoundEnder                   = errors.New("invalid round ender")
	ErrInvalidRoundStarter                 = errors.New("invalid round starter")
	ErrInvalidSupplyLocker                 = errors.New("invalid supply locker")
	ErrInvalidCreator                      = errors.New("invalid creator")
	ErrAuctionRoundStillHaveTime           = errors.New("auction round still have time")
	ErrAuctionRoundTimeRunOut              = errors.New("auction round time run out")
	ErrAuctionIsEndedOrSoldOut             = errors.New("auction is ended or sold out")
	ErrAuctionRoundAlreadyEnded            = errors.New("auction round already ended")
	ErrAuctionPreviousRoundNotEnded        = errors.New("auction previous round not ended")
	ErrInvalidCurrentRound                 = errors.New("invalid current round")
	ErrInvalidPreviousRound                = errors.New("invalid previous round")
	ErrInvalidNextRound                    = errors.New("invalid next round")
	ErrInvalidPTMax                        = errors.New("invalid ptmax")
	ErrSupplyExceeded                      = errors.New("supply exceeded")
	ErrAuctionNotEnded                     = errors.New("auction not ended")
	ErrAuctionNotAtLock                    = errors.New("auction not at lock")
	ErrAuctionNotAtDistribution            = errors.New("auction not at distribution")
	ErrAuctionHaveTimeToUnlock             = errors.New("auction have time to unlock")
	ErrInvalidBuyIndex                     = errors.New("invalid buy index")
	ErrBuyLimitExceeded                    = errors.New("buy limit exceeded")
	ErrDistributionClaimed                 = errors.New("distribution already claimed")
	ErrDuplicateCreatorAddress             = errors.New("duplicate creator address")
	ErrInvalidCreatorShare                 = errors.New("invalid creator share")
	ErrInvalidSellerFeeBasisPoints         = errors.New("invalid seller fee basis points")
	ErrSupplyNotEvenlyDivisible            = errors.New("supply not evenly divisible")
	ErrExceedingEndIndex                   = errors.New("exceeding end index")
	ErrTreasuryFull                        = errors.New("treasury full")
	ErrReceiptFull                         = errors.New("receipt full")
	ErrDistributionFull                    = errors.New("distribution full")
	ErrNotEligibleForDistribution          = errors.New("not eligible for collection distribution")
	ErrHaveCollectionUpdateAuthority       = errors.New("collection update authority already handed over")
	ErrMissingCollectionUpdateAuthority    = errors.New("collection update authority not held")
)

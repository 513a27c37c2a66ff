package cream_pad

import (
	solanago "github.com/gagliardetto/solana-go"

	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/shared"
)

// Validation helpers. Each mirrors one gate of the on-chain program: inputs
// are checked fully before any updated record is constructed, so a failing
// operation leaves no partial state behind.

func checkSigningAuthority(fromConfig, fromInput solanago.PublicKey) error {
	if !fromConfig.Equals(fromInput) {
		return ErrInvalidSigningAuthority
	}
	return nil
}

func checkBackAuthority(fromConfig, fromInput solanago.PublicKey) error {
	if !fromConfig.Equals(fromInput) {
		return ErrInvalidBackAuthority
	}
	return nil
}

func checkValueIsZero(value uint64) error {
	if value == 0 {
		return ErrValueIsZero
	}
	return nil
}

func checkFeeBasePoint(value uint16) error {
	if value >= shared.BasePoint {
		return ErrInvalidFeeBasePoint
	}
	return nil
}

func checkDistributionAndLockBasePoint(value uint16) error {
	if value > shared.BasePoint {
		return ErrInvalidDistributionAndLockBasePoint
	}
	return nil
}

func checkProgramWorking(status shared.ProgramStatus) error {
	if status == shared.ProgramStatusHalted {
		return ErrProgramHalted
	}
	return nil
}

func checkRoundLimit(fromConfig, fromParam uint16) error {
	if fromParam > fromConfig {
		return ErrExceedRoundsLimit
	}
	return nil
}

func checkPTMax(p0, ptmax uint64) error {
	if p0 < ptmax {
		return ErrInvalidPTMax
	}
	return nil
}

func checkRoundEnder(creator, backAuthority, ender solanago.PublicKey) error {
	if !ender.Equals(creator) && !ender.Equals(backAuthority) {
		return ErrInvalidRoundEnder
	}
	return nil
}

func checkRoundStarter(creator, backAuthority, starter solanago.PublicKey) error {
	if !starter.Equals(creator) && !starter.Equals(backAuthority) {
		return ErrInvalidRoundStarter
	}
	return nil
}

func checkSupplyLocker(creator, backAuthority, locker solanago.PublicKey) error {
	if !locker.Equals(creator) && !locker.Equals(backAuthority) {
		return ErrInvalidSupplyLocker
	}
	return nil
}

func checkCreator(creator, fromInput solanago.PublicKey) error {
	if !fromInput.Equals(creator) {
		return ErrInvalidCreator
	}
	return nil
}

func checkRoundNotEnded(status shared.AuctionRoundStatus) error {
	if status == shared.AuctionRoundStatusEnded {
		return ErrAuctionRoundAlreadyEnded
	}
	return nil
}

func checkPreviousRoundEnded(status shared.AuctionRoundStatus) error {
	if status == shared.AuctionRoundStatusStarted {
		return ErrAuctionPreviousRoundNotEnded
	}
	return nil
}

func checkAuctionStarted(status shared.AuctionStatus) error {
	if status != shared.AuctionStatusStarted {
		return ErrAuctionIsEndedOrSoldOut
	}
	return nil
}

func checkCurrentRound(fromAccount, fromParam uint16) error {
	if fromAccount != fromParam {
		return ErrInvalidCurrentRound
	}
	return nil
}

func checkPreviousRound(fromAccount, fromParam uint16) error {
	if fromAccount != fromParam {
		return ErrInvalidPreviousRound
	}
	return nil
}

func checkNextRound(expected, fromParam uint16) error {
	if expected != fromParam {
		return ErrInvalidNextRound
	}
	return nil
}

// Round expiry and unlock eligibility are checked lazily against the clock
// read supplied by the caller; nothing transitions on its own.

func checkRoundStillHaveTime(canEndAt, now int64) error {
	if canEndAt > now {
		return ErrAuctionRoundStillHaveTime
	}
	return nil
}

func checkRoundTimeNotRunOut(endAt, now int64) error {
	if endAt < now {
		return ErrAuctionRoundTimeRunOut
	}
	return nil
}

func checkRemainingSupply(current, total uint64) error {
	if current > total {
		return ErrSupplyExceeded
	}
	return nil
}

func checkBuyIndex(fromParam, expected uint64) error {
	if fromParam != expected {
		return ErrInvalidBuyIndex
	}
	return nil
}

func checkAuctionEnded(status shared.AuctionStatus) error {
	if status != shared.AuctionStatusEnded && status != shared.AuctionStatusSoldOut {
		return ErrAuctionNotEnded
	}
	return nil
}

func checkAuctionLocked(status shared.AuctionStatus) error {
	if status != shared.AuctionStatusUnsoldLockedAndDistributionOpen {
		return ErrAuctionNotAtLock
	}
	return nil
}

func checkAuctionAtDistribution(status shared.AuctionStatus) error {
	if status != shared.AuctionStatusUnsoldLockedAndDistributionOpen &&
		status != shared.AuctionStatusUnsoldUnlocked {
		return ErrAuctionNotAtDistribution
	}
	return nil
}

func checkCanUnlock(unlockAt, now int64) error {
	if unlockAt > now {
		return ErrAuctionHaveTimeToUnlock
	}
	return nil
}

func checkRoundBuyLimit(currentAmount, buyLimit uint64) error {
	if currentAmount > buyLimit {
		return ErrBuyLimitExceeded
	}
	return nil
}

func checkUniqueCreators(creators []shared.AssetCreator) error {
	seen := make(map[solanago.PublicKey]struct{}, len(creators))
	for _, c := range creators {
		if _, ok := seen[c.Address]; ok {
			return ErrDuplicateCreatorAddress
		}
		seen[c.Address] = struct{}{}
	}
	return nil
}

func checkCreatorsShare(share uint8) error {
	if share != 100 {
		return ErrInvalidCreatorShare
	}
	return nil
}

func checkSellerFeeBasisPoints(value uint16) error {
	if value > shared.BasePoint {
		return ErrInvalidSellerFeeBasisPoints
	}
	return nil
}

func checkSupplyEvenlyDivisible(supply, tmax uint64) error {
	if supply%tmax != 0 {
		return ErrSupplyNotEvenlyDivisible
	}
	return nil
}

func checkExceedingEndIndex(current, end uint64) error {
	if current > end {
		return ErrExceedingEndIndex
	}
	return nil
}

func checkTreasuryFull(current, total uint64) error {
	if current > total {
		return ErrTreasuryFull
	}
	return nil
}

func checkReceiptFull(current, total uint64) error {
	if current > total {
		return ErrReceiptFull
	}
	return nil
}

func checkDistributionFull(current, total uint64) error {
	if current > total {
		return ErrDistributionFull
	}
	return nil
}

func checkEligibleForDistribution(share uint64) error {
	if share == 0 {
		return ErrNotEligibleForDistribution
	}
	return nil
}

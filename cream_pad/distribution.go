package cream_pad

import (
	solanago "github.com/gagliardetto/solana-go"

	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/math"
	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/shared"
)

type LockAndDistributeResult struct {
	Auction *shared.AuctionAccount

	// LockTransfer moves the locked share from the pad escrow into the vault.
	// The distribution share stays in the escrow until buyers claim it.
	LockTransfer TokenDelta

	Event shared.LockAndDistributionEvent
}

// LockAndDistribute splits the unsold supply of a finished auction between
// the time-locked vault and the pro-rata distribution pool. The split is
// computed in the mint's decimals and booked back in the internal unit, so
// the stored figures match what physically moved.
func LockAndDistribute(
	now int64,
	config shared.CreamPadConfig,
	auction shared.AuctionAccount,
	locker solanago.PublicKey,
	mintDecimals uint8,
	padName string,
) (*LockAndDistributeResult, error) {
	if err := checkProgramWorking(config.ProgramStatus); err != nil {
		return nil, err
	}
	if err := checkSupplyLocker(auction.Creator, config.BackAuthority, locker); err != nil {
		return nil, err
	}
	if err := checkAuctionEnded(auction.Status); err != nil {
		return nil, err
	}

	adjustedUnsold := math.AdjustAmount(
		auction.TotalSupply-auction.TotalSupplySold,
		shared.InternalDecimals,
		mintDecimals,
	)
	lockAmount, distributionAmount := math.SplitUnsold(
		adjustedUnsold,
		config.LockBasePoint,
		config.DistributionBasePoint,
	)

	lockInternal := math.AdjustAmount(lockAmount, mintDecimals, shared.InternalDecimals)
	distributionInternal := math.AdjustAmount(distributionAmount, mintDecimals, shared.InternalDecimals)

	updated := auction
	updated.LastBlockTimestamp = now
	updated.Status = shared.AuctionStatusUnsoldLockedAndDistributionOpen
	updated.TotalUnsoldSupplyDistribution = distributionInternal
	updated.TotalUnsoldSupplyLocked = lockInternal
	updated.UnsoldSupplyLockedAt = now
	updated.UnsoldSupplyCanUnlockAt = now + config.LockDuration

	return &LockAndDistributeResult{
		Auction: &updated,
		LockTransfer: TokenDelta{
			Amount:   lockAmount,
			Decimals: mintDecimals,
		},
		Event: shared.LockAndDistributionEvent{
			Timestamp:          now,
			Mint:               auction.Mint,
			PadName:            padName,
			LockSupply:         lockInternal,
			DistributionSupply: distributionInternal,
			CanUnlockAt:        updated.UnsoldSupplyCanUnlockAt,
		},
	}, nil
}

type UnlockUnsoldSupplyResult struct {
	Auction *shared.AuctionAccount

	// Transfer returns the locked supply from the vault to the creator.
	Transfer TokenDelta

	Event shared.UnlockUnsoldSupplyEvent
}

// UnlockUnsoldSupply releases the vault back to the creator once the lock
// duration has passed. Terminal for the lock side; distribution claiming
// stays open.
func UnlockUnsoldSupply(
	now int64,
	config shared.CreamPadConfig,
	auction shared.AuctionAccount,
	creator solanago.PublicKey,
	mintDecimals uint8,
	padName string,
) (*UnlockUnsoldSupplyResult, error) {
	if err := checkProgramWorking(config.ProgramStatus); err != nil {
		return nil, err
	}
	if err := checkCreator(auction.Creator, creator); err != nil {
		return nil, err
	}
	if err := checkAuctionLocked(auction.Status); err != nil {
		return nil, err
	}
	if err := checkCanUnlock(auction.UnsoldSupplyCanUnlockAt, now); err != nil {
		return nil, err
	}

	amount := math.AdjustAmount(auction.TotalUnsoldSupplyLocked, shared.InternalDecimals, mintDecimals)

	updated := auction
	updated.LastBlockTimestamp = now
	updated.Status = shared.AuctionStatusUnsoldUnlocked
	updated.UnsoldSupplyUnlockedAt = now

	return &UnlockUnsoldSupplyResult{
		Auction: &updated,
		Transfer: TokenDelta{
			Amount:   amount,
			Decimals: mintDecimals,
		},
		Event: shared.UnlockUnsoldSupplyEvent{
			Timestamp: now,
			Mint:      auction.Mint,
			PadName:   padName,
			Amount:    auction.TotalUnsoldSupplyLocked,
		},
	}, nil
}

type ClaimDistributionResult struct {
	Auction *shared.AuctionAccount
	Claim   *shared.UserAuctionUnsoldDistribution

	// Transfer moves the buyer's share from the pad escrow to the buyer.
	Transfer TokenDelta

	Event shared.ClaimDistributionEvent
}

// ClaimDistribution pays out a buyer's pro-rata share of the distribution
// pool. alreadyClaimed reflects whether a claim record exists for this buyer;
// a second claim fails before any arithmetic runs. The cumulative-claimed
// guard rejects claims that would overdraw the pool through rounding.
func ClaimDistribution(
	now int64,
	config shared.CreamPadConfig,
	auction shared.AuctionAccount,
	userAuction shared.UserAuctionAccount,
	user solanago.PublicKey,
	alreadyClaimed bool,
	mintDecimals uint8,
	padName string,
) (*ClaimDistributionResult, error) {
	if err := checkProgramWorking(config.ProgramStatus); err != nil {
		return nil, err
	}
	if err := checkAuctionAtDistribution(auction.Status); err != nil {
		return nil, err
	}
	if alreadyClaimed {
		return nil, ErrDistributionClaimed
	}
	if err := checkValueIsZero(auction.TotalSupplySold); err != nil {
		return nil, err
	}

	userShareBp := math.ShareBasePoint(userAuction.TotalBuyAmount, auction.TotalSupplySold)
	userShareAmount := math.ApplyBasePoint(auction.TotalUnsoldSupplyDistribution, uint16(userShareBp))

	if err := checkRemainingSupply(
		auction.TotalUnsoldSupplyDistributionClaimed+userShareAmount,
		auction.TotalUnsoldSupplyDistribution,
	); err != nil {
		return nil, err
	}

	updated := auction
	updated.LastBlockTimestamp = now
	updated.TotalUnsoldSupplyDistributionClaimed = auction.TotalUnsoldSupplyDistributionClaimed + userShareAmount
	updated.TotalUnsoldSupplyDistributionClaimedCount = auction.TotalUnsoldSupplyDistributionClaimedCount + 1

	claim := &shared.UserAuctionUnsoldDistribution{
		LastBlockTimestamp: now,
		Amount:             userShareAmount,
	}

	return &ClaimDistributionResult{
		Auction: &updated,
		Claim:   claim,
		Transfer: TokenDelta{
			Amount:   math.AdjustAmount(userShareAmount, shared.InternalDecimals, mintDecimals),
			Decimals: mintDecimals,
		},
		Event: shared.ClaimDistributionEvent{
			Timestamp: now,
			Mint:      auction.Mint,
			PadName:   padName,
			User:      user,
			Amount:    userShareAmount,
		},
	}, nil
}

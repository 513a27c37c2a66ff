package cream_pad

import (
	solanago "github.com/gagliardetto/solana-go"

	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/math"
	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/shared"
)

type TreasuryAndDistributeResult struct {
	Collection *shared.CollectionAuctionAccount
	Event      shared.TreasuryAndDistributionEvent
}

// TreasuryAndDistribute splits a finished collection auction's unsold assets
// between the treasury and the distribution pool. Nothing physically moves;
// both sides are realized later through per-asset fills. A 1-unit rounding
// remainder goes to the treasury, never to distribution.
func TreasuryAndDistribute(
	now int64,
	config shared.CreamPadConfig,
	collection shared.CollectionAuctionAccount,
	distributor solanago.PublicKey,
	padName string,
) (*TreasuryAndDistributeResult, error) {
	if err := checkProgramWorking(config.ProgramStatus); err != nil {
		return nil, err
	}
	if err := checkSupplyLocker(collection.Creator, config.BackAuthority, distributor); err != nil {
		return nil, err
	}
	if err := checkAuctionEnded(collection.Status); err != nil {
		return nil, err
	}

	unsold := collection.TotalSupply - collection.TotalSupplySold
	treasurySupply, distributionSupply := math.SplitUnsoldToTreasury(
		unsold,
		config.LockBasePoint,
		config.DistributionBasePoint,
	)

	updated := collection
	updated.LastBlockTimestamp = now
	updated.Status = shared.AuctionStatusUnsoldLockedAndDistributionOpen
	updated.TotalUnsoldSupplyDistribution = distributionSupply
	updated.TotalUnsoldSupplyToTreasury = treasurySupply

	return &TreasuryAndDistributeResult{
		Collection: &updated,
		Event: shared.TreasuryAndDistributionEvent{
			Timestamp:          now,
			CollectionMint:     collection.CollectionMint,
			PadName:            padName,
			TreasurySupply:     treasurySupply,
			DistributionSupply: distributionSupply,
		},
	}, nil
}

type ClaimCollectionDistributionResult struct {
	Collection *shared.CollectionAuctionAccount
	Claim      *shared.UserCollectionAuctionUnsoldDistribution

	// MintingFee is charged per claimed unit, in the native asset, to the
	// back authority.
	MintingFee LamportsDelta

	Event shared.CollectionClaimDistributionEvent
}

// ClaimCollectionDistribution reserves a buyer's pro-rata share of the
// unsold-distribution pool. Unlike the fungible variant, a zero share is
// rejected outright, and the claim only records an entitlement; the actual
// assets are minted one by one through fill operations.
func ClaimCollectionDistribution(
	now int64,
	config shared.CreamPadConfig,
	collection shared.CollectionAuctionAccount,
	userAuction shared.UserCollectionAuctionAccount,
	user solanago.PublicKey,
	alreadyClaimed bool,
	padName string,
) (*ClaimCollectionDistributionResult, error) {
	if err := checkProgramWorking(config.ProgramStatus); err != nil {
		return nil, err
	}
	if err := checkAuctionAtDistribution(collection.Status); err != nil {
		return nil, err
	}
	if alreadyClaimed {
		return nil, ErrDistributionClaimed
	}
	if err := checkValueIsZero(collection.TotalSupplySold); err != nil {
		return nil, err
	}

	userShareBp := math.ShareBasePoint(userAuction.TotalBuyAmount, collection.TotalSupplySold)
	userShareAmount := math.ApplyBasePoint(collection.TotalUnsoldSupplyDistribution, uint16(userShareBp))

	if err := checkRemainingSupply(
		collection.TotalUnsoldSupplyDistributionClaimed+userShareAmount,
		collection.TotalUnsoldSupplyDistribution,
	); err != nil {
		return nil, err
	}
	if err := checkEligibleForDistribution(userShareAmount); err != nil {
		return nil, err
	}

	totalMintingFee, ok := math.MulChecked(config.MintingFee, userShareAmount)
	if !ok {
		return nil, ErrMathOverflow
	}

	updated := collection
	updated.LastBlockTimestamp = now
	updated.TotalUnsoldSupplyDistributionClaimed = collection.TotalUnsoldSupplyDistributionClaimed + userShareAmount
	updated.TotalUnsoldSupplyDistributionClaimedCount = collection.TotalUnsoldSupplyDistributionClaimedCount + 1
	updated.TotalMintingFee = collection.TotalMintingFee + totalMintingFee

	claim := &shared.UserCollectionAuctionUnsoldDistribution{
		LastBlockTimestamp: now,
		Amount:             userShareAmount,
	}

	return &ClaimCollectionDistributionResult{
		Collection: &updated,
		Claim:      claim,
		MintingFee: LamportsDelta{Amount: totalMintingFee},
		Event: shared.CollectionClaimDistributionEvent{
			Timestamp:      now,
			CollectionMint: collection.CollectionMint,
			PadName:        padName,
			User:           user,
			Amount:         userShareAmount,
			MintingFee:     totalMintingFee,
		},
	}, nil
}

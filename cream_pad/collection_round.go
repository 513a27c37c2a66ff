package cream_pad

import (
	solanago "github.com/gagliardetto/solana-go"

	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/math"
	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/shared"
)

type EndCollectionRoundResult struct {
	Collection *shared.CollectionAuctionAccount
	Round      *shared.CollectionAuctionRoundAccount
	Event      shared.EndCollectionRoundEvent
}

// EndCollectionRound is the collection twin of EndRound; the boost is carried
// as a real value. TMax evenly divides the supply, so the expected-sales
// division is exact here.
func EndCollectionRound(
	now int64,
	config shared.CreamPadConfig,
	collection shared.CollectionAuctionAccount,
	round shared.CollectionAuctionRoundAccount,
	ender solanago.PublicKey,
	roundIndex uint16,
	padName string,
) (*EndCollectionRoundResult, error) {
	if err := checkProgramWorking(config.ProgramStatus); err != nil {
		return nil, err
	}
	if err := checkRoundEnder(collection.Creator, config.BackAuthority, ender); err != nil {
		return nil, err
	}
	if err := checkCurrentRound(collection.CurrentRound, roundIndex); err != nil {
		return nil, err
	}
	if err := checkRoundNotEnded(round.Status); err != nil {
		return nil, err
	}
	if err := checkAuctionStarted(collection.Status); err != nil {
		return nil, err
	}
	if err := checkRoundStillHaveTime(round.RoundEndAt, now); err != nil {
		return nil, err
	}

	boost := math.CalculateCollectionBoost(
		round.TotalSupplySold,
		collection.TotalSupply/uint64(collection.TMax),
		collection.Omega,
		collection.Alpha,
		collection.TimeShiftMax,
	)

	updatedCollection := collection
	updatedCollection.LastBlockTimestamp = now
	if roundIndex == collection.TMax {
		updatedCollection.Status = shared.AuctionStatusEnded
	}
	updatedCollection.BoostHistory = appendCollectionBoost(collection.BoostHistory, boost)

	updatedRound := round
	updatedRound.LastBlockTimestamp = now
	updatedRound.Status = shared.AuctionRoundStatusEnded
	updatedRound.RoundEndedAt = now
	updatedRound.Boost = boost

	return &EndCollectionRoundResult{
		Collection: &updatedCollection,
		Round:      &updatedRound,
		Event: shared.EndCollectionRoundEvent{
			Timestamp:      now,
			CollectionMint: collection.CollectionMint,
			PadName:        padName,
			RoundIndex:     roundIndex,
			Boost:          boost,
		},
	}, nil
}

type StartNextCollectionRoundResult struct {
	Collection *shared.CollectionAuctionAccount
	NextRound  *shared.CollectionAuctionRoundAccount
	Event      shared.StartCollectionRoundEvent
}

// StartNextCollectionRound opens the next collection round, optionally with a
// per-buyer buy limit for that round only.
func StartNextCollectionRound(
	now int64,
	config shared.CreamPadConfig,
	collection shared.CollectionAuctionAccount,
	previousRound shared.CollectionAuctionRoundAccount,
	starter solanago.PublicKey,
	previousRoundIndex uint16,
	nextRoundIndex uint16,
	nextRoundDuration int64,
	nextHaveBuyLimit bool,
	nextBuyLimit uint64,
	padName string,
) (*StartNextCollectionRoundResult, error) {
	if err := checkProgramWorking(config.ProgramStatus); err != nil {
		return nil, err
	}
	if err := checkRoundStarter(collection.Creator, config.BackAuthority, starter); err != nil {
		return nil, err
	}
	if err := checkPreviousRound(collection.CurrentRound, previousRoundIndex); err != nil {
		return nil, err
	}
	if err := checkNextRound(collection.CurrentRound+1, nextRoundIndex); err != nil {
		return nil, err
	}
	if err := checkPreviousRoundEnded(previousRound.Status); err != nil {
		return nil, err
	}
	if err := checkAuctionStarted(collection.Status); err != nil {
		return nil, err
	}
	if nextHaveBuyLimit {
		if err := checkValueIsZero(nextBuyLimit); err != nil {
			return nil, err
		}
	}

	currentPrice := math.CalculateCollectionPrice(
		collection.P0,
		collection.PTMax,
		uint64(collection.TMax),
		int(collection.CurrentRound),
		collection.BoostHistory,
		collection.DecayModel,
		collection.TimeShiftMax,
	)

	updatedCollection := collection
	updatedCollection.LastBlockTimestamp = now
	updatedCollection.CurrentRound = collection.CurrentRound + 1
	updatedCollection.CurrentPrice = currentPrice

	nextRound := &shared.CollectionAuctionRoundAccount{
		LastBlockTimestamp: now,
		RoundStartAt:       now,
		RoundEndAt:         now + nextRoundDuration,
		Round:              updatedCollection.CurrentRound,
		Price:              currentPrice,
		HaveBuyLimit:       nextHaveBuyLimit,
		BuyLimit:           nextBuyLimit,
	}

	return &StartNextCollectionRoundResult{
		Collection: &updatedCollection,
		NextRound:  nextRound,
		Event: shared.StartCollectionRoundEvent{
			Timestamp:      now,
			CollectionMint: collection.CollectionMint,
			PadName:        padName,
			RoundIndex:     nextRoundIndex,
			Price:          currentPrice,
		},
	}, nil
}

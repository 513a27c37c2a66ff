package cream_pad

import (
	solanago "github.com/gagliardetto/solana-go"

	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/math"
	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/shared"
)

type EndRoundResult struct {
	Auction *shared.AuctionAccount
	Round   *shared.AuctionRoundAccount
	Event   shared.EndRoundEvent
}

// EndRound closes the auction's current round once its window has elapsed.
// The round's boost is computed from its realized sales and appended to the
// auction's history; ending round tmax ends the whole auction.
func EndRound(
	now int64,
	config shared.CreamPadConfig,
	auction shared.AuctionAccount,
	round shared.AuctionRoundAccount,
	ender solanago.PublicKey,
	roundIndex uint16,
	padName string,
) (*EndRoundResult, error) {
	if err := checkProgramWorking(config.ProgramStatus); err != nil {
		return nil, err
	}
	if err := checkRoundEnder(auction.Creator, config.BackAuthority, ender); err != nil {
		return nil, err
	}
	if err := checkCurrentRound(auction.CurrentRound, roundIndex); err != nil {
		return nil, err
	}
	if err := checkRoundNotEnded(round.Status); err != nil {
		return nil, err
	}
	if err := checkAuctionStarted(auction.Status); err != nil {
		return nil, err
	}
	if err := checkRoundStillHaveTime(round.RoundEndAt, now); err != nil {
		return nil, err
	}

	boost := math.CalculateBoost(
		round.TotalSupplySold,
		auction.TotalSupply/uint64(auction.TMax),
		auction.Omega,
		auction.Alpha,
		auction.TimeShiftMax,
	)

	updatedAuction := auction
	updatedAuction.LastBlockTimestamp = now
	if roundIndex == auction.TMax {
		updatedAuction.Status = shared.AuctionStatusEnded
	}
	updatedAuction.BoostHistory = appendBoost(auction.BoostHistory, boost)

	updatedRound := round
	updatedRound.LastBlockTimestamp = now
	updatedRound.Status = shared.AuctionRoundStatusEnded
	updatedRound.RoundEndedAt = now
	updatedRound.Boost = boost

	return &EndRoundResult{
		Auction: &updatedAuction,
		Round:   &updatedRound,
		Event: shared.EndRoundEvent{
			Timestamp:  now,
			Mint:       auction.Mint,
			PadName:    padName,
			RoundIndex: roundIndex,
			Boost:      boost,
		},
	}, nil
}

type StartNextRoundResult struct {
	Auction   *shared.AuctionAccount
	NextRound *shared.AuctionRoundAccount
	Event     shared.StartRoundEvent
}

// StartNextRound opens round current+1 at the price the decay curve yields
// for the boost history accumulated so far. The curve is evaluated exactly
// once, here, against the previous round's state.
func StartNextRound(
	now int64,
	config shared.CreamPadConfig,
	auction shared.AuctionAccount,
	previousRound shared.AuctionRoundAccount,
	starter solanago.PublicKey,
	previousRoundIndex uint16,
	nextRoundIndex uint16,
	nextRoundDuration int64,
	padName string,
) (*StartNextRoundResult, error) {
	if err := checkProgramWorking(config.ProgramStatus); err != nil {
		return nil, err
	}
	if err := checkRoundStarter(auction.Creator, config.BackAuthority, starter); err != nil {
		return nil, err
	}
	if err := checkPreviousRound(auction.CurrentRound, previousRoundIndex); err != nil {
		return nil, err
	}
	if err := checkNextRound(auction.CurrentRound+1, nextRoundIndex); err != nil {
		return nil, err
	}
	if err := checkPreviousRoundEnded(previousRound.Status); err != nil {
		return nil, err
	}
	if err := checkAuctionStarted(auction.Status); err != nil {
		return nil, err
	}

	currentPrice := math.CalculatePrice(
		auction.P0,
		auction.PTMax,
		uint64(auction.TMax),
		int(auction.CurrentRound),
		auction.BoostHistory,
		auction.DecayModel,
		auction.TimeShiftMax,
	)

	updatedAuction := auction
	updatedAuction.LastBlockTimestamp = now
	updatedAuction.CurrentRound = auction.CurrentRound + 1
	updatedAuction.CurrentPrice = currentPrice

	nextRound := &shared.AuctionRoundAccount{
		LastBlockTimestamp: now,
		RoundStartAt:       now,
		RoundEndAt:         now + nextRoundDuration,
		Round:              updatedAuction.CurrentRound,
		Price:              currentPrice,
	}

	return &StartNextRoundResult{
		Auction:   &updatedAuction,
		NextRound: nextRound,
		Event: shared.StartRoundEvent{
			Timestamp:  now,
			Mint:       auction.Mint,
			PadName:    padName,
			RoundIndex: nextRoundIndex,
			Price:      currentPrice,
		},
	}, nil
}

// appendBoost never aliases the source history; callers keep their input
// untouched.
func appendBoost(history []uint64, boost uint64) []uint64 {
	out := make([]uint64, len(history), len(history)+1)
	copy(out, history)
	return append(out, boost)
}

func appendCollectionBoost(history []float64, boost float64) []float64 {
	out := make([]float64, len(history), len(history)+1)
	copy(out, history)
	return append(out, boost)
}

package cream_pad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/shared"
)

func TestEndRound(t *testing.T) {
	config, auction, round := testAuction(t)

	t.Run("missed round earns no boost", func(t *testing.T) {
		result, err := EndRound(5_000, config, auction, round, testCreator, shared.FirstRound, "launch-one")
		require.NoError(t, err)

		assert.Equal(t, shared.AuctionRoundStatusEnded, result.Round.Status)
		assert.Equal(t, int64(5_000), result.Round.RoundEndedAt)
		assert.Zero(t, result.Round.Boost)
		assert.Equal(t, []uint64{0}, result.Auction.BoostHistory)
		assert.Equal(t, shared.AuctionStatusStarted, result.Auction.Status)
		assert.Empty(t, auction.BoostHistory)
	})

	t.Run("round at target", func(t *testing.T) {
		// Expected per round is supply/tmax = 200 tokens.
		sold := round
		sold.TotalSupplySold = 200_000_000_000
		result, err := EndRound(5_000, config, auction, sold, testBackAuthority, shared.FirstRound, "launch-one")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), result.Round.Boost)
	})

	t.Run("ending the last round ends the auction", func(t *testing.T) {
		last := auction
		last.CurrentRound = last.TMax
		lastRound := round
		lastRound.Round = last.TMax
		result, err := EndRound(5_000, config, last, lastRound, testCreator, last.TMax, "launch-one")
		require.NoError(t, err)
		assert.Equal(t, shared.AuctionStatusEnded, result.Auction.Status)
	})

	t.Run("window still open", func(t *testing.T) {
		_, err := EndRound(2_000, config, auction, round, testCreator, shared.FirstRound, "launch-one")
		assert.ErrorIs(t, err, ErrAuctionRoundStillHaveTime)
	})

	t.Run("only creator or back authority may end", func(t *testing.T) {
		_, err := EndRound(5_000, config, auction, round, testUser, shared.FirstRound, "launch-one")
		assert.ErrorIs(t, err, ErrInvalidRoundEnder)
	})

	t.Run("already ended", func(t *testing.T) {
		ended := round
		ended.Status = shared.AuctionRoundStatusEnded
		_, err := EndRound(5_000, config, auction, ended, testCreator, shared.FirstRound, "launch-one")
		assert.ErrorIs(t, err, ErrAuctionRoundAlreadyEnded)
	})
}

func TestStartNextRound(t *testing.T) {
	config, auction, round := testAuction(t)
	ended, err := EndRound(5_000, config, auction, round, testCreator, shared.FirstRound, "launch-one")
	require.NoError(t, err)

	t.Run("price decays after a missed round", func(t *testing.T) {
		result, err := StartNextRound(5_100, config, *ended.Auction, *ended.Round,
			testCreator, shared.FirstRound, 2, 3_600, "launch-one")
		require.NoError(t, err)

		// k0 = (1e9 - 1e8) / 4 = 225e6; one full unit of decay.
		assert.Equal(t, uint64(775_000_000), result.NextRound.Price)
		assert.Equal(t, uint64(775_000_000), result.Auction.CurrentPrice)
		assert.Equal(t, uint16(2), result.Auction.CurrentRound)
		assert.Equal(t, uint16(2), result.NextRound.Round)
		assert.Equal(t, int64(5_100), result.NextRound.RoundStartAt)
		assert.Equal(t, int64(8_700), result.NextRound.RoundEndAt)
	})

	t.Run("price holds after a round at target", func(t *testing.T) {
		onTarget := *ended.Auction
		onTarget.BoostHistory = []uint64{1}
		result, err := StartNextRound(5_100, config, onTarget, *ended.Round,
			testCreator, shared.FirstRound, 2, 3_600, "launch-one")
		require.NoError(t, err)
		assert.Equal(t, auction.P0, result.NextRound.Price)
	})

	t.Run("previous round must be ended", func(t *testing.T) {
		_, err := StartNextRound(5_100, config, auction, round,
			testCreator, shared.FirstRound, 2, 3_600, "launch-one")
		assert.ErrorIs(t, err, ErrAuctionPreviousRoundNotEnded)
	})

	t.Run("index bookkeeping", func(t *testing.T) {
		_, err := StartNextRound(5_100, config, *ended.Auction, *ended.Round,
			testCreator, 2, 3, 3_600, "launch-one")
		assert.ErrorIs(t, err, ErrInvalidPreviousRound)

		_, err = StartNextRound(5_100, config, *ended.Auction, *ended.Round,
			testCreator, shared.FirstRound, 3, 3_600, "launch-one")
		assert.ErrorIs(t, err, ErrInvalidNextRound)
	})

	t.Run("only creator or back authority may start", func(t *testing.T) {
		_, err := StartNextRound(5_100, config, *ended.Auction, *ended.Round,
			testUser, shared.FirstRound, 2, 3_600, "launch-one")
		assert.ErrorIs(t, err, ErrInvalidRoundStarter)
	})
}

package cream_pad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/shared"
)

// endedAuction sells 400 of 1000 tokens, then ends the auction outright.
func endedAuction(t *testing.T) (shared.CreamPadConfig, shared.AuctionAccount) {
	t.Helper()
	config, auction, round := testAuction(t)

	bought, err := ApplyBuy(2_000, config, auction, round,
		shared.UserAuctionAccount{}, shared.UserAuctionRoundAccount{},
		testUser, testBuyParams(400_000_000_000))
	require.NoError(t, err)

	ended := *bought.Auction
	ended.Status = shared.AuctionStatusEnded
	return config, ended
}

func TestLockAndDistribute(t *testing.T) {

	t.Run("splits the unsold supply", func(t *testing.T) {
		config, auction := endedAuction(t)

		result, err := LockAndDistribute(10_000, config, auction, testCreator, 6, "launch-one")
		require.NoError(t, err)

		// 600 tokens unsold; lock 60% / distribute 40%.
		assert.Equal(t, shared.AuctionStatusUnsoldLockedAndDistributionOpen, result.Auction.Status)
		assert.Equal(t, uint64(360_000_000_000), result.Auction.TotalUnsoldSupplyLocked)
		assert.Equal(t, uint64(240_000_000_000), result.Auction.TotalUnsoldSupplyDistribution)
		assert.Equal(t, int64(10_000), result.Auction.UnsoldSupplyLockedAt)
		assert.Equal(t, int64(96_400), result.Auction.UnsoldSupplyCanUnlockAt)

		// The vault transfer is denominated in the mint's decimals.
		assert.Equal(t, uint64(360_000_000), result.LockTransfer.Amount)
		assert.Equal(t, uint8(6), result.LockTransfer.Decimals)
	})

	t.Run("requires an ended auction", func(t *testing.T) {
		config, auction, _ := testAuction(t)
		_, err := LockAndDistribute(10_000, config, auction, testCreator, 6, "launch-one")
		assert.ErrorIs(t, err, ErrAuctionNotEnded)
	})

	t.Run("only creator or back authority may lock", func(t *testing.T) {
		config, auction := endedAuction(t)
		_, err := LockAndDistribute(10_000, config, auction, testUser, 6, "launch-one")
		assert.ErrorIs(t, err, ErrInvalidSupplyLocker)
	})
}

func TestUnlockUnsoldSupply(t *testing.T) {
	config, auction := endedAuction(t)
	locked, err := LockAndDistribute(10_000, config, auction, testCreator, 6, "launch-one")
	require.NoError(t, err)

	t.Run("before the lock expires", func(t *testing.T) {
		_, err := UnlockUnsoldSupply(50_000, config, *locked.Auction, testCreator, 6, "launch-one")
		assert.ErrorIs(t, err, ErrAuctionHaveTimeToUnlock)
	})

	t.Run("after the lock expires", func(t *testing.T) {
		result, err := UnlockUnsoldSupply(100_000, config, *locked.Auction, testCreator, 6, "launch-one")
		require.NoError(t, err)

		assert.Equal(t, shared.AuctionStatusUnsoldUnlocked, result.Auction.Status)
		assert.Equal(t, int64(100_000), result.Auction.UnsoldSupplyUnlockedAt)
		assert.Equal(t, uint64(360_000_000), result.Transfer.Amount)
	})

	t.Run("only the creator may unlock", func(t *testing.T) {
		_, err := UnlockUnsoldSupply(100_000, config, *locked.Auction, testBackAuthority, 6, "launch-one")
		assert.ErrorIs(t, err, ErrInvalidCreator)
	})

	t.Run("requires the locked state", func(t *testing.T) {
		_, err := UnlockUnsoldSupply(100_000, config, auction, testCreator, 6, "launch-one")
		assert.ErrorIs(t, err, ErrAuctionNotAtLock)
	})
}

func TestClaimDistribution(t *testing.T) {
	config, auction := endedAuction(t)
	locked, err := LockAndDistribute(10_000, config, auction, testCreator, 6, "launch-one")
	require.NoError(t, err)

	buyer := shared.UserAuctionAccount{
		LastBlockTimestamp: 2_000,
		User:               testUser,
		TotalBuyCount:      1,
		TotalBuyAmount:     400_000_000_000,
	}

	t.Run("full buyer takes the whole pool", func(t *testing.T) {
		// The only buyer holds 100% of sold supply: 10000 bp of 240 tokens.
		result, err := ClaimDistribution(20_000, config, *locked.Auction, buyer, testUser, false, 6, "launch-one")
		require.NoError(t, err)

		assert.Equal(t, uint64(240_000_000_000), result.Claim.Amount)
		assert.Equal(t, uint64(240_000_000), result.Transfer.Amount)
		assert.Equal(t, uint64(240_000_000_000), result.Auction.TotalUnsoldSupplyDistributionClaimed)
		assert.Equal(t, uint64(1), result.Auction.TotalUnsoldSupplyDistributionClaimedCount)
	})

	t.Run("partial buyer takes a floored share", func(t *testing.T) {
		half := buyer
		half.TotalBuyAmount = 133_333_333_333
		result, err := ClaimDistribution(20_000, config, *locked.Auction, half, testUser, false, 6, "launch-one")
		require.NoError(t, err)

		// 3333 bp of the 240-token pool.
		assert.Equal(t, uint64(79_992_000_000), result.Claim.Amount)
	})

	t.Run("double claim", func(t *testing.T) {
		_, err := ClaimDistribution(20_000, config, *locked.Auction, buyer, testUser, true, 6, "launch-one")
		assert.ErrorIs(t, err, ErrDistributionClaimed)
	})

	t.Run("claims remain open after unlock", func(t *testing.T) {
		unlocked, err := UnlockUnsoldSupply(100_000, config, *locked.Auction, testCreator, 6, "launch-one")
		require.NoError(t, err)
		_, err = ClaimDistribution(110_000, config, *unlocked.Auction, buyer, testUser, false, 6, "launch-one")
		assert.NoError(t, err)
	})

	t.Run("not at distribution", func(t *testing.T) {
		_, err := ClaimDistribution(20_000, config, auction, buyer, testUser, false, 6, "launch-one")
		assert.ErrorIs(t, err, ErrAuctionNotAtDistribution)
	})

	t.Run("pool overdraw", func(t *testing.T) {
		drained := *locked.Auction
		drained.TotalUnsoldSupplyDistributionClaimed = drained.TotalUnsoldSupplyDistribution
		_, err := ClaimDistribution(20_000, config, drained, buyer, testUser, false, 6, "launch-one")
		assert.ErrorIs(t, err, ErrSupplyExceeded)
	})

	t.Run("nothing sold", func(t *testing.T) {
		empty := *locked.Auction
		empty.TotalSupplySold = 0
		_, err := ClaimDistribution(20_000, config, empty, buyer, testUser, false, 6, "launch-one")
		assert.ErrorIs(t, err, ErrValueIsZero)
	})
}

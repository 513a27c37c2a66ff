package cream_pad

import (
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/shared"
)

var testCollectionMint = solanago.NewWallet().PublicKey()

func testCollectionParams() InitializeCollectionPadParams {
	return InitializeCollectionPadParams{
		PaymentMint:     testPaymentMint,
		PaymentReceiver: testPaymentReceiver,
		P0:              1_000_000_000,
		PTMax:           100_000_000,
		TMax:            5,
		Omega:           1,
		Alpha:           1,
		TimeShiftMax:    4,
		RoundDuration:   3_600,
		Supply:          100,
		DecayModel:      shared.DecayModelLinear,
		PadName:         "collection-one",

		SellerFeeBasisPoints: 500,
		AssetCreators: []shared.AssetCreator{
			{Address: testCreator, Share: 100},
		},
		StartingIndex: 0,

		AssetName:      "Cream #",
		AssetSymbol:    "CREAM",
		AssetURL:       "https://assets.example.com/cream/",
		AssetURLSuffix: ".json",
	}
}

func testCollection(t *testing.T) (shared.CreamPadConfig, shared.CollectionAuctionAccount, shared.CollectionAuctionRoundAccount) {
	t.Helper()
	config := testConfig(t)
	result, err := InitializeCollectionPad(1_000, config, testCreator, testCollectionMint,
		testCreator, testBackAuthority, testCollectionParams())
	require.NoError(t, err)
	return config, *result.Collection, *result.FirstRound
}

func TestInitializeCollectionPad(t *testing.T) {
	config := testConfig(t)

	t.Run("valid", func(t *testing.T) {
		result, err := InitializeCollectionPad(1_000, config, testCreator, testCollectionMint,
			testCreator, testBackAuthority, testCollectionParams())
		require.NoError(t, err)

		assert.Equal(t, uint64(0), result.Collection.StartingIndex)
		assert.Equal(t, uint64(100), result.Collection.EndingIndex)
		assert.Equal(t, uint64(0), result.Collection.CurrentIndex)
		assert.True(t, result.Collection.HaveCollectionUpdateAuthority)
		assert.Empty(t, result.Collection.BoostHistory)
		assert.False(t, result.FirstRound.HaveBuyLimit)
	})

	t.Run("supply must divide evenly across rounds", func(t *testing.T) {
		params := testCollectionParams()
		params.Supply = 101
		_, err := InitializeCollectionPad(1_000, config, testCreator, testCollectionMint,
			testCreator, testBackAuthority, params)
		assert.ErrorIs(t, err, ErrSupplyNotEvenlyDivisible)
	})

	t.Run("buy limit must be set when flagged", func(t *testing.T) {
		params := testCollectionParams()
		params.HaveBuyLimit = true
		params.BuyLimit = 0
		_, err := InitializeCollectionPad(1_000, config, testCreator, testCollectionMint,
			testCreator, testBackAuthority, params)
		assert.ErrorIs(t, err, ErrValueIsZero)
	})

	t.Run("duplicate creators", func(t *testing.T) {
		params := testCollectionParams()
		params.AssetCreators = []shared.AssetCreator{
			{Address: testCreator, Share: 50},
			{Address: testCreator, Share: 50},
		}
		_, err := InitializeCollectionPad(1_000, config, testCreator, testCollectionMint,
			testCreator, testBackAuthority, params)
		assert.ErrorIs(t, err, ErrDuplicateCreatorAddress)
	})

	t.Run("creator shares must total one hundred", func(t *testing.T) {
		params := testCollectionParams()
		params.AssetCreators = []shared.AssetCreator{
			{Address: testCreator, Share: 60},
			{Address: testUser, Share: 30},
		}
		_, err := InitializeCollectionPad(1_000, config, testCreator, testCollectionMint,
			testCreator, testBackAuthority, params)
		assert.ErrorIs(t, err, ErrInvalidCreatorShare)
	})

	t.Run("seller fee bounded", func(t *testing.T) {
		params := testCollectionParams()
		params.SellerFeeBasisPoints = 10_001
		_, err := InitializeCollectionPad(1_000, config, testCreator, testCollectionMint,
			testCreator, testBackAuthority, params)
		assert.ErrorIs(t, err, ErrInvalidSellerFeeBasisPoints)
	})
}

func testCollectionBuyParams(amount uint64) BuyCollectionAssetParams {
	return BuyCollectionAssetParams{
		PadName:         "collection-one",
		RoundIndex:      shared.FirstRound,
		BuyIndex:        1,
		Amount:          amount,
		PaymentDecimals: 6,
	}
}

func TestApplyCollectionBuy(t *testing.T) {
	config, collection, round := testCollection(t)

	t.Run("two assets", func(t *testing.T) {
		result, err := ApplyCollectionBuy(2_000, config, collection, round,
			shared.UserCollectionAuctionAccount{}, shared.UserCollectionAuctionRoundAccount{},
			testUser, testCollectionBuyParams(2))
		require.NoError(t, err)

		// 2 assets at 1.0, fee 2.5%, flat 5000 lamports minted per asset.
		assert.Equal(t, uint64(2_000_000_000), result.Receipt.Payment)
		assert.Equal(t, uint64(1_950_000), result.Payment.Amount)
		assert.Equal(t, uint64(50_000), result.Fee.Amount)
		assert.Equal(t, uint64(10_000), result.MintingFee.Amount)
		assert.Equal(t, uint64(2), result.Collection.TotalSupplySold)
		assert.Equal(t, uint64(10_000), result.Collection.TotalMintingFee)
		assert.Equal(t, testUser, result.Receipt.User)
		assert.Equal(t, testCollectionMint, result.Receipt.CollectionMint)
		assert.False(t, result.SoldOut)
	})

	t.Run("round buy limit", func(t *testing.T) {
		limited := round
		limited.HaveBuyLimit = true
		limited.BuyLimit = 3

		_, err := ApplyCollectionBuy(2_000, config, collection, limited,
			shared.UserCollectionAuctionAccount{}, shared.UserCollectionAuctionRoundAccount{},
			testUser, testCollectionBuyParams(4))
		assert.ErrorIs(t, err, ErrBuyLimitExceeded)

		// The cap is cumulative within the round, not per call.
		first, err := ApplyCollectionBuy(2_000, config, collection, limited,
			shared.UserCollectionAuctionAccount{}, shared.UserCollectionAuctionRoundAccount{},
			testUser, testCollectionBuyParams(2))
		require.NoError(t, err)

		params := testCollectionBuyParams(2)
		params.BuyIndex = 2
		_, err = ApplyCollectionBuy(2_100, config, *first.Collection, *first.Round,
			*first.UserAuction, *first.UserRound, testUser, params)
		assert.ErrorIs(t, err, ErrBuyLimitExceeded)
	})

	t.Run("no limit when the flag is off", func(t *testing.T) {
		_, err := ApplyCollectionBuy(2_000, config, collection, round,
			shared.UserCollectionAuctionAccount{}, shared.UserCollectionAuctionRoundAccount{},
			testUser, testCollectionBuyParams(50))
		assert.NoError(t, err)
	})

	t.Run("oversized products abort instead of wrapping", func(t *testing.T) {
		priced := collection
		priced.CurrentPrice = 1<<63 - 1
		_, err := ApplyCollectionBuy(2_000, config, priced, round,
			shared.UserCollectionAuctionAccount{}, shared.UserCollectionAuctionRoundAccount{},
			testUser, testCollectionBuyParams(4))
		assert.ErrorIs(t, err, ErrMathOverflow)

		feeConfig := config
		feeConfig.MintingFee = 1 << 63
		_, err = ApplyCollectionBuy(2_000, feeConfig, collection, round,
			shared.UserCollectionAuctionAccount{}, shared.UserCollectionAuctionRoundAccount{},
			testUser, testCollectionBuyParams(2))
		assert.ErrorIs(t, err, ErrMathOverflow)
	})

	t.Run("selling out freezes a real-valued boost", func(t *testing.T) {
		result, err := ApplyCollectionBuy(2_000, config, collection, round,
			shared.UserCollectionAuctionAccount{}, shared.UserCollectionAuctionRoundAccount{},
			testUser, testCollectionBuyParams(100))
		require.NoError(t, err)

		assert.True(t, result.SoldOut)
		assert.Equal(t, shared.AuctionStatusSoldOut, result.Collection.Status)
		assert.Equal(t, float64(4), result.Round.Boost)
		assert.Equal(t, []float64{4}, result.Collection.BoostHistory)
	})
}

func TestCollectionRounds(t *testing.T) {
	config, collection, round := testCollection(t)

	t.Run("fractional boost flows into the next price", func(t *testing.T) {
		// 30 of the expected 20 sold: boost 1.5.
		sold := round
		sold.TotalSupplySold = 30
		ended, err := EndCollectionRound(5_000, config, collection, sold,
			testCreator, shared.FirstRound, "collection-one")
		require.NoError(t, err)
		assert.InDelta(t, 1.5, ended.Round.Boost, 1e-12)

		// totalBoost = 1 - 1.5 = -0.5; price climbs by half of k0 = 225e6.
		next, err := StartNextCollectionRound(5_100, config, *ended.Collection, *ended.Round,
			testCreator, shared.FirstRound, 2, 3_600, false, 0, "collection-one")
		require.NoError(t, err)
		assert.Equal(t, uint64(1_112_500_000), next.NextRound.Price)
	})

	t.Run("next round may set a buy limit", func(t *testing.T) {
		ended, err := EndCollectionRound(5_000, config, collection, round,
			testCreator, shared.FirstRound, "collection-one")
		require.NoError(t, err)

		next, err := StartNextCollectionRound(5_100, config, *ended.Collection, *ended.Round,
			testCreator, shared.FirstRound, 2, 3_600, true, 5, "collection-one")
		require.NoError(t, err)
		assert.True(t, next.NextRound.HaveBuyLimit)
		assert.Equal(t, uint64(5), next.NextRound.BuyLimit)

		_, err = StartNextCollectionRound(5_100, config, *ended.Collection, *ended.Round,
			testCreator, shared.FirstRound, 2, 3_600, true, 0, "collection-one")
		assert.ErrorIs(t, err, ErrValueIsZero)
	})
}

func TestCollectionUpdateAuthority(t *testing.T) {
	config, collection, _ := testCollection(t)
	external := solanago.NewWallet().PublicKey()
	padAddress := solanago.NewWallet().PublicKey()

	given, _, err := GiveCollectionUpdateAuthority(2_000, config, collection,
		testBackAuthority, external, "collection-one")
	require.NoError(t, err)
	assert.Equal(t, external, given.CollectionUpdateAuthority)
	assert.False(t, given.HaveCollectionUpdateAuthority)

	// Cannot hand over twice.
	_, _, err = GiveCollectionUpdateAuthority(2_100, config, *given,
		testBackAuthority, external, "collection-one")
	assert.ErrorIs(t, err, ErrMissingCollectionUpdateAuthority)

	taken, _, err := TakeCollectionUpdateAuthority(2_200, config, *given,
		testBackAuthority, padAddress, "collection-one")
	require.NoError(t, err)
	assert.Equal(t, padAddress, taken.CollectionUpdateAuthority)
	assert.True(t, taken.HaveCollectionUpdateAuthority)

	// Cannot take what the pad already holds.
	_, _, err = TakeCollectionUpdateAuthority(2_300, config, *taken,
		testBackAuthority, padAddress, "collection-one")
	assert.ErrorIs(t, err, ErrHaveCollectionUpdateAuthority)
}

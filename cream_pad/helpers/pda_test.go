package helpers

import (
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testProgramID = solanago.MustPublicKeyFromBase58("5sqESwK18j9eH8wk58bZocg2eytvQgJvtJgBq3f1MXEs")
	testMintKey   = solanago.NewWallet().PublicKey()
	testUserKey   = solanago.NewWallet().PublicKey()
)

func TestDeriveAddresses(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := DeriveAuctionAddress("launch-one", testMintKey, testProgramID)
		b := DeriveAuctionAddress("launch-one", testMintKey, testProgramID)
		assert.Equal(t, a, b)
		assert.False(t, a.IsZero())
	})

	t.Run("pad name is part of the seed", func(t *testing.T) {
		a := DeriveAuctionAddress("launch-one", testMintKey, testProgramID)
		b := DeriveAuctionAddress("launch-two", testMintKey, testProgramID)
		assert.NotEqual(t, a, b)
	})

	t.Run("round index seeds as decimal text", func(t *testing.T) {
		auction := DeriveAuctionAddress("launch-one", testMintKey, testProgramID)
		derived := DeriveAuctionRoundAddress(auction, 12, testProgramID)

		manual, _, err := solanago.FindProgramAddress(
			[][]byte{[]byte("ARAP"), auction.Bytes(), []byte("12")}, testProgramID)
		require.NoError(t, err)
		assert.Equal(t, manual, derived)
	})

	t.Run("rounds do not collide", func(t *testing.T) {
		auction := DeriveAuctionAddress("launch-one", testMintKey, testProgramID)
		assert.NotEqual(t,
			DeriveAuctionRoundAddress(auction, 1, testProgramID),
			DeriveAuctionRoundAddress(auction, 2, testProgramID))
	})

	t.Run("vault and auction share a prefix but not an address", func(t *testing.T) {
		auction := DeriveAuctionAddress("launch-one", testMintKey, testProgramID)
		vault := DeriveAuctionVaultAddress(auction, testProgramID)
		assert.NotEqual(t, auction, vault)
	})

	t.Run("fungible and collection trees are disjoint", func(t *testing.T) {
		a := DeriveAuctionAddress("launch-one", testMintKey, testProgramID)
		c := DeriveCollectionAuctionAddress("launch-one", testMintKey, testProgramID)
		assert.NotEqual(t, a, c)

		ua := DeriveUserAuctionAddress(a, testUserKey, testProgramID)
		uc := DeriveUserCollectionAuctionAddress(a, testUserKey, testProgramID)
		assert.NotEqual(t, ua, uc)
	})

	t.Run("buy receipts key on the buyer index", func(t *testing.T) {
		auction := DeriveAuctionAddress("launch-one", testMintKey, testProgramID)
		userAuction := DeriveUserAuctionAddress(auction, testUserKey, testProgramID)
		assert.NotEqual(t,
			DeriveUserAuctionBuyReceiptAddress(userAuction, 1, testProgramID),
			DeriveUserAuctionBuyReceiptAddress(userAuction, 2, testProgramID))
	})
}

func TestParseIndexes(t *testing.T) {
	t.Run("round index", func(t *testing.T) {
		v, err := ParseRoundIndex("42")
		require.NoError(t, err)
		assert.Equal(t, uint16(42), v)
		assert.Equal(t, "42", FormatRoundIndex(v))
	})

	t.Run("round index out of range", func(t *testing.T) {
		_, err := ParseRoundIndex("65536")
		assert.Error(t, err)
	})

	t.Run("buy index", func(t *testing.T) {
		v, err := ParseBuyIndex("18446744073709551615")
		require.NoError(t, err)
		assert.Equal(t, ^uint64(0), v)
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := ParseRoundIndex("one")
		assert.Error(t, err)
		_, err = ParseBuyIndex("-1")
		assert.Error(t, err)
	})
}

package helpers

import (
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/shared"
)

func TestAccountDiscriminator(t *testing.T) {
	a := AccountDiscriminator("AuctionAccount")
	b := AccountDiscriminator("AuctionRoundAccount")
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, AccountDiscriminator("AuctionAccount"))
}

func TestAuctionCodec(t *testing.T) {
	in := &shared.AuctionAccount{
		LastBlockTimestamp: 1_000,
		Creator:            solanago.NewWallet().PublicKey(),
		Mint:               solanago.NewWallet().PublicKey(),
		PaymentMint:        solanago.NewWallet().PublicKey(),
		PaymentReceiver:    solanago.NewWallet().PublicKey(),
		Status:             shared.AuctionStatusStarted,
		P0:                 1_000_000_000,
		PTMax:              100_000_000,
		TMax:               5,
		Omega:              1,
		Alpha:              1,
		TimeShiftMax:       4,
		CurrentPrice:       775_000_000,
		CurrentRound:       2,
		BoostHistory:       []uint64{0, 3},
		DecayModel:         shared.DecayModelExponential,
		TotalSupply:        1_000_000_000_000,
		TotalSupplySold:    250_000_000_000,
	}

	data, err := MarshalAuction(in)
	require.NoError(t, err)

	out, err := ParseAuction(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCollectionAuctionCodec(t *testing.T) {
	in := &shared.CollectionAuctionAccount{
		LastBlockTimestamp:   1_000,
		Creator:              solanago.NewWallet().PublicKey(),
		CollectionMint:       solanago.NewWallet().PublicKey(),
		Status:               shared.AuctionStatusStarted,
		P0:                   1_000_000_000,
		PTMax:                100_000_000,
		TMax:                 5,
		CurrentRound:         1,
		BoostHistory:         []float64{0.5, 1.25},
		SellerFeeBasisPoints: 500,
		AssetCreators: []shared.AssetCreator{
			{Address: solanago.NewWallet().PublicKey(), Share: 100},
		},
		TotalSupply:    100,
		StartingIndex:  0,
		EndingIndex:    100,
		AssetName:      "Cream #",
		AssetSymbol:    "CREAM",
		AssetURL:       "https://assets.example.com/cream/",
		AssetURLSuffix: ".json",

		HaveCollectionUpdateAuthority: true,
	}

	data, err := MarshalCollectionAuction(in)
	require.NoError(t, err)

	out, err := ParseCollectionAuction(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestUserAuctionBuyReceiptCodec(t *testing.T) {
	in := &shared.UserAuctionBuyReceipt{
		LastBlockTimestamp: 2_000,
		BuyAmount:          250_000_000_000,
		Payment:            250_000_000,
		Round:              1,
		Index:              7,
	}

	data, err := MarshalUserAuctionBuyReceipt(in)
	require.NoError(t, err)

	out, err := ParseUserAuctionBuyReceipt(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParseRejectsForeignData(t *testing.T) {
	t.Run("short data", func(t *testing.T) {
		_, err := ParseAuction([]byte{1, 2, 3})
		assert.ErrorIs(t, err, ErrAccountDataTooShort)
	})

	t.Run("wrong discriminator", func(t *testing.T) {
		data, err := MarshalUserAuction(&shared.UserAuctionAccount{LastBlockTimestamp: 1})
		require.NoError(t, err)
		_, err = ParseAuction(data)
		assert.ErrorContains(t, err, "discriminator mismatch")
	})
}

package shared

import (
	solanago "github.com/gagliardetto/solana-go"
)

// CreamPadConfig is the program-wide configuration account. It is created once
// by the signing authority and passed explicitly into every operation.
type CreamPadConfig struct {
	LastBlockTimestamp      int64
	SigningAuthority        solanago.PublicKey
	BackAuthority           solanago.PublicKey
	IsBackAuthorityRequired bool
	ProgramStatus           ProgramStatus
	IsFeeRequired           bool
	FeeBasePoint            uint16
	FeeReceiver             solanago.PublicKey
	RoundLimit              uint16
	DistributionBasePoint   uint16
	LockBasePoint           uint16
	LockDuration            int64
	MintingFee              uint64
}

// AuctionAccount is one fungible-mint sale campaign ("pad").
type AuctionAccount struct {
	LastBlockTimestamp int64
	Creator            solanago.PublicKey
	Mint               solanago.PublicKey
	PaymentMint        solanago.PublicKey
	PaymentReceiver    solanago.PublicKey
	Status             AuctionStatus
	P0                 uint64
	PTMax              uint64
	TMax               uint16
	Omega              uint64
	Alpha              uint64
	TimeShiftMax       uint64
	CurrentPrice       uint64
	CurrentRound       uint16
	BoostHistory       []uint64
	DecayModel         DecayModelType

	TotalSupply       uint64
	TotalSupplySold   uint64
	TotalUserBuyCount uint64
	TotalUserCount    uint64

	TotalUnsoldSupplyLocked                   uint64
	UnsoldSupplyLockedAt                      int64
	UnsoldSupplyCanUnlockAt                   int64
	UnsoldSupplyUnlockedAt                    int64
	TotalUnsoldSupplyDistribution             uint64
	TotalUnsoldSupplyDistributionClaimed      uint64
	TotalUnsoldSupplyDistributionClaimedCount uint64

	TotalPayment uint64
	TotalFee     uint64
}

// AuctionRoundAccount is one pricing window of an auction. The price is fixed
// for the round's lifetime; the boost is written once, when the round ends.
type AuctionRoundAccount struct {
	LastBlockTimestamp int64
	RoundStartAt       int64
	RoundEndAt         int64
	TotalSupplySold    uint64
	TotalUserBuyCount  uint64
	TotalUserCount     uint64
	Boost              uint64
	Price              uint64
	Status             AuctionRoundStatus
	TotalPayment       uint64
	TotalFee           uint64
	Round              uint16
	RoundEndedAt       int64
}

type UserAuctionAccount struct {
	LastBlockTimestamp int64
	User               solanago.PublicKey
	TotalBuyCount      uint64
	TotalBuyAmount     uint64
	TotalPayment       uint64
	Status             UserAuctionStatus
}

type UserAuctionRoundAccount struct {
	LastBlockTimestamp int64
	TotalBuyCount      uint64
	TotalBuyAmount     uint64
	TotalPayment       uint64
	Round              uint16
}

// UserAuctionBuyReceipt is the immutable record of one buy call, keyed by the
// buyer's own incrementing buy index.
type UserAuctionBuyReceipt struct {
	LastBlockTimestamp int64
	BuyAmount          uint64
	Payment            uint64
	Round              uint16
	Index              uint64
}

// UserAuctionUnsoldDistribution records a buyer's finalized claim against the
// unsold-distribution pool. Its existence is what prevents a second claim.
type UserAuctionUnsoldDistribution struct {
	LastBlockTimestamp int64
	Amount             uint64
}

// AssetCreator is one royalty recipient of a collection asset.
type AssetCreator struct {
	Address solanago.PublicKey
	Share   uint8
}

// CollectionAuctionAccount is one NFT-collection sale campaign. Same economics
// as AuctionAccount plus per-asset minting bookkeeping; the lock side is
// replaced by a treasury split and the boost history is real-valued.
type CollectionAuctionAccount struct {
	LastBlockTimestamp        int64
	Creator                   solanago.PublicKey
	CollectionMint            solanago.PublicKey
	CollectionUpdateAuthority solanago.PublicKey
	PaymentMint               solanago.PublicKey
	PaymentReceiver           solanago.PublicKey
	Status                    AuctionStatus
	P0                        uint64
	PTMax                     uint64
	TMax                      uint16
	Omega                     uint64
	Alpha                     uint64
	TimeShiftMax              uint64
	CurrentPrice              uint64
	CurrentRound              uint16
	BoostHistory              []float64
	DecayModel                DecayModelType
	SellerFeeBasisPoints      uint16
	AssetCreators             []AssetCreator

	TotalSupply           uint64
	TotalSupplySold       uint64
	TotalSupplySoldFilled uint64
	TotalUserBuyCount     uint64
	TotalUserCount        uint64

	StartingIndex uint64
	EndingIndex   uint64
	CurrentIndex  uint64

	TotalUnsoldSupplyToTreasury                uint64
	TotalUnsoldSupplyToTreasuryFilled          uint64
	TotalUnsoldSupplyDistribution              uint64
	TotalUnsoldSupplyDistributionClaimed       uint64
	TotalUnsoldSupplyDistributionClaimedCount  uint64
	TotalUnsoldSupplyDistributionClaimedFilled uint64

	TotalPayment    uint64
	TotalFee        uint64
	TotalMintingFee uint64

	AssetName      string
	AssetSymbol    string
	AssetURL       string
	AssetURLSuffix string

	HaveCollectionUpdateAuthority bool
}

type CollectionAuctionRoundAccount struct {
	LastBlockTimestamp int64
	RoundStartAt       int64
	RoundEndAt         int64
	TotalSupplySold    uint64
	TotalUserBuyCount  uint64
	TotalUserCount     uint64
	Boost              float64
	Price              uint64
	Status             AuctionRoundStatus
	TotalPayment       uint64
	TotalFee           uint64
	Round              uint16
	RoundEndedAt       int64
	HaveBuyLimit       bool
	BuyLimit           uint64
}

type UserCollectionAuctionAccount struct {
	LastBlockTimestamp   int64
	User                 solanago.PublicKey
	TotalBuyCount        uint64
	TotalBuyAmount       uint64
	TotalBuyAmountFilled uint64
	TotalPayment         uint64
	Status               UserAuctionStatus
}

type UserCollectionAuctionRoundAccount struct {
	LastBlockTimestamp int64
	TotalBuyCount      uint64
	TotalBuyAmount     uint64
	TotalPayment       uint64
	Round              uint16
}

// UserCollectionAuctionBuyReceipt tracks one collection buy and how many of
// its units have been filled (minted) so far.
type UserCollectionAuctionBuyReceipt struct {
	LastBlockTimestamp int64
	BuyAmount          uint64
	BuyAmountFilled    uint64
	Payment            uint64
	Round              uint16
	Index              uint64
	CollectionMint     solanago.PublicKey
	User               solanago.PublicKey
	PadName            string
}

type UserCollectionAuctionUnsoldDistribution struct {
	LastBlockTimestamp int64
	Amount             uint64
	AmountFilled       uint64
}

package shared

import (
	solanago "github.com/gagliardetto/solana-go"
)

// Event payloads returned by engine operations. The caller decides how to
// surface them (program logs, indexer feed, nothing).

type InitializePadEvent struct {
	Timestamp int64
	Mint      solanago.PublicKey
	PadName   string
}

type UpdatePadEvent struct {
	Timestamp       int64
	Mint            solanago.PublicKey
	PadName         string
	PaymentReceiver solanago.PublicKey
}

type BuyEvent struct {
	Timestamp int64
	Mint      solanago.PublicKey
	PadName   string
	User      solanago.PublicKey
	Amount    uint64
	Payment   uint64
	Fee       uint64
	Round     uint16
	BuyIndex  uint64
	IsSoldOut bool
}

type EndRoundEvent struct {
	Timestamp  int64
	Mint       solanago.PublicKey
	PadName    string
	RoundIndex uint16
	Boost      uint64
}

type StartRoundEvent struct {
	Timestamp  int64
	Mint       solanago.PublicKey
	PadName    string
	RoundIndex uint16
	Price      uint64
}

type LockAndDistributionEvent struct {
	Timestamp          int64
	Mint               solanago.PublicKey
	PadName            string
	LockSupply         uint64
	DistributionSupply uint64
	CanUnlockAt        int64
}

type UnlockUnsoldSupplyEvent struct {
	Timestamp int64
	Mint      solanago.PublicKey
	PadName   string
	Amount    uint64
}

type ClaimDistributionEvent struct {
	Timestamp int64
	Mint      solanago.PublicKey
	PadName   string
	User      solanago.PublicKey
	Amount    uint64
}

type InitializeCollectionPadEvent struct {
	Timestamp      int64
	CollectionMint solanago.PublicKey
	PadName        string
}

type UpdateCollectionPadEvent struct {
	Timestamp       int64
	CollectionMint  solanago.PublicKey
	PadName         string
	PaymentReceiver solanago.PublicKey
}

type BuyCollectionAssetEvent struct {
	Timestamp      int64
	CollectionMint solanago.PublicKey
	PadName        string
	User           solanago.PublicKey
	Amount         uint64
	Payment        uint64
	Fee            uint64
	MintingFee     uint64
	Round          uint16
	BuyIndex       uint64
	IsSoldOut      bool
}

type EndCollectionRoundEvent struct {
	Timestamp      int64
	CollectionMint solanago.PublicKey
	PadName        string
	RoundIndex     uint16
	Boost          float64
}

type StartCollectionRoundEvent struct {
	Timestamp      int64
	CollectionMint solanago.PublicKey
	PadName        string
	RoundIndex     uint16
	Price          uint64
}

type TreasuryAndDistributionEvent struct {
	Timestamp          int64
	CollectionMint     solanago.PublicKey
	PadName            string
	TreasurySupply     uint64
	DistributionSupply uint64
}

type CollectionClaimDistributionEvent struct {
	Timestamp      int64
	CollectionMint solanago.PublicKey
	PadName        string
	User           solanago.PublicKey
	Amount         uint64
	MintingFee     uint64
}

type FillBoughtCollectionAssetEvent struct {
	Timestamp      int64
	CollectionMint solanago.PublicKey
	PadName        string
	User           solanago.PublicKey
	AssetIndex     uint64
	AssetName      string
	AssetURL       string
}

type FillClaimedCollectionAssetDistributionEvent struct {
	Timestamp      int64
	CollectionMint solanago.PublicKey
	PadName        string
	User           solanago.PublicKey
	AssetIndex     uint64
	AssetName      string
	AssetURL       string
}

type GiveCollectionUpdateAuthorityEvent struct {
	Timestamp          int64
	CollectionMint     solanago.PublicKey
	PadName            string
	NewUpdateAuthority solanago.PublicKey
}

type TakeCollectionUpdateAuthorityEvent struct {
	Timestamp      int64
	CollectionMint solanago.PublicKey
	PadName        string
}

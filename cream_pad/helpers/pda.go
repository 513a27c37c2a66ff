package helpers

import (
	"strconv"

	solanago "github.com/gagliardetto/solana-go"
)

// Seed prefixes match the on-chain account layout; round and buy indices are
// seeded as their decimal-string form.
var seed = struct {
	CreamPadConfig                   []byte
	Auction                          []byte
	AuctionVault                     []byte
	AuctionRound                     []byte
	UserAuction                      []byte
	UserAuctionRound                 []byte
	UserAuctionBuyReceipt            []byte
	UserAuctionUnsoldDistribution    []byte
	CollectionAuction                []byte
	CollectionAuctionRound           []byte
	UserCollectionAuction            []byte
	UserCollectionAuctionRound       []byte
	UserCollectionAuctionBuyReceipt  []byte
	UserCollectionUnsoldDistribution []byte
}{
	CreamPadConfig:                   []byte("CPAP"),
	Auction:                          []byte("AAP"),
	AuctionVault:                     []byte("AAP"),
	AuctionRound:                     []byte("ARAP"),
	UserAuction:                      []byte("UAAP"),
	UserAuctionRound:                 []byte("UARAP"),
	UserAuctionBuyReceipt:            []byte("UABRAP"),
	UserAuctionUnsoldDistribution:    []byte("UAUDAP"),
	CollectionAuction:                []byte("CAAP"),
	CollectionAuctionRound:           []byte("CARAP"),
	UserCollectionAuction:            []byte("UCAAP"),
	UserCollectionAuctionRound:       []byte("UCARAP"),
	UserCollectionAuctionBuyReceipt:  []byte("UCABRAP"),
	UserCollectionUnsoldDistribution: []byte("UCAUDAP"),
}

func DeriveCreamPadConfigAddress(programID solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{seed.CreamPadConfig}, programID)
	return pub
}

func DeriveAuctionAddress(padName string, mint, programID solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{seed.Auction, []byte(padName), mint.Bytes()}, programID)
	return pub
}

func DeriveAuctionVaultAddress(auction, programID solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{seed.AuctionVault, auction.Bytes()}, programID)
	return pub
}

func DeriveAuctionRoundAddress(auction solanago.PublicKey, round uint16, programID solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{seed.AuctionRound, auction.Bytes(), roundSeed(round)}, programID)
	return pub
}

func DeriveUserAuctionAddress(auction, user, programID solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{seed.UserAuction, auction.Bytes(), user.Bytes()}, programID)
	return pub
}

func DeriveUserAuctionRoundAddress(auctionRound, userAuction, programID solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{seed.UserAuctionRound, auctionRound.Bytes(), userAuction.Bytes()}, programID)
	return pub
}

func DeriveUserAuctionBuyReceiptAddress(userAuction solanago.PublicKey, buyIndex uint64, programID solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{seed.UserAuctionBuyReceipt, userAuction.Bytes(), buyIndexSeed(buyIndex)}, programID)
	return pub
}

func DeriveUserAuctionUnsoldDistributionAddress(userAuction, programID solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{seed.UserAuctionUnsoldDistribution, userAuction.Bytes()}, programID)
	return pub
}

func DeriveCollectionAuctionAddress(padName string, collectionMint, programID solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{seed.CollectionAuction, []byte(padName), collectionMint.Bytes()}, programID)
	return pub
}

func DeriveCollectionAuctionRoundAddress(collectionAuction solanago.PublicKey, round uint16, programID solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{seed.CollectionAuctionRound, collectionAuction.Bytes(), roundSeed(round)}, programID)
	return pub
}

func DeriveUserCollectionAuctionAddress(collectionAuction, user, programID solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{seed.UserCollectionAuction, collectionAuction.Bytes(), user.Bytes()}, programID)
	return pub
}

func DeriveUserCollectionAuctionRoundAddress(collectionAuctionRound, userCollectionAuction, programID solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{seed.UserCollectionAuctionRound, collectionAuctionRound.Bytes(), userCollectionAuction.Bytes()}, programID)
	return pub
}

func DeriveUserCollectionAuctionBuyReceiptAddress(userCollectionAuction solanago.PublicKey, buyIndex uint64, programID solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{seed.UserCollectionAuctionBuyReceipt, userCollectionAuction.Bytes(), buyIndexSeed(buyIndex)}, programID)
	return pub
}

func DeriveUserCollectionAuctionUnsoldDistributionAddress(userCollectionAuction, programID solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{seed.UserCollectionUnsoldDistribution, userCollectionAuction.Bytes()}, programID)
	return pub
}

func roundSeed(round uint16) []byte {
	return []byte(strconv.FormatUint(uint64(round), 10))
}

func buyIndexSeed(index uint64) []byte {
	return []byte(strconv.FormatUint(index, 10))
}

package cream_pad

import (
	"strconv"

	solanago "github.com/gagliardetto/solana-go"

	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/shared"
)

// AssetSpec describes the single asset a fill operation mints: the caller
// passes it to the metadata/mint service. The asset id is the consumed index
// rendered in decimal.
type AssetSpec struct {
	Index                uint64
	Name                 string
	Symbol               string
	URL                  string
	SellerFeeBasisPoints uint16
	Creators             []shared.AssetCreator
	CollectionMint       solanago.PublicKey
}

func buildAssetSpec(collection *shared.CollectionAuctionAccount, index uint64) AssetSpec {
	id := strconv.FormatUint(index, 10)
	return AssetSpec{
		Index:                index,
		Name:                 collection.AssetName + id,
		Symbol:               collection.AssetSymbol,
		URL:                  collection.AssetURL + id + collection.AssetURLSuffix,
		SellerFeeBasisPoints: collection.SellerFeeBasisPoints,
		Creators:             collection.AssetCreators,
		CollectionMint:       collection.CollectionMint,
	}
}

type FillBoughtCollectionAssetResult struct {
	Collection  *shared.CollectionAuctionAccount
	UserAuction *shared.UserCollectionAuctionAccount
	Receipt     *shared.UserCollectionAuctionBuyReceipt
	Asset       AssetSpec
	Event       shared.FillBoughtCollectionAssetEvent
}

// FillBoughtCollectionAsset mints one unit of a buy receipt: the next asset
// index is consumed and bound to an asset the caller mints to the buyer. One
// asset per call; a receipt is exhausted once BuyAmountFilled reaches
// BuyAmount.
func FillBoughtCollectionAsset(
	now int64,
	config shared.CreamPadConfig,
	collection shared.CollectionAuctionAccount,
	userAuction shared.UserCollectionAuctionAccount,
	receipt shared.UserCollectionAuctionBuyReceipt,
	user solanago.PublicKey,
	padName string,
) (*FillBoughtCollectionAssetResult, error) {
	if err := checkProgramWorking(config.ProgramStatus); err != nil {
		return nil, err
	}
	if err := checkAuctionLocked(collection.Status); err != nil {
		return nil, err
	}
	if err := checkExceedingEndIndex(collection.CurrentIndex+1, collection.EndingIndex); err != nil {
		return nil, err
	}
	if err := checkReceiptFull(receipt.BuyAmountFilled+1, receipt.BuyAmount); err != nil {
		return nil, err
	}

	assetIndex := collection.CurrentIndex + 1

	updatedCollection := collection
	updatedCollection.LastBlockTimestamp = now
	updatedCollection.CurrentIndex = assetIndex
	updatedCollection.TotalSupplySoldFilled = collection.TotalSupplySoldFilled + 1

	updatedUser := userAuction
	updatedUser.LastBlockTimestamp = now
	updatedUser.TotalBuyAmountFilled = userAuction.TotalBuyAmountFilled + 1

	updatedReceipt := receipt
	updatedReceipt.LastBlockTimestamp = now
	updatedReceipt.BuyAmountFilled = receipt.BuyAmountFilled + 1

	asset := buildAssetSpec(&updatedCollection, assetIndex)

	return &FillBoughtCollectionAssetResult{
		Collection:  &updatedCollection,
		UserAuction: &updatedUser,
		Receipt:     &updatedReceipt,
		Asset:       asset,
		Event: shared.FillBoughtCollectionAssetEvent{
			Timestamp:      now,
			CollectionMint: collection.CollectionMint,
			PadName:        padName,
			User:           user,
			AssetIndex:     assetIndex,
			AssetName:      asset.Name,
			AssetURL:       asset.URL,
		},
	}, nil
}

type FillClaimedCollectionAssetDistributionResult struct {
	Collection *shared.CollectionAuctionAccount
	Claim      *shared.UserCollectionAuctionUnsoldDistribution
	Asset      AssetSpec
	Event      shared.FillClaimedCollectionAssetDistributionEvent
}

// FillClaimedCollectionAssetDistribution mints one unit of a finalized
// distribution claim, consuming the next asset index. A claim is exhausted
// once AmountFilled reaches Amount.
func FillClaimedCollectionAssetDistribution(
	now int64,
	config shared.CreamPadConfig,
	collection shared.CollectionAuctionAccount,
	claim shared.UserCollectionAuctionUnsoldDistribution,
	user solanago.PublicKey,
	padName string,
) (*FillClaimedCollectionAssetDistributionResult, error) {
	if err := checkProgramWorking(config.ProgramStatus); err != nil {
		return nil, err
	}
	if err := checkAuctionLocked(collection.Status); err != nil {
		return nil, err
	}
	if err := checkExceedingEndIndex(collection.CurrentIndex+1, collection.EndingIndex); err != nil {
		return nil, err
	}
	if err := checkDistributionFull(claim.AmountFilled+1, claim.Amount); err != nil {
		return nil, err
	}

	assetIndex := collection.CurrentIndex + 1

	updatedCollection := collection
	updatedCollection.LastBlockTimestamp = now
	updatedCollection.CurrentIndex = assetIndex
	updatedCollection.TotalUnsoldSupplyDistributionClaimedFilled = collection.TotalUnsoldSupplyDistributionClaimedFilled + 1

	updatedClaim := claim
	updatedClaim.LastBlockTimestamp = now
	updatedClaim.AmountFilled = claim.AmountFilled + 1

	asset := buildAssetSpec(&updatedCollection, assetIndex)

	return &FillClaimedCollectionAssetDistributionResult{
		Collection: &updatedCollection,
		Claim:      &updatedClaim,
		Asset:      asset,
		Event: shared.FillClaimedCollectionAssetDistributionEvent{
			Timestamp:      now,
			CollectionMint: collection.CollectionMint,
			PadName:        padName,
			User:           user,
			AssetIndex:     assetIndex,
			AssetName:      asset.Name,
			AssetURL:       asset.URL,
		},
	}, nil
}

type FillTreasuryCollectionAssetResult struct {
	Collection *shared.CollectionAuctionAccount
	Asset      AssetSpec
	Event      shared.FillBoughtCollectionAssetEvent
}

// FillTreasuryCollectionAsset mints one unit of the treasury share to the
// creator. Only the creator or back authority may trigger it.
func FillTreasuryCollectionAsset(
	now int64,
	config shared.CreamPadConfig,
	collection shared.CollectionAuctionAccount,
	filler solanago.PublicKey,
	padName string,
) (*FillTreasuryCollectionAssetResult, error) {
	if err := checkProgramWorking(config.ProgramStatus); err != nil {
		return nil, err
	}
	if err := checkSupplyLocker(collection.Creator, config.BackAuthority, filler); err != nil {
		return nil, err
	}
	if err := checkAuctionLocked(collection.Status); err != nil {
		return nil, err
	}
	if err := checkExceedingEndIndex(collection.CurrentIndex+1, collection.EndingIndex); err != nil {
		return nil, err
	}
	if err := checkTreasuryFull(collection.TotalUnsoldSupplyToTreasuryFilled+1, collection.TotalUnsoldSupplyToTreasury); err != nil {
		return nil, err
	}

	assetIndex := collection.CurrentIndex + 1

	updatedCollection := collection
	updatedCollection.LastBlockTimestamp = now
	updatedCollection.CurrentIndex = assetIndex
	updatedCollection.TotalUnsoldSupplyToTreasuryFilled = collection.TotalUnsoldSupplyToTreasuryFilled + 1

	asset := buildAssetSpec(&updatedCollection, assetIndex)

	return &FillTreasuryCollectionAssetResult{
		Collection: &updatedCollection,
		Asset:      asset,
		Event: shared.FillBoughtCollectionAssetEvent{
			Timestamp:      now,
			CollectionMint: collection.CollectionMint,
			PadName:        padName,
			User:           collection.Creator,
			AssetIndex:     assetIndex,
			AssetName:      asset.Name,
			AssetURL:       asset.URL,
		},
	}, nil
}

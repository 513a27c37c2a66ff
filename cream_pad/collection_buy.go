package cream_pad

import (
	solanago "github.com/gagliardetto/solana-go"

	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/math"
	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/shared"
)

// BuyCollectionAssetParams is one purchase of whole collection assets.
// Amount counts assets; prices stay in the internal 9-decimal unit until the
// transfer deltas are built.
type BuyCollectionAssetParams struct {
	PadName         string
	RoundIndex      uint16
	BuyIndex        uint64
	Amount          uint64
	PaymentDecimals uint8
}

type BuyCollectionAssetResult struct {
	Collection  *shared.CollectionAuctionAccount
	Round       *shared.CollectionAuctionRoundAccount
	UserAuction *shared.UserCollectionAuctionAccount
	UserRound   *shared.UserCollectionAuctionRoundAccount
	Receipt     *shared.UserCollectionAuctionBuyReceipt

	// MintingFee is the flat per-asset fee, paid in the native asset to the
	// back authority.
	MintingFee LamportsDelta
	// Payment goes to the pad's payment receiver, net of fee.
	Payment TokenDelta
	// Fee goes to the config's fee receiver; zero when fees are off.
	Fee TokenDelta

	SoldOut bool
	Event   shared.BuyCollectionAssetEvent
}

// ApplyCollectionBuy validates and applies one collection purchase. Assets
// are not minted here; the receipt records how many units the buyer may later
// fill. The per-round buy limit, when set, caps the buyer's cumulative amount
// within the round.
func ApplyCollectionBuy(
	now int64,
	config shared.CreamPadConfig,
	collection shared.CollectionAuctionAccount,
	round shared.CollectionAuctionRoundAccount,
	userAuction shared.UserCollectionAuctionAccount,
	userRound shared.UserCollectionAuctionRoundAccount,
	user solanago.PublicKey,
	params BuyCollectionAssetParams,
) (*BuyCollectionAssetResult, error) {
	if err := checkProgramWorking(config.ProgramStatus); err != nil {
		return nil, err
	}
	if err := checkValueIsZero(params.Amount); err != nil {
		return nil, err
	}
	if round.HaveBuyLimit {
		if err := checkRoundBuyLimit(userRound.TotalBuyAmount+params.Amount, round.BuyLimit); err != nil {
			return nil, err
		}
	}
	if err := checkBuyIndex(params.BuyIndex, userAuction.TotalBuyCount+1); err != nil {
		return nil, err
	}
	if err := checkCurrentRound(collection.CurrentRound, params.RoundIndex); err != nil {
		return nil, err
	}
	if err := checkRoundNotEnded(round.Status); err != nil {
		return nil, err
	}
	if err := checkAuctionStarted(collection.Status); err != nil {
		return nil, err
	}
	if err := checkRoundTimeNotRunOut(round.RoundEndAt, now); err != nil {
		return nil, err
	}
	if err := checkRemainingSupply(collection.TotalSupplySold+params.Amount, collection.TotalSupply); err != nil {
		return nil, err
	}

	totalPrice, ok := math.MulChecked(collection.CurrentPrice, params.Amount)
	if !ok {
		return nil, ErrMathOverflow
	}
	totalMintingFee, ok := math.MulChecked(config.MintingFee, params.Amount)
	if !ok {
		return nil, ErrMathOverflow
	}

	var fee uint64
	if config.IsFeeRequired {
		fee = math.ApplyBasePoint(totalPrice, config.FeeBasePoint)
	}

	updatedCollection := collection
	updatedCollection.LastBlockTimestamp = now
	updatedCollection.TotalUserBuyCount = collection.TotalUserBuyCount + 1
	updatedCollection.TotalSupplySold = collection.TotalSupplySold + params.Amount
	updatedCollection.TotalPayment = collection.TotalPayment + totalPrice
	updatedCollection.TotalFee = collection.TotalFee + fee
	updatedCollection.TotalMintingFee = collection.TotalMintingFee + totalMintingFee

	updatedRound := round
	updatedRound.LastBlockTimestamp = now
	updatedRound.TotalUserBuyCount = round.TotalUserBuyCount + 1
	updatedRound.TotalSupplySold = round.TotalSupplySold + params.Amount
	updatedRound.TotalPayment = round.TotalPayment + totalPrice
	updatedRound.TotalFee = round.TotalFee + fee

	soldOut := updatedCollection.TotalSupplySold >= updatedCollection.TotalSupply
	if soldOut {
		boost := math.CalculateCollectionBoost(
			updatedRound.TotalSupplySold,
			updatedCollection.TotalSupply/uint64(updatedCollection.TMax),
			updatedCollection.Omega,
			updatedCollection.Alpha,
			updatedCollection.TimeShiftMax,
		)
		updatedCollection.BoostHistory = appendCollectionBoost(collection.BoostHistory, boost)
		updatedCollection.Status = shared.AuctionStatusSoldOut
		updatedRound.Status = shared.AuctionRoundStatusEnded
		updatedRound.Boost = boost
	}

	updatedUser := userAuction
	if userAuction.LastBlockTimestamp == 0 {
		updatedUser.User = user
		updatedUser.Status = shared.UserAuctionStatusNone
		updatedCollection.TotalUserCount = updatedCollection.TotalUserCount + 1
	}
	updatedUser.LastBlockTimestamp = now
	updatedUser.TotalBuyCount = userAuction.TotalBuyCount + 1
	updatedUser.TotalBuyAmount = userAuction.TotalBuyAmount + params.Amount
	updatedUser.TotalPayment = userAuction.TotalPayment + totalPrice

	updatedUserRound := userRound
	if userRound.LastBlockTimestamp == 0 {
		updatedUserRound.Round = params.RoundIndex
		updatedRound.TotalUserCount = updatedRound.TotalUserCount + 1
	}
	updatedUserRound.LastBlockTimestamp = now
	updatedUserRound.TotalBuyCount = userRound.TotalBuyCount + 1
	updatedUserRound.TotalBuyAmount = userRound.TotalBuyAmount + params.Amount
	updatedUserRound.TotalPayment = userRound.TotalPayment + totalPrice

	receipt := &shared.UserCollectionAuctionBuyReceipt{
		LastBlockTimestamp: now,
		BuyAmount:          params.Amount,
		Payment:            totalPrice,
		Round:              params.RoundIndex,
		Index:              params.BuyIndex,
		CollectionMint:     collection.CollectionMint,
		User:               user,
		PadName:            params.PadName,
	}

	return &BuyCollectionAssetResult{
		Collection:  &updatedCollection,
		Round:       &updatedRound,
		UserAuction: &updatedUser,
		UserRound:   &updatedUserRound,
		Receipt:     receipt,
		MintingFee:  LamportsDelta{Amount: totalMintingFee},
		Payment: TokenDelta{
			Amount:   math.AdjustAmount(totalPrice-fee, shared.InternalDecimals, params.PaymentDecimals),
			Decimals: params.PaymentDecimals,
		},
		Fee: TokenDelta{
			Amount:   math.AdjustAmount(fee, shared.InternalDecimals, params.PaymentDecimals),
			Decimals: params.PaymentDecimals,
		},
		SoldOut: soldOut,
		Event: shared.BuyCollectionAssetEvent{
			Timestamp:      now,
			CollectionMint: collection.CollectionMint,
			PadName:        params.PadName,
			User:           user,
			Amount:         params.Amount,
			Payment:        totalPrice,
			Fee:            fee,
			MintingFee:     totalMintingFee,
			Round:          params.RoundIndex,
			BuyIndex:       params.BuyIndex,
			IsSoldOut:      soldOut,
		},
	}, nil
}

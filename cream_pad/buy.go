package cream_pad

import (
	solanago "github.com/gagliardetto/solana-go"

	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/math"
	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/shared"
)

// BuyParams is one purchase against the auction's current round. Amount is in
// the internal 9-decimal unit; BuyIndex must be the buyer's previous
// TotalBuyCount plus one.
type BuyParams struct {
	PadName         string
	RoundIndex      uint16
	BuyIndex        uint64
	Amount          uint64
	MintDecimals    uint8
	PaymentDecimals uint8
}

// BuyResult carries the fresh copy of every record a buy touches plus the
// transfers the caller must execute. Either all records commit and all
// transfers run, or none do.
type BuyResult struct {
	Auction     *shared.AuctionAccount
	Round       *shared.AuctionRoundAccount
	UserAuction *shared.UserAuctionAccount
	UserRound   *shared.UserAuctionRoundAccount
	Receipt     *shared.UserAuctionBuyReceipt

	// TokenOut moves the bought supply from the pad escrow to the buyer.
	TokenOut TokenDelta
	// Payment goes to the pad's payment receiver, net of fee.
	Payment TokenDelta
	// Fee goes to the config's fee receiver; zero when fees are off.
	Fee TokenDelta

	SoldOut bool
	Event   shared.BuyEvent
}

// ApplyBuy validates and applies one purchase. userAuction and userRound are
// zero values on the buyer's first touch of the auction or round; the
// LastBlockTimestamp==0 sentinel is what increments the user counters exactly
// once. Selling out the supply force-closes the round and the auction in the
// same step.
func ApplyBuy(
	now int64,
	config shared.CreamPadConfig,
	auction shared.AuctionAccount,
	round shared.AuctionRoundAccount,
	userAuction shared.UserAuctionAccount,
	userRound shared.UserAuctionRoundAccount,
	user solanago.PublicKey,
	params BuyParams,
) (*BuyResult, error) {
	if err := checkProgramWorking(config.ProgramStatus); err != nil {
		return nil, err
	}
	if err := checkValueIsZero(params.Amount); err != nil {
		return nil, err
	}
	if err := checkBuyIndex(params.BuyIndex, userAuction.TotalBuyCount+1); err != nil {
		return nil, err
	}
	if err := checkCurrentRound(auction.CurrentRound, params.RoundIndex); err != nil {
		return nil, err
	}
	if err := checkRoundNotEnded(round.Status); err != nil {
		return nil, err
	}
	if err := checkAuctionStarted(auction.Status); err != nil {
		return nil, err
	}
	if err := checkRoundTimeNotRunOut(round.RoundEndAt, now); err != nil {
		return nil, err
	}
	if err := checkRemainingSupply(auction.TotalSupplySold+params.Amount, auction.TotalSupply); err != nil {
		return nil, err
	}

	totalPrice := math.CalculateTotalPrice(
		params.Amount,
		auction.CurrentPrice,
		shared.InternalDecimals,
		params.PaymentDecimals,
		params.PaymentDecimals,
	)

	var fee uint64
	if config.IsFeeRequired {
		fee = math.ApplyBasePoint(totalPrice, config.FeeBasePoint)
	}

	updatedAuction := auction
	updatedAuction.LastBlockTimestamp = now
	updatedAuction.TotalUserBuyCount = auction.TotalUserBuyCount + 1
	updatedAuction.TotalSupplySold = auction.TotalSupplySold + params.Amount
	updatedAuction.TotalPayment = auction.TotalPayment + totalPrice
	updatedAuction.TotalFee = auction.TotalFee + fee

	updatedRound := round
	updatedRound.LastBlockTimestamp = now
	updatedRound.TotalUserBuyCount = round.TotalUserBuyCount + 1
	updatedRound.TotalSupplySold = round.TotalSupplySold + params.Amount
	updatedRound.TotalPayment = round.TotalPayment + totalPrice
	updatedRound.TotalFee = round.TotalFee + fee

	soldOut := updatedAuction.TotalSupplySold >= updatedAuction.TotalSupply
	if soldOut {
		boost := math.CalculateBoost(
			updatedRound.TotalSupplySold,
			updatedAuction.TotalSupply/uint64(updatedAuction.TMax),
			updatedAuction.Omega,
			updatedAuction.Alpha,
			updatedAuction.TimeShiftMax,
		)
		updatedAuction.BoostHistory = appendBoost(auction.BoostHistory, boost)
		updatedAuction.Status = shared.AuctionStatusSoldOut
		updatedRound.Status = shared.AuctionRoundStatusEnded
		updatedRound.Boost = boost
	}

	updatedUser := userAuction
	if userAuction.LastBlockTimestamp == 0 {
		updatedUser.User = user
		updatedUser.Status = shared.UserAuctionStatusNone
		updatedAuction.TotalUserCount = updatedAuction.TotalUserCount + 1
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

	receipt := &shared.UserAuctionBuyReceipt{
		LastBlockTimestamp: now,
		BuyAmount:          params.Amount,
		Payment:            totalPrice,
		Round:              params.RoundIndex,
		Index:              params.BuyIndex,
	}

	return &BuyResult{
		Auction:     &updatedAuction,
		Round:       &updatedRound,
		UserAuction: &updatedUser,
		UserRound:   &updatedUserRound,
		Receipt:     receipt,
		TokenOut: TokenDelta{
			Amount:   math.AdjustAmount(params.Amount, shared.InternalDecimals, params.MintDecimals),
			Decimals: params.MintDecimals,
		},
		Payment: TokenDelta{
			Amount:   totalPrice - fee,
			Decimals: params.PaymentDecimals,
		},
		Fee: TokenDelta{
			Amount:   fee,
			Decimals: params.PaymentDecimals,
		},
		SoldOut: soldOut,
		Event: shared.BuyEvent{
			Timestamp: now,
			Mint:      auction.Mint,
			PadName:   params.PadName,
			User:      user,
			Amount:    params.Amount,
			Payment:   totalPrice,
			Fee:       fee,
			Round:     params.RoundIndex,
			BuyIndex:  params.BuyIndex,
			IsSoldOut: soldOut,
		},
	}, nil
}

package cream_pad

import (
	"context"
	"errors"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/shared"
	"github.com/bilalafzal97/cream-pad-program-library/solanautil"
)

var (
	ErrConfigNotFound      = errors.New("config account not found")
	ErrAuctionNotFound     = errors.New("auction account not found")
	ErrRoundNotFound       = errors.New("auction round account not found")
	ErrReceiptNotFound     = errors.New("buy receipt account not found")
	ErrCurrentRoundMissing = errors.New("auction has no open round")
)

// CreamPad is the high-level client. It reads on-chain state through the
// state service, replays the engine against it, and builds the payer-side
// instructions each operation requires.
type CreamPad struct {
	rpcClient *rpc.Client
	state     *StateService
	programID solanago.PublicKey
	logger    *zap.Logger
}

func NewCreamPad(rpcClient *rpc.Client, programID solanago.PublicKey, logger *zap.Logger) (*CreamPad, error) {
	if rpcClient == nil {
		return nil, errors.New("rpc client is required")
	}
	if programID.IsZero() {
		programID = ProgramID
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CreamPad{
		rpcClient: rpcClient,
		state:     NewStateService(rpcClient, programID, rpc.CommitmentFinalized),
		programID: programID,
		logger:    logger,
	}, nil
}

func (c *CreamPad) State() *StateService { return c.state }

func (c *CreamPad) loadConfig(ctx context.Context) (*shared.CreamPadConfig, error) {
	config, err := c.state.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, ErrConfigNotFound
	}
	return config, nil
}

// Buy replays one fungible purchase against current chain state and returns
// the engine result together with the buyer-signed payment instructions. The
// escrow-side token release is performed by the program itself.
func (c *CreamPad) Buy(
	ctx context.Context,
	padName string,
	mint solanago.PublicKey,
	user solanago.PublicKey,
	amount uint64,
) (*BuyResult, []solanago.Instruction, error) {
	config, err := c.loadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	auction, err := c.state.GetAuction(ctx, padName, mint)
	if err != nil {
		return nil, nil, err
	}
	if auction == nil {
		return nil, nil, ErrAuctionNotFound
	}
	if auction.CurrentRound == 0 {
		return nil, nil, ErrCurrentRoundMissing
	}

	auctionAddress := c.state.AuctionAddress(padName, mint)
	round, err := c.state.GetAuctionRound(ctx, auctionAddress, auction.CurrentRound)
	if err != nil {
		return nil, nil, err
	}
	if round == nil {
		return nil, nil, ErrRoundNotFound
	}

	userAuctionAddress := c.state.UserAuctionAddress(auctionAddress, user)
	userAuction, err := c.state.GetUserAuction(ctx, auctionAddress, user)
	if err != nil {
		return nil, nil, err
	}
	if userAuction == nil {
		userAuction = &shared.UserAuctionAccount{}
	}

	roundAddress := c.state.AuctionRoundAddress(auctionAddress, auction.CurrentRound)
	userRound, err := c.state.GetUserAuctionRound(ctx, roundAddress, userAuctionAddress)
	if err != nil {
		return nil, nil, err
	}
	if userRound == nil {
		userRound = &shared.UserAuctionRoundAccount{}
	}

	mintDecimals, err := solanautil.GetMintDecimals(ctx, c.rpcClient, auction.Mint)
	if err != nil {
		return nil, nil, err
	}
	paymentDecimals, err := solanautil.GetMintDecimals(ctx, c.rpcClient, auction.PaymentMint)
	if err != nil {
		return nil, nil, err
	}

	now, err := solanautil.GetBlockTimestamp(ctx, c.rpcClient)
	if err != nil {
		return nil, nil, err
	}

	result, err := ApplyBuy(now, *config, *auction, *round, *userAuction, *userRound, user, BuyParams{
		PadName:         padName,
		RoundIndex:      auction.CurrentRound,
		BuyIndex:        userAuction.TotalBuyCount + 1,
		Amount:          amount,
		MintDecimals:    mintDecimals,
		PaymentDecimals: paymentDecimals,
	})
	if err != nil {
		return nil, nil, err
	}

	instructions, err := c.paymentInstructions(ctx, user, auction.PaymentMint, auction.PaymentReceiver, config.FeeReceiver, result.Payment, result.Fee)
	if err != nil {
		return nil, nil, err
	}

	c.logger.Info("buy prepared",
		zap.String("pad", padName),
		zap.Uint16("round", auction.CurrentRound),
		zap.Uint64("amount", amount),
		zap.Uint64("payment", result.Payment.Amount),
		zap.Uint64("fee", result.Fee.Amount),
		zap.Bool("soldOut", result.SoldOut),
	)

	return result, instructions, nil
}

// BuyCollectionAsset is the collection twin of Buy. The flat minting fee is a
// native transfer to the back authority, one instruction beside the token
// payment.
func (c *CreamPad) BuyCollectionAsset(
	ctx context.Context,
	padName string,
	collectionMint solanago.PublicKey,
	user solanago.PublicKey,
	amount uint64,
) (*BuyCollectionAssetResult, []solanago.Instruction, error) {
	config, err := c.loadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	collection, err := c.state.GetCollectionAuction(ctx, padName, collectionMint)
	if err != nil {
		return nil, nil, err
	}
	if collection == nil {
		return nil, nil, ErrAuctionNotFound
	}
	if collection.CurrentRound == 0 {
		return nil, nil, ErrCurrentRoundMissing
	}

	collectionAddress := c.state.CollectionAuctionAddress(padName, collectionMint)
	round, err := c.state.GetCollectionAuctionRound(ctx, collectionAddress, collection.CurrentRound)
	if err != nil {
		return nil, nil, err
	}
	if round == nil {
		return nil, nil, ErrRoundNotFound
	}

	userAuctionAddress := c.state.UserCollectionAuctionAddress(collectionAddress, user)
	userAuction, err := c.state.GetUserCollectionAuction(ctx, collectionAddress, user)
	if err != nil {
		return nil, nil, err
	}
	if userAuction == nil {
		userAuction = &shared.UserCollectionAuctionAccount{}
	}

	roundAddress := c.state.CollectionAuctionRoundAddress(collectionAddress, collection.CurrentRound)
	userRound, err := c.state.GetUserCollectionAuctionRound(ctx, roundAddress, userAuctionAddress)
	if err != nil {
		return nil, nil, err
	}
	if userRound == nil {
		userRound = &shared.UserCollectionAuctionRoundAccount{}
	}

	paymentDecimals, err := solanautil.GetMintDecimals(ctx, c.rpcClient, collection.PaymentMint)
	if err != nil {
		return nil, nil, err
	}

	now, err := solanautil.GetBlockTimestamp(ctx, c.rpcClient)
	if err != nil {
		return nil, nil, err
	}

	result, err := ApplyCollectionBuy(now, *config, *collection, *round, *userAuction, *userRound, user, BuyCollectionAssetParams{
		PadName:         padName,
		RoundIndex:      collection.CurrentRound,
		BuyIndex:        userAuction.TotalBuyCount + 1,
		Amount:          amount,
		PaymentDecimals: paymentDecimals,
	})
	if err != nil {
		return nil, nil, err
	}

	instructions, err := c.paymentInstructions(ctx, user, collection.PaymentMint, collection.PaymentReceiver, config.FeeReceiver, result.Payment, result.Fee)
	if err != nil {
		return nil, nil, err
	}
	if result.MintingFee.Amount > 0 {
		instructions = append(instructions, solanautil.NativeTransferInstruction(user, config.BackAuthority, result.MintingFee.Amount))
	}
	instructions = solanautil.MergeInstructions(instructions)

	c.logger.Info("collection buy prepared",
		zap.String("pad", padName),
		zap.Uint16("round", collection.CurrentRound),
		zap.Uint64("amount", amount),
		zap.Uint64("payment", result.Payment.Amount),
		zap.Uint64("mintingFee", result.MintingFee.Amount),
		zap.Bool("soldOut", result.SoldOut),
	)

	return result, instructions, nil
}

func (c *CreamPad) paymentInstructions(
	ctx context.Context,
	user solanago.PublicKey,
	paymentMint solanago.PublicKey,
	paymentReceiver solanago.PublicKey,
	feeReceiver solanago.PublicKey,
	payment TokenDelta,
	fee TokenDelta,
) ([]solanago.Instruction, error) {
	instructions, err := solanautil.TransferInstruction(ctx, c.rpcClient, user, user, paymentReceiver, paymentMint, payment.Decimals, payment.Amount)
	if err != nil {
		return nil, err
	}

	if fee.Amount > 0 {
		feeInstructions, err := solanautil.TransferInstruction(ctx, c.rpcClient, user, user, feeReceiver, paymentMint, fee.Decimals, fee.Amount)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, feeInstructions...)
	}

	return solanautil.MergeInstructions(instructions), nil
}

// EndRound closes the current round of a fungible auction.
func (c *CreamPad) EndRound(
	ctx context.Context,
	padName string,
	mint solanago.PublicKey,
	ender solanago.PublicKey,
) (*EndRoundResult, error) {
	config, err := c.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	auction, err := c.state.GetAuction(ctx, padName, mint)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, ErrAuctionNotFound
	}

	auctionAddress := c.state.AuctionAddress(padName, mint)
	round, err := c.state.GetAuctionRound(ctx, auctionAddress, auction.CurrentRound)
	if err != nil {
		return nil, err
	}
	if round == nil {
		return nil, ErrRoundNotFound
	}

	now, err := solanautil.GetBlockTimestamp(ctx, c.rpcClient)
	if err != nil {
		return nil, err
	}

	result, err := EndRound(now, *config, *auction, *round, ender, auction.CurrentRound, padName)
	if err != nil {
		return nil, err
	}

	c.logger.Info("round ended",
		zap.String("pad", padName),
		zap.Uint16("round", round.Round),
		zap.Uint64("boost", result.Round.Boost),
		zap.String("auctionStatus", result.Auction.Status.String()),
	)
	return result, nil
}

// StartNextRound opens the round after the current one.
func (c *CreamPad) StartNextRound(
	ctx context.Context,
	padName string,
	mint solanago.PublicKey,
	starter solanago.PublicKey,
	duration int64,
) (*StartNextRoundResult, error) {
	config, err := c.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	auction, err := c.state.GetAuction(ctx, padName, mint)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, ErrAuctionNotFound
	}

	auctionAddress := c.state.AuctionAddress(padName, mint)
	previousRound, err := c.state.GetAuctionRound(ctx, auctionAddress, auction.CurrentRound)
	if err != nil {
		return nil, err
	}
	if previousRound == nil {
		return nil, ErrRoundNotFound
	}

	now, err := solanautil.GetBlockTimestamp(ctx, c.rpcClient)
	if err != nil {
		return nil, err
	}

	result, err := StartNextRound(now, *config, *auction, *previousRound, starter,
		auction.CurrentRound, auction.CurrentRound+1, duration, padName)
	if err != nil {
		return nil, err
	}

	c.logger.Info("round started",
		zap.String("pad", padName),
		zap.Uint16("round", result.NextRound.Round),
		zap.Uint64("price", result.NextRound.Price),
	)
	return result, nil
}

// LockAndDistribute splits the unsold supply of a finished fungible auction.
func (c *CreamPad) LockAndDistribute(
	ctx context.Context,
	padName string,
	mint solanago.PublicKey,
	locker solanago.PublicKey,
) (*LockAndDistributeResult, error) {
	config, err := c.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	auction, err := c.state.GetAuction(ctx, padName, mint)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, ErrAuctionNotFound
	}

	mintDecimals, err := solanautil.GetMintDecimals(ctx, c.rpcClient, auction.Mint)
	if err != nil {
		return nil, err
	}

	now, err := solanautil.GetBlockTimestamp(ctx, c.rpcClient)
	if err != nil {
		return nil, err
	}

	return LockAndDistribute(now, *config, *auction, locker, mintDecimals, padName)
}

// UnlockUnsoldSupply returns the time-locked unsold supply to the creator.
func (c *CreamPad) UnlockUnsoldSupply(
	ctx context.Context,
	padName string,
	mint solanago.PublicKey,
	creator solanago.PublicKey,
) (*UnlockUnsoldSupplyResult, error) {
	config, err := c.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	auction, err := c.state.GetAuction(ctx, padName, mint)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, ErrAuctionNotFound
	}

	mintDecimals, err := solanautil.GetMintDecimals(ctx, c.rpcClient, auction.Mint)
	if err != nil {
		return nil, err
	}

	now, err := solanautil.GetBlockTimestamp(ctx, c.rpcClient)
	if err != nil {
		return nil, err
	}

	return UnlockUnsoldSupply(now, *config, *auction, creator, mintDecimals, padName)
}

// ClaimDistribution pays out a buyer's share of the fungible distribution
// pool.
func (c *CreamPad) ClaimDistribution(
	ctx context.Context,
	padName string,
	mint solanago.PublicKey,
	user solanago.PublicKey,
) (*ClaimDistributionResult, error) {
	config, err := c.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	auction, err := c.state.GetAuction(ctx, padName, mint)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, ErrAuctionNotFound
	}

	auctionAddress := c.state.AuctionAddress(padName, mint)
	userAuctionAddress := c.state.UserAuctionAddress(auctionAddress, user)
	userAuction, err := c.state.GetUserAuction(ctx, auctionAddress, user)
	if err != nil {
		return nil, err
	}
	if userAuction == nil {
		userAuction = &shared.UserAuctionAccount{}
	}

	existingClaim, err := c.state.GetUserAuctionUnsoldDistribution(ctx, userAuctionAddress)
	if err != nil {
		return nil, err
	}

	mintDecimals, err := solanautil.GetMintDecimals(ctx, c.rpcClient, auction.Mint)
	if err != nil {
		return nil, err
	}

	now, err := solanautil.GetBlockTimestamp(ctx, c.rpcClient)
	if err != nil {
		return nil, err
	}

	return ClaimDistribution(now, *config, *auction, *userAuction, user, existingClaim != nil, mintDecimals, padName)
}

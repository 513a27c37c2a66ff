package cream_pad

import (
	solanago "github.com/gagliardetto/solana-go"

	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/math"
	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/shared"
)

// InitializeConfigParams creates the program-wide configuration. Only the
// signing authority may later change it.
type InitializeConfigParams struct {
	BackAuthority           solanago.PublicKey
	IsBackAuthorityRequired bool
	IsFeeRequired           bool
	FeeBasePoint            uint16
	FeeReceiver             solanago.PublicKey
	RoundLimit              uint16
	DistributionBasePoint   uint16
	LockBasePoint           uint16
	LockDuration            int64
	MintingFee              uint64
}

func InitializeConfig(now int64, signingAuthority solanago.PublicKey, params InitializeConfigParams) (*shared.CreamPadConfig, error) {
	if err := checkValueIsZero(uint64(params.FeeBasePoint)); err != nil {
		return nil, err
	}
	if err := checkValueIsZero(uint64(params.RoundLimit)); err != nil {
		return nil, err
	}
	if err := checkValueIsZero(uint64(params.DistributionBasePoint)); err != nil {
		return nil, err
	}
	if err := checkValueIsZero(uint64(params.LockBasePoint)); err != nil {
		return nil, err
	}
	if err := checkValueIsZero(uint64(params.LockDuration)); err != nil {
		return nil, err
	}
	if err := checkFeeBasePoint(params.FeeBasePoint); err != nil {
		return nil, err
	}
	if err := checkDistributionAndLockBasePoint(params.DistributionBasePoint + params.LockBasePoint); err != nil {
		return nil, err
	}

	return &shared.CreamPadConfig{
		LastBlockTimestamp:      now,
		SigningAuthority:        signingAuthority,
		BackAuthority:           params.BackAuthority,
		IsBackAuthorityRequired: params.IsBackAuthorityRequired,
		ProgramStatus:           shared.ProgramStatusNormal,
		IsFeeRequired:           params.IsFeeRequired,
		FeeBasePoint:            params.FeeBasePoint,
		FeeReceiver:             params.FeeReceiver,
		RoundLimit:              params.RoundLimit,
		DistributionBasePoint:   params.DistributionBasePoint,
		LockBasePoint:           params.LockBasePoint,
		LockDuration:            params.LockDuration,
		MintingFee:              params.MintingFee,
	}, nil
}

// UpdateConfigParams rewrites every tunable of the configuration, including
// the operational status used to halt the program.
type UpdateConfigParams struct {
	BackAuthority           solanago.PublicKey
	IsBackAuthorityRequired bool
	IsFeeRequired           bool
	FeeBasePoint            uint16
	FeeReceiver             solanago.PublicKey
	RoundLimit              uint16
	ProgramStatus           shared.ProgramStatus
	DistributionBasePoint   uint16
	LockBasePoint           uint16
	LockDuration            int64
	MintingFee              uint64
}

func UpdateConfig(now int64, config shared.CreamPadConfig, signingAuthority solanago.PublicKey, params UpdateConfigParams) (*shared.CreamPadConfig, error) {
	if err := checkSigningAuthority(config.SigningAuthority, signingAuthority); err != nil {
		return nil, err
	}
	if err := checkValueIsZero(uint64(params.FeeBasePoint)); err != nil {
		return nil, err
	}
	if err := checkValueIsZero(uint64(params.RoundLimit)); err != nil {
		return nil, err
	}
	if err := checkValueIsZero(uint64(params.LockBasePoint)); err != nil {
		return nil, err
	}
	if err := checkValueIsZero(uint64(params.LockDuration)); err != nil {
		return nil, err
	}
	if err := checkFeeBasePoint(params.FeeBasePoint); err != nil {
		return nil, err
	}
	if err := checkDistributionAndLockBasePoint(params.DistributionBasePoint + params.LockBasePoint); err != nil {
		return nil, err
	}

	updated := config
	updated.LastBlockTimestamp = now
	updated.BackAuthority = params.BackAuthority
	updated.IsBackAuthorityRequired = params.IsBackAuthorityRequired
	updated.ProgramStatus = params.ProgramStatus
	updated.IsFeeRequired = params.IsFeeRequired
	updated.FeeBasePoint = params.FeeBasePoint
	updated.FeeReceiver = params.FeeReceiver
	updated.RoundLimit = params.RoundLimit
	updated.DistributionBasePoint = params.DistributionBasePoint
	updated.LockBasePoint = params.LockBasePoint
	updated.LockDuration = params.LockDuration
	updated.MintingFee = params.MintingFee
	return &updated, nil
}

// InitializePadParams configures one fungible-mint sale campaign. The supply
// is expressed in the internal 9-decimal unit.
type InitializePadParams struct {
	PaymentMint     solanago.PublicKey
	PaymentReceiver solanago.PublicKey
	P0              uint64
	PTMax           uint64
	TMax            uint16
	Omega           uint64
	Alpha           uint64
	TimeShiftMax    uint64
	RoundDuration   int64
	Supply          uint64
	DecayModel      shared.DecayModelType
	PadName         string
	MintDecimals    uint8
}

type InitializePadResult struct {
	Auction    *shared.AuctionAccount
	FirstRound *shared.AuctionRoundAccount

	// Deposit is the supply the creator moves into the pad's escrow.
	Deposit TokenDelta

	Event shared.InitializePadEvent
}

func InitializePad(
	now int64,
	config shared.CreamPadConfig,
	creator solanago.PublicKey,
	mint solanago.PublicKey,
	backAuthority solanago.PublicKey,
	params InitializePadParams,
) (*InitializePadResult, error) {
	if err := checkProgramWorking(config.ProgramStatus); err != nil {
		return nil, err
	}
	if err := checkBackAuthority(config.BackAuthority, backAuthority); err != nil {
		return nil, err
	}
	for _, v := range []uint64{
		params.P0,
		params.PTMax,
		uint64(params.TMax),
		params.Omega,
		params.Alpha,
		params.TimeShiftMax,
		uint64(params.RoundDuration),
		params.Supply,
	} {
		if err := checkValueIsZero(v); err != nil {
			return nil, err
		}
	}
	if err := checkRoundLimit(config.RoundLimit, params.TMax); err != nil {
		return nil, err
	}
	if err := checkPTMax(params.P0, params.PTMax); err != nil {
		return nil, err
	}

	auction := &shared.AuctionAccount{
		LastBlockTimestamp: now,
		Creator:            creator,
		Mint:               mint,
		PaymentMint:        params.PaymentMint,
		PaymentReceiver:    params.PaymentReceiver,
		Status:             shared.AuctionStatusStarted,
		P0:                 params.P0,
		PTMax:              params.PTMax,
		TMax:               params.TMax,
		Omega:              params.Omega,
		Alpha:              params.Alpha,
		TimeShiftMax:       params.TimeShiftMax,
		CurrentPrice:       params.P0,
		CurrentRound:       shared.FirstRound,
		BoostHistory:       make([]uint64, 0, params.TMax),
		DecayModel:         params.DecayModel,
		TotalSupply:        params.Supply,
	}

	firstRound := &shared.AuctionRoundAccount{
		LastBlockTimestamp: now,
		RoundStartAt:       now,
		RoundEndAt:         now + params.RoundDuration,
		Round:              shared.FirstRound,
		Price:              params.P0,
	}

	return &InitializePadResult{
		Auction:    auction,
		FirstRound: firstRound,
		Deposit: TokenDelta{
			Amount:   math.AdjustAmount(params.Supply, shared.InternalDecimals, params.MintDecimals),
			Decimals: params.MintDecimals,
		},
		Event: shared.InitializePadEvent{
			Timestamp: now,
			Mint:      mint,
			PadName:   params.PadName,
		},
	}, nil
}

// UpdatePad changes the payment receiver of an existing pad.
func UpdatePad(
	now int64,
	config shared.CreamPadConfig,
	auction shared.AuctionAccount,
	paymentReceiver solanago.PublicKey,
	padName string,
) (*shared.AuctionAccount, *shared.UpdatePadEvent, error) {
	if err := checkProgramWorking(config.ProgramStatus); err != nil {
		return nil, nil, err
	}

	updated := auction
	updated.LastBlockTimestamp = now
	updated.PaymentReceiver = paymentReceiver

	return &updated, &shared.UpdatePadEvent{
		Timestamp:       now,
		Mint:            auction.Mint,
		PadName:         padName,
		PaymentReceiver: paymentReceiver,
	}, nil
}

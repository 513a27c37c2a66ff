package cream_pad

import (
	solanago "github.com/gagliardetto/solana-go"

	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/shared"
)

// InitializeCollectionPadParams configures one NFT-collection sale campaign.
// Supply counts whole assets; the asset index range [StartingIndex,
// StartingIndex+Supply) is consumed one unit at a time on fill.
type InitializeCollectionPadParams struct {
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

	SellerFeeBasisPoints uint16
	AssetCreators        []shared.AssetCreator
	StartingIndex        uint64

	HaveBuyLimit bool
	BuyLimit     uint64

	AssetName      string
	AssetSymbol    string
	AssetURL       string
	AssetURLSuffix string
}

type InitializeCollectionPadResult struct {
	Collection *shared.CollectionAuctionAccount
	FirstRound *shared.CollectionAuctionRoundAccount
	Event      shared.InitializeCollectionPadEvent
}

func InitializeCollectionPad(
	now int64,
	config shared.CreamPadConfig,
	creator solanago.PublicKey,
	collectionMint solanago.PublicKey,
	currentUpdateAuthority solanago.PublicKey,
	backAuthority solanago.PublicKey,
	params InitializeCollectionPadParams,
) (*InitializeCollectionPadResult, error) {
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
	if err := checkSupplyEvenlyDivisible(params.Supply, uint64(params.TMax)); err != nil {
		return nil, err
	}
	if params.HaveBuyLimit {
		if err := checkValueIsZero(params.BuyLimit); err != nil {
			return nil, err
		}
	}
	if err := checkRoundLimit(config.RoundLimit, params.TMax); err != nil {
		return nil, err
	}
	if err := checkPTMax(params.P0, params.PTMax); err != nil {
		return nil, err
	}
	if len(params.AssetCreators) > 0 {
		if err := checkUniqueCreators(params.AssetCreators); err != nil {
			return nil, err
		}
		var shareSum uint8
		for _, c := range params.AssetCreators {
			shareSum += c.Share
		}
		if err := checkCreatorsShare(shareSum); err != nil {
			return nil, err
		}
	}
	if err := checkSellerFeeBasisPoints(params.SellerFeeBasisPoints); err != nil {
		return nil, err
	}

	collection := &shared.CollectionAuctionAccount{
		LastBlockTimestamp:        now,
		Creator:                   creator,
		CollectionMint:            collectionMint,
		CollectionUpdateAuthority: currentUpdateAuthority,
		PaymentMint:               params.PaymentMint,
		PaymentReceiver:           params.PaymentReceiver,
		Status:                    shared.AuctionStatusStarted,
		P0:                        params.P0,
		PTMax:                     params.PTMax,
		TMax:                      params.TMax,
		Omega:                     params.Omega,
		Alpha:                     params.Alpha,
		TimeShiftMax:              params.TimeShiftMax,
		CurrentPrice:              params.P0,
		CurrentRound:              shared.FirstRound,
		BoostHistory:              make([]float64, 0, params.TMax),
		DecayModel:                params.DecayModel,
		SellerFeeBasisPoints:      params.SellerFeeBasisPoints,
		AssetCreators:             params.AssetCreators,
		TotalSupply:               params.Supply,
		StartingIndex:             params.StartingIndex,
		EndingIndex:               params.StartingIndex + params.Supply,
		CurrentIndex:              params.StartingIndex,
		AssetName:                 params.AssetName,
		AssetSymbol:               params.AssetSymbol,
		AssetURL:                  params.AssetURL,
		AssetURLSuffix:            params.AssetURLSuffix,

		HaveCollectionUpdateAuthority: true,
	}

	firstRound := &shared.CollectionAuctionRoundAccount{
		LastBlockTimestamp: now,
		RoundStartAt:       now,
		RoundEndAt:         now + params.RoundDuration,
		Round:              shared.FirstRound,
		Price:              params.P0,
		HaveBuyLimit:       params.HaveBuyLimit,
		BuyLimit:           params.BuyLimit,
	}

	return &InitializeCollectionPadResult{
		Collection: collection,
		FirstRound: firstRound,
		Event: shared.InitializeCollectionPadEvent{
			Timestamp:      now,
			CollectionMint: collectionMint,
			PadName:        params.PadName,
		},
	}, nil
}

// UpdateCollectionPad changes the payment receiver of an existing collection
// pad.
func UpdateCollectionPad(
	now int64,
	config shared.CreamPadConfig,
	collection shared.CollectionAuctionAccount,
	paymentReceiver solanago.PublicKey,
	padName string,
) (*shared.CollectionAuctionAccount, *shared.UpdateCollectionPadEvent, error) {
	if err := checkProgramWorking(config.ProgramStatus); err != nil {
		return nil, nil, err
	}

	updated := collection
	updated.LastBlockTimestamp = now
	updated.PaymentReceiver = paymentReceiver

	return &updated, &shared.UpdateCollectionPadEvent{
		Timestamp:       now,
		CollectionMint:  collection.CollectionMint,
		PadName:         padName,
		PaymentReceiver: paymentReceiver,
	}, nil
}

// GiveCollectionUpdateAuthority hands the collection's metadata update
// authority from the pad to newUpdateAuthority. Once given away the pad can
// no longer fill assets into the collection until the authority is taken
// back.
func GiveCollectionUpdateAuthority(
	now int64,
	config shared.CreamPadConfig,
	collection shared.CollectionAuctionAccount,
	backAuthority solanago.PublicKey,
	newUpdateAuthority solanago.PublicKey,
	padName string,
) (*shared.CollectionAuctionAccount, *shared.GiveCollectionUpdateAuthorityEvent, error) {
	if err := checkProgramWorking(config.ProgramStatus); err != nil {
		return nil, nil, err
	}
	if err := checkBackAuthority(config.BackAuthority, backAuthority); err != nil {
		return nil, nil, err
	}
	if !collection.HaveCollectionUpdateAuthority {
		return nil, nil, ErrMissingCollectionUpdateAuthority
	}

	updated := collection
	updated.LastBlockTimestamp = now
	updated.CollectionUpdateAuthority = newUpdateAuthority
	updated.HaveCollectionUpdateAuthority = false

	return &updated, &shared.GiveCollectionUpdateAuthorityEvent{
		Timestamp:          now,
		CollectionMint:     collection.CollectionMint,
		PadName:            padName,
		NewUpdateAuthority: newUpdateAuthority,
	}, nil
}

// TakeCollectionUpdateAuthority returns the metadata update authority to the
// pad. padAddress is the pad's own derived account address, which becomes the
// collection's update authority again.
func TakeCollectionUpdateAuthority(
	now int64,
	config shared.CreamPadConfig,
	collection shared.CollectionAuctionAccount,
	backAuthority solanago.PublicKey,
	padAddress solanago.PublicKey,
	padName string,
) (*shared.CollectionAuctionAccount, *shared.TakeCollectionUpdateAuthorityEvent, error) {
	if err := checkProgramWorking(config.ProgramStatus); err != nil {
		return nil, nil, err
	}
	if err := checkBackAuthority(config.BackAuthority, backAuthority); err != nil {
		return nil, nil, err
	}
	if collection.HaveCollectionUpdateAuthority {
		return nil, nil, ErrHaveCollectionUpdateAuthority
	}

	updated := collection
	updated.LastBlockTimestamp = now
	updated.CollectionUpdateAuthority = padAddress
	updated.HaveCollectionUpdateAuthority = true

	return &updated, &shared.TakeCollectionUpdateAuthorityEvent{
		Timestamp:      now,
		CollectionMint: collection.CollectionMint,
		PadName:        padName,
	}, nil
}

package cream_pad

import (
	"context"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/helpers"
	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/shared"
)

// StateService reads program accounts from the chain. Addresses are derived
// deterministically from the pad name, the mint and the buyer; a missing
// account returns (nil, nil) so callers can distinguish absent records (first
// buy, unclaimed distribution) from RPC failures.
type StateService struct {
	rpcClient  *rpc.Client
	programID  solanago.PublicKey
	commitment rpc.CommitmentType
}

func NewStateService(rpcClient *rpc.Client, programID solanago.PublicKey, commitment rpc.CommitmentType) *StateService {
	if commitment == "" {
		commitment = rpc.CommitmentFinalized
	}
	return &StateService{
		rpcClient:  rpcClient,
		programID:  programID,
		commitment: commitment,
	}
}

// Address accessors so callers derive PDAs against the same program id the
// service reads with.

func (s *StateService) ConfigAddress() solanago.PublicKey {
	return helpers.DeriveCreamPadConfigAddress(s.programID)
}

func (s *StateService) AuctionAddress(padName string, mint solanago.PublicKey) solanago.PublicKey {
	return helpers.DeriveAuctionAddress(padName, mint, s.programID)
}

func (s *StateService) AuctionVaultAddress(auction solanago.PublicKey) solanago.PublicKey {
	return helpers.DeriveAuctionVaultAddress(auction, s.programID)
}

func (s *StateService) AuctionRoundAddress(auction solanago.PublicKey, round uint16) solanago.PublicKey {
	return helpers.DeriveAuctionRoundAddress(auction, round, s.programID)
}

func (s *StateService) UserAuctionAddress(auction, user solanago.PublicKey) solanago.PublicKey {
	return helpers.DeriveUserAuctionAddress(auction, user, s.programID)
}

func (s *StateService) UserAuctionRoundAddress(auctionRound, userAuction solanago.PublicKey) solanago.PublicKey {
	return helpers.DeriveUserAuctionRoundAddress(auctionRound, userAuction, s.programID)
}

func (s *StateService) CollectionAuctionAddress(padName string, collectionMint solanago.PublicKey) solanago.PublicKey {
	return helpers.DeriveCollectionAuctionAddress(padName, collectionMint, s.programID)
}

func (s *StateService) CollectionAuctionRoundAddress(collectionAuction solanago.PublicKey, round uint16) solanago.PublicKey {
	return helpers.DeriveCollectionAuctionRoundAddress(collectionAuction, round, s.programID)
}

func (s *StateService) UserCollectionAuctionAddress(collectionAuction, user solanago.PublicKey) solanago.PublicKey {
	return helpers.DeriveUserCollectionAuctionAddress(collectionAuction, user, s.programID)
}

func (s *StateService) fetch(ctx context.Context, address solanago.PublicKey) ([]byte, error) {
	out, err := s.rpcClient.GetAccountInfoWithOpts(ctx, address, &rpc.GetAccountInfoOpts{Commitment: s.commitment})
	if err != nil {
		if err == rpc.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return out.GetBinary(), nil
}

func (s *StateService) GetConfig(ctx context.Context) (*shared.CreamPadConfig, error) {
	data, err := s.fetch(ctx, helpers.DeriveCreamPadConfigAddress(s.programID))
	if err != nil || data == nil {
		return nil, err
	}
	return helpers.ParseCreamPadConfig(data)
}

func (s *StateService) GetAuction(ctx context.Context, padName string, mint solanago.PublicKey) (*shared.AuctionAccount, error) {
	data, err := s.fetch(ctx, helpers.DeriveAuctionAddress(padName, mint, s.programID))
	if err != nil || data == nil {
		return nil, err
	}
	return helpers.ParseAuction(data)
}

func (s *StateService) GetAuctionRound(ctx context.Context, auction solanago.PublicKey, round uint16) (*shared.AuctionRoundAccount, error) {
	data, err := s.fetch(ctx, helpers.DeriveAuctionRoundAddress(auction, round, s.programID))
	if err != nil || data == nil {
		return nil, err
	}
	return helpers.ParseAuctionRound(data)
}

func (s *StateService) GetUserAuction(ctx context.Context, auction, user solanago.PublicKey) (*shared.UserAuctionAccount, error) {
	data, err := s.fetch(ctx, helpers.DeriveUserAuctionAddress(auction, user, s.programID))
	if err != nil || data == nil {
		return nil, err
	}
	return helpers.ParseUserAuction(data)
}

func (s *StateService) GetUserAuctionRound(ctx context.Context, auctionRound, userAuction solanago.PublicKey) (*shared.UserAuctionRoundAccount, error) {
	data, err := s.fetch(ctx, helpers.DeriveUserAuctionRoundAddress(auctionRound, userAuction, s.programID))
	if err != nil || data == nil {
		return nil, err
	}
	return helpers.ParseUserAuctionRound(data)
}

func (s *StateService) GetUserAuctionBuyReceipt(ctx context.Context, userAuction solanago.PublicKey, buyIndex uint64) (*shared.UserAuctionBuyReceipt, error) {
	data, err := s.fetch(ctx, helpers.DeriveUserAuctionBuyReceiptAddress(userAuction, buyIndex, s.programID))
	if err != nil || data == nil {
		return nil, err
	}
	return helpers.ParseUserAuctionBuyReceipt(data)
}

func (s *StateService) GetUserAuctionUnsoldDistribution(ctx context.Context, userAuction solanago.PublicKey) (*shared.UserAuctionUnsoldDistribution, error) {
	data, err := s.fetch(ctx, helpers.DeriveUserAuctionUnsoldDistributionAddress(userAuction, s.programID))
	if err != nil || data == nil {
		return nil, err
	}
	return helpers.ParseUserAuctionUnsoldDistribution(data)
}

func (s *StateService) GetCollectionAuction(ctx context.Context, padName string, collectionMint solanago.PublicKey) (*shared.CollectionAuctionAccount, error) {
	data, err := s.fetch(ctx, helpers.DeriveCollectionAuctionAddress(padName, collectionMint, s.programID))
	if err != nil || data == nil {
		return nil, err
	}
	return helpers.ParseCollectionAuction(data)
}

func (s *StateService) GetCollectionAuctionRound(ctx context.Context, collectionAuction solanago.PublicKey, round uint16) (*shared.CollectionAuctionRoundAccount, error) {
	data, err := s.fetch(ctx, helpers.DeriveCollectionAuctionRoundAddress(collectionAuction, round, s.programID))
	if err != nil || data == nil {
		return nil, err
	}
	return helpers.ParseCollectionAuctionRound(data)
}

func (s *StateService) GetUserCollectionAuction(ctx context.Context, collectionAuction, user solanago.PublicKey) (*shared.UserCollectionAuctionAccount, error) {
	data, err := s.fetch(ctx, helpers.DeriveUserCollectionAuctionAddress(collectionAuction, user, s.programID))
	if err != nil || data == nil {
		return nil, err
	}
	return helpers.ParseUserCollectionAuction(data)
}

func (s *StateService) GetUserCollectionAuctionRound(ctx context.Context, collectionAuctionRound, userCollectionAuction solanago.PublicKey) (*shared.UserCollectionAuctionRoundAccount, error) {
	data, err := s.fetch(ctx, helpers.DeriveUserCollectionAuctionRoundAddress(collectionAuctionRound, userCollectionAuction, s.programID))
	if err != nil || data == nil {
		return nil, err
	}
	return helpers.ParseUserCollectionAuctionRound(data)
}

func (s *StateService) GetUserCollectionAuctionBuyReceipt(ctx context.Context, userCollectionAuction solanago.PublicKey, buyIndex uint64) (*shared.UserCollectionAuctionBuyReceipt, error) {
	data, err := s.fetch(ctx, helpers.DeriveUserCollectionAuctionBuyReceiptAddress(userCollectionAuction, buyIndex, s.programID))
	if err != nil || data == nil {
		return nil, err
	}
	return helpers.ParseUserCollectionAuctionBuyReceipt(data)
}

func (s *StateService) GetUserCollectionAuctionUnsoldDistribution(ctx context.Context, userCollectionAuction solanago.PublicKey) (*shared.UserCollectionAuctionUnsoldDistribution, error) {
	data, err := s.fetch(ctx, helpers.DeriveUserCollectionAuctionUnsoldDistributionAddress(userCollectionAuction, s.programID))
	if err != nil || data == nil {
		return nil, err
	}
	return helpers.ParseUserCollectionAuctionUnsoldDistribution(data)
}

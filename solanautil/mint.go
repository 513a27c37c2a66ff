package solanautil

import (
	"context"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"
)

// GetMintDecimals reads a mint account and returns its decimal precision.
// Auction operations need this for both the sale mint and the payment mint.
func GetMintDecimals(ctx context.Context, rpcClient *rpc.Client, mint solana.PublicKey) (uint8, error) {
	info, err := GetAccountInfo(ctx, rpcClient, mint)
	if err != nil {
		return 0, err
	}
	if info == nil || info.Value == nil {
		return 0, fmt.Errorf("mint account %s not found", mint)
	}

	var m token.Mint
	if err := m.Decode(info.Value.Data.GetBinary()); err != nil {
		return 0, fmt.Errorf("failed to decode mint %s: %w", mint, err)
	}
	return m.Decimals, nil
}

// GetTokenBalance returns the token amount held by owner's associated account
// for mint. A missing account reads as zero.
func GetTokenBalance(ctx context.Context, rpcClient *rpc.Client, owner solana.PublicKey, mint solana.PublicKey) (uint64, error) {
	ata, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return 0, err
	}

	info, err := GetAccountInfo(ctx, rpcClient, ata)
	if err == rpc.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if info == nil || info.Value == nil {
		return 0, nil
	}

	acc, err := parseTokenAccount(info.Value.Data.GetBinary())
	if err != nil {
		return 0, fmt.Errorf("failed to decode token account %s: %w", ata, err)
	}
	return acc.Amount, nil
}

// parseTokenAccount decodes a raw SPL token account. token.Account has no
// Decode helper of its own, so the raw bin decoder is used directly.
func parseTokenAccount(data []byte) (token.Account, error) {
	var acc token.Account
	if err := bin.NewBinDecoder(data).Decode(&acc); err != nil {
		return token.Account{}, err
	}
	return acc, nil
}

package solanautil

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"
)

func GetAccountInfo(ctx context.Context, rpcClient *rpc.Client, account solana.PublicKey) (*rpc.GetAccountInfoResult, error) {
	return rpcClient.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{Commitment: rpc.CommitmentFinalized})
}

func GetLatestBlockhash(ctx context.Context, rpcClient *rpc.Client) (solana.Hash, error) {
	recent, err := rpcClient.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Hash{}, err
	}
	return recent.Value.Blockhash, nil
}

// GetBlockTimestamp reads the cluster clock once. Operations treat the value
// as constant for their whole duration.
func GetBlockTimestamp(ctx context.Context, rpcClient *rpc.Client) (int64, error) {
	currentSlot, err := rpcClient.GetSlot(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return 0, fmt.Errorf("failed to get slot: %w", err)
	}
	blockTime, err := rpcClient.GetBlockTime(ctx, currentSlot)
	if err != nil {
		return 0, fmt.Errorf("failed to get block time: %w", err)
	}
	if blockTime == nil {
		return time.Now().Unix(), nil
	}
	return blockTime.Time().Unix(), nil
}

// PrepareTokenATA checks if the owner's ATA exists and appends a create
// instruction if it doesn't.
func PrepareTokenATA(
	ctx context.Context,
	rpcClient *rpc.Client,
	owner solana.PublicKey,
	tokenMint solana.PublicKey,
	payer solana.PublicKey,
	instructions *[]solana.Instruction,
) (solana.PublicKey, error) {
	tokenATA, _, err := solana.FindAssociatedTokenAddress(owner, tokenMint)
	if err != nil {
		return solana.PublicKey{}, err
	}

	exists, err := GetAccountInfo(ctx, rpcClient, tokenATA)
	if err != nil && err != rpc.ErrNotFound {
		return solana.PublicKey{}, err
	}

	if exists == nil {
		ix := associatedtokenaccount.NewCreateInstruction(
			payer, owner, tokenMint,
		).Build()
		*instructions = append(*instructions, ix)
	}
	return tokenATA, nil
}

// TransferInstruction builds a checked token transfer between two owners'
// associated accounts, creating the accounts as needed.
func TransferInstruction(
	ctx context.Context,
	rpcClient *rpc.Client,
	payer solana.PublicKey,
	sender solana.PublicKey,
	receiver solana.PublicKey,
	mint solana.PublicKey,
	decimals uint8,
	amount uint64,
) ([]solana.Instruction, error) {

	var instructions []solana.Instruction

	sendTokenAccount, err := PrepareTokenATA(ctx, rpcClient, sender, mint, payer, &instructions)
	if err != nil {
		return nil, err
	}

	receiveTokenAccount, err := PrepareTokenATA(ctx, rpcClient, receiver, mint, payer, &instructions)
	if err != nil {
		return nil, err
	}

	transferIx := token.NewTransferCheckedInstruction(
		amount,
		decimals,
		sendTokenAccount,
		mint,
		receiveTokenAccount,
		sender,
		[]solana.PublicKey{},
	).Build()

	return append(instructions, transferIx), nil
}

// NativeTransferInstruction moves lamports between system accounts (minting
// fees).
func NativeTransferInstruction(
	from solana.PublicKey,
	to solana.PublicKey,
	lamports uint64,
) solana.Instruction {
	return system.NewTransferInstruction(lamports, from, to).Build()
}

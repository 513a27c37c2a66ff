package solanautil

import (
	bin "encoding/binary"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/system"
)

var (
	ataInstructionTypeID      = binary.NoTypeIDDefaultID
	transferInstructionTypeID = binary.TypeIDFromUint32(system.Instruction_Transfer, bin.LittleEndian)
)

// MergeInstructions deduplicates create-ATA instructions and coalesces
// lamport transfers with the same funding and recipient accounts. A single
// operation can otherwise emit the same ATA create twice (payment and fee
// both land in the receiver's account) and several small fee transfers.
func MergeInstructions(oldInstructions []solana.Instruction) []solana.Instruction {
	var (
		ataCreates   []*associatedtokenaccount.Create
		solTransfers []*system.Transfer

		newInstructions []solana.Instruction
	)

	for _, v := range oldInstructions {
		switch inst := v.(type) {
		case *associatedtokenaccount.Instruction:
			if inst.TypeID != ataInstructionTypeID {
				newInstructions = append(newInstructions, v)
				break
			}

			create, ok := inst.Impl.(associatedtokenaccount.Create)
			if !ok {
				newInstructions = append(newInstructions, v)
				break
			}

			seen := false
			for _, prev := range ataCreates {
				if create.Mint != prev.Mint ||
					create.Payer != prev.Payer ||
					create.Wallet != prev.Wallet {
					continue
				}
				seen = true
				break
			}
			if !seen {
				ataCreates = append(ataCreates, &create)
				newInstructions = append(newInstructions, v)
			}
		case *system.Instruction:
			if inst.TypeID != transferInstructionTypeID {
				newInstructions = append(newInstructions, v)
				break
			}

			transfer, ok := inst.Impl.(system.Transfer)
			if !ok {
				newInstructions = append(newInstructions, v)
				break
			}

			seen := false
			for _, prev := range solTransfers {
				if transfer.GetFundingAccount().PublicKey != prev.GetFundingAccount().PublicKey ||
					transfer.GetRecipientAccount().PublicKey != prev.GetRecipientAccount().PublicKey {
					continue
				}
				seen = true
				*prev.Lamports += *transfer.Lamports
				break
			}
			if !seen {
				solTransfers = append(solTransfers, &transfer)
				newInstructions = append(newInstructions, v)
			}
		default:
			newInstructions = append(newInstructions, v)
		}
	}

	return newInstructions
}

package cream_pad

import (
	solanago "github.com/gagliardetto/solana-go"
)

var (
	// ProgramID is the on-chain launchpad program.
	ProgramID = solanago.MustPublicKeyFromBase58("5sqESwK18j9eH8wk58bZocg2eytvQgJvtJgBq3f1MXEs")
)

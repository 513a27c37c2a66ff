package creampad

import (
	creamPad "github.com/bilalafzal97/cream-pad-program-library/cream_pad"
)

// NewClient creates a new cream pad client.
//
// Example:
//
// pad, _ := NewClient(rpcClient, creamPad.ProgramID, logger)
//
// pad.Buy(ctx, "launch-one", mint, buyer, 250_000_000_000)
//
// pad.ClaimDistribution(ctx, "launch-one", mint, buyer)
var NewClient = creamPad.NewCreamPad

// NewStateReader creates a read-only state service.
//
// Example:
//
// reader := NewStateReader(rpcClient, creamPad.ProgramID, rpc.CommitmentFinalized)
//
// auction, _ := reader.GetAuction(ctx, "launch-one", mint)
var NewStateReader = creamPad.NewStateService

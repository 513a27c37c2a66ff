package cream_pad

import (
	"encoding/base64"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/helpers"
	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/shared"
)

// The RPC returns account data base64-wrapped inside a JSON envelope; this
// round-trips one config account through that envelope.
func TestConfigThroughRPCEnvelope(t *testing.T) {
	config := &shared.CreamPadConfig{
		LastBlockTimestamp:    1_000,
		SigningAuthority:      testSigningAuthority,
		BackAuthority:         testBackAuthority,
		ProgramStatus:         shared.ProgramStatusNormal,
		IsFeeRequired:         true,
		FeeBasePoint:          250,
		FeeReceiver:           testFeeReceiver,
		RoundLimit:            10,
		DistributionBasePoint: 4_000,
		LockBasePoint:         6_000,
		LockDuration:          86_400,
		MintingFee:            5_000,
	}

	raw, err := helpers.MarshalCreamPadConfig(config)
	require.NoError(t, err)

	envelope, err := jsoniter.Marshal(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      1,
		"result": map[string]interface{}{
			"context": map[string]interface{}{"slot": 12345},
			"value": map[string]interface{}{
				"lamports": 2_039_280,
				"owner":    ProgramID.String(),
				"data":     []string{base64.StdEncoding.EncodeToString(raw), "base64"},
			},
		},
	})
	require.NoError(t, err)

	encoded := gjson.GetBytes(envelope, "result.value.data.0")
	require.True(t, encoded.Exists())
	assert.Equal(t, ProgramID.String(), gjson.GetBytes(envelope, "result.value.owner").String())

	data, err := base64.StdEncoding.DecodeString(encoded.String())
	require.NoError(t, err)

	parsed, err := helpers.ParseCreamPadConfig(data)
	require.NoError(t, err)
	assert.Equal(t, config, parsed)
}

func TestStateServiceAddresses(t *testing.T) {
	service := NewStateService(nil, ProgramID, "")

	auction := service.AuctionAddress("launch-one", testMint)
	assert.Equal(t, helpers.DeriveAuctionAddress("launch-one", testMint, ProgramID), auction)

	round := service.AuctionRoundAddress(auction, 1)
	assert.NotEqual(t, auction, round)
	assert.Equal(t, round, service.AuctionRoundAddress(auction, 1))

	vault := service.AuctionVaultAddress(auction)
	assert.NotEqual(t, auction, vault)
}

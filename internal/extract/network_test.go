package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func networkInput(tokens []string) Input {
	return Input{Tokens: tokens, Lower: LowerAll(tokens)}
}

// TestNetworkDeviceExtractor_PortsSpeedModel covers spec.md §4.10's
// Network-Device Path: a Cisco switch title with ports, speed, and model.
func TestNetworkDeviceExtractor_PortsSpeedModel(t *testing.T) {
	tokens := []string{"Cisco", "WS-C2960X-24PS-L", "24-Port", "1Gbps", "Switch"}
	in := networkInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewNetworkDeviceExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "24", results[0]["switch_ports"])
	assert.Equal(t, "1Gbps", results[0]["switch_speed"])
	assert.Equal(t, "WS-C2960X-24PS-L", results[0]["switch_model"])
}

func TestNetworkDeviceExtractor_MbpsSpeed(t *testing.T) {
	tokens := []string{"Netgear", "8-Port", "100Mbps", "Hub"}
	in := networkInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewNetworkDeviceExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "8", results[0]["switch_ports"])
	assert.Equal(t, "100Mbps", results[0]["switch_speed"])
}

func TestNetworkDeviceExtractor_NoMatch(t *testing.T) {
	tokens := []string{"Dell", "Latitude", "7490"}
	in := networkInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewNetworkDeviceExtractor(), in, consumed, "")
	assert.Empty(t, results)
}

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deviceInput(tokens []string) Input {
	return Input{Tokens: tokens, Lower: LowerAll(tokens)}
}

func TestDeviceFormFactorExtractor_SFF(t *testing.T) {
	tokens := []string{"HP", "EliteDesk", "800", "G3", "SFF"}
	in := deviceInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewDeviceFormFactorExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "Small Form Factor (SFF)", results[0]["device_form_factor"])
}

func TestDeviceFormFactorExtractor_RackUnit(t *testing.T) {
	tokens := []string{"Dell", "PowerEdge", "R720", "2U", "Server"}
	in := deviceInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewDeviceFormFactorExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "2U", results[0]["device_form_factor"])
}

func TestBatteryExtractor_HealthPercent(t *testing.T) {
	tokens := []string{"MacBook", "Pro", "Battery", "92%"}
	in := deviceInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewBatteryExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "Included", results[0]["battery_status"])
	assert.Equal(t, "92%", results[0]["battery_health"])
}

func TestBatteryExtractor_Missing(t *testing.T) {
	tokens := []string{"Laptop", "No", "Battery"}
	in := deviceInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewBatteryExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "Not Included", results[0]["battery_status"])
}

func TestSwitchExtractor_BrandPortsModel(t *testing.T) {
	tokens := []string{"Cisco", "WS-C2960X-24PS-L", "24-Port", "1Gbps", "Switch"}
	in := deviceInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewSwitchExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "Cisco", results[0]["switch_brand"])
	assert.Equal(t, "24", results[0]["switch_ports"])
	assert.Equal(t, "1Gbps", results[0]["switch_speed"])
	assert.Equal(t, "WS-C2960X-24PS-L", results[0]["switch_model"])
}

func TestAdapterExtractor_WattageAndType(t *testing.T) {
	tokens := []string{"Dell", "65W", "Adapter", "Laptop"}
	in := deviceInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewAdapterExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "Adapter", results[0]["adapter_type"])
	assert.Equal(t, "65W", results[0]["adapter_wattage"])
}

func TestHDDExtractor_InterfaceFormFactorRPM(t *testing.T) {
	tokens := []string{"Seagate", "SAS", "3.5\"", "15000rpm", "Drive"}
	in := deviceInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewHDDExtractor(), in, consumed, "Internal Hard Disk Drives")
	require.Len(t, results, 1)
	assert.Equal(t, "SAS", results[0]["hdd_interface"])
	assert.Equal(t, `3.5"`, results[0]["hdd_form_factor"])
	assert.Equal(t, "15000", results[0]["hdd_rpm"])
}

func TestHDDExtractor_GatedByDeviceType(t *testing.T) {
	tokens := []string{"Seagate", "SAS", "3.5\"", "15000rpm", "Drive"}
	in := deviceInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewHDDExtractor(), in, consumed, "PC Laptops")
	assert.Empty(t, results, "HDDExtractor is whitelisted to Internal Hard Disk Drives only")
}

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theatomus/listingscanner/internal/context"
	"github.com/theatomus/listingscanner/internal/reftables"
)

func phoneInput(tokens []string) Input {
	return Input{
		Tokens: tokens,
		Lower:  LowerAll(tokens),
		Ctx:    context.Context{HasPhoneContext: true},
		Tables: reftables.New(),
	}
}

func TestPhoneExtractor_iPhoneCarrierColorStorage(t *testing.T) {
	tokens := []string{"Apple", "iPhone", "12", "Pro", "Verizon", "128GB", "Gold", "Unlocked"}
	in := phoneInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewPhoneExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	f := results[0]
	assert.Equal(t, "iPhone", f["series"])
	assert.Equal(t, "128GB", f["storage_size"])
	assert.Equal(t, "Gold", f["color"])
	assert.Equal(t, "Network Unlocked", f["network_status"])
	assert.Equal(t, "Verizon", f["network_carrier"])
	assert.Contains(t, f["phone_model"], "12")
}

func TestPhoneExtractor_WiFiOnly(t *testing.T) {
	tokens := []string{"Apple", "iPad", "Air", "64GB", "Wifi", "Only", "Silver"}
	in := phoneInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewPhoneExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	f := results[0]
	assert.Equal(t, "iPad", f["series"])
	assert.Equal(t, "WiFi Only", f["network_status"])
	assert.Equal(t, "Silver", f["color"])
}

func TestPhoneExtractor_NoMatchWithoutPhoneContext(t *testing.T) {
	tokens := []string{"Apple", "iPhone", "12", "Pro"}
	in := Input{Tokens: tokens, Lower: LowerAll(tokens), Ctx: context.Context{HasPhoneContext: false}, Tables: reftables.New()}
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewPhoneExtractor(), in, consumed, "")
	assert.Empty(t, results)
}

func TestBIOSStatusExtractor_NotIncluded(t *testing.T) {
	tokens := []string{"Dell", "OptiPlex", "No", "BIOS", "Password"}
	in := deviceInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewBIOSStatusExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "Not Included", results[0]["bios_status"])
}

func TestOSStatusExtractor_NotIncluded(t *testing.T) {
	tokens := []string{"Dell", "OptiPlex", "No", "OS"}
	in := deviceInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewOSStatusExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "Not Included", results[0]["os_status"])
}

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lotInput(tokens []string) Input {
	return Input{Tokens: tokens, Lower: LowerAll(tokens)}
}

func runLot(t *testing.T, tokens []string) Fields {
	t.Helper()
	ex := NewLotExtractor()
	consumed := NewConsumedSet(len(tokens))
	in := lotInput(tokens)
	groups := ex.Extract(in, consumed)
	for _, g := range groups {
		if consumed.AnyClaimed(g.ConsumeIndices()) {
			continue
		}
		f := ex.ProcessMatch(in, g)
		if f != nil {
			return f
		}
	}
	return nil
}

// TestLotExtractor_PortConnectorGuard covers spec.md §8 Testable Property 7:
// "8 x DisplayPort" must not produce a lot field.
func TestLotExtractor_PortConnectorGuard(t *testing.T) {
	tokens := []string{"Docking", "Station", "with", "8", "x", "DisplayPort"}
	assert.Nil(t, runLot(t, tokens), "a count immediately followed by a port keyword must not be read as a lot")
}

func TestLotExtractor_PortConnectorGuard_USB(t *testing.T) {
	tokens := []string{"Hub", "with", "4", "x", "USB", "Ports"}
	assert.Nil(t, runLot(t, tokens))
}

func TestLotExtractor_LotOfN(t *testing.T) {
	tokens := []string{"Lot", "of", "3", "Dell", "Laptops"}
	f := runLot(t, tokens)
	require.NotNil(t, f)
	assert.Equal(t, "3", f["lot"])
}

func TestLotExtractor_NSuffix(t *testing.T) {
	tokens := []string{"Dell", "Latitude", "5420", "(5x)", "Laptops"}
	f := runLot(t, tokens)
	require.NotNil(t, f)
	assert.Equal(t, "5", f["lot"])
}

func TestLotExtractor_NotBlockedByUnrelatedWords(t *testing.T) {
	tokens := []string{"Dell", "Latitude", "Laptop", "8", "x", "Units"}
	f := runLot(t, tokens)
	require.NotNil(t, f)
	assert.Equal(t, "8", f["lot"])
}

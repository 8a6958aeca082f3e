package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theatomus/listingscanner/internal/reftables"
)

func ramInput(tokens []string, title string) Input {
	return Input{Tokens: tokens, Lower: LowerAll(tokens), Title: title, Tables: reftables.New()}
}

func TestRAMExtractor_SimpleSizeRAM(t *testing.T) {
	tokens := []string{"Dell", "Latitude", "7490", "16GB", "RAM"}
	in := ramInput(tokens, "Dell Latitude 7490 16GB RAM")
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewRAMExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "16GB", results[0]["ram_size"])
}

func TestRAMExtractor_DDRTypeWithoutRAMWord(t *testing.T) {
	tokens := []string{"16GB", "DDR4", "Memory", "Kit"}
	in := ramInput(tokens, "16GB DDR4 Memory Kit")
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewRAMExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "16GB", results[0]["ram_size"])
}

// TestRAMExtractor_StorageNotIncluded covers spec.md §8 scenario E2: "8GB No
// SSD" must read the lone size as RAM even though "SSD" sits immediately
// next to it, because "No SSD" is exactly the phrase licensing the reading.
func TestRAMExtractor_StorageNotIncluded(t *testing.T) {
	tokens := []string{"i5-7500", "8GB", "No", "SSD"}
	in := ramInput(tokens, "i5-7500 8GB No SSD")
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewRAMExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "8GB", results[0]["ram_size"])
}

func TestRAMExtractor_BareSizeNextToStorageWordIsNotRAM(t *testing.T) {
	tokens := []string{"Dell", "OptiPlex", "256GB", "SSD"}
	in := ramInput(tokens, "Dell OptiPlex 256GB SSD")
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewRAMExtractor(), in, consumed, "")
	assert.Empty(t, results, "a capacity directly labeled SSD is storage, not RAM, and there is no storage-excluded phrase here")
}

func TestRAMExtractor_ServerRAMModuleConfig(t *testing.T) {
	tokens := []string{"64GB", "(4x16GB)", "Server", "RAM"}
	in := ramInput(tokens, "64GB (4x16GB) Server RAM")
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewRAMExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "64GB", results[0]["ram_size"])
}

func TestRAMTypeExtractor(t *testing.T) {
	tokens := []string{"16GB", "DDR4", "RAM"}
	in := ramInput(tokens, "16GB DDR4 RAM")
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewRAMTypeExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "DDR4", results[0]["ram_type"])
}

func TestRAMRankExtractor(t *testing.T) {
	tokens := []string{"16GB", "2Rx4", "PC4-2400T"}
	in := ramInput(tokens, "16GB 2Rx4 PC4-2400T")
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewRAMRankExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "2RX4", results[0]["ram_rank"])
}

func TestRAMAttributeExtractor_ECCRegistered(t *testing.T) {
	tokens := []string{"32GB", "ECC", "Registered", "Server", "RAM"}
	in := ramInput(tokens, "32GB ECC Registered Server RAM")
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewRAMAttributeExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "ECC", results[0]["ram_ecc"])
	assert.Equal(t, "Registered", results[0]["ram_registered"])
}

func TestRAMRangeExtractor(t *testing.T) {
	tokens := []string{"4GB", "-", "16GB", "RAM"}
	in := ramInput(tokens, "4GB - 16GB RAM")
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewRAMRangeExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "4GB - 16GB RAM", results[0]["ram_range"])
}

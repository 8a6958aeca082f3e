package brand

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theatomus/listingscanner/internal/context"
	"github.com/theatomus/listingscanner/internal/reftables"
)

func segment(tokens []string, ctx context.Context) Result {
	lower := make([]string, len(tokens))
	for i, t := range tokens {
		lower[i] = toLower(t)
	}
	return Segment(tokens, lower, map[int]bool{}, ctx, reftables.New())
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func TestSegment_AppleAnchorsOnAppleWord(t *testing.T) {
	tokens := []string{"Apple", "MacBook", "Pro", "13-inch", "16GB", "512GB", "SSD"}
	res := segment(tokens, context.Context{HasLaptopContext: true})
	assert.Equal(t, "Apple", res.Brand)
	assert.Contains(t, res.Model, "MacBook")
}

func TestSegment_DellSystemModel(t *testing.T) {
	tokens := []string{"Dell", "Latitude", "7490", "RAM", "16GB"}
	res := segment(tokens, context.Context{HasLaptopContext: true})
	assert.Equal(t, "Dell", res.Brand)
	assert.Equal(t, "Latitude 7490", res.Model)
}

func TestSegment_DellModelStopsAtCPUToken(t *testing.T) {
	tokens := []string{"Dell", "Latitude", "7490", "i7-8650U", "16GB"}
	res := segment(tokens, context.Context{HasLaptopContext: true})
	assert.Equal(t, "Dell", res.Brand)
	assert.Equal(t, "Latitude 7490", res.Model)
}

func TestSegment_GPUBrandStandalone(t *testing.T) {
	tokens := []string{"NVIDIA", "Quadro", "P2000", "5GB", "GDDR5"}
	res := segment(tokens, context.Context{HasGPUContext: true, IsSystemWithGPU: false})
	assert.Equal(t, "Nvidia", res.Brand)
	assert.Contains(t, res.Model, "Quadro")
}

func TestSegment_NoBrandFound(t *testing.T) {
	tokens := []string{"Used", "OEM", "Genuine"}
	res := segment(tokens, context.Context{})
	assert.Empty(t, res.Brand)
}

func TestRefineByProximity_PicksBrandBeforeCPUToken(t *testing.T) {
	tokens := []string{"Dell", "/", "HP", "Latitude", "i7-8650U", "16GB"}
	lower := make([]string, len(tokens))
	for i, tkn := range tokens {
		lower[i] = toLower(tkn)
	}
	brandName, firstCPUIdx, ok := RefineByProximity(tokens, lower, reftables.New())
	assert.True(t, ok)
	assert.Equal(t, 4, firstCPUIdx)
	assert.Equal(t, "Hp", brandName)
}

func TestRefineByProximity_NoCPUTokenFound(t *testing.T) {
	tokens := []string{"Dell", "Latitude", "7490"}
	lower := make([]string, len(tokens))
	for i, tkn := range tokens {
		lower[i] = toLower(tkn)
	}
	_, _, ok := RefineByProximity(tokens, lower, reftables.New())
	assert.False(t, ok)
}

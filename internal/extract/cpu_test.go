package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cpuInput(tokens []string) Input {
	return Input{Tokens: tokens, Lower: LowerAll(tokens)}
}

func TestCPUModelExtractor_IntelCore(t *testing.T) {
	tokens := []string{"Dell", "Latitude", "7490", "i7-8650U", "16GB"}
	in := cpuInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewCPUModelExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "i7-8650U", results[0]["cpu_model"])
	assert.Equal(t, "Intel", results[0]["cpu_brand"])
	assert.Equal(t, "Core i7", results[0]["cpu_family"])
	assert.Equal(t, "U", results[0]["cpu_suffix"])
}

func TestCPUModelExtractor_Xeon(t *testing.T) {
	tokens := []string{"Intel", "Xeon", "E5-2670", "Server", "Processors"}
	in := cpuInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewCPUModelExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "E5-2670", results[0]["cpu_model"])
	assert.Equal(t, "Intel", results[0]["cpu_brand"])
	assert.Equal(t, "Xeon", results[0]["cpu_family"])
}

func TestCPUModelExtractor_XeonTier(t *testing.T) {
	tokens := []string{"Intel", "Xeon", "Gold", "6150", "CPU"}
	in := cpuInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewCPUModelExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "Gold 6150", results[0]["cpu_model"])
	assert.Equal(t, "Xeon Gold", results[0]["cpu_family"])
}

func TestCPUModelExtractor_Ryzen(t *testing.T) {
	tokens := []string{"AMD", "Ryzen", "7", "5800X", "Desktop"}
	in := cpuInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewCPUModelExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "Ryzen 7 5800X", results[0]["cpu_model"])
	assert.Equal(t, "AMD", results[0]["cpu_brand"])
	assert.Equal(t, "Ryzen", results[0]["cpu_family"])
}

func TestCPUModelExtractor_AppleMSuffix(t *testing.T) {
	tokens := []string{"MacBook", "Pro", "M1", "Pro", "16GB"}
	in := cpuInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewCPUModelExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "M1 Pro", results[0]["cpu_model"])
	assert.Equal(t, "Apple", results[0]["cpu_brand"])
	assert.Equal(t, "M1", results[0]["cpu_family"])
}

func TestCPUSpeedExtractor_DualPairOrder(t *testing.T) {
	tokens := []string{"2.60GHz", "/", "2.30GHz"}
	in := cpuInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewCPUSpeedExtractor(), in, consumed, "")
	require.Len(t, results, 2)
	assert.Equal(t, "2.60GHz", results[0]["cpu_speed"])
	assert.Equal(t, "2.30GHz", results[1]["cpu_speed"])
}

func TestCPUSpeedExtractor_MHzRequiresCPUContext(t *testing.T) {
	tokens := []string{"DDR4", "2666MHz", "RAM"}
	in := cpuInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewCPUSpeedExtractor(), in, consumed, "")
	assert.Empty(t, results, "a bare MHz token inside a RAM-speed context is not a CPU speed")
}

func TestCPUSpeedExtractor_MHzWithCPUContext(t *testing.T) {
	tokens := []string{"Intel", "Xeon", "Processor", "2133MHz"}
	in := cpuInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewCPUSpeedExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "2133MHz", results[0]["cpu_speed"])
}

func TestCPUGenerationExtractor_SkipsCompatibilityLanguage(t *testing.T) {
	tokens := []string{"Compatible", "With", "10th", "Gen", "Processors"}
	in := cpuInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewCPUGenerationExtractor(), in, consumed, "")
	assert.Empty(t, results, "a generation phrase inside compatibility language must not match")
}

func TestCPUGenerationExtractor_Matches(t *testing.T) {
	tokens := []string{"Dell", "Latitude", "7490", "10th", "Gen", "i7"}
	in := cpuInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewCPUGenerationExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "10th", results[0]["cpu_generation"])
}

func TestCPUQuantityExtractor_SkipsDualQuadCore(t *testing.T) {
	tokens := []string{"Intel", "Xeon", "Quad", "Core", "Processor"}
	in := cpuInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewCPUQuantityExtractor(), in, consumed, "")
	assert.Empty(t, results, `"Quad Core" is a core count, not a CPU quantity`)
}

func TestCPUQuantityExtractor_MatchesWithContext(t *testing.T) {
	tokens := []string{"2", "Intel", "Xeon", "Processors"}
	in := cpuInput(tokens)
	consumed := NewConsumedSet(len(tokens))
	results := Run(NewCPUQuantityExtractor(), in, consumed, "")
	require.Len(t, results, 1)
	assert.Equal(t, "2", results[0]["cpu_quantity"])
}

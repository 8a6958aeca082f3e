package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theatomus/listingscanner/internal/context"
	"github.com/theatomus/listingscanner/internal/reftables"
)

func classifyInput(title, brand, model string, ctx context.Context) Input {
	return Input{Title: title, Ctx: ctx, Brand: brand, Model: model, Tables: reftables.New()}
}

// TestClassify_TwoInOneOverride covers spec.md §8 Testable Property 9: any
// title matching "2 in 1"/"2-in-1"/"2in1" must not classify as
// PC Laptops & Netbooks, even when every other signal says laptop.
func TestClassify_TwoInOneOverride(t *testing.T) {
	for _, title := range []string{
		"Dell Latitude 7200 2-in-1 Laptop",
		"Dell Latitude 7200 2 in 1 Laptop",
		"Dell Latitude 7200 2in1 Laptop",
	} {
		ctx := context.Context{HasLaptopContext: true}
		dt := Classify(classifyInput(title, "Dell", "Latitude 7200", ctx))
		assert.Equal(t, TabletsEbook, dt, "title: %q", title)
	}
}

func TestClassify_LaptopWithoutTwoInOnePhrase(t *testing.T) {
	ctx := context.Context{HasLaptopContext: true}
	dt := Classify(classifyInput("Dell Latitude 7200 Laptop", "Dell", "Latitude 7200", ctx))
	assert.Equal(t, PCLaptops, dt)
}

// TestNormalizeMonitors_MonitorsDeprecated covers spec.md §8 Testable
// Property 10: the final device_type must never be "Monitors".
func TestNormalizeMonitors_MonitorsDeprecated(t *testing.T) {
	assert.Equal(t, ComputerServers, NormalizeMonitors("Monitors"))
	assert.Equal(t, PCLaptops, NormalizeMonitors(PCLaptops))
}

func TestClassify_KeyboardAccessory(t *testing.T) {
	dt := Classify(classifyInput("Bluetooth Keyboard Case for iPad", "", "", context.Context{}))
	assert.Equal(t, KeyboardAccessories, dt)
}

func TestClassify_TonerCartridge(t *testing.T) {
	dt := Classify(classifyInput("HP 26A Black Toner Cartridge OEM New Sealed", "", "", context.Context{}))
	assert.Equal(t, TonerCartridges, dt)
}

func TestClassify_ThinClient(t *testing.T) {
	dt := Classify(classifyInput("HP T630 Thin Client", "HP", "T630", context.Context{HasThinClientContext: true}))
	assert.Equal(t, ServersClientsTerminals, dt)
}

func TestClassify_PowerEdgeServer(t *testing.T) {
	dt := Classify(classifyInput("Dell PowerEdge R740 Server", "Dell", "PowerEdge R740", context.Context{HasServerContext: true}))
	assert.Equal(t, ComputerServers, dt)
}

func TestClassify_StandaloneProcessor(t *testing.T) {
	dt := Classify(classifyInput("Intel Xeon E5-2670 Server Processor", "", "", context.Context{}))
	assert.Equal(t, CPUsProcessors, dt)
}

func TestClassify_GPUContextWithoutSystem(t *testing.T) {
	ctx := context.Context{HasGPUContext: true, IsSystemWithGPU: false}
	dt := Classify(classifyInput("NVIDIA Quadro P2000 Graphics Card", "NVIDIA", "", ctx))
	assert.Equal(t, GraphicsVideoCards, dt)
}

func TestClassify_PartsContext(t *testing.T) {
	ctx := context.Context{HasPartsContext: true}
	dt := Classify(classifyInput("Dell Latitude Laptop Motherboard For Parts", "", "", ctx))
	assert.Equal(t, OtherLaptopPart, dt)
}

func TestClassify_NoMatchReturnsEmpty(t *testing.T) {
	dt := Classify(classifyInput("Unbranded Widget", "", "", context.Context{}))
	assert.Empty(t, dt)
}

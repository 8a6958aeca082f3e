package context

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect_Laptop(t *testing.T) {
	ctx := Detect("Dell Latitude 5420 Laptop Intel Core i5 8GB RAM 256GB SSD", nil)
	assert.True(t, ctx.HasLaptopContext)
	assert.False(t, ctx.HasDesktopContext)
}

func TestDetect_Desktop(t *testing.T) {
	ctx := Detect("Dell OptiPlex 7080 Desktop Tower Intel Core i7", nil)
	assert.True(t, ctx.HasDesktopContext)
	assert.False(t, ctx.HasLaptopContext)
}

func TestDetect_Server(t *testing.T) {
	ctx := Detect("Dell PowerEdge R740 Server 2x Xeon Gold", nil)
	assert.True(t, ctx.HasServerContext)
}

func TestDetect_ServerNegated(t *testing.T) {
	ctx := Detect("Desktop PC, no server features", nil)
	assert.False(t, ctx.HasServerContext)
}

func TestDetect_ThinClient(t *testing.T) {
	ctx := Detect("HP T630 Thin Client", nil)
	assert.True(t, ctx.HasThinClientContext)
}

func TestDetect_Accessory(t *testing.T) {
	ctx := Detect("Laptop USB-C Charger Adapter 65W", nil)
	assert.True(t, ctx.HasAccessoryContext)
	assert.False(t, ctx.HasLaptopContext)
}

func TestDetect_GPUKeyword(t *testing.T) {
	ctx := Detect("Dell Precision Tower Desktop NVIDIA Quadro K2200 GPU", nil)
	assert.True(t, ctx.HasGPUContext)
	assert.True(t, ctx.IsSystemWithGPU)
}

func TestDetect_DellPrecisionDefaultsLaptopWithoutTowerPhrase(t *testing.T) {
	ctx := Detect("Dell Precision 5530 Mobile Workstation", nil)
	assert.True(t, ctx.HasLaptopContext)
	assert.False(t, ctx.HasDesktopContext)
}

func TestDetect_DellPrecisionTowerOverridesToDesktop(t *testing.T) {
	ctx := Detect("Dell Precision 3630 Tower Workstation", nil)
	assert.True(t, ctx.HasDesktopContext)
	assert.False(t, ctx.HasLaptopContext)
}

func TestDetect_Phone(t *testing.T) {
	ctx := Detect("Apple iPhone 13 Pro Max 256GB Unlocked", nil)
	assert.True(t, ctx.HasPhoneContext)
}

func TestDetect_PartsOnly(t *testing.T) {
	ctx := Detect("Dell Latitude 5420 Motherboard Only For Parts", nil)
	assert.True(t, ctx.HasPartsContext)
}

func TestDetect_PartsSuppressedByMissingPhrase(t *testing.T) {
	ctx := Detect("Dell Latitude for parts, missing screen only", nil)
	assert.False(t, ctx.HasPartsContext)
}

func TestDetect_StorageArray(t *testing.T) {
	ctx := Detect("Dell PowerVault MD3200 Storage Array Disk Shelf", nil)
	assert.True(t, ctx.HasStorageArrayContext)
}

func TestDetect_CPUComponentContext(t *testing.T) {
	ctx := Detect("Intel Desktop Processor LGA1151 CPU Only", nil)
	assert.True(t, ctx.HasCPUComponentContext)
	assert.False(t, ctx.HasLaptopContext)
	assert.False(t, ctx.HasDesktopContext)
}

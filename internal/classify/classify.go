// Package classify implements the Device-Type Classifier (spec.md §4.11): a
// 24-step priority cascade over brand/model, keywords, and the Dell
// model-number registries in internal/reftables, plus the 2-in-1 override
// rule.
package classify

import (
	"regexp"
	"strings"

	"github.com/theatomus/listingscanner/internal/context"
	"github.com/theatomus/listingscanner/internal/reftables"
)

const (
	KeyboardAccessories      = "Cases, Covers, Keyboard Folios"
	ElectronicKeyboards      = "Electronic Keyboards"
	TonerCartridges          = "Toner Cartridges"
	ScreenProtectors         = "Screen Protectors"
	CellPhonePart            = "Cell Phone & Smartphone Parts"
	LaptopScreenPart         = "Laptop Screens & LCD Panels"
	OtherLaptopPart          = "Other Laptop Replacement Parts"
	ComputerComponentsParts  = "Computer Components & Parts"
	ServerMemory             = "Server Memory (RAM)"
	MemoryRAM                = "Memory (RAM)"
	ComputerServers          = "Computer Servers"
	InternalHDD              = "Internal Hard Disk Drives"
	Amplifiers               = "Amplifiers"
	SwitchPowerSupplies      = "Switch Power Supplies"
	ServersClientsTerminals  = "Servers, Clients & Terminals"
	PCDesktops               = "PC Desktops & All-In-Ones"
	PCLaptops                = "PC Laptops & Netbooks"
	CPUsProcessors           = "CPUs/Processors"
	StorageArrays            = "Storage Arrays, NAS"
	PowerAdapters            = "Laptop Power Adapters/Chargers"
	GraphicsVideoCards       = "Graphics/Video Cards"
	TabletsEbook             = "Tablets & eBook Readers"
	CellPhonesSmartphones    = "Cell Phones & Smartphones"
)

var (
	keyboardAccessoryRe = regexp.MustCompile(`(?i)attachable keyboard|keyboard for|keyboard case|keyboard cover|keyboard folio|wireless keyboard|bluetooth keyboard|tablet keyboard`)
	musicalBrandRe      = regexp.MustCompile(`(?i)\b(yamaha|casio|roland|korg)\b`)
	musicalKeywordRe    = regexp.MustCompile(`(?i)midi keyboard|digital piano|synthesizer|electronic keyboard`)
	tonerRe             = regexp.MustCompile(`(?i)\btoner\b.*\bcartridge\b`)
	screenProtectorRe   = regexp.MustCompile(`(?i)screen protector`)
	serverMemoryRe      = regexp.MustCompile(`(?i)server (ram|memory)`)
	memoryModuleRe      = regexp.MustCompile(`(?i)\b(camm|dimm|sodimm)\b.*\bmodule\b|memory stick|memory kit`)
	rackMonitorRe       = regexp.MustCompile(`(?i)rack (monitor|console)|kvm console`)
	hddExplicitRe       = regexp.MustCompile(`(?i)\b(hdd|ssd|nvme)\b.*\b(sas|sata|scsi|ide|2\.5|3\.5|rpm)\b`)
	amplifierRe         = regexp.MustCompile(`(?i)\bamplifier\b|\bmixer\b|\breceiver\b`)
	switchPSURe         = regexp.MustCompile(`(?i)\bpower supply\b.*\bswitch\b|\bswitch\b.*\bpower supply\b`)
	powerEdgeRe         = regexp.MustCompile(`(?i)\bpoweredge\b`)
	customPCRe          = regexp.MustCompile(`(?i)custom (pc|build)|case w/?\s*cpu`)
	standaloneProcRe    = regexp.MustCompile(`(?i)\b(intel|amd)\b.*\bprocessors?\b`)
	dellInspironRe      = regexp.MustCompile(`(?i)\binspiron\b`)
	twoInOneRe          = regexp.MustCompile(`(?i)\b2[\s\-]?in[\s\-]?1\b`)
	sanWordRe2          = regexp.MustCompile(`(?i)\bsan\b`)
	nasWordRe           = regexp.MustCompile(`(?i)\bnas\b`)
	noPowerSupplyRe     = regexp.MustCompile(`(?i)no power supply`)
	precisionTowerWordRe = regexp.MustCompile(`(?i)precision.*tower`)
	sffMtDesktopWordRe  = regexp.MustCompile(`(?i)\b(sff|mt|desktop)\b`)
	precision38xx       = regexp.MustCompile(`\b(38|58|78|79)\d\d\b`)
)

// Input bundles the signals the classifier reads: the lowercased full
// title, the detected Context, the candidate brand/model from the
// segmenter (may be empty — the classifier can run before or independent
// of brand segmentation for several of its early steps), and the reference
// tables.
type Input struct {
	Title  string
	Ctx    context.Context
	Brand  string
	Model  string
	Tables *reftables.Tables
}

// Classify runs the 24-step priority cascade and returns the first
// matching device type, or "" if nothing matched (spec.md §4.11).
func Classify(in Input) string {
	lower := strings.ToLower(in.Title)

	if keyboardAccessoryRe.MatchString(lower) {
		return KeyboardAccessories
	}
	if musicalBrandRe.MatchString(lower) && musicalKeywordRe.MatchString(lower) && !in.Ctx.HasServerContext {
		return ElectronicKeyboards
	}
	if tonerRe.MatchString(lower) {
		return TonerCartridges
	}
	if screenProtectorRe.MatchString(lower) {
		return ScreenProtectors
	}
	if in.Ctx.HasPartsContext && !isWholeSystem(in.Ctx) {
		return partsDeviceType(lower, in.Ctx)
	}
	if serverMemoryRe.MatchString(lower) {
		return ServerMemory
	}
	if memoryModuleRe.MatchString(lower) && !isWholeSystem(in.Ctx) {
		return MemoryRAM
	}
	if rackMonitorRe.MatchString(lower) {
		return ComputerServers
	}
	if hddExplicitRe.MatchString(lower) && !isWholeSystem(in.Ctx) {
		return InternalHDD
	}
	if amplifierRe.MatchString(lower) {
		return Amplifiers
	}
	if switchPSURe.MatchString(lower) {
		return SwitchPowerSupplies
	}
	if in.Ctx.HasThinClientContext {
		return ServersClientsTerminals
	}
	if powerEdgeRe.MatchString(lower) {
		return ComputerServers
	}
	if in.Ctx.HasLaptopContext || in.Ctx.HasDesktopContext {
		if dt := laptopDesktopDeviceType(in); dt != "" {
			return applyTwoInOneOverride(dt, lower)
		}
	}
	if strings.EqualFold(in.Brand, "dell") && in.Model != "" {
		if dt := dellModelLookup(in); dt != "" {
			return applyTwoInOneOverride(dt, lower)
		}
	}
	if customPCRe.MatchString(lower) {
		return PCDesktops
	}
	if standaloneProcRe.MatchString(lower) && !in.Ctx.HasLaptopContext && !in.Ctx.HasDesktopContext {
		return CPUsProcessors
	}
	if dt, ok := in.Tables.DeviceTypeFor(in.Brand, in.Model); ok {
		if dt == "Server CPUs/Processors" && (in.Ctx.HasServerContext || in.Ctx.HasDesktopContext) {
			return ComputerServers
		}
		return applyTwoInOneOverride(dt, lower)
	}
	if dt := brandFallback(in); dt != "" {
		return applyTwoInOneOverride(dt, lower)
	}
	if in.Ctx.HasStorageArrayContext {
		if sanWordRe2.MatchString(lower) {
			return StorageArrays
		}
		if nasWordRe.MatchString(lower) {
			return StorageArrays
		}
		return StorageArrays
	}
	if isPowerAdapterTitle(lower) {
		return PowerAdapters
	}
	if in.Ctx.HasGPUContext && !in.Ctx.IsSystemWithGPU {
		return GraphicsVideoCards
	}
	if standaloneProcRe.MatchString(lower) {
		return CPUsProcessors
	}
	return genericFallback(in.Ctx)
}

func isWholeSystem(ctx context.Context) bool {
	return ctx.HasLaptopContext || ctx.HasDesktopContext || ctx.HasServerContext
}

func partsDeviceType(lower string, ctx context.Context) string {
	switch {
	case ctx.HasPhoneContext:
		return CellPhonePart
	case strings.Contains(lower, "laptop") && (strings.Contains(lower, "screen") || strings.Contains(lower, "lcd")):
		return LaptopScreenPart
	case strings.Contains(lower, "laptop"):
		return OtherLaptopPart
	default:
		return ComputerComponentsParts
	}
}

func laptopDesktopDeviceType(in Input) string {
	brand := strings.ToLower(in.Brand)
	if brand == "apple" {
		if in.Ctx.HasLaptopContext {
			return PCLaptops
		}
		return PCDesktops
	}
	if brand == "dell" && dellInspironRe.MatchString(strings.ToLower(in.Model)) && in.Ctx.HasDesktopContext {
		return PCDesktops
	}
	if brand == "dell" && in.Tables.IsDell2in1Model(in.Model) {
		return TabletsEbook
	}
	if in.Ctx.HasLaptopContext {
		return PCLaptops
	}
	if in.Ctx.HasDesktopContext {
		return PCDesktops
	}
	return ""
}

func dellModelLookup(in Input) string {
	lower := strings.ToLower(in.Model)
	if precisionTowerWordRe.MatchString(lower) {
		return PCDesktops
	}
	if sffMtDesktopWordRe.MatchString(lower) {
		return PCDesktops
	}
	if in.Tables.IsDell2in1Model(in.Model) {
		return TabletsEbook
	}
	if precision38xx.MatchString(lower) {
		return PCDesktops
	}
	if in.Tables.IsDellLaptopModel(in.Model) {
		return PCLaptops
	}
	if in.Tables.IsDellDesktopModel(in.Model) {
		return PCDesktops
	}
	return ""
}

func brandFallback(in Input) string {
	brand := strings.ToLower(in.Brand)
	switch brand {
	case "apple":
		if in.Ctx.HasLaptopContext {
			return PCLaptops
		}
		return PCDesktops
	case "dell", "hp", "lenovo":
		if dellInspironRe.MatchString(strings.ToLower(in.Model)) && in.Ctx.HasDesktopContext {
			return PCDesktops
		}
		if in.Ctx.HasLaptopContext {
			return PCLaptops
		}
		if in.Ctx.HasDesktopContext {
			return PCDesktops
		}
	case "supermicro":
		return ComputerServers
	case "netapp", "synology":
		return StorageArrays
	}
	if in.Tables.GPUBrands != nil {
		if _, ok := in.Tables.GPUBrands[brand]; ok && in.Ctx.HasGPUContext {
			return GraphicsVideoCards
		}
	}
	return ""
}

func isPowerAdapterTitle(lower string) bool {
	if !strings.Contains(lower, "adapter") && !strings.Contains(lower, "charger") {
		return false
	}
	if noPowerSupplyRe.MatchString(lower) {
		return false
	}
	if strings.Contains(lower, "network") || strings.Contains(lower, "audio") || musicalBrandRe.MatchString(lower) {
		return false
	}
	return true
}

func genericFallback(ctx context.Context) string {
	switch {
	case ctx.HasLaptopContext:
		return PCLaptops
	case ctx.HasDesktopContext:
		return PCDesktops
	case ctx.HasServerContext:
		return ComputerServers
	case ctx.HasPartsContext:
		return ComputerComponentsParts
	default:
		return ""
	}
}

// applyTwoInOneOverride implements the standalone rule: "2 in 1"/"2-in-1"/
// "2in1" phrasing re-maps a PCLaptops result to Tablets & eBook Readers
// (spec.md §4.11).
func applyTwoInOneOverride(deviceType, lower string) string {
	if deviceType == PCLaptops && twoInOneRe.MatchString(lower) {
		return TabletsEbook
	}
	return deviceType
}

// NormalizeMonitors implements the "Monitors" deprecation rule from
// spec.md §4.14: any residual "Monitors" device type is normalized to
// Computer Servers.
func NormalizeMonitors(deviceType string) string {
	if deviceType == "Monitors" {
		return ComputerServers
	}
	return deviceType
}

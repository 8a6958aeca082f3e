// Package context implements the listing Context Detector (spec.md §4.2):
// it scans a cleaned title for category signals — laptop/desktop/server/
// thin-client/GPU/CPU-only/phone/parts/storage-array/accessory — gating which
// extractors the orchestrator dispatches and how their results are read.
package context

import "regexp"

// Context is the boolean/label description of a listing's nature. It is
// built once per parse and never mutated by extractors afterward; extractors
// only read it.
type Context struct {
	HasLaptopContext      bool
	HasDesktopContext     bool
	HasServerContext      bool
	HasThinClientContext  bool
	HasGPUContext         bool
	IsSystemWithGPU       bool
	HasCPUComponentContext bool
	HasPhoneContext       bool
	HasPartsContext       bool
	HasStorageArrayContext bool
	HasAccessoryContext   bool
	DeviceTypeHint        string // early hint only; the classifier owns the final value.
}

var (
	thinClientRe = regexp.MustCompile(`(?i)\bthin\s*client\b|\bzero\s*client\b`)
	serverRe     = regexp.MustCompile(`(?i)\bserver\b|\bpoweredge\b|\bproliant\b|\brack\s*server\b|\bblade\b`)

	accessoryPhraseRe = regexp.MustCompile(`(?i)\b(charger|adapter|dock|docking station|sleeve|bag|case|cover|stand|mount|cable)\b`)
	laptopAccessoryRe = regexp.MustCompile(`(?i)\blaptop\b\s+(usb-?c\s+)?(charger|adapter|dock|sleeve|bag|case|cover|stand)\b`)
	laptopRe          = regexp.MustCompile(`(?i)\blaptop\b|\bnotebook\b|\bultrabook\b|\bmacbook\b|\bnetbook\b`)
	desktopRe         = regexp.MustCompile(`(?i)\bdesktop\b|\btower\b|\ball-in-one\b|\ball in one\b|\bsff\b|\busff\b|\bmicro tower\b`)

	dellPrecisionRe = regexp.MustCompile(`(?i)\bprecision\b`)
	dellXPSRe       = regexp.MustCompile(`(?i)\bxps\b`)
	precisionTowerRe = regexp.MustCompile(`(?i)\bprecision\b.*\b(tower|desktop|workstation)\b`)
	precisionMobileRe = regexp.MustCompile(`(?i)\bprecision\b.*\b(mobile|laptop)\b`)

	cpuComponentRe = regexp.MustCompile(`(?i)\bdesktop processor\b|\blga\s?\d{3,4}\b.*\bcpu\b|\bprocessor\s+cpu\b|\bcpu\s+processor\b`)

	gpuKeywordRe   = regexp.MustCompile(`(?i)\b(geforce|radeon|quadro|nvidia|rtx|gtx|firepro|tesla|arc a\d+|iris xe|uhd graphics)\b`)
	gpuSpecificRe  = regexp.MustCompile(`(?i)\bk\d{3,4}m\b|\bgtx\s?\d{3,4}\b|\brtx\s?\d{3,4}\b|\bquadro\b`)

	phoneRe  = regexp.MustCompile(`(?i)\biphone\b|\bandroid\b|\bsmartphone\b|\bgalaxy\s?s\d+\b|\bpixel\s?\d+\b`)
	partsRe  = regexp.MustCompile(`(?i)\bfor parts\b|\bscreen replacement\b|\breplacement part\b|\bdigitizer\b|\blcd panel\b|\bmotherboard only\b`)
	storageArrayRe = regexp.MustCompile(`(?i)\bsan\b|\bnas\b|\bstorage array\b|\bdisk array\b|\bdisk shelf\b`)
	sanWordRe      = regexp.MustCompile(`(?i)\bsan\b`)

	negationRe = regexp.MustCompile(`(?i)\b(no|without|missing)\s+([a-z0-9/,\s]{1,40}?)(?:[.,;]|$)`)
)

// Detect builds a Context from the cleaned (already lowercased-for-matching)
// title and its token vector. Only the title string is used for regex
// matching; the token vector is accepted for API symmetry with extractors
// that need positional information derived from the same pass.
func Detect(cleanedTitle string, tokens []string) Context {
	lower := cleanedTitle
	var ctx Context

	negated := collectNegations(lower)

	ctx.HasThinClientContext = thinClientRe.MatchString(lower)
	ctx.HasServerContext = serverRe.MatchString(lower) && !negated["server"]

	if ctx.HasThinClientContext || ctx.HasServerContext {
		ctx.HasGPUContext = false
	}

	isAccessory := laptopAccessoryRe.MatchString(lower)
	ctx.HasAccessoryContext = isAccessory || (accessoryPhraseRe.MatchString(lower) && !laptopRe.MatchString(lower) && !desktopRe.MatchString(lower))

	if !isAccessory {
		ctx.HasLaptopContext = laptopRe.MatchString(lower)
		ctx.HasDesktopContext = desktopRe.MatchString(lower)
	}

	// Dell Precision/XPS heuristics: for Precision, a mobile phrase sets
	// laptop context; otherwise a tower/desktop phrase sets desktop context;
	// otherwise the keyword contexts above stand.
	if dellPrecisionRe.MatchString(lower) {
		if precisionMobileRe.MatchString(lower) {
			ctx.HasLaptopContext = true
			ctx.HasDesktopContext = false
		} else if precisionTowerRe.MatchString(lower) {
			ctx.HasDesktopContext = true
			ctx.HasLaptopContext = false
		}
	}
	if dellXPSRe.MatchString(lower) && !desktopRe.MatchString(lower) {
		ctx.HasLaptopContext = true
	}

	if cpuComponentRe.MatchString(lower) {
		ctx.HasCPUComponentContext = true
		ctx.HasLaptopContext = false
		ctx.HasDesktopContext = false
	}

	if !ctx.HasThinClientContext && !ctx.HasServerContext {
		hasGPUKeyword := gpuKeywordRe.MatchString(lower)
		if hasGPUKeyword && !negated["gpu"] && !negated["graphics"] && !negated["video card"] {
			ctx.HasGPUContext = true
			if (ctx.HasLaptopContext || ctx.HasDesktopContext) && gpuSpecificRe.MatchString(lower) {
				ctx.IsSystemWithGPU = true
			}
		}
	}

	ctx.HasPhoneContext = phoneRe.MatchString(lower)

	if partsRe.MatchString(lower) && !coveredByMissingPhrase(lower, negated) {
		ctx.HasPartsContext = true
	}

	if storageArrayRe.MatchString(lower) {
		if sanWordRe.MatchString(lower) {
			ctx.HasStorageArrayContext = true
		} else {
			ctx.HasStorageArrayContext = true
		}
	}

	return ctx
}

// collectNegations returns a small lookup of which bare subject words appear
// inside a "no X"/"without X"/"missing X" phrase, including grouped forms
// like "no battery/charger/hdd".
func collectNegations(lower string) map[string]bool {
	out := map[string]bool{}
	for _, m := range negationRe.FindAllStringSubmatch(lower, -1) {
		for _, word := range splitGroupedNegation(m[2]) {
			out[word] = true
		}
	}
	return out
}

func splitGroupedNegation(group string) []string {
	var words []string
	cur := ""
	for _, r := range group {
		switch r {
		case '/', ',', ' ':
			if cur != "" {
				words = append(words, cur)
				cur = ""
			}
		default:
			cur += string(r)
		}
	}
	if cur != "" {
		words = append(words, cur)
	}
	return words
}

// coveredByMissingPhrase reports whether every parts-context keyword the
// title mentions is also named inside a "missing X/…" phrase, which
// suppresses the parts-context signal (spec.md §4.2).
func coveredByMissingPhrase(lower string, negated map[string]bool) bool {
	for _, word := range []string{"screen", "digitizer", "motherboard", "lcd"} {
		if regexp.MustCompile(`\b`+word+`\b`).MatchString(lower) && !negated[word] {
			return false
		}
	}
	return len(negated) > 0
}

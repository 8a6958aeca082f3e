// Package brand implements the Brand & Model Segmenter (spec.md §4.12): a
// priority cascade over tokens that assigns a brand, then a per-brand model
// extractor that absorbs the model tokens following it.
package brand

import (
	"regexp"
	"strings"

	"github.com/theatomus/listingscanner/internal/context"
	"github.com/theatomus/listingscanner/internal/reftables"
)

// Result is the segmenter's output: the chosen brand, its model string, and
// the token indices consumed by both.
type Result struct {
	Brand   string
	Model   string
	Indices []int
}

var (
	appleWordRe     = regexp.MustCompile(`(?i)^apple$`)
	macbookWordRe    = regexp.MustCompile(`(?i)^macbook$`)
	colorWordRe      = regexp.MustCompile(`(?i)^(black|white|silver|gold|gray|grey|blue|red|green|space\s?gray)$`)
	ignoreWordRe     = regexp.MustCompile(`(?i)^(new|used|refurbished|genuine|original|oem)$`)
	componentWordRe  = regexp.MustCompile(`(?i)^(ram|ssd|hdd|gpu|cpu|screen|battery|charger|keyboard)$`)
	cpuTokenRe       = regexp.MustCompile(`(?i)^i[3579]-\d{3,5}[a-z]*$`)
	genTokenRe       = regexp.MustCompile(`(?i)^\d+(th|st|nd|rd)$`)
	ghzTokenRe       = regexp.MustCompile(`(?i)^\d+\.\d+ghz$`)
	appleModelNumRe  = regexp.MustCompile(`(?i)^a\d{4}$`)
	formFactorTokenRe = regexp.MustCompile(`(?i)^(sff|usff|mt|tower|\d+u)$`)
	gpuTokenRe       = regexp.MustCompile(`(?i)^(k\d+m|gtx\d*|rtx\d*|quadro|geforce|radeon)$`)
	compatMarkerRe   = regexp.MustCompile(`(?i)^(for|compatible|fits)$`)
	storageSlashRe   = regexp.MustCompile(`(?i)^\d+gb$`)
	quantityTokenRe  = regexp.MustCompile(`(?i)^\d+x$`)
	sizeOrSpeedTokenRe = regexp.MustCompile(`(?i)^\d+(\.\d+)?(gb|tb|mb|ghz|mhz)$`)
	cpuBrandWordRe   = regexp.MustCompile(`(?i)^(intel|amd)$`)
	cpuFamilyWordRe  = regexp.MustCompile(`(?i)^(xeon|core|ryzen|athlon|pentium|celeron|epyc|atom|opteron)$`)
	cpuModelNumRe    = regexp.MustCompile(`(?i)^[a-z]{1,3}\d{0,2}-\d{3,5}[a-z0-9]*$`)
	noAlphaNumRe     = regexp.MustCompile(`^[^a-zA-Z0-9]*$`)
)

// Segment runs phase A (brand) then phase B (per-brand model extraction).
func Segment(tokens []string, lower []string, consumed map[int]bool, ctx context.Context, tables *reftables.Tables) Result {
	brandIdx, brandName := findBrand(tokens, lower, consumed, ctx, tables)
	if brandIdx == -1 {
		return Result{}
	}
	modelIdx := extractModel(tokens, lower, consumed, brandIdx, brandName, ctx)
	indices := append([]int{brandIdx}, modelIdx...)
	model := joinAt(tokens, modelIdx)
	return Result{Brand: brandName, Model: model, Indices: indices}
}

func findBrand(tokens, lower []string, consumed map[int]bool, ctx context.Context, tables *reftables.Tables) (int, string) {
	n := len(tokens)

	// Step 0: Apple priority.
	for i := 0; i < n; i++ {
		if consumed[i] {
			continue
		}
		if appleWordRe.MatchString(lower[i]) || macbookWordRe.MatchString(lower[i]) {
			if appleWordRe.MatchString(lower[i]) {
				return i, "Apple"
			}
			// "MacBook" appearing without "Apple": brand is still Apple, but
			// the anchor token is MacBook itself.
			return i, "Apple"
		}
	}

	// Step 1: system brands in laptop/desktop/system-with-GPU context.
	if ctx.HasLaptopContext || ctx.HasDesktopContext || ctx.IsSystemWithGPU {
		for i := 0; i < n; i++ {
			if consumed[i] {
				continue
			}
			if _, ok := tables.SystemBrands[lower[i]]; ok {
				return i, strings.Title(lower[i])
			}
		}
	}

	// Step 2: GPU brands in GPU context (standalone GPUs only). The GPU
	// extractor runs before brand segmentation and typically already
	// consumed this token, so unlike every other step here we don't skip
	// consumed indices — we're only reading the brand name, not claiming
	// a fresh token.
	if ctx.HasGPUContext && !ctx.IsSystemWithGPU {
		for i := 0; i < n; i++ {
			if _, ok := tables.GPUBrands[lower[i]]; ok {
				return i, strings.Title(lower[i])
			}
		}
	}

	// Step 3/4: sub-brands with parent lookback.
	for i := 0; i < n; i++ {
		if consumed[i] {
			continue
		}
		if parent, ok := tables.ParentForSubBrand(lower[i]); ok {
			if j := findParentNearby(lower, consumed, i, parent); j != -1 {
				return j, parent
			}
			return i, parent
		}
	}

	// Step 5: phone-derived brand.
	if ctx.HasPhoneContext {
		for i := 0; i < n; i++ {
			if consumed[i] {
				continue
			}
			if lower[i] == "iphone" || lower[i] == "ipad" {
				return i, "Apple"
			}
		}
	}

	// Step 6: fallback, first unconsumed non-ignored token.
	for i := 0; i < n; i++ {
		if consumed[i] {
			continue
		}
		if ignoreWordRe.MatchString(lower[i]) || colorWordRe.MatchString(lower[i]) || componentWordRe.MatchString(lower[i]) {
			continue
		}
		if gpuTokenRe.MatchString(lower[i]) || quantityTokenRe.MatchString(lower[i]) || noAlphaNumRe.MatchString(lower[i]) {
			continue
		}
		// A bare CPU brand/family word or CPU model number with no
		// surrounding system/laptop/desktop/GPU context belongs to the CPU
		// extractor, not here — a standalone processor listing has no
		// separate system brand.
		if cpuBrandWordRe.MatchString(lower[i]) || cpuFamilyWordRe.MatchString(lower[i]) ||
			cpuTokenRe.MatchString(lower[i]) || cpuModelNumRe.MatchString(lower[i]) ||
			sizeOrSpeedTokenRe.MatchString(lower[i]) {
			continue
		}
		return i, tokens[i]
	}
	return -1, ""
}

func findParentNearby(lower []string, consumed map[int]bool, center int, parent string) int {
	lowerParent := strings.ToLower(parent)
	from, to := center-3, center+3
	if from < 0 {
		from = 0
	}
	if to >= len(lower) {
		to = len(lower) - 1
	}
	for i := from; i <= to; i++ {
		if consumed[i] {
			continue
		}
		if lower[i] == lowerParent {
			return i
		}
	}
	return -1
}

// extractModel dispatches to the per-brand model extractor (phase B).
func extractModel(tokens, lower []string, consumed map[int]bool, brandIdx int, brand string, ctx context.Context) []int {
	switch strings.ToLower(brand) {
	case "apple":
		return extractAppleModel(tokens, lower, consumed, brandIdx)
	case "nvidia", "amd", "evga", "msi", "zotac", "pny", "xfx", "sapphire", "powercolor", "asrock", "gigabyte":
		if ctx.HasGPUContext && !ctx.IsSystemWithGPU {
			return extractGPUModel(tokens, lower, consumed, brandIdx)
		}
		return extractSystemModel(tokens, lower, consumed, brandIdx)
	case "dell", "hp", "lenovo", "microsoft", "asus", "acer", "samsung", "lg":
		return extractSystemModel(tokens, lower, consumed, brandIdx)
	default:
		return extractGeneralModel(tokens, lower, consumed, brandIdx)
	}
}

func extractAppleModel(tokens, lower []string, consumed map[int]bool, brandIdx int) []int {
	var idx []int
	n := len(tokens)
	for i := brandIdx + 1; i < n; i++ {
		if consumed[i] {
			break
		}
		if isStorageSequence(tokens, lower, i) {
			break
		}
		if appleModelNumRe.MatchString(tokens[i]) {
			idx = append(idx, i)
			continue
		}
		if isComponentStop(lower[i]) && !appleModelNumRe.MatchString(tokens[i]) {
			break
		}
		idx = append(idx, i)
	}
	return idx
}

func extractAccessoryModel(tokens, lower []string, consumed map[int]bool, brandIdx int) []int {
	var idx []int
	for i := brandIdx + 1; i < len(tokens); i++ {
		if consumed[i] || compatMarkerRe.MatchString(lower[i]) {
			break
		}
		idx = append(idx, i)
	}
	return idx
}

func extractGPUModel(tokens, lower []string, consumed map[int]bool, brandIdx int) []int {
	var idx []int
	for i := brandIdx + 1; i < len(tokens) && i <= brandIdx+4; i++ {
		if consumed[i] {
			break
		}
		idx = append(idx, i)
	}
	return idx
}

func extractSystemModel(tokens, lower []string, consumed map[int]bool, brandIdx int) []int {
	var idx []int
	for i := brandIdx + 1; i < len(tokens); i++ {
		if consumed[i] {
			break
		}
		if gpuTokenRe.MatchString(lower[i]) {
			break
		}
		if formFactorTokenRe.MatchString(lower[i]) {
			idx = append(idx, i)
			continue
		}
		// CPU tokens, component words, and ordinal suffixes must stop the
		// scan before isModelToken's near-universal true swallows them.
		if isComponentStop(lower[i]) || sizeOrSpeedTokenRe.MatchString(lower[i]) {
			break
		}
		if isModelToken(tokens[i]) {
			idx = append(idx, i)
			continue
		}
		break
	}
	return idx
}

func extractGeneralModel(tokens, lower []string, consumed map[int]bool, brandIdx int) []int {
	var idx []int
	for i := brandIdx + 1; i < len(tokens); i++ {
		if consumed[i] {
			break
		}
		if cpuTokenRe.MatchString(tokens[i]) || genTokenRe.MatchString(tokens[i]) || isComponentStop(lower[i]) || sizeOrSpeedTokenRe.MatchString(lower[i]) {
			break
		}
		if isStorageSequence(tokens, lower, i) {
			break
		}
		if isModelToken(tokens[i]) {
			idx = append(idx, i)
			continue
		}
		break
	}
	return idx
}

func isComponentStop(lower string) bool {
	return componentWordRe.MatchString(lower) || cpuTokenRe.MatchString(lower) || genTokenRe.MatchString(lower) ||
		cpuBrandWordRe.MatchString(lower) || cpuFamilyWordRe.MatchString(lower)
}

func isModelToken(tok string) bool {
	hasDigit, hasAlpha := false, false
	for _, r := range tok {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasAlpha = true
		}
	}
	return hasDigit || hasAlpha
}

func isStorageSequence(tokens, lower []string, i int) bool {
	if !storageSlashRe.MatchString(tokens[i]) {
		return false
	}
	if i+2 < len(tokens) && tokens[i+1] == "/" && storageSlashRe.MatchString(tokens[i+2]) {
		return true
	}
	return false
}

func joinAt(tokens []string, indices []int) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = tokens[idx]
	}
	return strings.Join(parts, " ")
}

// RefineByProximity implements the brand-refinement rule (spec.md §4.12,
// final paragraph, and §4.14): for slash-containing titles mentioning
// multiple brands, pick the brand occurrence at or before the first CPU
// token and refine the model from that brand's segment.
func RefineByProximity(tokens, lower []string, tables *reftables.Tables) (brand string, firstCPUIdx int, ok bool) {
	firstCPUIdx = -1
	for i, tok := range tokens {
		if cpuTokenRe.MatchString(tok) || genTokenRe.MatchString(tok) || ghzTokenRe.MatchString(lower[i]) {
			firstCPUIdx = i
			break
		}
	}
	if firstCPUIdx == -1 {
		return "", -1, false
	}
	for i := firstCPUIdx; i >= 0; i-- {
		if _, known := tables.Brands[lower[i]]; known {
			return strings.Title(lower[i]), firstCPUIdx, true
		}
	}
	return "", firstCPUIdx, false
}

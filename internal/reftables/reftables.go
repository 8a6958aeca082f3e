// Package reftables holds the static, read-only reference data the parsing
// engine classifies against: known brands, Dell laptop/desktop/2-in-1 model
// registries, brand/series/device-type tables, CPU family tokens, RAM speed
// grades, and network carriers.
//
// A *Tables value is built once via New or Load and handed to every parse by
// reference. Nothing in this package or its callers mutates a Tables after
// construction, so it may be shared across goroutines without locking.
package reftables

import (
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tables is the immutable snapshot of reference data used by one or more parses.
type Tables struct {
	Brands             map[string]struct{}
	DellLaptopModels    map[string]struct{}
	DellDesktopModels   map[string]struct{}
	Dell2in1Models      map[string]struct{}
	DellLaptopPrefixes  []string
	DellDesktopPrefixes []string

	// BrandSeriesDeviceType maps brand -> series keyword -> device type.
	BrandSeriesDeviceType map[string]map[string]string

	CPUFamilies   map[string]struct{}
	DDRSpeedGrade map[string]string // "pc3-12800" -> "DDR3-1600" style normalization
	Carriers      map[string]string // synonym -> canonical carrier name

	SystemBrands    map[string]struct{}
	GPUBrands       map[string]struct{}
	SubBrandParents map[string]string // sub-brand (lowercased) -> parent brand

	modelNumberRe *regexp.Regexp
	cpuStripRe    []*regexp.Regexp
}

// Override is the optional YAML shape merged over the built-in literals via Load.
type Override struct {
	ExtraBrands   []string          `yaml:"extra_brands"`
	ExtraCarriers map[string]string `yaml:"extra_carriers"`
}

// New builds the reference tables from built-in literals only.
func New() *Tables {
	t := &Tables{
		Brands:              cloneSet(knownBrands),
		DellLaptopModels:    cloneSet(dellLaptopModels),
		DellDesktopModels:   cloneSet(dellDesktopModels),
		Dell2in1Models:      cloneSet(dell2in1Models),
		DellLaptopPrefixes:  []string{"E", "L", "M"},
		DellDesktopPrefixes: []string{"T", "GX", "SX"},

		BrandSeriesDeviceType: brandSeriesDeviceType,
		CPUFamilies:           cloneSet(cpuFamilyTokens),
		DDRSpeedGrade:         ddrSpeedGrade,
		Carriers:              cloneMap(carrierSynonyms),

		SystemBrands:    cloneSet(systemBrands),
		GPUBrands:       cloneSet(gpuBrands),
		SubBrandParents: cloneMap(subBrandParents),
	}
	t.modelNumberRe = regexp.MustCompile(`\b\d{4}\b`)
	t.cpuStripRe = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bi[3579]\s*-?\s*\d{3,5}[a-z]*\b`),
		regexp.MustCompile(`(?i)\bxeon\s*\w*\s*\d{3,5}[a-z]*\b`),
	}
	return t
}

// Load builds the reference tables from built-in literals, then merges an
// optional YAML override file on top. A missing or unreadable override path
// is not an error: it falls back to the built-in minimal set (spec.md §7,
// "Reference-table missing"), and the caller is expected to log the warning.
func Load(overridePath string) (*Tables, bool) {
	t := New()
	if overridePath == "" {
		return t, true
	}
	data, err := os.ReadFile(overridePath)
	if err != nil {
		return t, false
	}
	var ov Override
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return t, false
	}
	for _, b := range ov.ExtraBrands {
		t.Brands[strings.ToLower(b)] = struct{}{}
	}
	for k, v := range ov.ExtraCarriers {
		t.Carriers[strings.ToLower(k)] = v
	}
	return t, true
}

func cloneSet(src map[string]struct{}) map[string]struct{} {
	dst := make(map[string]struct{}, len(src))
	for k := range src {
		dst[k] = struct{}{}
	}
	return dst
}

func cloneMap(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// IsKnownBrand reports whether tok (case-insensitive) is a known brand.
func (t *Tables) IsKnownBrand(tok string) bool {
	_, ok := t.Brands[strings.ToLower(tok)]
	return ok
}

// IsDellLaptopModel mirrors dell_models.py's is_dell_laptop_model: series-name
// phrases win first, then always-laptop prefixes, then the raw 4-digit model
// set (after stripping CPU-model substrings that would otherwise bias the
// 4-digit scan, e.g. "i5-6400" contributing a false "6400").
func (t *Tables) IsDellLaptopModel(modelString string) bool {
	if modelString == "" {
		return false
	}
	lower := strings.ToLower(modelString)
	for _, series := range []string{"latitude", "precision mobile", "mobile workstation"} {
		if strings.Contains(lower, series) {
			return true
		}
	}
	for _, prefix := range t.DellLaptopPrefixes {
		if strings.HasPrefix(lower, strings.ToLower(prefix)) {
			return true
		}
	}
	clean := t.stripCPUModelNoise(lower)
	for _, m := range t.modelNumberRe.FindAllString(clean, -1) {
		if _, ok := t.DellLaptopModels[m]; ok {
			return true
		}
	}
	return false
}

// IsDellDesktopModel mirrors dell_models.py's is_dell_desktop_model.
func (t *Tables) IsDellDesktopModel(modelString string) bool {
	if modelString == "" {
		return false
	}
	lower := strings.ToLower(modelString)
	for _, series := range []string{"optiplex", "precision tower", "precision desktop", "tower", "desktop", "workstation"} {
		if strings.Contains(lower, series) {
			return true
		}
	}
	for _, prefix := range t.DellDesktopPrefixes {
		if strings.HasPrefix(lower, strings.ToLower(prefix)) {
			return true
		}
	}
	clean := t.stripCPUModelNoise(lower)
	for _, m := range t.modelNumberRe.FindAllString(clean, -1) {
		if _, ok := t.DellDesktopModels[m]; ok {
			return true
		}
	}
	if tMatch := dellTModelRe.FindStringSubmatch(lower); tMatch != nil {
		if _, ok := t.DellDesktopModels["T"+tMatch[1]]; ok {
			return true
		}
	}
	return false
}

// IsDell2in1Model reports whether modelString names a known Dell 2-in-1 SKU.
func (t *Tables) IsDell2in1Model(modelString string) bool {
	clean := t.stripCPUModelNoise(strings.ToLower(modelString))
	for _, m := range t.modelNumberRe.FindAllString(clean, -1) {
		if _, ok := t.Dell2in1Models[m]; ok {
			return true
		}
	}
	return false
}

var dellTModelRe = regexp.MustCompile(`\bt(\d{4})\b`)

func (t *Tables) stripCPUModelNoise(lower string) string {
	for _, re := range t.cpuStripRe {
		lower = re.ReplaceAllString(lower, " ")
	}
	return lower
}

// CanonicalCarrier resolves a carrier synonym (e.g. "vzw", "att", "tmobile")
// to its canonical display name, or returns ("", false) if unknown.
func (t *Tables) CanonicalCarrier(tok string) (string, bool) {
	v, ok := t.Carriers[strings.ToLower(tok)]
	return v, ok
}

// DeviceTypeFor resolves brand/series to a device type via the brand->series
// table, case-insensitively on both keys.
func (t *Tables) DeviceTypeFor(brand, series string) (string, bool) {
	seriesMap, ok := t.BrandSeriesDeviceType[strings.ToLower(brand)]
	if !ok {
		return "", false
	}
	v, ok := seriesMap[strings.ToLower(series)]
	return v, ok
}

// ParentForSubBrand returns the parent brand for a known sub-brand, e.g.
// "thinkpad" -> "Lenovo".
func (t *Tables) ParentForSubBrand(subBrand string) (string, bool) {
	v, ok := t.SubBrandParents[strings.ToLower(subBrand)]
	return v, ok
}

// Package postprocess implements the Post-Processor (spec.md §4.14):
// numbered-field whitelist/non-whitelist normalization, single-CPU
// promotion, multi-CPU family parsing, shared-key collapsing, CPU-pair
// speed/generation binding, ambiguous storage->RAM reassignment,
// device-type normalization, and slash-separated storage-capacity
// unfolding.
package postprocess

import (
	"regexp"
	"strings"

	"github.com/theatomus/listingscanner/internal/classify"
	"github.com/theatomus/listingscanner/internal/record"
)

// Whitelist keys keep the base as the first instance (spec.md §4.14/§6).
var whitelist = map[string]bool{
	"storage_capacity": true,
	"network_status":   true,
	"network_carrier":  true,
	"ram_size":         true,
	"ram_config":       true,
	"cpu_suffix":       true,
}

var cpuBaseAttrs = []string{"cpu_brand", "cpu_family", "cpu_model", "cpu_speed", "cpu_suffix", "cpu_generation"}

// Run applies every post-processing rule, in order, to a field set that
// already holds the orchestrator's raw extraction output.
func Run(fields *record.FieldSet, fullTitle string) {
	normalizeNumberedFields(fields)
	promoteSingleCPU(fields)
	parseMultiCPUFamily(fields)
	collapseSharedKeys(fields)
	bindCPUPairSpeeds(fields, fullTitle)
	reassignAmbiguousStorage(fields, fullTitle)
	unfoldSlashStorageCapacities(fields, fullTitle)
}

// normalizeNumberedFields implements the base-key whitelist rule: whitelist
// attributes keep base = instance1; all others drop the base when numbered
// variants exist.
func normalizeNumberedFields(fields *record.FieldSet) {
	bases := collectBases(fields)
	for base, indices := range bases {
		if len(indices) == 0 {
			continue
		}
		if whitelist[base] {
			if v, ok := fields.Get(base + "1"); ok {
				fields.Set(base, v)
				fields.Delete(base + "1")
			}
			continue
		}
		fields.Delete(base)
	}
}

// collectBases returns, for every attribute that has at least one numbered
// variant (fieldN for N>=1), the base name mapped to the set of N present.
func collectBases(fields *record.FieldSet) map[string][]int {
	numberedRe := regexp.MustCompile(`^(.+?)(\d+)$`)
	out := map[string][]int{}
	for _, k := range fields.Keys() {
		m := numberedRe.FindStringSubmatch(k)
		if m == nil {
			continue
		}
		out[m[1]] = append(out[m[1]], 1)
	}
	return out
}

// promoteSingleCPU promotes cpu_*1 -> cpu_* and removes the *1 variant for
// each CPU attribute independently, whenever that attribute's own *2 variant
// doesn't exist (spec.md §4.14/§8 Testable Property 5). A single physical
// CPU can still report two clock speeds (e.g. a dual-bin Xeon listing), so
// this must not be gated on any one attribute across the whole set: a CPU
// with one cpu_model but two cpu_speeds still promotes cpu_model1.
func promoteSingleCPU(fields *record.FieldSet) {
	for _, attr := range cpuBaseAttrs {
		if fields.Has(attr + "2") {
			continue
		}
		if v, ok := fields.Get(attr + "1"); ok {
			fields.Set(attr, v)
			fields.Delete(attr + "1")
		}
	}
}

var coreFamilySlashRe = regexp.MustCompile(`(?i)^core\s+(i[3579])/(i[3579])$`)

// parseMultiCPUFamily splits "Core i5/i7" into cpu_family1/cpu_family2 and
// sets cpu_brand=Intel if absent (spec.md §4.14).
func parseMultiCPUFamily(fields *record.FieldSet) {
	v, ok := fields.Get("cpu_family")
	if !ok {
		return
	}
	m := coreFamilySlashRe.FindStringSubmatch(v)
	if m == nil {
		return
	}
	fields.Delete("cpu_family")
	fields.Set("cpu_family1", "Core "+strings.ToLower(m[1]))
	fields.Set("cpu_family2", "Core "+strings.ToLower(m[2]))
	if !fields.Has("cpu_brand") {
		fields.Set("cpu_brand", "Intel")
	}
}

// collapseSharedKeys sets the shared base to the common value when every
// numbered variant for an attribute is identical (spec.md §4.14).
func collapseSharedKeys(fields *record.FieldSet) {
	numberedRe := regexp.MustCompile(`^(.+?)(\d+)$`)
	groups := map[string][]string{}
	for _, k := range fields.Keys() {
		m := numberedRe.FindStringSubmatch(k)
		if m == nil {
			continue
		}
		v, _ := fields.Get(k)
		groups[m[1]] = append(groups[m[1]], v)
	}
	for base, values := range groups {
		if whitelist[base] || len(values) < 2 {
			continue
		}
		allSame := true
		for _, v := range values[1:] {
			if v != values[0] {
				allSame = false
				break
			}
		}
		if allSame {
			fields.Set(base, values[0])
		}
	}
}

var ghzPairTitleRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)ghz\s*/\s*(\d+(?:\.\d+)?)ghz`)
var genPairTitleRe = regexp.MustCompile(`(?i)(\d+)(th|st|nd|rd)\s*/\s*(\d+)(th|st|nd|rd)\s*gen`)

// bindCPUPairSpeeds rebinds cpu_speed1/cpu_speed2 to the two GHz tokens
// found in the raw title. A title can repeat the same pair at different
// precisions (a base-clock callout in round GHz alongside a turbo-clock
// callout with hundredths, or vice versa); every occurrence is collected and
// the decimal-precision reading wins for each slot (spec.md §4.14/§8
// Testable Property 6).
func bindCPUPairSpeeds(fields *record.FieldSet, title string) {
	if !fields.Has("cpu_model1") && !fields.Has("cpu_family1") {
		return
	}
	if matches := ghzPairTitleRe.FindAllStringSubmatch(title, -1); len(matches) > 0 {
		first, second := matches[0][1], matches[0][2]
		for _, m := range matches[1:] {
			first = preferDecimal(first, m[1])
			second = preferDecimal(second, m[2])
		}
		fields.Set("cpu_speed1", first+"GHz")
		fields.Set("cpu_speed2", second+"GHz")
	}
	if m := genPairTitleRe.FindStringSubmatch(title); m != nil {
		fields.Set("cpu_generation1", m[1]+m[2])
		fields.Set("cpu_generation2", m[3]+m[4])
	}
}

// preferDecimal picks the more precise reading between two candidate speed
// values for the same slot: the one with more fractional digits wins
// ("2.60" over "2.6", "2.6" over "2"), and a is kept on a tie.
func preferDecimal(a, b string) string {
	frac := func(s string) int {
		if i := strings.Index(s, "."); i >= 0 {
			return len(s) - i - 1
		}
		return 0
	}
	if frac(b) > frac(a) {
		return b
	}
	return a
}

var noStorageCompositeRe = regexp.MustCompile(`(?i)\bno(ssd|hdd)\b`)
var noStoragePhraseRe = regexp.MustCompile(`(?i)\bno\s+(ssd|hdd|storage|drive)s?\b`)
var clearStorageKeywordRe = regexp.MustCompile(`(?i)\b(ssd|hdd|nvme|m\.2|emmc)\b`)

// reassignAmbiguousStorage moves the first storage_capacity* value to
// ram_size and deletes all storage_* keys, but only when storage is
// explicitly not included, there is no existing RAM field, and the title
// has no clear storage keyword left over (spec.md §4.14).
func reassignAmbiguousStorage(fields *record.FieldSet, title string) {
	explicit := false
	if v, ok := fields.Get("storage_status"); ok && strings.EqualFold(v, "Not Included") {
		explicit = true
	}
	if noStorageCompositeRe.MatchString(title) || noStoragePhraseRe.MatchString(title) {
		explicit = true
	}
	if !explicit {
		return
	}
	if fields.Has("ram_size") {
		return
	}
	if clearStorageKeywordRe.MatchString(title) {
		return
	}
	var firstCap string
	found := false
	for _, k := range fields.Keys() {
		if strings.HasPrefix(k, "storage_capacity") {
			v, _ := fields.Get(k)
			if !found {
				firstCap = v
				found = true
			}
		}
	}
	if !found {
		return
	}
	for _, k := range fields.Keys() {
		if strings.HasPrefix(k, "storage_") {
			fields.Delete(k)
		}
	}
	fields.Set("ram_size", firstCap)
}

// NormalizeDeviceType applies the residual Monitors->Computer Servers rule.
func NormalizeDeviceType(deviceType string) string {
	return classify.NormalizeMonitors(deviceType)
}

var slashStorageRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?gb)\s*/\s*(\d+(?:\.\d+)?gb)(?:\s*/\s*(\d+(?:\.\d+)?gb))?`)

// unfoldSlashStorageCapacities expands a slash-separated storage capacity
// run left in the raw title into numbered storage_capacityN fields when the
// extractor pipeline didn't already produce them (spec.md §4.14).
func unfoldSlashStorageCapacities(fields *record.FieldSet, title string) {
	if fields.Has("storage_capacity") || fields.Has("storage_capacity1") {
		return
	}
	m := slashStorageRe.FindStringSubmatch(title)
	if m == nil {
		return
	}
	n := 0
	for _, v := range m[1:] {
		if v == "" {
			continue
		}
		n++
		fields.Set("storage_capacity"+itoa(n), strings.ToUpper(v))
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte('0' + n%10)}, b...)
		n /= 10
	}
	return string(b)
}

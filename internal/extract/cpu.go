package extract

import (
	"regexp"
	"strings"
)

// CPUModelExtractor matches Intel Core, Xeon, Pentium/Celeron/Atom/Athlon,
// Ryzen/Threadripper/EPYC, and Apple M-series model tokens (spec.md §4.5).
type CPUModelExtractor struct{}

func NewCPUModelExtractor() *CPUModelExtractor { return &CPUModelExtractor{} }

func (e *CPUModelExtractor) Name() string          { return "cpu_model" }
func (e *CPUModelExtractor) Priority() int         { return PriorityCPU }
func (e *CPUModelExtractor) Multiple() bool        { return true }
func (e *CPUModelExtractor) ConsumeOnMatch() bool  { return true }
func (e *CPUModelExtractor) DeviceTypes() []string { return nil }

var (
	intelCoreModelRe = regexp.MustCompile(`(?i)^i([3579])-(\d{3,5})([a-z]{0,3})$`)
	xeonModelRe      = regexp.MustCompile(`(?i)^(e[357])-(\d{4})([a-z]{0,2})\d?$`)
	xeonTierModelRe  = regexp.MustCompile(`(?i)^(gold|platinum|silver|bronze)$`)
	xeonTierNumRe    = regexp.MustCompile(`(?i)^\d{4}[a-z]?$`)
	pentiumRe        = regexp.MustCompile(`(?i)^(pentium|celeron|atom|athlon)$`)
	ryzenRe          = regexp.MustCompile(`(?i)^ryzen$`)
	ryzenTierRe      = regexp.MustCompile(`(?i)^[3579]$`)
	threadripperRe   = regexp.MustCompile(`(?i)^threadripper$`)
	epycRe           = regexp.MustCompile(`(?i)^epyc$`)
	appleMRe         = regexp.MustCompile(`(?i)^m([123])$`)
	appleMSuffixRe   = regexp.MustCompile(`(?i)^(pro|max|ultra)$`)
	numRe            = regexp.MustCompile(`(?i)^[a-z]?\d{3,5}[a-z]{0,3}$`)
)

func (e *CPUModelExtractor) Extract(in Input, consumed *ConsumedSet) []MatchGroup {
	var groups []MatchGroup
	n := len(in.Tokens)
	for i := 0; i < n; i++ {
		if consumed.Has(i) {
			continue
		}
		tok := in.Tokens[i]

		if intelCoreModelRe.MatchString(tok) {
			groups = append(groups, MatchGroup{Match: []int{i}})
			continue
		}
		if xeonModelRe.MatchString(tok) {
			groups = append(groups, MatchGroup{Match: []int{i}})
			continue
		}
		if i+1 < n && xeonTierModelRe.MatchString(in.Lower[i]) && xeonTierNumRe.MatchString(in.Tokens[i+1]) {
			groups = append(groups, MatchGroup{Match: []int{i, i + 1}})
			i++
			continue
		}
		if pentiumRe.MatchString(in.Lower[i]) {
			idx := []int{i}
			if i+1 < n && numRe.MatchString(in.Tokens[i+1]) {
				idx = append(idx, i+1)
			}
			groups = append(groups, MatchGroup{Match: idx})
			continue
		}
		if ryzenRe.MatchString(in.Lower[i]) {
			idx := []int{i}
			j := i + 1
			if j < n && ryzenTierRe.MatchString(in.Tokens[j]) {
				idx = append(idx, j)
				j++
			}
			if j < n && numRe.MatchString(in.Tokens[j]) {
				idx = append(idx, j)
			}
			groups = append(groups, MatchGroup{Match: idx})
			continue
		}
		if threadripperRe.MatchString(in.Lower[i]) || epycRe.MatchString(in.Lower[i]) {
			idx := []int{i}
			if i+1 < n && numRe.MatchString(in.Tokens[i+1]) {
				idx = append(idx, i+1)
			}
			groups = append(groups, MatchGroup{Match: idx})
			continue
		}
		if appleMRe.MatchString(tok) {
			idx := []int{i}
			if i+1 < n && appleMSuffixRe.MatchString(in.Lower[i+1]) {
				idx = append(idx, i+1)
			}
			groups = append(groups, MatchGroup{Match: idx})
			continue
		}
	}
	return groups
}

func (e *CPUModelExtractor) ProcessMatch(in Input, group MatchGroup) Fields {
	full := joinTokens(in.Tokens, group.Match)
	f := Fields{"cpu_model": full}

	switch {
	case intelCoreModelRe.MatchString(in.Tokens[group.Match[0]]):
		m := intelCoreModelRe.FindStringSubmatch(in.Tokens[group.Match[0]])
		f["cpu_brand"] = "Intel"
		f["cpu_family"] = "Core i" + m[1]
		if m[3] != "" {
			f["cpu_suffix"] = strings.ToUpper(m[3])
		}
	case xeonModelRe.MatchString(in.Tokens[group.Match[0]]):
		f["cpu_brand"] = "Intel"
		f["cpu_family"] = "Xeon"
	case xeonTierModelRe.MatchString(in.Lower[group.Match[0]]):
		f["cpu_brand"] = "Intel"
		f["cpu_family"] = "Xeon " + strings.Title(in.Lower[group.Match[0]])
	case pentiumRe.MatchString(in.Lower[group.Match[0]]):
		f["cpu_brand"] = "Intel"
		f["cpu_family"] = strings.Title(in.Lower[group.Match[0]])
	case ryzenRe.MatchString(in.Lower[group.Match[0]]):
		f["cpu_brand"] = "AMD"
		f["cpu_family"] = "Ryzen"
	case threadripperRe.MatchString(in.Lower[group.Match[0]]):
		f["cpu_brand"] = "AMD"
		f["cpu_family"] = "Threadripper"
	case epycRe.MatchString(in.Lower[group.Match[0]]):
		f["cpu_brand"] = "AMD"
		f["cpu_family"] = "EPYC"
	case appleMRe.MatchString(in.Tokens[group.Match[0]]):
		f["cpu_brand"] = "Apple"
		f["cpu_family"] = strings.ToUpper(in.Tokens[group.Match[0]])
	}
	return f
}

func joinTokens(tokens []string, indices []int) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = tokens[idx]
	}
	return strings.Join(parts, " ")
}

// CPUSpeedExtractor matches "@?N.N?GHz|MHz" tokens (spec.md §4.5).
type CPUSpeedExtractor struct{}

func NewCPUSpeedExtractor() *CPUSpeedExtractor { return &CPUSpeedExtractor{} }

func (e *CPUSpeedExtractor) Name() string          { return "cpu_speed" }
func (e *CPUSpeedExtractor) Priority() int         { return PriorityCPU }
func (e *CPUSpeedExtractor) Multiple() bool        { return true }
func (e *CPUSpeedExtractor) ConsumeOnMatch() bool  { return true }
func (e *CPUSpeedExtractor) DeviceTypes() []string { return nil }

var speedTokenRe = regexp.MustCompile(`(?i)^@?(\d+\.?\d*)(ghz|mhz)$`)

var ramContextRe = regexp.MustCompile(`(?i)^(ram|memory|ddr\d*|lpddr\d*|gddr\d*)$`)
var cpuContextRe = regexp.MustCompile(`(?i)^(cpu|processor|core|xeon|ryzen|i[3579]|pentium|celeron)$`)

func (e *CPUSpeedExtractor) Extract(in Input, consumed *ConsumedSet) []MatchGroup {
	var groups []MatchGroup
	for i, tok := range in.Tokens {
		if consumed.Has(i) {
			continue
		}
		m := speedTokenRe.FindStringSubmatch(tok)
		if m == nil {
			continue
		}
		isMHz := strings.EqualFold(m[2], "mhz")
		if isMHz {
			if !windowHas(in.Lower, i-8, i, cpuContextRe) {
				continue
			}
			if windowHas(in.Lower, i-3, i+3, ramContextRe) {
				continue
			}
		} else {
			if ramWindowClear(in.Lower, i) {
				continue
			}
		}
		groups = append(groups, MatchGroup{Match: []int{i}})
	}
	return groups
}

func windowHas(lower []string, from, to int, re *regexp.Regexp) bool {
	if from < 0 {
		from = 0
	}
	if to >= len(lower) {
		to = len(lower) - 1
	}
	for i := from; i <= to; i++ {
		if re.MatchString(lower[i]) {
			return true
		}
	}
	return false
}

func ramWindowClear(lower []string, i int) bool {
	from, to := i-3, i+3
	if from < 0 {
		from = 0
	}
	if to >= len(lower) {
		to = len(lower) - 1
	}
	ramCount, total := 0, 0
	for j := from; j <= to; j++ {
		total++
		if ramContextRe.MatchString(lower[j]) {
			ramCount++
		}
	}
	return ramCount > 0 && !windowHas(lower, from, to, cpuContextRe)
}

func (e *CPUSpeedExtractor) ProcessMatch(in Input, group MatchGroup) Fields {
	m := speedTokenRe.FindStringSubmatch(in.Tokens[group.Match[0]])
	return Fields{"cpu_speed": m[1] + strings.ToUpper(m[2][:1]) + m[2][1:]}
}

// CPUGenerationExtractor matches "Nth Gen"/"Nth Generation" (spec.md §4.5),
// skipped inside compatibility-language contexts.
type CPUGenerationExtractor struct{}

func NewCPUGenerationExtractor() *CPUGenerationExtractor { return &CPUGenerationExtractor{} }

func (e *CPUGenerationExtractor) Name() string          { return "cpu_generation" }
func (e *CPUGenerationExtractor) Priority() int         { return PriorityCPU }
func (e *CPUGenerationExtractor) Multiple() bool        { return true }
func (e *CPUGenerationExtractor) ConsumeOnMatch() bool  { return true }
func (e *CPUGenerationExtractor) DeviceTypes() []string { return nil }

var (
	genNumRe  = regexp.MustCompile(`(?i)^(\d+)(th|st|nd|rd)$`)
	genWordRe = regexp.MustCompile(`(?i)^gen(eration)?$`)
	compatRe  = regexp.MustCompile(`(?i)^(supports?|compatible|socket|chipset|family|processors)$`)
)

func (e *CPUGenerationExtractor) Extract(in Input, consumed *ConsumedSet) []MatchGroup {
	var groups []MatchGroup
	n := len(in.Tokens)
	for i := 0; i < n-1; i++ {
		if consumed.Has(i) || consumed.Has(i+1) {
			continue
		}
		if genNumRe.MatchString(in.Tokens[i]) && genWordRe.MatchString(in.Lower[i+1]) {
			if windowHas(in.Lower, i-4, i-1, compatRe) {
				continue
			}
			groups = append(groups, MatchGroup{Match: []int{i, i + 1}})
		}
	}
	return groups
}

func (e *CPUGenerationExtractor) ProcessMatch(in Input, group MatchGroup) Fields {
	m := genNumRe.FindStringSubmatch(in.Tokens[group.Match[0]])
	return Fields{"cpu_generation": m[1] + m[2]}
}

// CPUQuantityExtractor matches a single digit with adjacent CPU context
// (spec.md §4.5), skipped for "Dual Core"/"Quad Core" phrasing.
type CPUQuantityExtractor struct{}

func NewCPUQuantityExtractor() *CPUQuantityExtractor { return &CPUQuantityExtractor{} }

func (e *CPUQuantityExtractor) Name() string          { return "cpu_quantity" }
func (e *CPUQuantityExtractor) Priority() int         { return PriorityCPU }
func (e *CPUQuantityExtractor) Multiple() bool        { return false }
func (e *CPUQuantityExtractor) ConsumeOnMatch() bool  { return true }
func (e *CPUQuantityExtractor) DeviceTypes() []string { return nil }

var (
	singleDigitRe = regexp.MustCompile(`^[1-9]$`)
	dualQuadRe    = regexp.MustCompile(`(?i)^(dual|quad)$`)
	coreWordRe    = regexp.MustCompile(`(?i)^core$`)
)

func (e *CPUQuantityExtractor) Extract(in Input, consumed *ConsumedSet) []MatchGroup {
	n := len(in.Tokens)
	for j := 0; j+1 < n; j++ {
		if dualQuadRe.MatchString(in.Lower[j]) && coreWordRe.MatchString(in.Lower[j+1]) {
			return nil
		}
	}
	for i := 0; i < n; i++ {
		if consumed.Has(i) || !singleDigitRe.MatchString(in.Tokens[i]) {
			continue
		}
		if !windowHas(in.Lower, i-3, i+3, cpuContextRe) {
			continue
		}
		return []MatchGroup{{Match: []int{i}}}
	}
	return nil
}

func (e *CPUQuantityExtractor) ProcessMatch(in Input, group MatchGroup) Fields {
	return Fields{"cpu_quantity": in.Tokens[group.Match[0]]}
}

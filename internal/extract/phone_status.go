package extract

import (
	"regexp"
	"strings"
)

// PhoneExtractor emits series/phone_model/color/storage_size/network_status/
// network_carrier (spec.md §4.9). The orchestrator calls it when
// Context.HasPhoneContext is set or device_type resolved to a phone/tablet,
// but Extract itself matches nothing unless Context.HasPhoneContext is set.
type PhoneExtractor struct{}

func NewPhoneExtractor() *PhoneExtractor { return &PhoneExtractor{} }

func (e *PhoneExtractor) Name() string          { return "phone" }
func (e *PhoneExtractor) Priority() int         { return PriorityLast }
func (e *PhoneExtractor) Multiple() bool        { return false }
func (e *PhoneExtractor) ConsumeOnMatch() bool  { return true }
func (e *PhoneExtractor) DeviceTypes() []string { return nil }

var (
	iPhoneRe    = regexp.MustCompile(`(?i)^iphone$`)
	iPadRe      = regexp.MustCompile(`(?i)^ipad$`)
	galaxyRe    = regexp.MustCompile(`(?i)^galaxy$`)
	pixelRe     = regexp.MustCompile(`(?i)^pixel$`)
	phoneColorRe = regexp.MustCompile(`(?i)^(black|white|silver|gold|gray|grey|blue|red|green|purple|rose\s?gold|midnight|starlight)$`)
	unlockedRe  = regexp.MustCompile(`(?i)^unlocked$`)
	wifiOnlyRe  = regexp.MustCompile(`(?i)^wi-?fi$`)
	onlyWordRe  = regexp.MustCompile(`(?i)^only$`)
	numAfterRe  = regexp.MustCompile(`^\d{3,5}[A-Za-z]*$`)
)

func (e *PhoneExtractor) Extract(in Input, consumed *ConsumedSet) []MatchGroup {
	if !in.Ctx.HasPhoneContext {
		return nil
	}
	n := len(in.Tokens)
	for i := 0; i < n; i++ {
		if consumed.Has(i) {
			continue
		}
		if iPhoneRe.MatchString(in.Lower[i]) || iPadRe.MatchString(in.Lower[i]) || galaxyRe.MatchString(in.Lower[i]) || pixelRe.MatchString(in.Lower[i]) {
			idx := []int{i}
			for j := i + 1; j < n && j <= i+6; j++ {
				if consumed.Has(j) {
					break
				}
				idx = append(idx, j)
			}
			return []MatchGroup{{Match: idx}}
		}
	}
	return nil
}

func (e *PhoneExtractor) ProcessMatch(in Input, group MatchGroup) Fields {
	f := Fields{}
	first := group.Match[0]
	switch {
	case iPhoneRe.MatchString(in.Lower[first]):
		f["series"] = "iPhone"
	case iPadRe.MatchString(in.Lower[first]):
		f["series"] = "iPad"
	case galaxyRe.MatchString(in.Lower[first]):
		f["series"] = "Galaxy"
	case pixelRe.MatchString(in.Lower[first]):
		f["series"] = "Pixel"
	}

	var modelParts []string
	carrierCount := 0
	for k, idx := range group.Match {
		if k == 0 {
			continue
		}
		tok, lower := in.Tokens[idx], in.Lower[idx]
		switch {
		case phoneColorRe.MatchString(lower):
			f["color"] = strings.Title(lower)
		case gbTokenRe.MatchString(tok):
			m := gbTokenRe.FindStringSubmatch(tok)
			f["storage_size"] = m[1] + strings.ToUpper(m[2])
		case unlockedRe.MatchString(lower):
			f["network_status"] = "Network Unlocked"
		case wifiOnlyRe.MatchString(lower):
			if k+1 < len(group.Match) && onlyWordRe.MatchString(in.Lower[group.Match[k+1]]) {
				f["network_status"] = "WiFi Only"
			} else {
				f["network_status"] = "WiFi Only"
			}
		default:
			if canonical, ok := in.Tables.CanonicalCarrier(lower); ok {
				carrierCount++
				if carrierCount == 1 {
					f["network_carrier"] = canonical
				} else {
					f["network_carrier"+itoa(carrierCount)] = canonical
				}
				continue
			}
			if numAfterRe.MatchString(tok) || len(modelParts) < 3 {
				modelParts = append(modelParts, tok)
			}
		}
	}
	if len(modelParts) > 0 {
		f["phone_model"] = strings.Join(modelParts, " ")
	}
	return f
}

// StatusExtractor covers the cross-cutting status fields (storage_status,
// battery_status, os_status, bios_status) that apply for any device type.
// Per spec.md §4.9, every status extractor runs against the same
// ConsumedSet snapshot, and their matches are only merged in afterward so
// they never steal each other's tokens; this type models that by exposing a
// Kind so the orchestrator can defer the Claim step.
type StatusExtractor struct {
	Kind string
	Word *regexp.Regexp
}

func NewBIOSStatusExtractor() *StatusExtractor {
	return &StatusExtractor{Kind: "bios_status", Word: regexp.MustCompile(`(?i)^bios$`)}
}

func NewOSStatusExtractor() *StatusExtractor {
	return &StatusExtractor{Kind: "os_status", Word: osWordRe}
}

func (e *StatusExtractor) Name() string          { return e.Kind }
func (e *StatusExtractor) Priority() int         { return PriorityLast }
func (e *StatusExtractor) Multiple() bool        { return false }
func (e *StatusExtractor) ConsumeOnMatch() bool  { return true }
func (e *StatusExtractor) DeviceTypes() []string { return nil }

func (e *StatusExtractor) Extract(in Input, consumed *ConsumedSet) []MatchGroup {
	n := len(in.Tokens)
	for i := 0; i < n; i++ {
		if consumed.Has(i) || !e.Word.MatchString(in.Lower[i]) {
			continue
		}
		if i > 0 && batteryNegRe.MatchString(in.Lower[i-1]) && !consumed.Has(i-1) {
			return []MatchGroup{{Match: []int{i - 1, i}}}
		}
	}
	return nil
}

func (e *StatusExtractor) ProcessMatch(in Input, group MatchGroup) Fields {
	return Fields{e.Kind: "Not Included"}
}

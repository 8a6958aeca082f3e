package extract

import "regexp"

// LotExtractor recognizes quantity expressions (spec.md §4.4): "Lot of N",
// "Lot (N)", "Qty N", "N x", "(Nx)", "x N", "N units", "N+". It guards
// against adjacent port/connector/slot keywords, which denote counts of
// ports rather than units being sold.
type LotExtractor struct{}

func NewLotExtractor() *LotExtractor { return &LotExtractor{} }

func (e *LotExtractor) Name() string           { return "lot" }
func (e *LotExtractor) Priority() int          { return PriorityLot }
func (e *LotExtractor) Multiple() bool         { return false }
func (e *LotExtractor) ConsumeOnMatch() bool   { return true }
func (e *LotExtractor) DeviceTypes() []string  { return nil }

var (
	lotOfRe   = regexp.MustCompile(`(?i)^lot$`)
	lotOfOfRe = regexp.MustCompile(`(?i)^of$`)
	qtyRe     = regexp.MustCompile(`(?i)^qty\.?$`)
	numRe2    = regexp.MustCompile(`^\(?(\d+)\)?\+?$`)
	xSuffixRe = regexp.MustCompile(`(?i)^\(?(\d+)x\)?$`)
	xPrefixRe = regexp.MustCompile(`(?i)^x$`)
	unitsRe   = regexp.MustCompile(`(?i)^units?$`)

	portConnectorRe = regexp.MustCompile(`(?i)^(displayport|hdmi|dvi|usb|usb-c|usbc|sata|dimm|m\.2|slot|bay|antenna|port|ports)$`)
)

func (e *LotExtractor) Extract(in Input, consumed *ConsumedSet) []MatchGroup {
	var groups []MatchGroup
	n := len(in.Tokens)
	for i := 0; i < n; i++ {
		tok := in.Tokens[i]
		lower := in.Lower[i]

		switch {
		case lotOfRe.MatchString(lower) && i+2 < n && lotOfOfRe.MatchString(in.Lower[i+1]) && numRe2.MatchString(in.Tokens[i+2]):
			if e.guardBlocks(in, i, i+2) {
				continue
			}
			groups = append(groups, MatchGroup{Match: []int{i, i + 1, i + 2}})
		case lotOfRe.MatchString(lower) && i+1 < n && numRe2.MatchString(stripParens(in.Tokens[i+1])):
			if e.guardBlocks(in, i, i+1) {
				continue
			}
			groups = append(groups, MatchGroup{Match: []int{i, i + 1}})
		case qtyRe.MatchString(lower) && i+1 < n && numRe2.MatchString(in.Tokens[i+1]):
			if e.guardBlocks(in, i, i+1) {
				continue
			}
			groups = append(groups, MatchGroup{Match: []int{i, i + 1}})
		case xSuffixRe.MatchString(tok):
			if e.guardBlocks(in, i, i) {
				continue
			}
			groups = append(groups, MatchGroup{Match: []int{i}})
		case xPrefixRe.MatchString(lower) && i+1 < n && numRe2.MatchString(in.Tokens[i+1]):
			if e.guardBlocks(in, i, i+1) {
				continue
			}
			groups = append(groups, MatchGroup{Match: []int{i, i + 1}})
		case numRe2.MatchString(tok) && i+1 < n && (xPrefixRe.MatchString(in.Lower[i+1]) || unitsRe.MatchString(in.Lower[i+1])):
			if e.guardBlocks(in, i, i+1) {
				continue
			}
			groups = append(groups, MatchGroup{Match: []int{i, i + 1}})
		case isPlusQuantity(tok):
			if e.guardBlocks(in, i, i) {
				continue
			}
			groups = append(groups, MatchGroup{Match: []int{i}})
		}
	}
	return groups
}

func isPlusQuantity(tok string) bool {
	if len(tok) < 2 || tok[len(tok)-1] != '+' {
		return false
	}
	for _, r := range tok[:len(tok)-1] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func stripParens(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '(' && s[i] != ')' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// guardBlocks disqualifies a lot match when a port/connector/slot keyword
// appears within 3 tokens on either side of the match span.
func (e *LotExtractor) guardBlocks(in Input, lo, hi int) bool {
	start := lo - 3
	if start < 0 {
		start = 0
	}
	end := hi + 3
	if end >= len(in.Tokens) {
		end = len(in.Tokens) - 1
	}
	for i := start; i <= end; i++ {
		if i >= lo && i <= hi {
			continue
		}
		if portConnectorRe.MatchString(in.Lower[i]) {
			return true
		}
	}
	return false
}

func extractQuantity(tokens []string, indices []int) string {
	for _, i := range indices {
		n := digitsOf(tokens[i])
		if n != "" {
			return n
		}
	}
	return ""
}

func digitsOf(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func (e *LotExtractor) ProcessMatch(in Input, group MatchGroup) Fields {
	qty := extractQuantity(in.Tokens, group.Match)
	if qty == "" {
		return nil
	}
	return Fields{"lot": qty}
}

package clean

import (
	"regexp"
	"strings"
)

var (
	zeroWidthRe   = regexp.MustCompile(`[\x{200B}-\x{200D}\x{FEFF}\x{2122}\x{00AE}\x{00A9}]`)
	bomRe         = regexp.MustCompile(`^\x{FEFF}`)
	collapseWSRe  = regexp.MustCompile(`\s+`)
	atDegreePipe  = regexp.MustCompile(`[@°|]`)
	unitShorthand = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*/\s*(\d+(?:\.\d+)?)(GB|TB|MB|GHz|MHz|KHz|THz)\b`)
	cpuPairSpeed  = regexp.MustCompile(`(?i)\b(\d+\.(\d+))\s*/\s*(\d+)(GHz|MHz)?\b`)
	intelCoreRe   = regexp.MustCompile(`(?i)\bintelcore\b`)
	nthGenRe      = regexp.MustCompile(`(?i)\b(\d+)thgen\b`)
	rtxModelRe    = regexp.MustCompile(`(?i)\b(RTX|GTX|GT)(\d{3,4})\b`)
	lotParenRe    = regexp.MustCompile(`(?i)\bLot\((\d+)\)`)
)

// Clean performs the string-level normalization steps of spec.md §4.1, items
// 1-5, returning a cleaned title ready for whitespace splitting.
func Clean(title string) string {
	s := bomRe.ReplaceAllString(title, "")
	s = zeroWidthRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "Â", "")
	s = atDegreePipe.ReplaceAllString(s, " ")
	s = collapseWSRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	// Step 2: ampersand as alternative.
	s = strings.ReplaceAll(s, "&", "/")

	// Step 3: normalize CPU-pair speeds, padding the abbreviated second decimal
	// to the first decimal's length, e.g. "2.80/70GHz" -> "2.80GHz/2.70GHz".
	// Runs before the generic unit-shorthand expansion below, since that
	// regex would otherwise match the same "<dec>/<dec><unit>" span first
	// and swallow it without restoring the second number's integer part.
	s = cpuPairSpeed.ReplaceAllStringFunc(s, func(m string) string {
		g := cpuPairSpeed.FindStringSubmatch(m)
		first := g[1]
		decLen := len(g[2])
		second := g[3]
		unit := g[4]
		if unit == "" {
			unit = "GHz"
		}
		if len(second) < decLen {
			second = strings.Repeat("0", decLen-len(second)) + second
		}
		secondVal := second
		if len(secondVal) > decLen {
			secondVal = secondVal[len(secondVal)-decLen:]
		}
		return first + unit + "/" + intPartOf(first) + "." + secondVal + unit
	})

	// Step 4: expand unit shorthand on <num>/<num><unit>.
	s = unitShorthand.ReplaceAllStringFunc(s, func(m string) string {
		g := unitShorthand.FindStringSubmatch(m)
		return g[1] + g[3] + "/" + g[2] + g[3]
	})

	// Step 5: compound-word normalization.
	s = intelCoreRe.ReplaceAllString(s, "Intel Core")
	s = nthGenRe.ReplaceAllString(s, "$1th Gen")
	s = rtxModelRe.ReplaceAllString(s, "$1 $2")
	s = lotParenRe.ReplaceAllString(s, "Lot ($1)")

	return s
}

func intPartOf(decimal string) string {
	if i := strings.IndexByte(decimal, '.'); i >= 0 {
		return decimal[:i]
	}
	return decimal
}

// Tokenize splits a cleaned title into the token vector, applying the
// fusion/splitting rules of spec.md §4.1 items 6-8.
func Tokenize(cleanedTitle string) []string {
	raw := strings.Fields(cleanedTitle)
	fused := fuseUnits(raw)
	split := splitComposites(fused)
	merged := mergeCPUDash(split)
	return merged
}

// CleanAndTokenize is the single entry point most callers use.
func CleanAndTokenize(title string) []string {
	return Tokenize(Clean(title))
}

var (
	numRe        = regexp.MustCompile(`(?i)^\d+(\.\d+)?$`)
	unitWordRe   = regexp.MustCompile(`(?i)^(GB|TB|MB|GHz|MHz|KHz|THz)$`)
	ramWordRe    = regexp.MustCompile(`(?i)^(RAM|MEMORY|DDR\d*|LPDDR\d*|GDDR\d*)$`)
	storageWordRe = regexp.MustCompile(`(?i)^(SSD|HDD|NVME|M\.2|EMMC|STORAGE)$`)
	inchWordRe   = regexp.MustCompile(`(?i)^(IN|INCH|INCHES)$`)
	rateTokenRe  = regexp.MustCompile(`(?i)^\d+Gb/s$`)
)

// fuseUnits implements spec.md §4.1 step 6: merges a bare number with an
// adjacent unit/type-word token into one token, in the documented cases.
func fuseUnits(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	i := 0
	for i < len(tokens) {
		cur := tokens[i]
		if i+1 < len(tokens) {
			next := tokens[i+1]
			if numRe.MatchString(cur) && unitWordRe.MatchString(next) {
				out = append(out, cur+strings.ToUpper(matchCanonicalUnit(next)))
				i += 2
				continue
			}
			if isSizeUnitToken(cur) {
				if ramWordRe.MatchString(next) {
					out = append(out, cur, next)
					i += 2
					continue
				}
				if storageWordRe.MatchString(next) {
					out = append(out, cur, next)
					i += 2
					continue
				}
			}
			if numRe.MatchString(cur) && inchWordRe.MatchString(next) {
				out = append(out, cur+"in")
				i += 2
				continue
			}
		}
		out = append(out, cur)
		i++
	}
	return out
}

func matchCanonicalUnit(tok string) string {
	m := unitWordRe.FindStringSubmatch(tok)
	if m == nil {
		return tok
	}
	return m[1]
}

var sizeUnitTokenRe = regexp.MustCompile(`(?i)^\d+(GB|TB|MB)$`)

func isSizeUnitToken(tok string) bool {
	return sizeUnitTokenRe.MatchString(tok)
}

var (
	naRe            = regexp.MustCompile(`(?i)^N/A$`)
	parenBrandRe    = regexp.MustCompile(`(?i)^\((\d+)[xX]([A-Za-z].*)\)$`)
	parenBrandRe2   = regexp.MustCompile(`(?i)^\([xX](\d+)\)([A-Za-z].+)$`)
	combinedRamRe   = regexp.MustCompile(`(?i)^(\d+GB)(RAM|SSD)$`)
	m2BatteryRe     = regexp.MustCompile(`(?i)^M\.2/BATTERY$`)
	negationWordsRe = regexp.MustCompile(`(?i)^(no|without)$`)
)

// splitComposites implements spec.md §4.1 step 7.
func splitComposites(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	i := 0
	for i < len(tokens) {
		tok := tokens[i]

		if m := parenBrandRe.FindStringSubmatch(tok); m != nil {
			out = append(out, "("+m[1]+"x", m[2]+")")
			i++
			continue
		}
		if m := parenBrandRe2.FindStringSubmatch(tok); m != nil {
			out = append(out, "(x"+m[1]+")", m[2])
			i++
			continue
		}
		if m := combinedRamRe.FindStringSubmatch(tok); m != nil {
			out = append(out, m[1], m[2])
			i++
			continue
		}

		if strings.Contains(tok, "/") && !naRe.MatchString(tok) &&
			!m2BatteryRe.MatchString(tok) && !rateTokenRe.MatchString(tok) {
			negated := negationWordsRe.MatchString(tok)
			pieces := strings.Split(tok, "/")
			if negated {
				out = append(out, tok)
				i++
				continue
			}
			for pi, piece := range pieces {
				if piece != "" {
					out = append(out, piece)
				}
				if pi != len(pieces)-1 {
					out = append(out, "/")
				}
			}
			i++
			continue
		}

		// "no"/"without" followed by a slash-composite: distribute the
		// negation over each piece, e.g. "no SSD/HDD" -> "no SSD", "no HDD".
		if negationWordsRe.MatchString(tok) && i+1 < len(tokens) {
			next := tokens[i+1]
			if strings.Contains(next, "/") && !naRe.MatchString(next) {
				for _, piece := range strings.Split(next, "/") {
					if piece != "" {
						out = append(out, tok, piece)
					}
				}
				i += 2
				continue
			}
		}

		out = append(out, tok)
		i++
	}
	return out
}

var (
	cpuDashRe  = regexp.MustCompile(`(?i)^(i[3579]|xeon|e[357])-$`)
	numAfterRe = regexp.MustCompile(`^\d{3,5}[A-Za-z]*$`)
)

// mergeCPUDash implements spec.md §4.1 step 8: "i7-" + "3770" -> "i7-3770".
func mergeCPUDash(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	i := 0
	for i < len(tokens) {
		if cpuDashRe.MatchString(tokens[i]) && i+1 < len(tokens) && numAfterRe.MatchString(tokens[i+1]) {
			out = append(out, tokens[i]+tokens[i+1])
			i += 2
			continue
		}
		out = append(out, tokens[i])
		i++
	}
	return out
}

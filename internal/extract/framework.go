// Package extract implements the Extractor Framework (spec.md §4.3) and the
// component extractors (spec.md §4.4-§4.10) that run over a title's token
// vector: Lot, CPU, RAM, Storage, Screen, GPU, OS, Device/Form-Factor,
// Battery, Switch, Adapter, HDD, Phone, and the Status extractors.
//
// Every extractor is a stateless value loaded once and shared across
// parses; the token vector and ConsumedSet it receives are scoped to a
// single parse and never escape it.
package extract

import (
	"sort"

	"github.com/theatomus/listingscanner/internal/context"
	"github.com/theatomus/listingscanner/internal/reftables"
)

// ConsumedSet tracks which token indices have already been claimed by an
// extractor within one parse. It only grows: once an index is marked, it is
// never released (spec.md §3, "ConsumedSet ... never shrinks").
type ConsumedSet struct {
	claimed map[int]bool
}

// NewConsumedSet returns an empty set sized for a token vector of length n.
func NewConsumedSet(n int) *ConsumedSet {
	return &ConsumedSet{claimed: make(map[int]bool, n)}
}

// Has reports whether index i has already been claimed.
func (c *ConsumedSet) Has(i int) bool { return c.claimed[i] }

// AnyClaimed reports whether any index in indices is already claimed.
func (c *ConsumedSet) AnyClaimed(indices []int) bool {
	for _, i := range indices {
		if c.claimed[i] {
			return true
		}
	}
	return false
}

// Claim marks every index in indices as consumed.
func (c *ConsumedSet) Claim(indices []int) {
	for _, i := range indices {
		c.claimed[i] = true
	}
}

// Count returns how many indices are currently claimed.
func (c *ConsumedSet) Count() int { return len(c.claimed) }

// MatchGroup is an ordered list of token indices one extractor match spans,
// plus an optional separate consume list for "peek without consume" matches
// (spec.md §3). When Consume is nil, Match doubles as the consume list.
type MatchGroup struct {
	Match   []int
	Consume []int
}

// ConsumeIndices returns the indices this group actually claims.
func (g MatchGroup) ConsumeIndices() []int {
	if g.Consume != nil {
		return g.Consume
	}
	return g.Match
}

// Fields is the field dictionary an extractor produces per match: canonical
// field name -> string value. Numbered variants (cpu_model1, cpu_model2)
// indicate instance index when an attribute has multiple values.
type Fields map[string]string

// Input bundles everything an extractor's Extract call can read. It is
// passed by value; the Tokens slice and Tables pointer are shared read-only
// references, never mutated by an extractor.
type Input struct {
	Tokens  []string
	Lower   []string // lowercased copy of Tokens, precomputed once per parse
	Ctx     context.Context
	Tables  *reftables.Tables
	Title   string // full cleaned title, for whole-string regex checks
}

// Extractor is the uniform contract every component extractor implements
// (spec.md §4.3).
type Extractor interface {
	// Name is the extractor's unique identifier.
	Name() string
	// Priority orders dispatch; lower runs earlier.
	Priority() int
	// Multiple reports whether several independent matches are expected.
	Multiple() bool
	// ConsumeOnMatch reports whether matched indices should be claimed in
	// the shared ConsumedSet (default true for nearly all extractors).
	ConsumeOnMatch() bool
	// DeviceTypes is an optional whitelist; nil/empty means "runs for any
	// device type".
	DeviceTypes() []string
	// Extract scans in and returns the match groups it found, without
	// mutating consumed (the orchestrator claims indices on the caller's
	// behalf once fields have been produced for a group).
	Extract(in Input, consumed *ConsumedSet) []MatchGroup
	// ProcessMatch turns one MatchGroup into its field dictionary.
	ProcessMatch(in Input, group MatchGroup) Fields
}

// Priority constants from spec.md §4.3.
const (
	PriorityLot     = 0
	PriorityCPU     = 1
	PriorityRAM     = 2
	PriorityStorage = 3
	PriorityScreen  = 4
	PriorityGPU     = 5
	PriorityOS      = 6
	PriorityDevice  = 7
	PriorityBattery = 8
	PrioritySwitch  = 9
	PriorityAdapter = 10
	PriorityLast    = 1000
)

// SortByPriority orders extractors by ascending priority, breaking ties by
// registration order (stable sort preserves the input order of equal keys).
func SortByPriority(extractors []Extractor) []Extractor {
	out := make([]Extractor, len(extractors))
	copy(out, extractors)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority() < out[j].Priority()
	})
	return out
}

// Run dispatches one extractor against the shared token vector, applying
// the device_types gate, a recover-and-skip guard (spec.md §7, "Extractor
// internal failure"), and final claim-on-match bookkeeping. It returns the
// field dictionaries produced, one per match group that wasn't blocked by an
// already-claimed index.
func Run(ex Extractor, in Input, consumed *ConsumedSet, deviceType string) (results []Fields) {
	if !deviceTypeAllowed(ex.DeviceTypes(), deviceType) {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			results = nil
		}
	}()

	groups := ex.Extract(in, consumed)
	for _, g := range groups {
		if consumed.AnyClaimed(g.ConsumeIndices()) {
			continue
		}
		fields := ex.ProcessMatch(in, g)
		if fields == nil {
			continue
		}
		if ex.ConsumeOnMatch() {
			consumed.Claim(g.ConsumeIndices())
		}
		results = append(results, fields)
		if !ex.Multiple() {
			break
		}
	}
	return results
}

func deviceTypeAllowed(whitelist []string, deviceType string) bool {
	if len(whitelist) == 0 {
		return true
	}
	for _, dt := range whitelist {
		if dt == deviceType {
			return true
		}
	}
	return false
}

// LowerAll returns a lowercased copy of tokens, computed once per parse and
// shared by every extractor via Input.Lower.
func LowerAll(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = toLowerASCII(t)
	}
	return out
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

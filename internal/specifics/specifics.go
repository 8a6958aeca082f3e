// Package specifics implements the Specifics/Table Parsers + Unifier
// (SPEC_FULL.md component 9): it reuses the same extractor framework the
// Title Parser Orchestrator runs, applied to the labeled key/value lines of
// the Item-Specifics section and to the per-row bodies of the Table-Data
// section, then folds plaintext tabular bodies and hoists values shared
// across every row into one shared block.
package specifics

import (
	"regexp"
	"strings"

	"github.com/theatomus/listingscanner/internal/clean"
	"github.com/theatomus/listingscanner/internal/context"
	"github.com/theatomus/listingscanner/internal/document"
	"github.com/theatomus/listingscanner/internal/extract"
	"github.com/theatomus/listingscanner/internal/record"
	"github.com/theatomus/listingscanner/internal/reftables"
)

// directLabels maps a normalized eBay-style specifics label straight to its
// canonical field name, bypassing the extractor pipeline for labels that are
// already unambiguous key/value pairs.
var directLabels = map[string]string{
	"brand":             "brand",
	"model":             "model",
	"mpn":               "mpn",
	"color":             "color",
	"type":              "device_subtype",
	"form_factor":       "device_form_factor",
	"connectivity":      "connectivity",
	"network":           "network_carrier",
	"storage_capacity":  "storage_capacity",
	"hard_drive_capacity": "storage_capacity",
	"ram_size":          "ram_size",
	"screen_size":       "screen_size",
	"operating_system":  "os_type",
}

// labelExtractors dispatches a normalized label to the extractors that
// should run over its value, so a value like "Intel Core i5-8250U" under a
// "Processor" label is parsed the same way the title parser would read it.
var labelExtractors = map[string][]extract.Extractor{
	"processor":         {extract.NewCPUModelExtractor(), extract.NewCPUSpeedExtractor(), extract.NewCPUGenerationExtractor()},
	"cpu":               {extract.NewCPUModelExtractor(), extract.NewCPUSpeedExtractor(), extract.NewCPUGenerationExtractor()},
	"ram":               {extract.NewRAMExtractor(), extract.NewRAMTypeExtractor(), extract.NewRAMSpeedGradeExtractor()},
	"memory":            {extract.NewRAMExtractor(), extract.NewRAMTypeExtractor(), extract.NewRAMSpeedGradeExtractor()},
	"storage_type":      {extract.NewStorageExtractor(), extract.NewStorageStatusExtractor()},
	"hard_drive":        {extract.NewStorageExtractor(), extract.NewStorageStatusExtractor(), extract.NewHDDExtractor()},
	"ssd_capacity":      {extract.NewStorageExtractor()},
	"graphics_processing_type": {extract.NewGPUExtractor()},
	"gpu":               {extract.NewGPUExtractor()},
	"graphics_card":     {extract.NewGPUExtractor()},
	"operating_system":  {extract.NewOSExtractor()},
	"battery":           {extract.NewBatteryExtractor()},
	"screen_size":       {extract.NewScreenExtractor()},
	"display":           {extract.NewScreenExtractor()},
}

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

func normalizeLabel(label string) string {
	l := strings.ToLower(strings.TrimSpace(label))
	l = nonAlnumRe.ReplaceAllString(l, "_")
	return strings.Trim(l, "_")
}

// ParseItemSpecifics turns one `Key: Value` body (the ITEM SPECIFICS
// section, or one table-entry body) into a FieldSet: direct labels map
// straight across, recognized labels are re-parsed through the relevant
// component extractors, and everything else falls back to its own
// normalized label as the key.
func ParseItemSpecifics(body string, tables *reftables.Tables) *record.FieldSet {
	fields := record.NewFieldSet()
	for _, kv := range document.ParseKeyValueLines(body) {
		key := normalizeLabel(kv.Key)
		if key == "" || kv.Value == "" {
			continue
		}
		if canonical, ok := directLabels[key]; ok {
			fields.Set(canonical, kv.Value)
			continue
		}
		if extracted := runLabelExtractors(key, kv.Value, tables); len(extracted) > 0 {
			for k, v := range extracted {
				fields.Set(k, v)
			}
			continue
		}
		fields.Set(key, kv.Value)
	}
	return fields
}

func runLabelExtractors(key, value string, tables *reftables.Tables) extract.Fields {
	extractors, ok := labelExtractors[key]
	if !ok {
		return nil
	}
	tokens := clean.CleanAndTokenize(value)
	if len(tokens) == 0 {
		return nil
	}
	in := extract.Input{
		Tokens: tokens,
		Lower:  extract.LowerAll(tokens),
		Ctx:    context.Detect(value, tokens),
		Tables: tables,
		Title:  value,
	}
	consumed := extract.NewConsumedSet(len(tokens))
	out := extract.Fields{}
	for _, ex := range extractors {
		for _, f := range extract.Run(ex, in, consumed, "") {
			for k, v := range f {
				out[k] = v
			}
		}
	}
	return out
}

var plaintextRowSplitRe = regexp.MustCompile(`(?m)^-{3,}\s*$`)

// ParseTableData parses the TABLE DATA section body into per-entry rows
// plus a shared-values block for attributes that are identical across
// every row. When the body has no "Entry N" headers but looks like a
// plaintext-delimited table (rows separated by a dashed rule), it folds
// that into synthetic entries first.
func ParseTableData(body string, tables *reftables.Tables) ([]record.TableRow, *record.FieldSet) {
	entries := document.SplitTableEntries(body)
	if len(entries) == 0 {
		entries = foldPlaintextEntries(body)
	}

	rows := make([]record.TableRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, record.TableRow{Index: e.Index, Fields: ParseItemSpecifics(e.Body, tables)})
	}

	shared := hoistSharedValues(rows)
	return rows, shared
}

// foldPlaintextEntries handles table bodies that never used "Entry N"
// headers at all: a run of "Key: Value" blocks separated by a dashed rule
// line is treated as one synthetic entry per block.
func foldPlaintextEntries(body string) []document.TableEntry {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil
	}
	blocks := plaintextRowSplitRe.Split(body, -1)
	var entries []document.TableEntry
	n := 0
	for _, blk := range blocks {
		blk = strings.TrimSpace(blk)
		if blk == "" {
			continue
		}
		n++
		entries = append(entries, document.TableEntry{Index: n, Body: blk})
	}
	return entries
}

// hoistSharedValues moves any key whose value is identical across every
// row into a shared FieldSet and removes it from the per-row sets.
func hoistSharedValues(rows []record.TableRow) *record.FieldSet {
	shared := record.NewFieldSet()
	if len(rows) < 2 {
		return shared
	}
	counts := map[string]int{}
	values := map[string]string{}
	consistent := map[string]bool{}
	for i, row := range rows {
		for _, k := range row.Fields.Keys() {
			v, _ := row.Fields.Get(k)
			counts[k]++
			if i == 0 {
				values[k] = v
				consistent[k] = true
				continue
			}
			if values[k] != v {
				consistent[k] = false
			}
		}
	}
	for k, count := range counts {
		if count == len(rows) && consistent[k] {
			shared.Set(k, values[k])
			for _, row := range rows {
				row.Fields.Delete(k)
			}
		}
	}
	return shared
}

package parse

import (
	"strings"

	"github.com/theatomus/listingscanner/internal/classify"
	"github.com/theatomus/listingscanner/internal/document"
	"github.com/theatomus/listingscanner/internal/record"
	"github.com/theatomus/listingscanner/internal/reftables"
	"github.com/theatomus/listingscanner/internal/specifics"
)

// Options carries the feature flags from internal/config that affect
// parsing behavior without being part of the extraction rules themselves.
type Options struct {
	// EnableTonerCartridges mirrors config.Features.EnableTonerCartridges:
	// off by default, the toner-cartridge device-type bucket is suppressed
	// rather than removed from the classifier, since the classifier itself
	// has no notion of feature flags.
	EnableTonerCartridges bool
}

// Listing runs the full pipeline over one raw listing file: sectioning,
// title parsing, metadata/category passthrough, specifics/table parsing,
// and description field extraction, assembled into one ListingRecord
// (spec.md §6, "a structured record suitable for insertion into a
// persistence layer").
func Listing(raw string, tables *reftables.Tables, opts Options) *record.ListingRecord {
	sections := document.Split(raw)
	rec := record.NewListingRecord()

	rec.FullTitle = titleFromMetadata(sections.Metadata)
	titleFields, deviceType := Title(rec.FullTitle, tables)
	if deviceType != "" && (opts.EnableTonerCartridges || deviceType != classify.TonerCartridges) {
		titleFields.Set("device_type", deviceType)
	}
	rec.Title = titleFields

	for _, kv := range document.ParseKeyValueLines(sections.Metadata) {
		if strings.EqualFold(kv.Key, "title") || strings.EqualFold(kv.Key, "full title") {
			continue
		}
		rec.Metadata.Set(normalizeMetaKey(kv.Key), kv.Value)
	}

	components := document.CategoryComponents(sections.CategoryPath)
	rec.CategoryPath = document.JoinCategoryPath(components)
	if len(components) > 0 {
		rec.LeafCategory = components[len(components)-1]
	}

	rec.Specifics = specifics.ParseItemSpecifics(sections.ItemSpecifics, tables)

	rec.TableRows, rec.SharedTable = specifics.ParseTableData(sections.TableData, tables)

	rec.Description = parseDescription(sections.ItemDescription)

	return rec
}

func titleFromMetadata(metadata string) string {
	for _, kv := range document.ParseKeyValueLines(metadata) {
		if strings.EqualFold(kv.Key, "title") || strings.EqualFold(kv.Key, "full title") {
			return kv.Value
		}
	}
	return ""
}

func normalizeMetaKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "_")
}

var conditionPrefixes = []string{"Cosmetic Condition", "Functional Condition", "Data Sanitization", "R2 Certification"}

// parseDescription pulls the condition/sanitization/certification lines out
// of the free-prose description body and leaves the remainder as notes
// (spec.md §6).
func parseDescription(body string) *record.FieldSet {
	fields := record.NewFieldSet()
	if body == "" {
		return fields
	}
	var notes []string
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		matched := false
		for _, prefix := range conditionPrefixes {
			if strings.HasPrefix(trimmed, prefix+":") {
				value := strings.TrimSpace(strings.TrimPrefix(trimmed, prefix+":"))
				fields.Set(normalizeMetaKey(prefix), value)
				matched = true
				break
			}
		}
		if !matched {
			notes = append(notes, trimmed)
		}
	}
	if len(notes) > 0 {
		fields.Set("notes", strings.Join(notes, " "))
	}
	return fields
}

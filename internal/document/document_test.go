package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullListing = `
===METADATA===
Title: Dell Latitude 5420 Laptop
Condition: Used

===CATEGORY PATH===
Computers
Laptops

===ITEM SPECIFICS===
Brand: Dell
Model: Latitude 5420

=== TABLE DATA ===
Entry 1:
Color: Black

=== ITEM DESCRIPTION ===
Tested and working.
Disclaimer: No returns accepted.
`

func TestSplit_AllSections(t *testing.T) {
	s := Split(fullListing)

	assert.Contains(t, s.Metadata, "Title: Dell Latitude 5420 Laptop")
	assert.Equal(t, "Computers\nLaptops", s.CategoryPath)
	assert.Equal(t, "Brand: Dell\nModel: Latitude 5420", s.ItemSpecifics)
	assert.Equal(t, "Entry 1:\nColor: Black", s.TableData)
	assert.Equal(t, "Tested and working.", s.ItemDescription)
}

func TestSplit_MissingSectionsAreEmpty(t *testing.T) {
	s := Split("===METADATA===\nTitle: Unbranded Laptop\n")

	assert.Equal(t, "Title: Unbranded Laptop", s.Metadata)
	assert.Empty(t, s.CategoryPath)
	assert.Empty(t, s.ItemSpecifics)
	assert.Empty(t, s.TableData)
	assert.Empty(t, s.ItemDescription)
}

func TestSplit_NoMarkersTreatedAsMetadataPrelude(t *testing.T) {
	s := Split("Just a raw title with no sections at all")
	assert.Equal(t, "Just a raw title with no sections at all", s.Metadata)
	assert.Empty(t, s.CategoryPath)
}

func TestSplit_TextBeforeFirstMarkerIsImpliedMetadata(t *testing.T) {
	s := Split("Some stray prelude text\n===METADATA===\nTitle: X\n")
	assert.Contains(t, s.Metadata, "Some stray prelude text")
	assert.Contains(t, s.Metadata, "Title: X")
}

func TestParseKeyValueLines(t *testing.T) {
	kvs := ParseKeyValueLines("Brand: Dell\nModel: Latitude 5420\nCondition: Used")

	require.Len(t, kvs, 3)
	assert.Equal(t, KV{Key: "Brand", Value: "Dell"}, kvs[0])
	assert.Equal(t, KV{Key: "Model", Value: "Latitude 5420"}, kvs[1])
	assert.Equal(t, KV{Key: "Condition", Value: "Used"}, kvs[2])
}

func TestParseKeyValueLines_MultilineContinuation(t *testing.T) {
	kvs := ParseKeyValueLines("Notes: This item has\nbeen fully tested\nBrand: Dell")

	require.Len(t, kvs, 2)
	assert.Equal(t, "This item has been fully tested", kvs[0].Value)
	assert.Equal(t, "Dell", kvs[1].Value)
}

func TestParseKeyValueLines_SkipsBlankLines(t *testing.T) {
	kvs := ParseKeyValueLines("Brand: Dell\n\n\nModel: Latitude")
	require.Len(t, kvs, 2)
}

func TestCategoryComponentsAndJoin(t *testing.T) {
	components := CategoryComponents("Computers\nLaptops\nPC Laptops & Netbooks")
	assert.Equal(t, []string{"Computers", "Laptops", "PC Laptops & Netbooks"}, components)
	assert.Equal(t, "Computers > Laptops > PC Laptops & Netbooks", JoinCategoryPath(components))
}

func TestSplitTableEntries(t *testing.T) {
	entries := SplitTableEntries("Entry 1:\nBrand: Dell\nEntry 2:\nBrand: HP")

	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Index)
	assert.Equal(t, "Brand: Dell", entries[0].Body)
	assert.Equal(t, 2, entries[1].Index)
	assert.Equal(t, "Brand: HP", entries[1].Body)
}

func TestSplitTableEntries_NoHeaders(t *testing.T) {
	entries := SplitTableEntries("Brand: Dell\nBrand: HP")
	assert.Empty(t, entries)
}

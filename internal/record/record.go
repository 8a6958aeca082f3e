// Package record defines ListingRecord and the line-oriented document
// serializer matching spec.md §6's section markers and [key] naming
// convention, plus the structured view consumed by internal/store.
package record

import (
	"sort"
	"strings"
)

// FieldSet is an ordered field dictionary: insertion order is preserved
// alongside the key->value map, since emission order matters for the
// line-oriented serialization (spec.md §3, "stable emission order list").
type FieldSet struct {
	order  []string
	values map[string]string
}

func NewFieldSet() *FieldSet {
	return &FieldSet{values: map[string]string{}}
}

func (fs *FieldSet) Set(key, value string) {
	if _, exists := fs.values[key]; !exists {
		fs.order = append(fs.order, key)
	}
	fs.values[key] = value
}

func (fs *FieldSet) Delete(key string) {
	if _, exists := fs.values[key]; !exists {
		return
	}
	delete(fs.values, key)
	for i, k := range fs.order {
		if k == key {
			fs.order = append(fs.order[:i], fs.order[i+1:]...)
			break
		}
	}
}

func (fs *FieldSet) Get(key string) (string, bool) {
	v, ok := fs.values[key]
	return v, ok
}

func (fs *FieldSet) Has(key string) bool {
	_, ok := fs.values[key]
	return ok
}

// Keys returns keys in a stable order: base fields first (in insertion
// order), then numbered variants sorted by index (spec.md §6).
func (fs *FieldSet) Keys() []string {
	var base, numbered []string
	for _, k := range fs.order {
		if baseOf(k) == k {
			base = append(base, k)
		} else {
			numbered = append(numbered, k)
		}
	}
	sort.SliceStable(numbered, func(i, j int) bool {
		bi, ni := baseOf(numbered[i]), numberOf(numbered[i])
		bj, nj := baseOf(numbered[j]), numberOf(numbered[j])
		if bi != bj {
			return bi < bj
		}
		return ni < nj
	})
	return append(base, numbered...)
}

func (fs *FieldSet) Merge(other *FieldSet) {
	for _, k := range other.Keys() {
		v, _ := other.Get(k)
		fs.Set(k, v)
	}
}

func baseOf(key string) string {
	i := len(key)
	for i > 0 && key[i-1] >= '0' && key[i-1] <= '9' {
		i--
	}
	if i == len(key) || i == 0 {
		return key
	}
	return key[:i]
}

func numberOf(key string) int {
	i := len(key)
	for i > 0 && key[i-1] >= '0' && key[i-1] <= '9' {
		i--
	}
	if i == len(key) {
		return 0
	}
	n := 0
	for _, r := range key[i:] {
		n = n*10 + int(r-'0')
	}
	return n
}

// TableRow is one per-entry block folded into the unified record.
type TableRow struct {
	Index  int
	Fields *FieldSet
}

// ListingRecord is the composite output of one parse: title fields,
// metadata, category, specifics, table rows, and description (spec.md §3).
type ListingRecord struct {
	FullTitle   string
	Title       *FieldSet
	Metadata    *FieldSet
	CategoryPath string
	LeafCategory string
	Specifics   *FieldSet
	TableRows   []TableRow
	SharedTable *FieldSet
	Description *FieldSet
}

func NewListingRecord() *ListingRecord {
	return &ListingRecord{
		Title:       NewFieldSet(),
		Metadata:    NewFieldSet(),
		Specifics:   NewFieldSet(),
		SharedTable: NewFieldSet(),
		Description: NewFieldSet(),
	}
}

// Serialize renders the record as the line-oriented document described in
// spec.md §6.
func (r *ListingRecord) Serialize() string {
	var b strings.Builder

	b.WriteString("====== TITLE DATA ======\n")
	b.WriteString("Full Title: " + r.FullTitle + "\n")
	for _, k := range r.Title.Keys() {
		v, _ := r.Title.Get(k)
		b.WriteString("[title_" + k + "_key] " + label(k) + ": " + v + "\n")
	}

	b.WriteString("====== METADATA ======\n")
	for _, k := range r.Metadata.Keys() {
		v, _ := r.Metadata.Get(k)
		b.WriteString("[meta_" + k + "_key] " + label(k) + ": " + v + "\n")
	}

	b.WriteString("====== CATEGORY ======\n")
	b.WriteString("[category_path_key] Category Path: " + r.CategoryPath + "\n")
	b.WriteString("[leaf_category_key] Leaf Category: " + r.LeafCategory + "\n")

	b.WriteString("====== SPECIFICS ======\n")
	for _, k := range r.Specifics.Keys() {
		v, _ := r.Specifics.Get(k)
		if k == "os_status" && (v == "No" || v == "N/A") {
			v = "Not Included"
		}
		b.WriteString("[specs_" + k + "_key] " + label(k) + ": " + v + "\n")
	}

	b.WriteString("====== TABLE DATA ======\n")
	b.WriteString("[table_entry_count_key] Total Entries: " + itoa(len(r.TableRows)) + "\n")
	if len(r.SharedTable.Keys()) > 0 {
		b.WriteString("Shared Values:\n")
		for _, k := range r.SharedTable.Keys() {
			v, _ := r.SharedTable.Get(k)
			b.WriteString("  [table_" + k + "_key] " + label(k) + ": " + v + "\n")
		}
	}
	for _, row := range r.TableRows {
		b.WriteString("Entry " + itoa(row.Index) + ":\n")
		for _, k := range row.Fields.Keys() {
			v, _ := row.Fields.Get(k)
			b.WriteString("  [table_" + k + "_key] " + label(k) + ": " + v + "\n")
		}
	}

	b.WriteString("====== DESCRIPTION ======\n")
	for _, k := range r.Description.Keys() {
		v, _ := r.Description.Get(k)
		b.WriteString("[desc_" + k + "_key] " + label(k) + ": " + v + "\n")
	}

	return b.String()
}

// label turns a snake_case field key into a human label, e.g. "cpu_model"
// -> "Cpu Model". Serialize uses it for every section; the original labels
// of specifics and table lines are not kept, so they too are rendered from
// the normalized key.
func label(key string) string {
	parts := strings.Split(baseOf(key), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte('0' + n%10)}, b...)
		n /= 10
	}
	if neg {
		b = append([]byte{'-'}, b...)
	}
	return string(b)
}

// StructuredView flattens the record into one key->value map, suitable for
// insertion into a persistence layer (spec.md §6).
func (r *ListingRecord) StructuredView() map[string]string {
	out := map[string]string{"full_title": r.FullTitle, "category_path": r.CategoryPath, "leaf_category": r.LeafCategory}
	for _, k := range r.Title.Keys() {
		v, _ := r.Title.Get(k)
		out["title_"+k] = v
	}
	for _, k := range r.Metadata.Keys() {
		v, _ := r.Metadata.Get(k)
		out["meta_"+k] = v
	}
	for _, k := range r.Specifics.Keys() {
		v, _ := r.Specifics.Get(k)
		out["specs_"+k] = v
	}
	for _, k := range r.Description.Keys() {
		v, _ := r.Description.Get(k)
		out["desc_"+k] = v
	}
	return out
}

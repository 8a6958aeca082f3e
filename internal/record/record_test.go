package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldSet_SetGetHas(t *testing.T) {
	fs := NewFieldSet()
	assert.False(t, fs.Has("brand"))

	fs.Set("brand", "Dell")
	v, ok := fs.Get("brand")
	require.True(t, ok)
	assert.Equal(t, "Dell", v)
	assert.True(t, fs.Has("brand"))
}

func TestFieldSet_SetOverwritesWithoutReordering(t *testing.T) {
	fs := NewFieldSet()
	fs.Set("brand", "Dell")
	fs.Set("model", "Latitude")
	fs.Set("brand", "HP")

	assert.Equal(t, []string{"brand", "model"}, fs.Keys())
	v, _ := fs.Get("brand")
	assert.Equal(t, "HP", v)
}

func TestFieldSet_Delete(t *testing.T) {
	fs := NewFieldSet()
	fs.Set("brand", "Dell")
	fs.Set("model", "Latitude")
	fs.Delete("brand")

	assert.False(t, fs.Has("brand"))
	assert.Equal(t, []string{"model"}, fs.Keys())
}

func TestFieldSet_KeysOrdersNumberedVariantsNumerically(t *testing.T) {
	fs := NewFieldSet()
	fs.Set("cpu_model2", "i7")
	fs.Set("cpu_model", "i5")
	fs.Set("cpu_model10", "i9")

	// base fields first, then numbered variants sorted by numeric index
	// (not lexically, which would put cpu_model10 before cpu_model2).
	assert.Equal(t, []string{"cpu_model", "cpu_model2", "cpu_model10"}, fs.Keys())
}

func TestFieldSet_Merge(t *testing.T) {
	a := NewFieldSet()
	a.Set("brand", "Dell")

	b := NewFieldSet()
	b.Set("model", "Latitude")
	b.Set("brand", "HP")

	a.Merge(b)

	v, _ := a.Get("brand")
	assert.Equal(t, "HP", v)
	v, _ = a.Get("model")
	assert.Equal(t, "Latitude", v)
}

func TestListingRecord_Serialize(t *testing.T) {
	rec := NewListingRecord()
	rec.FullTitle = "Dell Latitude 5420"
	rec.Title.Set("brand", "Dell")
	rec.CategoryPath = "Computers > Laptops"
	rec.LeafCategory = "Laptops"
	rec.Specifics.Set("model", "Latitude 5420")
	rec.TableRows = []TableRow{{Index: 1, Fields: NewFieldSet()}}
	rec.TableRows[0].Fields.Set("color", "Black")
	rec.Description.Set("notes", "Tested working.")

	out := rec.Serialize()

	assert.Contains(t, out, "====== TITLE DATA ======")
	assert.Contains(t, out, "Full Title: Dell Latitude 5420")
	assert.Contains(t, out, "[title_brand_key] Brand: Dell")
	assert.Contains(t, out, "[category_path_key] Category Path: Computers > Laptops")
	assert.Contains(t, out, "[leaf_category_key] Leaf Category: Laptops")
	assert.Contains(t, out, "[specs_model_key] Model: Latitude 5420")
	assert.Contains(t, out, "Entry 1:")
	assert.Contains(t, out, "[table_color_key] Color: Black")
	assert.Contains(t, out, "[desc_notes_key] Notes: Tested working.")
}

func TestListingRecord_Serialize_OSStatusRemapped(t *testing.T) {
	rec := NewListingRecord()
	rec.Specifics.Set("os_status", "No")

	out := rec.Serialize()
	assert.Contains(t, out, "[specs_os_status_key] Os Status: Not Included")
}

func TestListingRecord_StructuredView(t *testing.T) {
	rec := NewListingRecord()
	rec.FullTitle = "Dell Latitude 5420"
	rec.CategoryPath = "Computers > Laptops"
	rec.LeafCategory = "Laptops"
	rec.Title.Set("brand", "Dell")
	rec.Metadata.Set("condition", "Used")
	rec.Specifics.Set("model", "Latitude 5420")
	rec.Description.Set("notes", "Tested working.")

	view := rec.StructuredView()

	assert.Equal(t, "Dell Latitude 5420", view["full_title"])
	assert.Equal(t, "Computers > Laptops", view["category_path"])
	assert.Equal(t, "Laptops", view["leaf_category"])
	assert.Equal(t, "Dell", view["title_brand"])
	assert.Equal(t, "Used", view["meta_condition"])
	assert.Equal(t, "Latitude 5420", view["specs_model"])
	assert.Equal(t, "Tested working.", view["desc_notes"])
}

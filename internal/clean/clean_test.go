package clean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean_StripsZeroWidthAndBOM(t *testing.T) {
	got := Clean("﻿Dell​Latitude™ 7490")
	assert.Equal(t, "DellLatitude 7490", got)
}

func TestClean_AmpersandBecomesSlash(t *testing.T) {
	assert.Equal(t, "Ram/Rom", Clean("Ram&Rom"))
}

func TestClean_ExpandsUnitShorthand(t *testing.T) {
	assert.Equal(t, "8GB/16GB", Clean("8/16GB"))
}

func TestClean_NormalizesCPUPairSpeed(t *testing.T) {
	assert.Equal(t, "2.80GHz/2.70GHz", Clean("2.80/70GHz"))
}

func TestClean_CompoundWordNormalization(t *testing.T) {
	assert.Equal(t, "Intel Core i7", Clean("IntelCore i7"))
	assert.Equal(t, "10th Gen i7", Clean("10thgen i7"))
	assert.Equal(t, "RTX 3080", Clean("RTX3080"))
	assert.Equal(t, "Lot (3) Dell", Clean("Lot(3) Dell"))
}

func TestTokenize_FusesBareSizeAndUnit(t *testing.T) {
	assert.Equal(t, []string{"Dell", "16GB", "RAM"}, Tokenize("Dell 16 GB RAM"))
}

func TestTokenize_FusesInches(t *testing.T) {
	assert.Equal(t, []string{"14in", "FHD"}, Tokenize("14 in FHD"))
}

func TestTokenize_SplitsSlashRun(t *testing.T) {
	assert.Equal(t, []string{"128GB", "/", "256GB", "SSD"}, Tokenize("128GB/256GB SSD"))
}

// TestTokenize_DistributesNegationOverSlashComposite covers spec.md §4.1
// step 7's "no SSD/HDD" rule: the negation word is copied onto each piece.
func TestTokenize_DistributesNegationOverSlashComposite(t *testing.T) {
	assert.Equal(t, []string{"No", "SSD", "No", "HDD"}, Tokenize("No SSD/HDD"))
}

func TestTokenize_LeavesNARatioIntact(t *testing.T) {
	assert.Equal(t, []string{"N/A"}, Tokenize("N/A"))
}

func TestTokenize_MergesCPUDash(t *testing.T) {
	assert.Equal(t, []string{"i7-3770"}, mergeCPUDash([]string{"i7-", "3770"}))
}

// TestCleanAndTokenize_FullPipeline covers spec.md §8 scenario E1's raw
// title. The screen-size token keeps its literal inch-quote mark here --
// ScreenExtractor's own regex recognizes that suffix directly, so the
// tokenizer has nothing to fuse.
func TestCleanAndTokenize_FullPipeline(t *testing.T) {
	got := CleanAndTokenize(`Dell Latitude 7490 i7-8650U 16GB 512GB SSD 14" FHD Win10`)
	assert.Equal(t, []string{
		"Dell", "Latitude", "7490", "i7-8650U", "16GB", "512GB", "SSD", `14"`, "FHD", "Win10",
	}, got)
}

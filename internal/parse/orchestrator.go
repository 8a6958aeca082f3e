// Package parse implements the Title Parser Orchestrator (spec.md §4.13):
// the main control-flow loop that runs the cleaner, context detector, early
// GPU extraction, brand/model segmenter, device-type classifier, the
// remaining extractors in priority order, multi-instance numbering, and
// finally the post-processor.
package parse

import (
	"regexp"
	"strings"

	"github.com/theatomus/listingscanner/internal/brand"
	"github.com/theatomus/listingscanner/internal/classify"
	"github.com/theatomus/listingscanner/internal/clean"
	"github.com/theatomus/listingscanner/internal/context"
	"github.com/theatomus/listingscanner/internal/extract"
	"github.com/theatomus/listingscanner/internal/postprocess"
	"github.com/theatomus/listingscanner/internal/record"
	"github.com/theatomus/listingscanner/internal/reftables"
)

var asteriskRe = regexp.MustCompile(`\*`)

// Title runs the full orchestrator over one raw title string and returns a
// populated record.FieldSet plus the resolved device type.
func Title(rawTitle string, tables *reftables.Tables) (*record.FieldSet, string) {
	// Step 1: sanitize, tokenize.
	sanitized := asteriskRe.ReplaceAllString(rawTitle, "")
	tokens := clean.CleanAndTokenize(sanitized)
	lower := extract.LowerAll(tokens)

	// Step 2: empty consumed set.
	consumed := extract.NewConsumedSet(len(tokens))
	fields := record.NewFieldSet()

	// Step 3: detect context.
	cleanedTitle := clean.Clean(sanitized)
	ctx := context.Detect(strings.ToLower(cleanedTitle), tokens)

	in := extract.Input{Tokens: tokens, Lower: lower, Ctx: ctx, Tables: tables, Title: cleanedTitle}

	// Step 4: early GPU extraction.
	gpuEx := extract.NewGPUExtractor()
	if ctx.HasGPUContext {
		mergeAll(fields, extract.Run(gpuEx, in, consumed, ""))
	}

	// Step 5: brand/model segmenter.
	consumedMap := snapshotConsumed(consumed, len(tokens))
	seg := brand.Segment(tokens, lower, consumedMap, ctx, tables)
	if seg.Brand != "" {
		consumed.Claim(seg.Indices)
		fields.Set("brand", seg.Brand)
		if seg.Model != "" {
			fields.Set("model", seg.Model)
		}
	}

	// Refine brand/model for multi-brand slash titles.
	if refinedBrand, _, ok := brand.RefineByProximity(tokens, lower, tables); ok && strings.Contains(cleanedTitle, "/") {
		if cur, has := fields.Get("brand"); !has || !strings.EqualFold(cur, refinedBrand) {
			fields.Set("brand", refinedBrand)
		}
	}

	// Step 6: determine device type, apply 2-in-1 override.
	deviceType := classify.Classify(classify.Input{
		Title:  cleanedTitle,
		Ctx:    ctx,
		Brand:  fieldOrEmpty(fields, "brand"),
		Model:  fieldOrEmpty(fields, "model"),
		Tables: tables,
	})
	if deviceType == "" && ctx.HasGPUContext && !ctx.IsSystemWithGPU {
		deviceType = classify.GraphicsVideoCards
	}

	// Step 7: lot extractor.
	lotEx := extract.NewLotExtractor()
	mergeAll(fields, extract.Run(lotEx, in, consumed, deviceType))
	if !fields.Has("lot") {
		if q, ok := modelPlusModelFallback(tokens, consumed); ok {
			fields.Set("lot", q)
		}
	}

	isNetworkDevice := deviceType == classify.ComputerServers && strings.Contains(strings.ToLower(cleanedTitle), "switch")
	isPhoneLike := ctx.HasPhoneContext || deviceType == classify.CellPhonesSmartphones || deviceType == classify.TabletsEbook

	// Step 8: phone + status extractors (deferred consumption for status).
	if isPhoneLike {
		phoneEx := extract.NewPhoneExtractor()
		mergeAll(fields, extract.Run(phoneEx, in, consumed, deviceType))
	}
	runStatusExtractors(fields, in, consumed, deviceType)

	// Step 9: switch/adapter extractors only for network-device titles.
	if isNetworkDevice {
		switchEx := extract.NewSwitchExtractor()
		adapterEx := extract.NewAdapterExtractor()
		mergeAll(fields, extract.Run(switchEx, in, consumed, deviceType))
		mergeAll(fields, extract.Run(adapterEx, in, consumed, deviceType))
	}

	// Step 10: CPU, RAM, Storage (skipped entirely for network devices).
	if !isNetworkDevice {
		runCPURAMStorage(fields, in, consumed, deviceType, isPhoneLike)
	}

	// Step 11: network-device direct regex extraction.
	if isNetworkDevice {
		netEx := extract.NewNetworkDeviceExtractor()
		mergeAll(fields, extract.Run(netEx, in, consumed, deviceType))
	}

	// Step 12: remaining extractors, filtered by device type.
	runRemainingExtractors(fields, in, consumed, deviceType)

	// Step 13 happens inside the CPU multi-instance logic in
	// runCPURAMStorage/ numbered emission; nothing further needed here.

	// Step 14: leftover tokens -> additional_info; enrich network_carrier*.
	leftover := collectLeftover(tokens, consumed)
	if leftover != "" {
		fields.Set("additional_info", leftover)
	}
	enrichCarriersFromLeftover(fields, tokens, consumed, tables)

	// Step 15: post-process.
	postprocess.Run(fields, cleanedTitle)
	deviceType = postprocess.NormalizeDeviceType(deviceType)

	return fields, deviceType
}

func runCPURAMStorage(fields *record.FieldSet, in extract.Input, consumed *extract.ConsumedSet, deviceType string, isPhoneLike bool) {
	cpuExtractors := []extract.Extractor{
		extract.NewCPUModelExtractor(),
		extract.NewCPUSpeedExtractor(),
		extract.NewCPUGenerationExtractor(),
		extract.NewCPUQuantityExtractor(),
	}
	var cpuMatches []extract.Fields
	for _, ex := range cpuExtractors {
		cpuMatches = append(cpuMatches, extract.Run(ex, in, consumed, deviceType)...)
	}
	applyMultiCPURule(fields, cpuMatches)

	ramExtractors := []extract.Extractor{
		extract.NewRAMExtractor(),
		extract.NewRAMConfigExtractor(),
		extract.NewRAMRangeExtractor(),
		extract.NewRAMTypeExtractor(),
		extract.NewRAMSpeedGradeExtractor(),
		extract.NewRAMModulesExtractor(),
		extract.NewRAMRankExtractor(),
		extract.NewRAMAttributeExtractor(),
	}
	for _, ex := range ramExtractors {
		mergeAll(fields, extract.Run(ex, in, consumed, deviceType))
	}

	storageExtractors := []extract.Extractor{
		extract.NewStorageExtractor(),
		extract.NewStorageDriveCountExtractor(),
	}
	for _, ex := range storageExtractors {
		mergeAll(fields, extract.Run(ex, in, consumed, deviceType))
	}

	if isPhoneLike && !fields.Has("storage_size") && !fields.Has("storage_capacity") {
		if idx, ok := standaloneGBFallback(in.Tokens, consumed); ok {
			fields.Set("storage_size", in.Tokens[idx])
		}
	}
}

var standaloneGBRe = regexp.MustCompile(`(?i)^\d+gb$`)

func standaloneGBFallback(tokens []string, consumed *extract.ConsumedSet) (int, bool) {
	for i, tok := range tokens {
		if !consumed.Has(i) && standaloneGBRe.MatchString(tok) {
			return i, true
		}
	}
	return 0, false
}

// applyMultiCPURule implements the multi-CPU numbering rule from spec.md
// §4.5: if two or more separate CPU matches were produced, every field is
// emitted as a numbered variant. It sets no base key itself; the shared base
// for identical values is added later by postprocess.collapseSharedKeys.
func applyMultiCPURule(fields *record.FieldSet, matches []extract.Fields) {
	if len(matches) == 0 {
		return
	}
	if len(matches) == 1 {
		for k, v := range matches[0] {
			fields.Set(k, v)
		}
		return
	}
	keyed := map[string][]string{}
	for _, m := range matches {
		for k, v := range m {
			keyed[k] = append(keyed[k], v)
		}
	}
	for k, values := range keyed {
		for i, v := range values {
			fields.Set(k+itoa(i+1), v)
		}
	}
}

func runRemainingExtractors(fields *record.FieldSet, in extract.Input, consumed *extract.ConsumedSet, deviceType string) {
	remaining := []extract.Extractor{
		extract.NewScreenExtractor(),
		extract.NewOSExtractor(),
		extract.NewDeviceFormFactorExtractor(),
		extract.NewBatteryExtractor(),
		extract.NewHDDExtractor(),
	}
	ordered := extract.SortByPriority(remaining)
	for _, ex := range ordered {
		if ex.Name() == "screen_size" && deviceType == classify.InternalHDD {
			continue
		}
		mergeAll(fields, extract.Run(ex, in, consumed, deviceType))
	}
}

func runStatusExtractors(fields *record.FieldSet, in extract.Input, consumed *extract.ConsumedSet, deviceType string) {
	storageStatus := extract.NewStorageStatusExtractor()
	osStatus := extract.NewOSStatusExtractor()
	biosStatus := extract.NewBIOSStatusExtractor()

	snapshot := extract.NewConsumedSet(len(in.Tokens))
	for i := range in.Tokens {
		if consumed.Has(i) {
			snapshot.Claim([]int{i})
		}
	}

	var toMerge []extract.Fields
	var toClaim [][]int
	for _, ex := range []extract.Extractor{storageStatus, osStatus, biosStatus} {
		groups := ex.Extract(in, snapshot)
		for _, g := range groups {
			if snapshot.AnyClaimed(g.ConsumeIndices()) {
				continue
			}
			f := ex.ProcessMatch(in, g)
			if f == nil {
				continue
			}
			toMerge = append(toMerge, f)
			toClaim = append(toClaim, g.ConsumeIndices())
		}
	}
	for _, idx := range toClaim {
		consumed.Claim(idx)
	}
	for _, f := range toMerge {
		for k, v := range f {
			fields.Set(k, v)
		}
	}
}

func mergeAll(fields *record.FieldSet, results []extract.Fields) {
	for _, f := range results {
		for k, v := range f {
			fields.Set(k, v)
		}
	}
}

func snapshotConsumed(consumed *extract.ConsumedSet, n int) map[int]bool {
	out := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		if consumed.Has(i) {
			out[i] = true
		}
	}
	return out
}

func fieldOrEmpty(fields *record.FieldSet, key string) string {
	v, _ := fields.Get(key)
	return v
}

var modelPlusModelRe = regexp.MustCompile(`^\+$`)

// modelPlusModelFallback detects "ModelA+ModelB" where both sides contain
// at least one digit, producing lot=2 (spec.md §4.4 fallback).
func modelPlusModelFallback(tokens []string, consumed *extract.ConsumedSet) (string, bool) {
	for _, tok := range tokens {
		if !strings.Contains(tok, "+") || modelPlusModelRe.MatchString(tok) {
			continue
		}
		parts := strings.SplitN(tok, "+", 2)
		if len(parts) == 2 && hasDigit(parts[0]) && hasDigit(parts[1]) {
			return "2", true
		}
	}
	return "", false
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func collectLeftover(tokens []string, consumed *extract.ConsumedSet) string {
	var parts []string
	for i, tok := range tokens {
		if !consumed.Has(i) {
			parts = append(parts, tok)
		}
	}
	return strings.Join(parts, " ")
}

func enrichCarriersFromLeftover(fields *record.FieldSet, tokens []string, consumed *extract.ConsumedSet, tables *reftables.Tables) {
	count := 1
	for fields.Has(carrierKey(count)) {
		count++
	}
	for i, tok := range tokens {
		if consumed.Has(i) {
			continue
		}
		canonical, ok := tables.CanonicalCarrier(strings.ToLower(tok))
		if !ok {
			continue
		}
		if carrierAlreadyPresent(fields, canonical) {
			continue
		}
		fields.Set(carrierKey(count), canonical)
		count++
	}
}

func carrierKey(n int) string {
	if n == 1 {
		return "network_carrier"
	}
	return "network_carrier" + itoa(n)
}

func carrierAlreadyPresent(fields *record.FieldSet, canonical string) bool {
	for _, k := range fields.Keys() {
		if strings.HasPrefix(k, "network_carrier") {
			if v, _ := fields.Get(k); strings.EqualFold(v, canonical) {
				return true
			}
		}
	}
	return false
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte('0' + n%10)}, b...)
		n /= 10
	}
	return string(b)
}

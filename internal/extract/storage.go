package extract

import (
	"regexp"
	"strings"
)

// StorageExtractor emits storage_capacity/storage_type/storage_status/
// storage_drive_count (spec.md §4.7). It is context-aware via the device
// context passed in Input.Ctx: a phone device treats small GB values as
// storage; a system without GPU treats large GB/TB values with an adjacent
// type word as storage.
type StorageExtractor struct{}

func NewStorageExtractor() *StorageExtractor { return &StorageExtractor{} }

func (e *StorageExtractor) Name() string          { return "storage_capacity" }
func (e *StorageExtractor) Priority() int         { return PriorityStorage }
func (e *StorageExtractor) Multiple() bool        { return true }
func (e *StorageExtractor) ConsumeOnMatch() bool  { return true }
func (e *StorageExtractor) DeviceTypes() []string { return nil }

var (
	storageTypeTokenRe = regexp.MustCompile(`(?i)^(ssd|hdd|nvme|m\.2|emmc|sshd)$`)
	driveCountRe       = regexp.MustCompile(`(?i)^(\d+)x?$`)
	notIncludedRe      = regexp.MustCompile(`(?i)^(not\s+included|no\s+(ssd|hdd|storage|drive))$`)
)

func (e *StorageExtractor) Extract(in Input, consumed *ConsumedSet) []MatchGroup {
	var groups []MatchGroup
	n := len(in.Tokens)

	// Slash-separated capacity runs, e.g. "16/32/64/128/256GB".
	for i := 0; i < n; i++ {
		if consumed.Has(i) || !gbTokenRe.MatchString(in.Tokens[i]) {
			continue
		}
		run, end := slashRunOfSizes(in, i)
		if len(run) > 1 {
			if !sizeRunIsRAM(in, run) {
				groups = append(groups, MatchGroup{Match: run})
			}
			i = end
			continue
		}
		if i+1 < n && storageTypeTokenRe.MatchString(in.Lower[i+1]) {
			groups = append(groups, MatchGroup{Match: []int{i, i + 1}})
			i++
			continue
		}
		if i > 0 && storageTypeTokenRe.MatchString(in.Lower[i-1]) && !consumed.Has(i-1) {
			groups = append(groups, MatchGroup{Match: []int{i - 1, i}})
			continue
		}
		if in.Ctx.HasPhoneContext {
			groups = append(groups, MatchGroup{Match: []int{i}})
			continue
		}
		if !in.Ctx.IsSystemWithGPU && windowHas(in.Lower, i-2, i+2, storageTypeTokenRe) {
			groups = append(groups, MatchGroup{Match: []int{i}})
		}
	}
	return groups
}

func (e *StorageExtractor) ProcessMatch(in Input, group MatchGroup) Fields {
	f := Fields{}
	var sizes []string
	var typ string
	for _, idx := range group.Match {
		if m := gbTokenRe.FindStringSubmatch(in.Tokens[idx]); m != nil {
			sizes = append(sizes, m[1]+strings.ToUpper(m[2]))
		} else if storageTypeTokenRe.MatchString(in.Lower[idx]) {
			typ = strings.ToUpper(in.Tokens[idx])
		}
	}
	if len(sizes) == 0 {
		return nil
	}
	if len(sizes) == 1 {
		f["storage_capacity"] = sizes[0]
	} else {
		for i, s := range sizes {
			f["storage_capacity"+itoa(i+1)] = s
		}
	}
	if typ != "" {
		f["storage_type"] = typ
	}
	return f
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var b []byte
	for i > 0 {
		b = append([]byte{byte('0' + i%10)}, b...)
		i /= 10
	}
	if neg {
		b = append([]byte{'-'}, b...)
	}
	return string(b)
}

// StorageStatusExtractor is one of the spec's status extractors (§4.9); its
// matches are collected with the others and consumed only after every
// status extractor has run.
type StorageStatusExtractor struct{}

func NewStorageStatusExtractor() *StorageStatusExtractor { return &StorageStatusExtractor{} }

func (e *StorageStatusExtractor) Name() string          { return "storage_status" }
func (e *StorageStatusExtractor) Priority() int         { return PriorityStorage }
func (e *StorageStatusExtractor) Multiple() bool        { return false }
func (e *StorageStatusExtractor) ConsumeOnMatch() bool  { return true }
func (e *StorageStatusExtractor) DeviceTypes() []string { return nil }

func (e *StorageStatusExtractor) Extract(in Input, consumed *ConsumedSet) []MatchGroup {
	lower := strings.ToLower(in.Title)
	if strings.Contains(lower, "no ssd") || strings.Contains(lower, "no hdd") ||
		strings.Contains(lower, "no storage") || strings.Contains(lower, "without storage") {
		for i, tok := range in.Lower {
			if !consumed.Has(i) && (tok == "no" || tok == "without" || storageTypeTokenRe.MatchString(tok)) {
				return []MatchGroup{{Match: []int{i}}}
			}
		}
	}
	return nil
}

func (e *StorageStatusExtractor) ProcessMatch(in Input, group MatchGroup) Fields {
	return Fields{"storage_status": "Not Included"}
}

// StorageDriveCountExtractor matches an explicit drive-count qualifier
// immediately preceding a storage-type token, e.g. "2x SSD".
type StorageDriveCountExtractor struct{}

func NewStorageDriveCountExtractor() *StorageDriveCountExtractor { return &StorageDriveCountExtractor{} }

func (e *StorageDriveCountExtractor) Name() string          { return "storage_drive_count" }
func (e *StorageDriveCountExtractor) Priority() int         { return PriorityStorage }
func (e *StorageDriveCountExtractor) Multiple() bool        { return false }
func (e *StorageDriveCountExtractor) ConsumeOnMatch() bool  { return false }
func (e *StorageDriveCountExtractor) DeviceTypes() []string { return nil }

func (e *StorageDriveCountExtractor) Extract(in Input, consumed *ConsumedSet) []MatchGroup {
	n := len(in.Tokens)
	for i := 0; i < n-1; i++ {
		if m := driveCountRe.FindStringSubmatch(in.Tokens[i]); m != nil && strings.HasSuffix(in.Tokens[i], "x") {
			if storageTypeTokenRe.MatchString(in.Lower[i+1]) {
				return []MatchGroup{{Match: []int{i, i + 1}, Consume: []int{}}}
			}
		}
	}
	return nil
}

func (e *StorageDriveCountExtractor) ProcessMatch(in Input, group MatchGroup) Fields {
	tok := in.Tokens[group.Match[0]]
	return Fields{"storage_drive_count": strings.TrimSuffix(tok, "x")}
}

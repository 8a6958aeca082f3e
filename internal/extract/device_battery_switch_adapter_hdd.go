package extract

import (
	"regexp"
	"strings"
)

// DeviceFormFactorExtractor matches chassis form-factor tokens (spec.md
// §4.8): SFF/USFF/MT/Tower/rack units.
type DeviceFormFactorExtractor struct{}

func NewDeviceFormFactorExtractor() *DeviceFormFactorExtractor { return &DeviceFormFactorExtractor{} }

func (e *DeviceFormFactorExtractor) Name() string          { return "device_form_factor" }
func (e *DeviceFormFactorExtractor) Priority() int         { return PriorityDevice }
func (e *DeviceFormFactorExtractor) Multiple() bool        { return false }
func (e *DeviceFormFactorExtractor) ConsumeOnMatch() bool  { return true }
func (e *DeviceFormFactorExtractor) DeviceTypes() []string { return nil }

var (
	formFactorRe = regexp.MustCompile(`(?i)^(sff|usff|mt|tower)$`)
	rackUnitRe   = regexp.MustCompile(`(?i)^([1-4])u$`)
)

var formFactorNames = map[string]string{
	"sff":   "Small Form Factor (SFF)",
	"usff":  "Ultra Small Form Factor (USFF)",
	"mt":    "Mini Tower (MT)",
	"tower": "Tower",
}

func (e *DeviceFormFactorExtractor) Extract(in Input, consumed *ConsumedSet) []MatchGroup {
	for i, tok := range in.Tokens {
		if consumed.Has(i) {
			continue
		}
		if formFactorRe.MatchString(in.Lower[i]) || rackUnitRe.MatchString(tok) {
			return []MatchGroup{{Match: []int{i}}}
		}
	}
	return nil
}

func (e *DeviceFormFactorExtractor) ProcessMatch(in Input, group MatchGroup) Fields {
	lower := in.Lower[group.Match[0]]
	if name, ok := formFactorNames[lower]; ok {
		return Fields{"device_form_factor": name}
	}
	if m := rackUnitRe.FindStringSubmatch(in.Tokens[group.Match[0]]); m != nil {
		return Fields{"device_form_factor": m[1] + "U"}
	}
	return nil
}

// BatteryExtractor matches battery status and health percent (spec.md §4.8).
type BatteryExtractor struct{}

func NewBatteryExtractor() *BatteryExtractor { return &BatteryExtractor{} }

func (e *BatteryExtractor) Name() string          { return "battery_status" }
func (e *BatteryExtractor) Priority() int         { return PriorityBattery }
func (e *BatteryExtractor) Multiple() bool        { return false }
func (e *BatteryExtractor) ConsumeOnMatch() bool  { return true }
func (e *BatteryExtractor) DeviceTypes() []string { return nil }

var (
	batteryWordRe  = regexp.MustCompile(`(?i)^battery$`)
	batteryHealthRe = regexp.MustCompile(`(?i)^(\d{1,3})%$`)
	batteryNegRe    = regexp.MustCompile(`(?i)^(no|without|missing)$`)
)

func (e *BatteryExtractor) Extract(in Input, consumed *ConsumedSet) []MatchGroup {
	n := len(in.Tokens)
	for i := 0; i < n; i++ {
		if consumed.Has(i) || !batteryWordRe.MatchString(in.Lower[i]) {
			continue
		}
		idx := []int{i}
		if i > 0 && batteryNegRe.MatchString(in.Lower[i-1]) && !consumed.Has(i-1) {
			idx = append([]int{i - 1}, idx...)
		}
		if i+1 < n && batteryHealthRe.MatchString(in.Tokens[i+1]) {
			idx = append(idx, i+1)
		}
		return []MatchGroup{{Match: idx}}
	}
	return nil
}

func (e *BatteryExtractor) ProcessMatch(in Input, group MatchGroup) Fields {
	f := Fields{}
	for _, idx := range group.Match {
		lower := in.Lower[idx]
		switch {
		case batteryNegRe.MatchString(lower):
			f["battery_status"] = "Not Included"
		case batteryHealthRe.MatchString(in.Tokens[idx]):
			f["battery_health"] = in.Tokens[idx]
		}
	}
	if _, ok := f["battery_status"]; !ok {
		f["battery_status"] = "Included"
	}
	return f
}

// SwitchExtractor matches network-switch brand/ports/speed/interface/model
// (spec.md §4.8).
type SwitchExtractor struct{}

func NewSwitchExtractor() *SwitchExtractor { return &SwitchExtractor{} }

func (e *SwitchExtractor) Name() string          { return "switch" }
func (e *SwitchExtractor) Priority() int         { return PrioritySwitch }
func (e *SwitchExtractor) Multiple() bool        { return false }
func (e *SwitchExtractor) ConsumeOnMatch() bool  { return true }
func (e *SwitchExtractor) DeviceTypes() []string { return nil }

var (
	switchPortsRe = regexp.MustCompile(`(?i)^(\d+)[\-\s]?port(s)?$`)
	switchSpeedRe = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)(gbps|mbps)$`)
	ciscoModelRe  = regexp.MustCompile(`(?i)^ws-c\d+[a-z0-9\-]*$`)
	switchBrandRe = regexp.MustCompile(`(?i)^(cisco|netgear|tp-link|d-link|ubiquiti|juniper|hp|dell)$`)
)

func (e *SwitchExtractor) Extract(in Input, consumed *ConsumedSet) []MatchGroup {
	var idx []int
	for i, tok := range in.Tokens {
		if consumed.Has(i) {
			continue
		}
		if switchPortsRe.MatchString(tok) || switchSpeedRe.MatchString(tok) || ciscoModelRe.MatchString(in.Lower[i]) || switchBrandRe.MatchString(in.Lower[i]) {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return nil
	}
	return []MatchGroup{{Match: idx}}
}

func (e *SwitchExtractor) ProcessMatch(in Input, group MatchGroup) Fields {
	f := Fields{}
	for _, idx := range group.Match {
		tok, lower := in.Tokens[idx], in.Lower[idx]
		switch {
		case switchPortsRe.MatchString(tok):
			m := switchPortsRe.FindStringSubmatch(tok)
			f["switch_ports"] = m[1]
		case switchSpeedRe.MatchString(tok):
			m := switchSpeedRe.FindStringSubmatch(tok)
			unit := "Gbps"
			if strings.EqualFold(m[2], "mbps") {
				unit = "Mbps"
			}
			f["switch_speed"] = m[1] + unit
		case ciscoModelRe.MatchString(lower):
			f["switch_model"] = strings.ToUpper(tok)
		case switchBrandRe.MatchString(lower):
			f["switch_brand"] = strings.Title(lower)
		}
	}
	if len(f) == 0 {
		return nil
	}
	return f
}

// AdapterExtractor matches power/network adapter brand/speed/ports/form-
// factor/model/type (spec.md §4.8).
type AdapterExtractor struct{}

func NewAdapterExtractor() *AdapterExtractor { return &AdapterExtractor{} }

func (e *AdapterExtractor) Name() string          { return "adapter" }
func (e *AdapterExtractor) Priority() int         { return PriorityAdapter }
func (e *AdapterExtractor) Multiple() bool        { return false }
func (e *AdapterExtractor) ConsumeOnMatch() bool  { return true }
func (e *AdapterExtractor) DeviceTypes() []string { return nil }

var (
	adapterWordRe = regexp.MustCompile(`(?i)^(adapter|charger|power\s*supply|psu)$`)
	wattageRe     = regexp.MustCompile(`(?i)^(\d+)w$`)
)

func (e *AdapterExtractor) Extract(in Input, consumed *ConsumedSet) []MatchGroup {
	n := len(in.Tokens)
	for i := 0; i < n; i++ {
		if consumed.Has(i) || !adapterWordRe.MatchString(in.Lower[i]) {
			continue
		}
		idx := []int{i}
		if i > 0 && wattageRe.MatchString(in.Tokens[i-1]) && !consumed.Has(i-1) {
			idx = append([]int{i - 1}, idx...)
		}
		return []MatchGroup{{Match: idx}}
	}
	return nil
}

func (e *AdapterExtractor) ProcessMatch(in Input, group MatchGroup) Fields {
	f := Fields{"adapter_type": strings.Title(in.Lower[group.Match[len(group.Match)-1]])}
	for _, idx := range group.Match {
		if wattageRe.MatchString(in.Tokens[idx]) {
			f["adapter_wattage"] = in.Tokens[idx]
		}
	}
	return f
}

// HDDExtractor runs only when the classifier has resolved device_type to
// "Internal Hard Disk Drives" (spec.md §4.8): interface, form-factor, rpm,
// transfer rate, part/model numbers.
type HDDExtractor struct{}

func NewHDDExtractor() *HDDExtractor { return &HDDExtractor{} }

func (e *HDDExtractor) Name() string          { return "hdd" }
func (e *HDDExtractor) Priority() int         { return PriorityLast }
func (e *HDDExtractor) Multiple() bool        { return false }
func (e *HDDExtractor) ConsumeOnMatch() bool  { return true }
func (e *HDDExtractor) DeviceTypes() []string { return []string{"Internal Hard Disk Drives"} }

var (
	hddInterfaceRe  = regexp.MustCompile(`(?i)^(sas|sata|scsi|ide|nvme)$`)
	hddFormFactorRe = regexp.MustCompile(`(?i)^(2\.5|3\.5)"?$`)
	hddRPMRe        = regexp.MustCompile(`(?i)^(\d{4,5})rpm$`)
	hddTransferRe   = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)(gb/s|mb/s)$`)
)

func (e *HDDExtractor) Extract(in Input, consumed *ConsumedSet) []MatchGroup {
	var idx []int
	for i, tok := range in.Tokens {
		if consumed.Has(i) {
			continue
		}
		if hddInterfaceRe.MatchString(in.Lower[i]) || hddFormFactorRe.MatchString(tok) ||
			hddRPMRe.MatchString(tok) || hddTransferRe.MatchString(tok) {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return nil
	}
	return []MatchGroup{{Match: idx}}
}

func (e *HDDExtractor) ProcessMatch(in Input, group MatchGroup) Fields {
	f := Fields{}
	for _, idx := range group.Match {
		tok, lower := in.Tokens[idx], in.Lower[idx]
		switch {
		case hddInterfaceRe.MatchString(lower):
			f["hdd_interface"] = strings.ToUpper(tok)
		case hddFormFactorRe.MatchString(tok):
			f["hdd_form_factor"] = strings.TrimSuffix(tok, `"`) + `"`
		case hddRPMRe.MatchString(tok):
			m := hddRPMRe.FindStringSubmatch(tok)
			f["hdd_rpm"] = m[1]
		case hddTransferRe.MatchString(tok):
			f["hdd_transfer_rate"] = tok
		}
	}
	if len(f) == 0 {
		return nil
	}
	return f
}

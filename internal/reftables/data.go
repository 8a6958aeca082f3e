package reftables

// knownBrands is the set of manufacturer/brand names the brand segmenter and
// classifier recognize, lowercased. Content only; see spec.md §1 ("the
// reference-data content ... only their lookup interface matters").
var knownBrands = setOf(
	"dell", "hp", "hewlett-packard", "lenovo", "apple", "microsoft", "asus", "acer",
	"samsung", "lg", "msi", "toshiba", "sony", "gateway", "compaq", "ibm", "fujitsu",
	"panasonic", "huawei", "google", "razer", "alienware", "gigabyte", "intel", "amd",
	"nvidia", "evga", "zotac", "pny", "xfx", "sapphire", "powercolor", "asrock",
	"supermicro", "netapp", "synology", "qnap", "cisco", "netgear", "ubiquiti",
	"juniper", "tp-link", "d-link", "buffalo", "crucial", "kingston", "corsair",
	"g.skill", "hynix", "micron", "seagate", "western digital", "wd", "sandisk",
	"plextor", "yamaha", "casio", "roland", "korg", "nokia", "motorola", "oneplus",
	"xiaomi", "zte", "blu",
)

var systemBrands = setOf(
	"dell", "hp", "lenovo", "apple", "microsoft", "asus", "acer", "samsung", "lg", "msi",
)

var gpuBrands = setOf(
	"nvidia", "amd", "intel", "evga", "msi", "zotac", "pny", "xfx", "sapphire",
	"powercolor", "asrock", "gigabyte",
)

// subBrandParents maps a recognizable sub-brand/product-line token to its
// parent manufacturer, used by the brand segmenter's parent-lookback rule
// (spec.md §4.12, phase A step 4).
var subBrandParents = map[string]string{
	"thinkpad":  "Lenovo",
	"ideapad":   "Lenovo",
	"alienware": "Dell",
	"optiplex":  "Dell",
	"latitude":  "Dell",
	"precision": "Dell",
	"xps":       "Dell",
	"inspiron":  "Dell",
	"vostro":    "Dell",
	"elitebook": "HP",
	"probook":   "HP",
	"pavilion":  "HP",
	"zbook":     "HP",
	"macbook":   "Apple",
	"imac":      "Apple",
	"surface":   "Microsoft",
}

// cpuFamilyTokens: known CPU family/series name fragments (lowercased),
// used by cpu_model extraction family classification (spec.md §4.5).
var cpuFamilyTokens = setOf(
	"i3", "i5", "i7", "i9", "pentium", "celeron", "atom", "athlon",
	"ryzen", "ryzen3", "ryzen5", "ryzen7", "ryzen9", "threadripper", "epyc",
	"xeon", "m1", "m2", "m3", "core",
)

// ddrSpeedGrade normalizes well-known PCx/DDRx speed-grade tokens. Content is
// illustrative of the pack the spec describes ("DDR/PCx speed tables");
// reftables.Override cannot extend it (it carries only brands and carriers).
var ddrSpeedGrade = map[string]string{
	"pc3-8500":   "DDR3-1066",
	"pc3-10600":  "DDR3-1333",
	"pc3-12800":  "DDR3-1600",
	"pc3l-12800": "DDR3L-1600",
	"pc4-17000":  "DDR4-2133",
	"pc4-19200":  "DDR4-2400",
	"pc4-21300":  "DDR4-2666",
	"pc4-25600":  "DDR4-3200",
	"pc5-38400":  "DDR5-4800",
	"pc5-44800":  "DDR5-5600",
}

// carrierSynonyms maps shorthand/casing variants to the canonical carrier
// name (spec.md §4.9).
var carrierSynonyms = map[string]string{
	"verizon":  "Verizon",
	"vzw":      "Verizon",
	"att":      "AT&T",
	"at&t":     "AT&T",
	"tmobile":  "T-Mobile",
	"t-mobile": "T-Mobile",
	"sprint":   "Sprint",
	"metropcs": "MetroPCS",
	"metro":    "MetroPCS",
	"cricket":  "Cricket",
	"boost":    "Boost Mobile",
	"uscellular": "US Cellular",
	"xfinity":  "Xfinity Mobile",
	"google fi": "Google Fi",
}

// brandSeriesDeviceType maps brand -> series keyword -> device type, used by
// the classifier's brand/series table step (spec.md §4.11, step 18).
var brandSeriesDeviceType = map[string]map[string]string{
	"dell": {
		"poweredge": "Computer Servers",
		"precision": "PC Desktops & All-In-Ones",
		"optiplex":  "PC Desktops & All-In-Ones",
		"latitude":  "PC Laptops & Netbooks",
		"xps":       "PC Laptops & Netbooks",
		"inspiron":  "PC Laptops & Netbooks",
		"vostro":    "PC Laptops & Netbooks",
		"alienware": "PC Laptops & Netbooks",
	},
	"hp": {
		"proliant":  "Computer Servers",
		"elitedesk": "PC Desktops & All-In-Ones",
		"elitebook": "PC Laptops & Netbooks",
		"probook":   "PC Laptops & Netbooks",
		"pavilion":  "PC Laptops & Netbooks",
		"zbook":     "PC Laptops & Netbooks",
	},
	"lenovo": {
		"thinkserver": "Computer Servers",
		"thinkstation": "PC Desktops & All-In-Ones",
		"thinkcentre": "PC Desktops & All-In-Ones",
		"thinkpad":    "PC Laptops & Netbooks",
		"ideapad":     "PC Laptops & Netbooks",
	},
	"apple": {
		"macbook": "PC Laptops & Netbooks",
		"imac":    "PC Desktops & All-In-Ones",
		"mac mini": "PC Desktops & All-In-Ones",
		"mac pro": "PC Desktops & All-In-Ones",
	},
	"supermicro": {
		"superserver": "Computer Servers",
	},
	"intel": {
		"server cpus/processors": "CPUs/Processors",
	},
}

func setOf(values ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

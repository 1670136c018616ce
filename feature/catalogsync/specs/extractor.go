package specs

import (
	"regexp"
	"strings"

	"catalog-sync/core/utils"
)

// Hardware is the memory and storage of one configuration, in GB.
// A zero field means the text did not yield a value.
type Hardware struct {
	MemoryGB  int16 `json:"memory_gb"`
	StorageGB int16 `json:"storage_gb"`
}

// Malformed reports whether either field is unknown.
func (h Hardware) Malformed() bool {
	return h.MemoryGB == 0 || h.StorageGB == 0
}

// rule captures one quantity and scales it to GB.
type rule struct {
	pattern    *regexp.Regexp
	multiplier int16
}

// match returns the scaled first capture. Scaling wraps like any int16 product.
func (r rule) match(s string) (int16, bool) {
	m := r.pattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	return utils.ToInt16(m[1]) * r.multiplier, true
}

// rules is evaluated in order; the first rule that matches wins.
type rules []rule

func (rs rules) first(s string) (int16, bool) {
	for _, r := range rs {
		if v, ok := r.match(s); ok {
			return v, true
		}
	}
	return 0, false
}

var (
	// combined captures memory then storage from one string, e.g. "16GB | 256GB".
	combined = regexp.MustCompile(`([0-9]{1,2})GB.+([0-9]{3})GB`)

	memoryGB  = rule{pattern: regexp.MustCompile(`([0-9]{1,2})GB`), multiplier: 1}
	storageGB = rule{pattern: regexp.MustCompile(`([0-9]{3})GB`), multiplier: 1}
	storageTB = rule{pattern: regexp.MustCompile(`([1-9]{1,2})TB`), multiplier: 1000}
)

// Rule tables, by the string they run against.
var (
	variantMemory  = rules{memoryGB}
	variantStorage = rules{storageTB}

	// A TB figure in the title overrides a GB one.
	titleStorageFallback = rules{storageTB, storageGB}

	titleMemory  = rules{memoryGB}
	titleStorage = rules{storageGB, storageTB}
)

// Extract derives memory and storage for one variant.
//
// model is the variant's Model attribute, fullTitle the listing's full title and
// variants the number of variants on the listing. When the listing has several
// variants and the model names a unit, the model is the primary source and the
// title only fills in storage. Otherwise everything comes from the title.
func Extract(model, fullTitle string, variants int) Hardware {
	if variants > 1 && hasUnit(model) {
		return fromVariant(model, fullTitle)
	}
	return fromTitle(fullTitle)
}

func hasUnit(s string) bool {
	return strings.Contains(s, "GB") || strings.Contains(s, "TB")
}

func fromVariant(model, fullTitle string) Hardware {
	if m := combined.FindStringSubmatch(model); m != nil {
		return Hardware{MemoryGB: utils.ToInt16(m[1]), StorageGB: utils.ToInt16(m[2])}
	}

	var h Hardware
	h.MemoryGB, _ = variantMemory.first(model)
	if v, ok := variantStorage.first(model); ok {
		h.StorageGB = v
		return h
	}
	h.StorageGB, _ = titleStorageFallback.first(fullTitle)
	return h
}

func fromTitle(fullTitle string) Hardware {
	var h Hardware
	h.MemoryGB, _ = titleMemory.first(fullTitle)
	h.StorageGB, _ = titleStorage.first(fullTitle)
	return h
}

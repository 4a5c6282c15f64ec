package tracer

import "github.com/gostrace/mstrace/internal/catalog"

// Filter decides whether a completed event should reach the sink, per
// `-e trace=<csv-of-names>` or `-e trace=<category>` (spec §4.8 step 2).
// All registered syscalls still hit their breakpoints regardless of the
// filter; only emission is gated.
type Filter interface {
	Allows(name string, category catalog.Category) bool
}

// AllowAll is the default filter when `-e` is not given.
type AllowAll struct{}

func (AllowAll) Allows(string, catalog.Category) bool { return true }

// NameFilter allows only the listed syscall names.
type NameFilter map[string]bool

func (f NameFilter) Allows(name string, _ catalog.Category) bool { return f[name] }

// CategoryFilter allows only syscalls tagged with one category.
type CategoryFilter catalog.Category

func (f CategoryFilter) Allows(_ string, cat catalog.Category) bool {
	return catalog.Category(f) == cat
}

var categoryNames = map[string]catalog.Category{
	"file":     catalog.CategoryFile,
	"network":  catalog.CategoryNetwork,
	"process":  catalog.CategoryProcess,
	"memory":   catalog.CategoryMemory,
	"signal":   catalog.CategorySignal,
	"ipc":      catalog.CategoryIPC,
	"time":     catalog.CategoryTime,
	"thread":   catalog.CategoryThread,
	"sysinfo":  catalog.CategorySysinfo,
	"security": catalog.CategorySecurity,
	"debug":    catalog.CategoryDebug,
	"misc":     catalog.CategoryMisc,
}

// ParseFilter interprets the value of `-e trace=...`: a single recognized
// category name selects CategoryFilter, anything else is treated as a
// comma-separated syscall name list.
func ParseFilter(spec string) Filter {
	if spec == "" {
		return AllowAll{}
	}
	if cat, ok := categoryNames[spec]; ok {
		return CategoryFilter(cat)
	}
	names := NameFilter{}
	start := 0
	for i := 0; i <= len(spec); i++ {
		if i == len(spec) || spec[i] == ',' {
			if i > start {
				names[spec[start:i]] = true
			}
			start = i + 1
		}
	}
	return names
}

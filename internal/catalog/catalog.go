// Package catalog is the syscall registry (C6): for each supported
// syscall, its number, name, ordered decoder list, optional return
// decoder, variadic start index and category.
package catalog

import (
	"sort"

	"github.com/gostrace/mstrace/internal/decode"
)

// Category groups syscalls for the `-e trace=<category>` filter. A
// syscall belongs to exactly one category.
type Category string

const (
	CategoryFile     Category = "file"
	CategoryNetwork  Category = "network"
	CategoryProcess  Category = "process"
	CategoryMemory   Category = "memory"
	CategorySignal   Category = "signal"
	CategoryIPC      Category = "ipc"
	CategoryTime     Category = "time"
	CategoryThread   Category = "thread"
	CategorySysinfo  Category = "sysinfo"
	CategorySecurity Category = "security"
	CategoryDebug    Category = "debug"
	CategoryMisc     Category = "misc"
)

// ReturnDecoder replaces the numeric return value; rawReturn is the
// sign-extended register value, rawArgs the entry-saved argument vector.
type ReturnDecoder func(rawReturn int64, rawArgs []uint64, noAbbrev bool) (str string, isString bool, intVal int64)

// Def is one syscall's definition (SyscallDef in spec §3).
type Def struct {
	Number        int
	Name          string
	Params        []decode.Decoder
	ReturnDecoder ReturnDecoder
	VariadicStart int // -1 when the syscall has no variadic tail
	Category      Category
	// Aliases are additional libc wrapper names the debugger should also
	// break on for this same definition (e.g. "__open_nocancel").
	Aliases []string
}

// Registry answers lookup-by-name, lookup-by-number, category-of-name and
// iterate-all, per spec §4.6. It deduplicates on Register: a second
// registration of the same name overwrites the first only through
// RegisterOverride, resolving spec §9 Open Question (b).
type Registry struct {
	byName   map[string]*Def
	byNumber map[int]*Def
}

func NewRegistry() *Registry {
	return &Registry{byName: map[string]*Def{}, byNumber: map[int]*Def{}}
}

// Register adds def and all its aliases to the registry. Registering a
// name that already exists panics: category definition files are
// hand-written and a collision there is a programming error, not a
// runtime condition (distinct from RegisterOverride, used for the macOS
// headers reconciliation spec §9(b) calls for).
func (r *Registry) Register(def *Def) {
	if _, exists := r.byName[def.Name]; exists {
		panic("catalog: duplicate syscall registration for " + def.Name)
	}
	r.byName[def.Name] = def
	if _, exists := r.byNumber[def.Number]; !exists {
		r.byNumber[def.Number] = def
	}
	for _, alias := range def.Aliases {
		if _, exists := r.byName[alias]; exists {
			continue
		}
		r.byName[alias] = def
	}
}

// RegisterOverride adds def, replacing any previous registration under the
// same name. Used where the source catalog lists a syscall more than once
// with different parameter decoders (spec §9(b), e.g. csops_audittoken);
// the later, headers-accurate definition wins.
func (r *Registry) RegisterOverride(def *Def) {
	r.byName[def.Name] = def
	r.byNumber[def.Number] = def
}

func (r *Registry) LookupByName(name string) (*Def, bool) {
	d, ok := r.byName[name]
	return d, ok
}

func (r *Registry) LookupByNumber(n int) (*Def, bool) {
	d, ok := r.byNumber[n]
	return d, ok
}

func (r *Registry) CategoryOf(name string) (Category, bool) {
	d, ok := r.byName[name]
	if !ok {
		return "", false
	}
	return d.Category, true
}

// IterateAll returns every distinct Def in the registry, sorted by name
// for deterministic breakpoint installation order.
func (r *Registry) IterateAll() []*Def {
	seen := map[*Def]bool{}
	var out []*Def
	for _, d := range r.byName {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns every breakpoint-installable name (primary plus aliases)
// across the whole registry.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

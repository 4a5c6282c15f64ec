package tracer

import (
	"testing"

	"github.com/gostrace/mstrace/internal/catalog"
)

func TestAllowAllAllowsEverything(t *testing.T) {
	f := AllowAll{}
	if !f.Allows("open", catalog.CategoryFile) {
		t.Error("AllowAll should allow any name/category")
	}
}

func TestParseFilterEmptyIsAllowAll(t *testing.T) {
	if _, ok := ParseFilter("").(AllowAll); !ok {
		t.Error("ParseFilter(\"\") should be AllowAll")
	}
}

func TestParseFilterRecognizedCategory(t *testing.T) {
	f := ParseFilter("network")
	cf, ok := f.(CategoryFilter)
	if !ok || catalog.Category(cf) != catalog.CategoryNetwork {
		t.Fatalf("ParseFilter(network) = %+v", f)
	}
	if !f.Allows("connect", catalog.CategoryNetwork) {
		t.Error("CategoryFilter should allow a matching category")
	}
	if f.Allows("open", catalog.CategoryFile) {
		t.Error("CategoryFilter should reject a non-matching category")
	}
}

func TestParseFilterNameList(t *testing.T) {
	f := ParseFilter("open,close,read")
	nf, ok := f.(NameFilter)
	if !ok {
		t.Fatalf("ParseFilter(csv) = %T, want NameFilter", f)
	}
	for _, name := range []string{"open", "close", "read"} {
		if !nf.Allows(name, "") {
			t.Errorf("NameFilter should allow %q", name)
		}
	}
	if nf.Allows("write", "") {
		t.Error("NameFilter should reject an unlisted name")
	}
}

func TestParseFilterSingleName(t *testing.T) {
	f := ParseFilter("open")
	if !f.Allows("open", catalog.CategoryFile) {
		t.Error("single-name filter should allow that name")
	}
	if f.Allows("close", catalog.CategoryFile) {
		t.Error("single-name filter should reject other names")
	}
}

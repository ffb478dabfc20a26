package genome

import (
	"go/types"
	"sort"
	"testing"
	"golang.org/x/tools/go/packages"
)

// TestBackingImplementations ensures the Genome interface has exactly its
// two sanctioned implementations. A new backing is a deliberate decision,
// since every backing must render byte-identically with the existing
// ones, so adding one requires updating this list on purpose.
func TestBackingImplementations(t *testing.T) {
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedTypes}
	pkgs, err := packages.Load(cfg, "tesim/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var iface *types.Interface
	for _, p := range pkgs {
		if p.PkgPath != "tesim/genome" {
			continue
		}

		obj := p.Types.Scope().Lookup("Genome")
		if obj == nil {
			t.Fatalf("genome.Genome not found")
		}

		var ok bool
		iface, ok = obj.Type().Underlying().(*types.Interface)
		if !ok {
			t.Fatalf("genome.Genome is not an interface")
		}
	}

	if iface == nil {
		t.Fatalf("failed to resolve the Genome interface")
	}

	allowed := map[string]bool{
		"tesim/genome/array":  true,
		"tesim/genome/linked": true,
	}

	found := make(map[string]bool)
	var unexpected []string
	for _, p := range pkgs {
		if p.Types == nil || p.Types.Scope() == nil {
			continue
		}

		for _, name := range p.Types.Scope().Names() {
			named, ok := p.Types.Scope().Lookup(name).Type().(*types.Named)
			if !ok {
				continue
			}

			if _, ok := named.Underlying().(*types.Struct); !ok {
				continue
			}

			if !types.Implements(types.NewPointer(named), iface) {
				continue
			}

			if allowed[p.PkgPath] {
				found[p.PkgPath] = true
			} else {
				unexpected = append(unexpected, p.PkgPath+"."+name)
			}
		}
	}

	if len(unexpected) > 0 {
		sort.Strings(unexpected)
		t.Fatalf("unexpected Genome implementations: %v", unexpected)
	}

	if len(found) != len(allowed) {
		t.Fatalf("missing backings: found only %v", found)
	}
}

// TestBackingIndependence ensures the backing packages never import each
// other. Their renders must match through the shared contract alone; the
// linked package's tests compare them from the outside.
func TestBackingIndependence(t *testing.T) {
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedImports}
	pkgs, err := packages.Load(cfg, "tesim/genome/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	for _, p := range pkgs {
		if p.PkgPath != "tesim/genome/array" && p.PkgPath != "tesim/genome/linked" {
			continue
		}

		for path := range p.Imports {
			if path == "tesim/genome/array" || path == "tesim/genome/linked" {
				t.Fatalf("%s imports %s", p.PkgPath, path)
			}
		}
	}
}

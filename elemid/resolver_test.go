package elemid

import (
	"fmt"
	"testing"

	"github.com/docforge/elemid/types"
)

// fakeEntity is a minimal identity-comparable entity for resolver tests.
type fakeEntity struct {
	label string
}

func (f *fakeEntity) Kind() string             { return "text" }
func (f *fakeEntity) Name() string             { return f.label }
func (f *fakeEntity) Value() string            { return "" }
func (f *fakeEntity) Parent() types.Entity     { return nil }
func (f *fakeEntity) Document() types.Document { return nil }

// fakeSpace is an identifier space backed by a plain map.
type fakeSpace map[string]*fakeEntity

func (s fakeSpace) lookup(id string) types.Entity {
	if e, ok := s[id]; ok {
		return e
	}
	return nil
}

func TestResolveUnique(t *testing.T) {
	t.Run("NoCollision", func(t *testing.T) {
		space := fakeSpace{}
		got := ResolveUnique("username", nil, space.lookup, types.ModeStrict, "f", "_")
		if got != "username" {
			t.Errorf("expected %q, got %q", "username", got)
		}
	})

	t.Run("MonotonicSuffixes", func(t *testing.T) {
		// The k-th entity requesting the same base receives base for k = 0,
		// base_k otherwise.
		space := fakeSpace{}
		for k := 0; k < 5; k++ {
			owner := &fakeEntity{label: fmt.Sprintf("entity-%d", k)}
			got := ResolveUnique("username", owner, space.lookup, types.ModeStrict, "f", "_")
			want := "username"
			if k > 0 {
				want = fmt.Sprintf("username_%d", k)
			}
			if got != want {
				t.Errorf("entity %d: expected %q, got %q", k, want, got)
			}
			space[got] = owner
		}
	})

	t.Run("SelfIdentityShortCircuit", func(t *testing.T) {
		owner := &fakeEntity{label: "self"}
		space := fakeSpace{"username": owner}
		for i := 0; i < 3; i++ {
			got := ResolveUnique("username", owner, space.lookup, types.ModeStrict, "f", "_")
			if got != "username" {
				t.Errorf("derivation %d: expected %q, got %q", i, "username", got)
			}
		}
	})

	t.Run("DocumentBoundCollidesWithEverything", func(t *testing.T) {
		// With no concrete owner, even an identifier held by "ourselves"
		// cannot be reused; the loop only exits on an unassigned slot.
		space := fakeSpace{
			"username":   {label: "a"},
			"username_1": {label: "b"},
		}
		got := ResolveUnique("username", nil, space.lookup, types.ModeStrict, "f", "_")
		if got != "username_2" {
			t.Errorf("expected %q, got %q", "username_2", got)
		}
	})

	t.Run("NoGapFilling", func(t *testing.T) {
		// A freed low suffix is not reclaimed before higher ones are probed in
		// order; the first unassigned slot in increasing order wins.
		space := fakeSpace{
			"item":   {label: "a"},
			"item_2": {label: "c"},
		}
		got := ResolveUnique("item", nil, space.lookup, types.ModeStrict, "f", "_")
		if got != "item_1" {
			t.Errorf("expected %q, got %q", "item_1", got)
		}
	})

	t.Run("SeparatorJoinsSuffix", func(t *testing.T) {
		space := fakeSpace{"item": {label: "a"}}
		if got := ResolveUnique("item", nil, space.lookup, types.ModeStrict, "f", "-"); got != "item-1" {
			t.Errorf("hyphen separator: expected %q, got %q", "item-1", got)
		}
		if got := ResolveUnique("item", nil, space.lookup, types.ModeStrict, "f", ""); got != "item1" {
			t.Errorf("empty separator: expected %q, got %q", "item1", got)
		}
	})

	t.Run("NormalizesBeforeProbing", func(t *testing.T) {
		space := fakeSpace{"user-name": {label: "a"}}
		got := ResolveUnique("User Name", nil, space.lookup, types.ModeStrict, "f", "_")
		if got != "user-name_1" {
			t.Errorf("expected %q, got %q", "user-name_1", got)
		}
	})

	t.Run("ReproducibleAgainstUnchangedSpace", func(t *testing.T) {
		space := fakeSpace{"f": {label: "a"}, "f_1": {label: "b"}}
		first := ResolveUnique("", nil, space.lookup, types.ModeStrict, "f", "_")
		second := ResolveUnique("", nil, space.lookup, types.ModeStrict, "f", "_")
		if first != second {
			t.Errorf("expected reproducible result, got %q then %q", first, second)
		}
		if first != "f_2" {
			t.Errorf("expected %q, got %q", "f_2", first)
		}
	})
}

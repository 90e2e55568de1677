package pools

import (
	"reflect"
	"testing"
)

func TestAddFindRename(t *testing.T) {
	var ps []Pool
	ps, id := Add(ps, "Protagonists")

	p := Find(ps, id)
	if p == nil {
		t.Fatal("new pool not found by ID")
	}
	if p.Name != "Protagonists" || !p.Enabled {
		t.Errorf("unexpected pool %+v", *p)
	}

	if !Rename(ps, id, "Heroes") {
		t.Error("Rename should succeed")
	}
	if Find(ps, id).Name != "Heroes" {
		t.Error("rename did not stick")
	}
	if Rename(ps, "no-such-id", "x") {
		t.Error("Rename of unknown ID should fail")
	}
}

func TestRemove_PreservesOrder(t *testing.T) {
	var ps []Pool
	ps, a := Add(ps, "A")
	ps, b := Add(ps, "B")
	ps, c := Add(ps, "C")

	ps = Remove(ps, b)
	if len(ps) != 2 || ps[0].ID != a || ps[1].ID != c {
		t.Errorf("order not preserved: %+v", ps)
	}
	// Removing an unknown ID is a no-op.
	if got := Remove(ps, "missing"); len(got) != 2 {
		t.Errorf("unexpected removal: %+v", got)
	}
}

func TestMembers(t *testing.T) {
	var ps []Pool
	ps, id := Add(ps, "Cast")

	AddMember(ps, id, "people/freya.md")
	AddMember(ps, id, "people/loki.md")
	// Duplicates are allowed.
	AddMember(ps, id, "people/freya.md")

	p := Find(ps, id)
	want := []string{"people/freya.md", "people/loki.md", "people/freya.md"}
	if !reflect.DeepEqual(p.Members, want) {
		t.Errorf("members = %v, want %v", p.Members, want)
	}

	if !RemoveMember(ps, id, 1) {
		t.Error("RemoveMember should succeed")
	}
	want = []string{"people/freya.md", "people/freya.md"}
	if !reflect.DeepEqual(p.Members, want) {
		t.Errorf("after remove = %v, want %v", p.Members, want)
	}

	if RemoveMember(ps, id, 99) {
		t.Error("out-of-range index should fail")
	}
	if AddMember(ps, "missing", "x.md") {
		t.Error("unknown pool should fail")
	}
}

func TestActiveMembers(t *testing.T) {
	ps := []Pool{
		{ID: "1", Name: "off", Members: []string{"a"}, Enabled: false},
		{ID: "2", Name: "on", Members: []string{"b", "c"}, Enabled: true},
	}
	got := ActiveMembers(ps)
	if !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Errorf("ActiveMembers = %v, want [b c]", got)
	}

	if got := ActiveMembers(nil); len(got) != 0 {
		t.Errorf("ActiveMembers(nil) = %v, want empty", got)
	}
	if got := ActiveMembers([]Pool{{ID: "1", Enabled: true}}); len(got) != 0 {
		t.Errorf("enabled empty pool should contribute nothing, got %v", got)
	}
}

func TestToggle(t *testing.T) {
	var ps []Pool
	ps, id := Add(ps, "Cast")
	AddMember(ps, id, "a.md")

	if !Toggle(ps, id, false) {
		t.Error("Toggle should succeed")
	}
	if got := ActiveMembers(ps); len(got) != 0 {
		t.Errorf("disabled pool still active: %v", got)
	}
	Toggle(ps, id, true)
	if got := ActiveMembers(ps); len(got) != 1 {
		t.Errorf("re-enabled pool missing: %v", got)
	}
}

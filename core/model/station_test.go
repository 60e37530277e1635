package model

import "testing"

func TestStationSet_InsertionOrder(t *testing.T) {
	set := NewStationSet()
	set.Add(Station{ID: "c"})
	set.Add(Station{ID: "a"})
	set.Add(Station{ID: "b"})
	all := set.All()
	if len(all) != 3 || all[0].ID != "c" || all[1].ID != "a" || all[2].ID != "b" {
		t.Fatalf("order not preserved: %#v", all)
	}
}

func TestStationSet_ReplaceKeepsPosition(t *testing.T) {
	set := NewStationSet()
	set.Add(Station{ID: "a", Name: "old"})
	set.Add(Station{ID: "b"})
	set.Add(Station{ID: "a", Name: "new"})
	if set.Len() != 2 {
		t.Fatalf("expected 2 stations, got %d", set.Len())
	}
	if st := set.All()[0]; st.Name != "new" {
		t.Fatalf("replacement lost: %#v", st)
	}
}

func TestStationSet_Get(t *testing.T) {
	set := NewStationSet()
	set.Add(Station{ID: "a", Name: "Alpha"})
	st, ok := set.Get("a")
	if !ok || st.Name != "Alpha" {
		t.Fatalf("lookup failed: %#v %v", st, ok)
	}
	if _, ok := set.Get("missing"); ok {
		t.Fatal("expected miss for unknown id")
	}
}

package pipeline

import (
	"testing"

	"nbntrack/internal/model"
)

var filterSubs = []model.Subscription{
	{ID: "1", Name: "Netflix", Category: "streaming"},
	{ID: "2", Name: "Spotify", Category: "streaming"},
	{ID: "3", Name: "Gym Plus", Category: "fitness"},
	{ID: "4", Name: "netcloud backup", Category: "software"},
}

func ids(subs []model.Subscription) []string {
	out := make([]string, len(subs))
	for i, s := range subs {
		out[i] = s.ID
	}
	return out
}

func TestVisibleZeroFilterIsIdentity(t *testing.T) {
	got := Visible(filterSubs, Filter{})
	if len(got) != len(filterSubs) {
		t.Fatalf("got %d items, want %d", len(got), len(filterSubs))
	}
	for i := range got {
		if got[i].ID != filterSubs[i].ID {
			t.Errorf("order changed at %d: %s", i, got[i].ID)
		}
	}
}

func TestVisibleSearchIsCaseInsensitive(t *testing.T) {
	got := ids(Visible(filterSubs, Filter{Search: "NET"}))
	want := []string{"1", "4"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestVisibleCategoryIsExact(t *testing.T) {
	if got := Visible(filterSubs, Filter{Category: "streaming"}); len(got) != 2 {
		t.Errorf("streaming matched %d items, want 2", len(got))
	}
	// Category matching does not fold case.
	if got := Visible(filterSubs, Filter{Category: "Streaming"}); len(got) != 0 {
		t.Errorf("cased category matched %d items, want 0", len(got))
	}
}

func TestVisibleCombinesPredicates(t *testing.T) {
	got := Visible(filterSubs, Filter{Search: "net", Category: "streaming"})
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("got %v, want only Netflix", ids(got))
	}
}

func TestVisibleIsIdempotent(t *testing.T) {
	f := Filter{Search: "i"}
	once := Visible(filterSubs, f)
	twice := Visible(once, f)
	if len(once) != len(twice) {
		t.Fatalf("second pass changed result: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("second pass reordered at %d", i)
		}
	}
}

func TestVisibleDoesNotMutateInput(t *testing.T) {
	before := ids(filterSubs)
	_ = Visible(filterSubs, Filter{Search: "gym"})
	after := ids(filterSubs)
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("input slice mutated")
		}
	}
}

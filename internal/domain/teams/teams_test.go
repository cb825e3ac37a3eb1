package teams

import "testing"

func TestByIDFindsKnownFranchise(t *testing.T) {
	team, ok := ByID(1610612752)
	if !ok {
		t.Fatal("expected to find the Knicks")
	}
	if team.FullName != "New York Knicks" || team.Abbreviation != "NYK" {
		t.Fatalf("unexpected team %+v", team)
	}
}

func TestFullNameFallsBack(t *testing.T) {
	if got := FullName(42, "SEA"); got != "SEA" {
		t.Fatalf("fallback = %q, want abbreviation", got)
	}
	if got := FullName(42, ""); got != "Unknown Team" {
		t.Fatalf("fallback = %q", got)
	}
	if got := FullName(1610612738, "XXX"); got != "Boston Celtics" {
		t.Fatalf("known id should win: %q", got)
	}
}

func TestAllIsComplete(t *testing.T) {
	all := All()
	if len(all) != 30 {
		t.Fatalf("directory has %d teams, want 30", len(all))
	}
	seen := map[int]bool{}
	for _, team := range all {
		if seen[team.ID] {
			t.Fatalf("duplicate team id %d", team.ID)
		}
		seen[team.ID] = true
	}
}

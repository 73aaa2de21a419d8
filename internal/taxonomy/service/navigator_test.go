package service

import "testing"

func TestNavigatorDefaultsToMainList(t *testing.T) {
	nav := NewNavigator(sampleSnapshot())

	visible := nav.Visible()
	if len(visible) != 4 {
		t.Fatalf("expected 4 mains, got %d", len(visible))
	}
	for _, hit := range visible {
		if hit.Level != LevelMain {
			t.Fatalf("main list should only contain mains, got %+v", hit)
		}
	}
}

func TestNavigatorEnterMain(t *testing.T) {
	nav := NewNavigator(sampleSnapshot())

	if err := nav.EnterMain("Rejected"); err != nil {
		t.Fatalf("enter main with subs: %v", err)
	}
	if !nav.InSubList() || nav.OpenedMain() != "Rejected" {
		t.Fatalf("expected sub list for Rejected, got opened=%q", nav.OpenedMain())
	}

	visible := nav.Visible()
	if len(visible) != 2 || visible[0].Label != "Not Relevant" {
		t.Fatalf("expected Rejected subs, got %+v", visible)
	}

	// Idempotent.
	if err := nav.EnterMain("Rejected"); err != nil {
		t.Fatalf("re-entering the same main should succeed: %v", err)
	}
}

func TestNavigatorEnterMainWithoutSubsFails(t *testing.T) {
	nav := NewNavigator(sampleSnapshot())

	if err := nav.EnterMain("Selected"); err == nil {
		t.Fatal("entering a childless main must fail")
	}
	if nav.InSubList() {
		t.Fatal("failed drill-down must not change mode")
	}
}

func TestNavigatorEnterMainResetsFilter(t *testing.T) {
	nav := NewNavigator(sampleSnapshot())
	nav.SetFilter("no")

	if err := nav.EnterMain("Scheduled"); err != nil {
		t.Fatal(err)
	}

	visible := nav.Visible()
	if len(visible) != 2 || visible[0].Label != "HR Round" {
		t.Fatalf("filter should reset on drill-down, got %+v", visible)
	}
}

func TestNavigatorBack(t *testing.T) {
	nav := NewNavigator(sampleSnapshot())
	_ = nav.EnterMain("Rejected")
	nav.SetFilter("show")

	nav.Back()

	if nav.InSubList() {
		t.Fatal("back should return to the main list")
	}
	if len(nav.Visible()) != 4 {
		t.Fatal("back should clear the filter")
	}
}

func TestNavigatorFilterFlattensBothLevels(t *testing.T) {
	nav := NewNavigator(sampleSnapshot())
	nav.SetFilter("no")

	visible := nav.Visible()
	if len(visible) != 2 {
		t.Fatalf("filter should flatten both levels, got %+v", visible)
	}

	// Mode is irrelevant while a filter is active.
	_ = nav.EnterMain("Scheduled")
	nav.SetFilter("no")
	filtered := nav.Visible()
	if len(filtered) != 2 {
		t.Fatalf("filter inside sub list should still flatten, got %+v", filtered)
	}
}

func TestNavigatorSelectSubInOpenedMain(t *testing.T) {
	nav := NewNavigator(sampleSnapshot())
	_ = nav.EnterMain("Rejected")

	token, selected := nav.Select(SearchHit{Level: LevelSub, Label: "No Show"})
	if !selected || token != "Rejected:No Show" {
		t.Fatalf("expected composite token, got (%q, %v)", token, selected)
	}
}

func TestNavigatorSelectMainWithSubsDrillsDown(t *testing.T) {
	nav := NewNavigator(sampleSnapshot())

	token, selected := nav.Select(SearchHit{Level: LevelMain, Label: "Scheduled"})
	if selected {
		t.Fatalf("selecting a main with subs must drill down, got token %q", token)
	}
	if nav.OpenedMain() != "Scheduled" {
		t.Fatalf("expected drill-down into Scheduled, got %q", nav.OpenedMain())
	}
}

func TestNavigatorSelectChildlessMain(t *testing.T) {
	nav := NewNavigator(sampleSnapshot())

	token, selected := nav.Select(SearchHit{Level: LevelMain, Label: "Selected"})
	if !selected || token != "Selected" {
		t.Fatalf("childless main should select terminally, got (%q, %v)", token, selected)
	}
}

func TestNavigatorSelectFilteredHit(t *testing.T) {
	nav := NewNavigator(sampleSnapshot())
	nav.SetFilter("sched")

	// With an active filter, picking a main is always terminal.
	token, selected := nav.Select(SearchHit{Level: LevelMain, Label: "Scheduled"})
	if !selected || token != "Scheduled" {
		t.Fatalf("filtered main pick should be terminal, got (%q, %v)", token, selected)
	}

	nav.SetFilter("no")
	token, selected = nav.Select(SearchHit{Level: LevelSub, Label: "No Show", Parent: "Rejected"})
	if !selected || token != "Rejected:No Show" {
		t.Fatalf("filtered sub pick should resolve its parent, got (%q, %v)", token, selected)
	}
}

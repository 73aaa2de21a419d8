package service

import (
	"testing"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/domain"
)

func sampleSnapshot() *Snapshot {
	return NewSnapshot([]MainStatus{
		{Name: "Scheduled", Subs: []SubStatus{{Name: "HR Round"}, {Name: "Tech Round"}}},
		{Name: "Rejected", Bucket: domain.BucketComplete, Subs: []SubStatus{{Name: "Not Relevant"}, {Name: "No Show"}}},
		{Name: "Selected", Bucket: domain.BucketComplete},
		{Name: "On Hold"},
	})
}

func TestSnapshotMainsPreserveOrder(t *testing.T) {
	snap := sampleSnapshot()

	mains := snap.Mains()
	want := []string{"Scheduled", "Rejected", "Selected", "On Hold"}
	if len(mains) != len(want) {
		t.Fatalf("expected %d mains, got %d", len(want), len(mains))
	}
	for i, name := range want {
		if mains[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, mains[i].Name)
		}
	}
}

func TestSnapshotSubs(t *testing.T) {
	snap := sampleSnapshot()

	subs := snap.Subs("rejected")
	if len(subs) != 2 || subs[0].Name != "Not Relevant" || subs[1].Name != "No Show" {
		t.Fatalf("sub lookup should be case-insensitive and ordered, got %+v", subs)
	}

	if got := snap.Subs("Selected"); len(got) != 0 {
		t.Fatalf("main without subs should yield empty, got %+v", got)
	}
	if got := snap.Subs("unknown"); len(got) != 0 {
		t.Fatalf("unknown main should yield empty, got %+v", got)
	}
}

func TestSnapshotSearch(t *testing.T) {
	snap := sampleSnapshot()

	hits := snap.Search("no")
	// Taxonomy order: Rejected's subs appear after Rejected itself.
	want := []SearchHit{
		{Level: LevelSub, Label: "Not Relevant", Parent: "Rejected"},
		{Level: LevelSub, Label: "No Show", Parent: "Rejected"},
	}
	if len(hits) != len(want) {
		t.Fatalf("expected %d hits, got %+v", len(want), hits)
	}
	for i := range want {
		if hits[i] != want[i] {
			t.Errorf("hit %d: expected %+v, got %+v", i, want[i], hits[i])
		}
	}

	both := snap.Search("re")
	// "Rejected" main plus its matching sub "Not Relevant", in order.
	if len(both) != 2 || both[0].Level != LevelMain || both[0].Label != "Rejected" {
		t.Fatalf("expected main before its subs, got %+v", both)
	}
}

func TestSnapshotSearchEmptyQueryMatchesEverything(t *testing.T) {
	snap := sampleSnapshot()

	// 4 mains + 4 subs, each main followed by its own subs.
	hits := snap.Search("  ")
	if len(hits) != 8 {
		t.Fatalf("empty query should list the whole taxonomy, got %d hits: %+v", len(hits), hits)
	}
	want := []SearchHit{
		{Level: LevelMain, Label: "Scheduled"},
		{Level: LevelSub, Label: "HR Round", Parent: "Scheduled"},
		{Level: LevelSub, Label: "Tech Round", Parent: "Scheduled"},
		{Level: LevelMain, Label: "Rejected"},
		{Level: LevelSub, Label: "Not Relevant", Parent: "Rejected"},
		{Level: LevelSub, Label: "No Show", Parent: "Rejected"},
		{Level: LevelMain, Label: "Selected"},
		{Level: LevelMain, Label: "On Hold"},
	}
	for i := range want {
		if hits[i] != want[i] {
			t.Errorf("hit %d: expected %+v, got %+v", i, want[i], hits[i])
		}
	}
}

func TestSnapshotDeclaredBucket(t *testing.T) {
	snap := sampleSnapshot()

	bucket, ok := snap.DeclaredBucket("rejected")
	if !ok || bucket != domain.BucketComplete {
		t.Fatalf("expected declared complete bucket, got (%q, %v)", bucket, ok)
	}

	if _, ok := snap.DeclaredBucket("Scheduled"); ok {
		t.Fatal("undeclared main must not report a bucket")
	}
	if _, ok := snap.DeclaredBucket("missing"); ok {
		t.Fatal("unknown main must not report a bucket")
	}
}

func TestStoreReplaceIsAtomic(t *testing.T) {
	store := NewStore()
	if len(store.Snapshot().Mains()) != 0 {
		t.Fatal("new store should start empty")
	}

	old := store.Snapshot()
	store.Replace(sampleSnapshot())

	if len(old.Mains()) != 0 {
		t.Fatal("a handed-out snapshot must not change under the reader")
	}
	if len(store.Snapshot().Mains()) != 4 {
		t.Fatalf("expected new snapshot after replace, got %d mains", len(store.Snapshot().Mains()))
	}
}

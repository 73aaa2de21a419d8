package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return time.Date(2026, 3, 14+offset, 0, 0, 0, 0, time.UTC)
}

func testCollection() []Interview {
	return []Interview{
		{ID: uuid.New(), CandidateName: "Asha Verma", MobileNumber: "9876543210", Status: "Scheduled", InterviewDate: day(0), JobOpening: "Backend Engineer", City: "Pune", InterviewType: "Walk-in"},
		{ID: uuid.New(), CandidateName: "Ravi Kumar", MobileNumber: "9123456780", Status: "Scheduled:HR Round", InterviewDate: day(2), JobOpening: "Backend Engineer", City: "Mumbai", InterviewType: "Virtual"},
		{ID: uuid.New(), CandidateName: "Meera Nair", MobileNumber: "9000000001", Status: "Selected", InterviewDate: day(-3), JobOpening: "QA Analyst", City: "Pune", InterviewType: "Walk-in"},
		{ID: uuid.New(), CandidateName: "John Dsouza", MobileNumber: "9000000002", Status: "Rejected:No Show", InterviewDate: day(-1), JobOpening: "QA Analyst", City: "Goa", InterviewType: "Virtual"},
		{ID: uuid.New(), CandidateName: "Priya Singh", MobileNumber: "9000000003", Status: "custom_stage_7", InterviewDate: day(5), JobOpening: "Data Engineer", City: "Delhi", InterviewType: "Walk-in"},
	}
}

func testFilterClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier(ClassifierOptions{})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestFilterTabs(t *testing.T) {
	records := testCollection()
	c := testFilterClassifier(t)

	all := FilterInterviews(records, TabAll, Facets{}, c, testNow)
	if len(all) != 5 {
		t.Fatalf("all tab should keep everything, got %d", len(all))
	}

	today := FilterInterviews(records, TabToday, Facets{}, c, testNow)
	if len(today) != 1 || today[0].CandidateName != "Asha Verma" {
		t.Fatalf("today tab mismatch: %+v", today)
	}

	upcoming := FilterInterviews(records, TabUpcoming, Facets{}, c, testNow)
	if len(upcoming) != 2 {
		t.Fatalf("upcoming tab should have 2 records, got %d", len(upcoming))
	}

	result := FilterInterviews(records, TabResult, Facets{}, c, testNow)
	if len(result) != 2 {
		t.Fatalf("result tab should have 2 records, got %d", len(result))
	}
}

func TestTabsDisjointUnderZonedClock(t *testing.T) {
	c := testFilterClassifier(t)
	records := []Interview{
		{ID: uuid.New(), CandidateName: "Asha Verma", Status: "Scheduled",
			InterviewDate: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)},
	}
	// 01:00 local on the same calendar date, in a zone ahead of UTC: the
	// record's UTC-midnight instant is still in the future here.
	ist := time.FixedZone("IST", 5*3600+1800)
	zonedNow := time.Date(2026, 8, 30, 1, 0, 0, 0, ist)

	today := FilterInterviews(records, TabToday, Facets{}, c, zonedNow)
	upcoming := FilterInterviews(records, TabUpcoming, Facets{}, c, zonedNow)
	if len(today) != 1 {
		t.Fatalf("record dated today should be on the today tab, got %d", len(today))
	}
	if len(upcoming) != 0 {
		t.Fatalf("record dated today must not also be upcoming, got %d", len(upcoming))
	}

	tabs, _ := Counts(records, c, zonedNow)
	if tabs.Today != 1 || tabs.Upcoming != 0 {
		t.Fatalf("counts double-counted under a zoned clock: today=%d upcoming=%d", tabs.Today, tabs.Upcoming)
	}
}

// Partition properties: today+upcoming never exceeds all, result is all
// complete, today and upcoming are all open.
func TestFilterTabPartition(t *testing.T) {
	records := testCollection()
	c := testFilterClassifier(t)

	all := FilterInterviews(records, TabAll, Facets{}, c, testNow)
	today := FilterInterviews(records, TabToday, Facets{}, c, testNow)
	upcoming := FilterInterviews(records, TabUpcoming, Facets{}, c, testNow)
	result := FilterInterviews(records, TabResult, Facets{}, c, testNow)

	if len(today)+len(upcoming) > len(all) {
		t.Fatalf("today (%d) + upcoming (%d) exceeds all (%d)", len(today), len(upcoming), len(all))
	}
	for _, rec := range result {
		if c.Classify(rec.Status) != BucketComplete {
			t.Fatalf("result tab leaked open record %q", rec.Status)
		}
	}
	for _, rec := range append(append([]Interview{}, today...), upcoming...) {
		if c.Classify(rec.Status) != BucketOpen {
			t.Fatalf("today/upcoming leaked complete record %q", rec.Status)
		}
	}
}

func TestFilterStatusFacetExactMatch(t *testing.T) {
	records := testCollection()
	c := testFilterClassifier(t)

	// A bare facet value must not match composite statuses.
	bare := FilterInterviews(records, TabAll, Facets{Statuses: []string{"Scheduled"}}, c, testNow)
	if len(bare) != 1 || bare[0].Status != "Scheduled" {
		t.Fatalf("bare status facet must match exactly, got %+v", bare)
	}

	composite := FilterInterviews(records, TabAll, Facets{Statuses: []string{"Scheduled:HR Round"}}, c, testNow)
	if len(composite) != 1 || composite[0].Status != "Scheduled:HR Round" {
		t.Fatalf("composite status facet must match exactly, got %+v", composite)
	}
}

func TestFilterDateRangeInclusive(t *testing.T) {
	records := testCollection()
	c := testFilterClassifier(t)

	from := day(-1)
	to := day(2)
	got := FilterInterviews(records, TabAll, Facets{DateFrom: &from, DateTo: &to}, c, testNow)
	if len(got) != 3 {
		t.Fatalf("inclusive range should keep boundary dates, got %d records", len(got))
	}
}

func TestFilterCreatorFacet(t *testing.T) {
	records := testCollection()
	creator := uuid.New()
	records[0].CreatedBy = creator
	c := testFilterClassifier(t)

	got := FilterInterviews(records, TabAll, Facets{CreatedBy: &creator}, c, testNow)
	if len(got) != 1 || got[0].CandidateName != "Asha Verma" {
		t.Fatalf("creator facet mismatch: %+v", got)
	}
}

func TestFilterSubstringFacets(t *testing.T) {
	records := testCollection()
	c := testFilterClassifier(t)

	types := FilterInterviews(records, TabAll, Facets{Types: []string{"walk"}}, c, testNow)
	if len(types) != 3 {
		t.Fatalf("type facet should match substrings case-insensitively, got %d", len(types))
	}

	openings := FilterInterviews(records, TabAll, Facets{JobOpenings: []string{"backend"}}, c, testNow)
	if len(openings) != 2 {
		t.Fatalf("job opening facet should match substrings, got %d", len(openings))
	}
}

func TestFilterFreeTextSearch(t *testing.T) {
	records := testCollection()
	c := testFilterClassifier(t)

	byPhone := FilterInterviews(records, TabAll, Facets{Search: "9876543210"}, c, testNow)
	if len(byPhone) != 1 || byPhone[0].CandidateName != "Asha Verma" {
		t.Fatalf("search by phone mismatch: %+v", byPhone)
	}

	byCity := FilterInterviews(records, TabAll, Facets{Search: "pune"}, c, testNow)
	if len(byCity) != 2 {
		t.Fatalf("search by city should find 2, got %d", len(byCity))
	}

	none := FilterInterviews(records, TabAll, Facets{Search: "nobody"}, c, testNow)
	if len(none) != 0 {
		t.Fatalf("search with no hits should be empty, got %d", len(none))
	}
}

func TestFilterFacetsAndCombined(t *testing.T) {
	records := testCollection()
	c := testFilterClassifier(t)

	got := FilterInterviews(records, TabAll, Facets{
		JobOpenings: []string{"QA"},
		Search:      "goa",
	}, c, testNow)
	if len(got) != 1 || got[0].CandidateName != "John Dsouza" {
		t.Fatalf("AND-combined facets mismatch: %+v", got)
	}
}

func TestCounts(t *testing.T) {
	records := testCollection()
	c := testFilterClassifier(t)

	tabs, cards := Counts(records, c, testNow)

	if tabs.All != 5 || tabs.Today != 1 || tabs.Upcoming != 2 || tabs.Result != 2 {
		t.Fatalf("tab counts mismatch: %+v", tabs)
	}

	byMain := make(map[string]StatusCount)
	for _, card := range cards {
		byMain[card.MainStatus] = card
	}
	if byMain["Scheduled"].Count != 2 {
		t.Fatalf("expected both Scheduled variants under one card, got %+v", byMain["Scheduled"])
	}
	if byMain["Selected"].Bucket != BucketComplete {
		t.Fatalf("Selected card should be complete, got %+v", byMain["Selected"])
	}
	if byMain["Rejected"].Bucket != BucketComplete {
		t.Fatalf("Rejected card should be complete, got %+v", byMain["Rejected"])
	}
}

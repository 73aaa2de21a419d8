package domain

import "time"

// TabCounts holds the totals shown on each tab header.
type TabCounts struct {
	All      int `json:"all"`
	Today    int `json:"today"`
	Upcoming int `json:"upcoming"`
	Result   int `json:"result"`
}

// StatusCount is the per-main-status card, with its derived bucket.
type StatusCount struct {
	MainStatus string `json:"mainStatus"`
	Bucket     Bucket `json:"bucket"`
	Count      int    `json:"count"`
}

// Counts aggregates tab totals and per-main-status cards over one snapshot.
// Recomputed whenever the collection or the taxonomy changes.
func Counts(records []Interview, classifier *Classifier, now time.Time) (TabCounts, []StatusCount) {
	var tabs TabCounts
	perStatus := make(map[string]*StatusCount)
	order := make([]string, 0)

	for _, rec := range records {
		tabs.All++

		bucket := classifier.Classify(rec.Status)
		if bucket == BucketComplete {
			tabs.Result++
		} else {
			if sameDay(rec.InterviewDate, now) {
				tabs.Today++
			}
			if laterDay(rec.InterviewDate, now) {
				tabs.Upcoming++
			}
		}

		main := rec.StatusMain()
		card, ok := perStatus[main]
		if !ok {
			card = &StatusCount{MainStatus: main, Bucket: classifier.Classify(main)}
			perStatus[main] = card
			order = append(order, main)
		}
		card.Count++
	}

	cards := make([]StatusCount, 0, len(order))
	for _, main := range order {
		cards = append(cards, *perStatus[main])
	}
	return tabs, cards
}

package service

import (
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews/domain"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/apperr"
)

// Navigator is a two-level view over one taxonomy snapshot: the main list,
// or the sub list of a chosen main. A non-empty text filter flattens both
// levels into one result set regardless of mode.
//
// Drill-down and selection are separate operations. The original UI inferred
// intent from whether a search was active when a main with children was
// clicked; here the caller chooses EnterMain or Select explicitly.
type Navigator struct {
	snap   *Snapshot
	opened string
	filter string
}

// NewNavigator starts at the main list of the given snapshot.
func NewNavigator(snap *Snapshot) *Navigator {
	return &Navigator{snap: snap}
}

// InSubList reports whether the navigator is showing a main's sub-statuses.
func (n *Navigator) InSubList() bool {
	return n.opened != ""
}

// OpenedMain returns the drilled-into main status name, or empty.
func (n *Navigator) OpenedMain() string {
	return n.opened
}

// EnterMain drills into a main status. Valid only for mains with at least one
// sub-status; a click on a childless main is a terminal selection, not a
// drill-down. Idempotent, and always resets the text filter.
func (n *Navigator) EnterMain(name string) error {
	subs := n.snap.Subs(name)
	if len(subs) == 0 {
		return apperr.BadRequest("status has no sub-statuses")
	}
	n.opened = name
	n.filter = ""
	return nil
}

// Back returns to the main list and clears the filter.
func (n *Navigator) Back() {
	n.opened = ""
	n.filter = ""
}

// SetFilter sets the free-text filter.
func (n *Navigator) SetFilter(query string) {
	n.filter = query
}

// Visible returns what the current mode and filter show. With a non-empty
// filter the result flattens both levels; otherwise it is the main list or
// the opened main's subs.
func (n *Navigator) Visible() []SearchHit {
	if n.filter != "" {
		return n.snap.Search(n.filter)
	}

	if n.opened != "" {
		subs := n.snap.Subs(n.opened)
		hits := make([]SearchHit, 0, len(subs))
		for _, sub := range subs {
			hits = append(hits, SearchHit{Level: LevelSub, Label: sub.Name, Parent: n.opened})
		}
		return hits
	}

	mains := n.snap.Mains()
	hits := make([]SearchHit, 0, len(mains))
	for _, main := range mains {
		hits = append(hits, SearchHit{Level: LevelMain, Label: main.Name})
	}
	return hits
}

// Select resolves a terminal pick of a visible hit. Selecting a main that
// has sub-statuses while no filter is active is a drill-down, not a
// selection; both meanings of "click a main" live here so callers never
// infer intent from UI mode.
// The returned token is "main" or "main:sub"; selected reports whether a
// terminal choice was made.
func (n *Navigator) Select(hit SearchHit) (token string, selected bool) {
	if hit.Level == LevelSub {
		parent := hit.Parent
		if parent == "" {
			parent = n.opened
		}
		return domain.FormatStatus(parent, hit.Label), true
	}

	if n.filter == "" && len(n.snap.Subs(hit.Label)) > 0 {
		// Drill-down instead of selection.
		_ = n.EnterMain(hit.Label)
		return "", false
	}

	return hit.Label, true
}

package services

import (
	"time"

	"restaurant/internal/core/domain/model/order"
)

// MergeWindow bounds how far back in time merge candidates are collected,
// relative to the anchor order's placement time. Orders placed within this
// window before (or at) the anchor's placement time belong to the same
// sitting; anything older is a separate visit and bills separately.
const MergeWindow = 6 * time.Hour

// BillMerger is a domain service that folds several in-flight orders from the
// same sitting into one billing unit.
//
// When an anchor order reaches Delivered, every other order of the same
// customer at the same table, placed within the merge window and not yet in a
// terminal state, is absorbed: its items transfer (never copy) to the anchor,
// its total is added to the anchor's, and the emptied candidate is deleted by
// the caller. Each candidate is absorbed by at most one anchor because the
// absorb operation empties it.
type BillMerger struct {
	window time.Duration
}

// NewBillMerger creates a BillMerger using the MergeWindow policy constant.
func NewBillMerger() BillMerger {
	return BillMerger{window: MergeWindow}
}

// Window returns the merge window duration.
func (m BillMerger) Window() time.Duration {
	return m.window
}

// CandidateWindow returns the placement-time interval [from, to] inside which
// candidates for the given anchor must fall.
func (m BillMerger) CandidateWindow(anchor *order.Order) (time.Time, time.Time) {
	return anchor.PlacedAt().Add(-m.window), anchor.PlacedAt()
}

// IsCandidate reports whether c can be folded into the anchor: a different
// order of the same customer at the same table, placed inside the window and
// not in a terminal state.
func (m BillMerger) IsCandidate(anchor, c *order.Order) bool {
	if c == nil || anchor.IsEqual(c) {
		return false
	}

	if c.Status().IsTerminal() {
		return false
	}

	if !anchor.CustomerID().IsEqual(c.CustomerID()) {
		return false
	}

	anchorTable, ok := anchor.TableID()
	candidateTable, candidateOk := c.TableID()
	if !ok || !candidateOk || !anchorTable.IsEqual(candidateTable) {
		return false
	}

	from, to := m.CandidateWindow(anchor)
	placed := c.PlacedAt()
	return !placed.Before(from) && !placed.After(to)
}

// Merge folds every eligible candidate into the anchor and returns the
// absorbed orders, which the caller must delete from storage. Candidates that
// fail the eligibility check are skipped silently: the repository query is
// expected to pre-filter, and this re-check only defends against races
// between the query and the merge.
func (m BillMerger) Merge(anchor *order.Order, candidates []*order.Order) ([]*order.Order, error) {
	if err := anchor.Validate(); err != nil {
		return nil, err
	}

	absorbed := make([]*order.Order, 0, len(candidates))
	for _, c := range candidates {
		if !m.IsCandidate(anchor, c) {
			continue
		}

		if err := anchor.AbsorbItemsFrom(c); err != nil {
			return nil, err
		}
		absorbed = append(absorbed, c)
	}

	return absorbed, nil
}

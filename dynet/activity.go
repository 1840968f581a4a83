// File: activity.go
// Role: Activity store mutations (add/remove/merge/deactivate) and spell accessors.
// Determinism:
//   - Every stored list is sorted by spell.Compare after each mutation.
// AI-HINT (file):
//   - AddSpell does not deduplicate; MergeSpells does.
//   - RemoveSpell of an absent spell is a silent no-op.
//   - Spells() returns a copy; the store is never aliased.

package dynet

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/dynamic/spell"
)

// AddSpell appends s to the spells of sel and re-sorts the list.
//
// Implementation:
//   - Stage 1: Resolve sel (normalise undirected edge keys).
//   - Stage 2: For edges, ensure the edge exists in the static graph.
//   - Stage 3: Append and sort.
//
// Behavior highlights:
//   - Duplicates are kept: adding the same spell twice stores two entries.
//   - The observation period is not consulted.
//
// Errors:
//   - ErrMissingSelector, core.ErrVertexNotFound, core.ErrLoopNotAllowed.
//
// Complexity: O(k log k) for a list of k spells.
func (nw *Network) AddSpell(sel Selector, s spell.Spell) error {
	key, err := nw.resolve(sel)
	if err != nil {
		return err
	}
	if key.kind == selectEdge && !nw.graph.HasEdge(key.edge.From, key.edge.To) {
		if err = nw.graph.AddEdge(key.edge.From, key.edge.To); err != nil {
			return fmt.Errorf("dynet: add spell to %v: %w", key, err)
		}
		nw.logger.Debug("Edge created by first spell", slog.Any("edge", key.edge), slog.Any("spell", s))
	}

	old := nw.spellsOf(key)
	list := make([]spell.Spell, 0, len(old)+1)
	list = append(list, old...)
	list = append(list, s)
	nw.setSpells(key, spell.Sort(list))

	return nil
}

// Activate is AddSpell with a spell built from [onset, terminus).
//
// Errors:
//   - spell.ErrInvalidInterval plus the errors of AddSpell.
func (nw *Network) Activate(sel Selector, onset, terminus spell.Time, opts ...spell.Option) error {
	s, err := spell.New(onset, terminus, opts...)
	if err != nil {
		return err
	}

	return nw.AddSpell(sel, s)
}

// RemoveSpell removes every stored spell equal to s (onset and terminus;
// censoring ignored). Removing an absent spell is a no-op.
//
// Errors:
//   - ErrMissingSelector, core.ErrVertexNotFound.
func (nw *Network) RemoveSpell(sel Selector, s spell.Spell) error {
	key, err := nw.resolve(sel)
	if err != nil {
		return err
	}

	old := nw.spellsOf(key)
	list := make([]spell.Spell, 0, len(old))
	var cur spell.Spell
	for _, cur = range old {
		if !cur.Equal(s) {
			list = append(list, cur)
		}
	}
	nw.setSpells(key, list)

	return nil
}

// MergeSpells coalesces overlapping and adjacent spells of sel (see
// spell.Merge). Idempotent; a no-op on an empty list.
//
// Errors:
//   - ErrMissingSelector, core.ErrVertexNotFound.
func (nw *Network) MergeSpells(sel Selector) error {
	key, err := nw.resolve(sel)
	if err != nil {
		return err
	}

	old := nw.spellsOf(key)
	if len(old) == 0 {
		return nil
	}
	merged := spell.Merge(old)
	nw.setSpells(key, merged)
	nw.logger.Debug("Spells merged",
		slog.Any("selector", key),
		slog.Int("before", len(old)),
		slog.Int("after", len(merged)),
	)

	return nil
}

// Deactivate removes [onset, terminus) from every spell of sel, trimming or
// splitting spells that straddle the interval.
//
// Errors:
//   - spell.ErrInvalidInterval, ErrMissingSelector, core.ErrVertexNotFound.
//
// Complexity: O(k log k).
func (nw *Network) Deactivate(sel Selector, onset, terminus spell.Time) error {
	cut, err := spell.New(onset, terminus)
	if err != nil {
		return err
	}
	key, err := nw.resolve(sel)
	if err != nil {
		return err
	}

	old := nw.spellsOf(key)
	if len(old) == 0 {
		return nil
	}
	list := make([]spell.Spell, 0, len(old)+1)
	var cur spell.Spell
	for _, cur = range old {
		list = append(list, spell.Subtract(cur, cut)...)
	}
	nw.setSpells(key, spell.Sort(list))
	nw.logger.Debug("Interval deactivated",
		slog.Any("selector", key),
		slog.Any("interval", cut),
		slog.Int("before", len(old)),
		slog.Int("after", len(list)),
	)

	return nil
}

// Spells returns a sorted copy of the spells of sel.
//
// Errors:
//   - ErrMissingSelector, core.ErrVertexNotFound.
func (nw *Network) Spells(sel Selector) ([]spell.Spell, error) {
	key, err := nw.resolve(sel)
	if err != nil {
		return nil, err
	}
	live := nw.spellsOf(key)
	out := make([]spell.Spell, len(live))
	copy(out, live)

	return out, nil
}

// SpellCount returns the number of spells stored for sel.
func (nw *Network) SpellCount(sel Selector) (int, error) {
	key, err := nw.resolve(sel)
	if err != nil {
		return 0, err
	}

	return len(nw.spellsOf(key)), nil
}

// File: attributes.go
// Role: Time-varying vertex and edge attributes.
// AI-HINT (file):
//   - Lookups are first-match in insertion order; overlapping sets never overwrite.
//   - Edge attributes do not require the edge to exist; only the endpoints must.

package dynet

import (
	"github.com/katalvlaran/dynamic/spell"
	"github.com/katalvlaran/dynamic/tea"
)

// SetAttribute appends (value, [onset, terminus)) to the attribute name of sel.
// No overlap checks or merging are performed.
//
// Errors:
//   - spell.ErrInvalidInterval, ErrMissingSelector, core.ErrVertexNotFound.
func (nw *Network) SetAttribute(sel Selector, name string, value tea.Value, onset, terminus spell.Time) error {
	s, err := spell.New(onset, terminus)
	if err != nil {
		return err
	}
	key, err := nw.resolve(sel)
	if err != nil {
		return err
	}
	if key.kind == selectVertex {
		nw.vertexAttrs.Set(key.vertex, name, value, s)
		return nil
	}
	nw.edgeAttrs.Set(key.edge, name, value, s)

	return nil
}

// Attribute returns the value of attribute name of sel at time t.
// ok is false for an unknown name or a t outside every stored spell.
//
// Errors:
//   - ErrMissingSelector, core.ErrVertexNotFound.
func (nw *Network) Attribute(sel Selector, name string, t spell.Time) (value tea.Value, ok bool, err error) {
	key, err := nw.resolve(sel)
	if err != nil {
		return tea.Value{}, false, err
	}
	if key.kind == selectVertex {
		value, ok = nw.vertexAttrs.Get(key.vertex, name, t)
		return value, ok, nil
	}
	value, ok = nw.edgeAttrs.Get(key.edge, name, t)

	return value, ok, nil
}

// AttributeSeries returns a copy of the raw (value, spell) entries of
// attribute name of sel, in insertion order. ok is false for an unknown name.
func (nw *Network) AttributeSeries(sel Selector, name string) (entries []tea.Entry, ok bool, err error) {
	key, err := nw.resolve(sel)
	if err != nil {
		return nil, false, err
	}
	if key.kind == selectVertex {
		entries, ok = nw.vertexAttrs.Series(key.vertex, name)
		return entries, ok, nil
	}
	entries, ok = nw.edgeAttrs.Series(key.edge, name)

	return entries, ok, nil
}

// VertexAttributeNames lists the distinct time-varying vertex attribute names, sorted.
func (nw *Network) VertexAttributeNames() []string { return nw.vertexAttrs.Names() }

// EdgeAttributeNames lists the distinct time-varying edge attribute names, sorted.
func (nw *Network) EdgeAttributeNames() []string { return nw.edgeAttrs.Names() }

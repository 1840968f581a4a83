// File: timing.go
// Role: Temporal extent summary of a Network.

package dynet

import "github.com/katalvlaran/dynamic/spell"

// Timing summarises the temporal extent of a Network.
type Timing struct {
	// Observation is the observation period of the network.
	Observation spell.Spell

	// Range spans (min onset, max terminus) over every vertex and edge spell.
	// Only meaningful when HasRange is true.
	Range    spell.Spell
	HasRange bool

	// VertexSpells and EdgeSpells count the stored spells.
	VertexSpells int
	EdgeSpells   int
}

// TimingInfo scans every stored spell of nw.
// Complexity: O(total spells).
func TimingInfo(nw *Network) Timing {
	info := Timing{Observation: nw.observation}
	var (
		list []spell.Spell
		r    spell.Spell
		ok   bool
		lo   spell.Time
		hi   spell.Time
	)
	widen := func(l []spell.Spell) {
		if r, ok = spell.Range(l); !ok {
			return
		}
		if !info.HasRange || r.Onset() < lo {
			lo = r.Onset()
		}
		if !info.HasRange || r.Terminus() > hi {
			hi = r.Terminus()
		}
		info.HasRange = true
	}
	for _, list = range nw.vertexSpells {
		info.VertexSpells += len(list)
		widen(list)
	}
	for _, list = range nw.edgeSpells {
		info.EdgeSpells += len(list)
		widen(list)
	}
	if info.HasRange {
		info.Range = spell.MustNew(lo, hi)
	}

	return info
}

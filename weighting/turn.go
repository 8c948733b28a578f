package weighting

import (
	"math"
	"sync"

	"github.com/katalvlaran/loopway/core"
)

// TurnCost is one stored turn: either forbidden, or priced at Cost seconds.
type TurnCost struct {
	Restricted bool
	Cost       float64
}

type turnKey struct{ in, via, out int }

// TurnCostTable stores turn restrictions, turn costs and per-junction u-turn
// costs. It is safe for concurrent use.
type TurnCostTable struct {
	mu     sync.RWMutex
	turns  map[turnKey]TurnCost
	uTurns map[int]float64
}

// NewTurnCostTable returns an empty table.
func NewTurnCostTable() *TurnCostTable {
	return &TurnCostTable{
		turns:  make(map[turnKey]TurnCost),
		uTurns: make(map[int]float64),
	}
}

// AddRestriction forbids turning from in to out at via.
func (t *TurnCostTable) AddRestriction(in, via, out int) {
	t.mu.Lock()
	t.turns[turnKey{in, via, out}] = TurnCost{Restricted: true}
	t.mu.Unlock()
}

// AddTurnCost prices turning from in to out at via.
func (t *TurnCostTable) AddTurnCost(in, via, out int, cost float64) {
	t.mu.Lock()
	t.turns[turnKey{in, via, out}] = TurnCost{Cost: cost}
	t.mu.Unlock()
}

// SetUTurnCost overrides the u-turn cost at one junction.
func (t *TurnCostTable) SetUTurnCost(via int, cost float64) {
	t.mu.Lock()
	t.uTurns[via] = cost
	t.mu.Unlock()
}

// Lookup returns the stored turn, if any.
func (t *TurnCostTable) Lookup(in, via, out int) (TurnCost, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	tc, ok := t.turns[turnKey{in, via, out}]

	return tc, ok
}

// UTurnCost returns the junction-specific u-turn cost, if any.
func (t *TurnCostTable) UTurnCost(via int) (float64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c, ok := t.uTurns[via]

	return c, ok
}

// Len returns the number of stored turns, u-turn overrides excluded.
func (t *TurnCostTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.turns)
}

// TurnCostHandler prices junction transitions.
type TurnCostHandler interface {
	CalcTurnWeight(inEdge, viaNode, outEdge int) float64
	CalcTurnMillis(inEdge, viaNode, outEdge int) int64
}

// DefaultTurnCostHandler applies one u-turn cost everywhere (default +Inf)
// and stored restrictions and costs for every other turn.
type DefaultTurnCostHandler struct {
	table     *TurnCostTable
	uTurnCost float64
}

// NewDefaultTurnCostHandler returns a handler over table. A nil table means
// no stored turns.
func NewDefaultTurnCostHandler(table *TurnCostTable) *DefaultTurnCostHandler {
	if table == nil {
		table = NewTurnCostTable()
	}

	return &DefaultTurnCostHandler{table: table, uTurnCost: math.Inf(1)}
}

// SetDefaultUTurnCost sets the cost of turning back on the same edge.
func (h *DefaultTurnCostHandler) SetDefaultUTurnCost(cost float64) { h.uTurnCost = cost }

// CalcTurnWeight implements TurnCostHandler.
func (h *DefaultTurnCostHandler) CalcTurnWeight(inEdge, viaNode, outEdge int) float64 {
	if inEdge < 0 || outEdge < 0 {
		return 0
	}
	if inEdge == outEdge {
		return h.uTurnCost
	}

	return storedTurn(h.table, inEdge, viaNode, outEdge)
}

// CalcTurnMillis implements TurnCostHandler.
func (h *DefaultTurnCostHandler) CalcTurnMillis(inEdge, viaNode, outEdge int) int64 {
	return Millis(h.CalcTurnWeight(inEdge, viaNode, outEdge))
}

// JunctionWiseTurnCostHandler behaves like DefaultTurnCostHandler but lets a
// junction carry its own u-turn cost, set via TurnCostTable.SetUTurnCost or
// an explicit (e, via, e) turn entry. The default applies only when neither
// exists.
type JunctionWiseTurnCostHandler struct {
	DefaultTurnCostHandler
}

// NewJunctionWiseTurnCostHandler returns a handler over table.
func NewJunctionWiseTurnCostHandler(table *TurnCostTable) *JunctionWiseTurnCostHandler {
	return &JunctionWiseTurnCostHandler{DefaultTurnCostHandler: *NewDefaultTurnCostHandler(table)}
}

// CalcTurnWeight implements TurnCostHandler.
func (h *JunctionWiseTurnCostHandler) CalcTurnWeight(inEdge, viaNode, outEdge int) float64 {
	if inEdge < 0 || outEdge < 0 {
		return 0
	}
	if inEdge == outEdge {
		if tc, ok := h.table.Lookup(inEdge, viaNode, outEdge); ok {
			return turnWeight(tc)
		}
		if c, ok := h.table.UTurnCost(viaNode); ok {
			return c
		}

		return h.uTurnCost
	}

	return storedTurn(h.table, inEdge, viaNode, outEdge)
}

// CalcTurnMillis implements TurnCostHandler.
func (h *JunctionWiseTurnCostHandler) CalcTurnMillis(inEdge, viaNode, outEdge int) int64 {
	return Millis(h.CalcTurnWeight(inEdge, viaNode, outEdge))
}

func storedTurn(t *TurnCostTable, in, via, out int) float64 {
	tc, ok := t.Lookup(in, via, out)
	if !ok {
		return 0
	}

	return turnWeight(tc)
}

func turnWeight(tc TurnCost) float64 {
	if tc.Restricted {
		return math.Inf(1)
	}

	return tc.Cost
}

// TurnWeighting adds turn costs to another Weighting.
type TurnWeighting struct {
	base    Weighting
	handler TurnCostHandler
}

// NewTurnWeighting wraps base. Panics on nil arguments.
func NewTurnWeighting(base Weighting, handler TurnCostHandler) *TurnWeighting {
	if base == nil || handler == nil {
		panic("weighting: NewTurnWeighting(nil)")
	}

	return &TurnWeighting{base: base, handler: handler}
}

// CalcEdgeWeight delegates to the wrapped weighting.
func (w *TurnWeighting) CalcEdgeWeight(s core.EdgeState) float64 {
	return w.base.CalcEdgeWeight(s)
}

// CalcTurnWeight delegates to the turn cost handler.
func (w *TurnWeighting) CalcTurnWeight(inEdge, viaNode, outEdge int) float64 {
	return w.handler.CalcTurnWeight(inEdge, viaNode, outEdge)
}

// Name returns "turn|" plus the wrapped weighting's name.
func (w *TurnWeighting) Name() string { return "turn|" + w.base.Name() }

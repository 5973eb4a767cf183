// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package argbind

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-argbind/internal/graph"
)

// exprVertex is one occurrence of a Bound in an expression tree. A Bound
// nested twice gets two vertices.
type exprVertex struct {
	ID    int
	Bound *Bound
}

func (v *exprVertex) String() string {
	return fmt.Sprintf("expr #%d: %s", v.ID, v.Bound.fn.Name())
}

// slotVertex is one bind-time argument of an exprVertex.
type slotVertex struct {
	Expr     int
	Position int
	Kind     SlotKind
}

func (v *slotVertex) String() string {
	return fmt.Sprintf("expr #%d slot %d (%s)", v.Expr, v.Position, v.Kind)
}

// argVertex is an eventual argument. There is only ever one of these
// per index, so the in-degree is the number of placeholder occurrences.
type argVertex struct {
	Index Placeholder
}

func (v *argVertex) Hashcode() interface{} { return fmt.Sprintf("arg: %d", int(v.Index)) }
func (v *argVertex) String() string        { return "arg " + v.Index.String() }

var _ graph.VertexHashable = (*argVertex)(nil)

// usageGraph builds the graph of which slots, across b and every nested
// expression, read which eventual arguments.
func (b *Bound) usageGraph() *graph.Graph {
	var g graph.Graph
	var id int
	b.addToGraph(&g, &id)
	return &g
}

func (b *Bound) addToGraph(g *graph.Graph, id *int) graph.Vertex {
	*id++
	self := *id
	vertex := g.Add(&exprVertex{ID: self, Bound: b})

	for i, s := range b.slots {
		sv := g.Add(&slotVertex{
			Expr:     self,
			Position: i,
			Kind:     s.info().Kind,
		})
		g.AddEdge(vertex, sv)

		switch s := s.(type) {
		case *placeholderSlot:
			g.AddEdge(sv, g.Add(&argVertex{Index: s.index}))

		case *nestedSlot:
			g.AddEdge(sv, s.expr.addToGraph(g, id))
		}
	}

	return vertex
}

// tabulate counts placeholder occurrences across the expression tree and
// records which of b's own placeholder slots are move-eligible.
func (b *Bound) tabulate() {
	g := b.usageGraph()

	b.arity = 0
	for _, raw := range g.Vertices() {
		if v, ok := raw.(*argVertex); ok && v.Index.Index() > b.arity {
			b.arity = v.Index.Index()
		}
	}

	b.uses = make([]int, b.arity+1)
	for i := 1; i <= b.arity; i++ {
		b.uses[i] = g.InDegree(&argVertex{Index: P(i)})
	}

	for _, s := range b.slots {
		if ps, ok := s.(*placeholderSlot); ok {
			ps.move = b.uses[ps.index] == 1
		}
	}

	if b.logger.IsTrace() {
		b.logger.Trace("usage graph", "func", b.fn.Name(), "graph", g.String())
		for i := 1; i <= b.arity; i++ {
			b.logger.Trace("placeholder readers",
				"placeholder", P(i).String(),
				"uses", b.uses[i],
				"slots", readers(g, P(i)))
		}
	}
}

// readers returns the names of the slots that read placeholder p, sorted.
func readers(g *graph.Graph, p Placeholder) []string {
	var result []string
	for _, v := range g.InEdges(&argVertex{Index: p}) {
		result = append(result, graph.VertexName(v))
	}
	sort.Strings(result)

	return result
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package graph

import (
	"bytes"
	"fmt"
	"sort"
)

// Graph is a directed graph keyed by vertex hash codes. Edges are
// unweighted and at most one edge exists between an ordered pair of
// vertices.
//
// The zero value is ready to use. It is unsafe to call any method on Graph
// concurrently.
type Graph struct {
	adjacencyOut map[interface{}]map[interface{}]struct{}
	adjacencyIn  map[interface{}]map[interface{}]struct{}

	// hash maintains the mapping of hash codes to the representative Vertex.
	// Two vertices with identical hash codes are the same vertex even if
	// v1 != v2 in Go. The first one added is the representative.
	hash map[interface{}]Vertex
}

// Add adds a vertex to the graph. Adding a vertex whose hash code is
// already present is a no-op.
func (g *Graph) Add(v Vertex) Vertex {
	g.init()
	h := hashcode(v)
	if _, ok := g.adjacencyOut[h]; !ok {
		g.adjacencyOut[h] = make(map[interface{}]struct{})
		g.adjacencyIn[h] = make(map[interface{}]struct{})
		g.hash[h] = v
	}
	return v
}

// Vertices returns the list of all the vertices in this graph.
func (g *Graph) Vertices() []Vertex {
	result := make([]Vertex, 0, len(g.hash))
	for _, v := range g.hash {
		result = append(result, v)
	}

	return result
}

// AddEdge adds a directed edge to the graph from v1 to v2. Both v1 and v2
// must already be in the Graph via Add or this will do nothing.
func (g *Graph) AddEdge(v1, v2 Vertex) {
	g.init()
	h1, h2 := hashcode(v1), hashcode(v2)

	outMap, ok := g.adjacencyOut[h1]
	if !ok {
		return
	}
	inMap, ok := g.adjacencyIn[h2]
	if !ok {
		return
	}

	outMap[h2] = struct{}{}
	inMap[h1] = struct{}{}
}

// InEdges returns the sources of all edges entering v.
func (g *Graph) InEdges(v Vertex) []Vertex {
	return g.lookup(g.adjacencyIn[hashcode(v)])
}

// InDegree returns the number of edges entering v.
func (g *Graph) InDegree(v Vertex) int {
	return len(g.adjacencyIn[hashcode(v)])
}

// String outputs some human-friendly output for the graph structure.
func (g *Graph) String() string {
	var buf bytes.Buffer

	// Build the list of node names and a mapping so that we can more
	// easily alphabetize the output to remain deterministic.
	names := make([]string, 0, len(g.hash))
	mapping := make(map[string]Vertex, len(g.hash))
	for _, v := range g.hash {
		name := VertexName(v)
		names = append(names, name)
		mapping[name] = v
	}
	sort.Strings(names)

	for _, name := range names {
		v := mapping[name]
		targets := g.adjacencyOut[hashcode(v)]

		buf.WriteString(fmt.Sprintf("%s\n", name))

		deps := make([]string, 0, len(targets))
		for targetHash := range targets {
			deps = append(deps, VertexName(g.hash[targetHash]))
		}
		sort.Strings(deps)

		for _, d := range deps {
			buf.WriteString(fmt.Sprintf("  %s\n", d))
		}
	}

	return buf.String()
}

func (g *Graph) lookup(edges map[interface{}]struct{}) []Vertex {
	if len(edges) == 0 {
		return nil
	}

	result := make([]Vertex, 0, len(edges))
	for h := range edges {
		result = append(result, g.hash[h])
	}

	return result
}

func (g *Graph) init() {
	if g.adjacencyOut == nil {
		g.adjacencyOut = make(map[interface{}]map[interface{}]struct{})
	}
	if g.adjacencyIn == nil {
		g.adjacencyIn = make(map[interface{}]map[interface{}]struct{})
	}
	if g.hash == nil {
		g.hash = make(map[interface{}]Vertex)
	}
}

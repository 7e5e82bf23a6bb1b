// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/internal/envtest"
)

// ExampleDijkstra demonstrates computing shortest distances on a triangle.
func ExampleDijkstra() {
	g := envtest.NewGraph[string](false)
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)

	dist, _, err := dijkstra.Dijkstra[string](g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[A]=%v, dist[B]=%v, dist[C]=%v\n", dist["A"], dist["B"], dist["C"])
	// Output: dist[A]=0, dist[B]=1, dist[C]=3
}

// ExampleSolve demonstrates the start→goal form driven by Environment.Reset.
func ExampleSolve() {
	g := envtest.NewGraph[string](true)
	g.AddEdge("A", "B", 2)
	g.AddEdge("A", "C", 1)
	g.AddEdge("C", "B", 1)
	g.AddEdge("B", "D", 3)
	g.SetEndpoints("A", "D")

	path, cost, found, _ := dijkstra.Solve[string](g)
	fmt.Println(found, cost, path)
	// Output: true 5 [A B D]
}

package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// BenchmarkSearch_DefaultBoard runs a full corner-to-corner search on the
// default 90×40 board with seeded shape obstacles.
// Complexity: O(W·H · log(W·H)) per run.
func BenchmarkSearch_DefaultBoard(b *testing.B) {
	g, err := builder.BuildGrid(90, 40, []builder.BuilderOption{builder.WithSeed(7)}, builder.ShapeObstacles())
	if err != nil {
		b.Fatalf("setup BuildGrid failed: %v", err)
	}
	start, end := gridgraph.Position{X: 0, Y: 0}, gridgraph.Position{X: 89, Y: 39}
	_ = g.SetObstacle(start, false)
	_ = g.SetObstacle(end, false)
	s := dijkstra.New(g)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Start(start, end); err != nil {
			b.Fatal(err)
		}
		if _, _, err := search.Drain(s, 0); err != nil {
			b.Fatal(err)
		}
	}
}

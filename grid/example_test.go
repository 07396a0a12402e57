package grid_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

// ExampleNew shows the default endpoint placement and the protected
// endpoint cells.
func ExampleNew() {
	g, _ := grid.New(3, 4)
	fmt.Println(g.Start(), g.Finish())

	fmt.Println(g.SetObstacle(grid.Coord{Row: 1, Col: 1}))
	fmt.Println(g.SetObstacle(g.Start())) // endpoints never become obstacles
	fmt.Println(g.MoveFinish(g.Start()))  // nor collide
	fmt.Println(g)
	// Output:
	// (0,0) (2,3)
	// true
	// false
	// false
	// S...
	// .#..
	// ...F
}

// ExampleParse round-trips an ASCII layout.
func ExampleParse() {
	g, err := grid.Parse([]string{
		"..#.",
		"S.#F",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Rows(), g.Cols(), g.Count(grid.Obstacle))
	fmt.Println(g.Lines())
	// Output:
	// 2 4 2
	// [..#. S.#F]
}

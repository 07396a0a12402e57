package api

// Point is a grid coordinate on the wire.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SearchRequest asks for one search on an ASCII grid ('.', '#', 'S', 'F').
type SearchRequest struct {
	Grid      []string `json:"grid" binding:"required,min=1"`
	Algorithm string   `json:"algorithm"` // "bfs" (default) or "astar"
}

// SearchResponse reports a completed search. PathLength counts steps from
// Start to Finish and is -1 when Finish is unreachable.
type SearchResponse struct {
	ID              string  `json:"id"`
	Algorithm       string  `json:"algorithm"`
	Found           bool    `json:"found"`
	Path            []Point `json:"path"`
	Visited         []Point `json:"visited"`
	VisitedCount    int     `json:"visitedCount"`
	PathLength      int     `json:"pathLength"`
	ExecutionTimeMs float64 `json:"executionTimeMs"`
}

// RandomGridRequest asks for a randomized grid with default endpoints.
// MaxCoverage defaults to 50; Seed 0 seeds from the clock.
type RandomGridRequest struct {
	Rows        int   `json:"rows" binding:"required,min=1"`
	Cols        int   `json:"cols" binding:"required,min=1"`
	MaxCoverage int   `json:"maxCoverage" binding:"omitempty,min=1,max=100"`
	Seed        int64 `json:"seed"`
}

// RandomGridResponse carries the generated grid and the drawn coverage.
type RandomGridResponse struct {
	Grid     []string `json:"grid"`
	Coverage int      `json:"coverage"`
}

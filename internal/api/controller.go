package api

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// Controller registers a group of routes.
type Controller interface {
	Register(*gin.RouterGroup)
}

// SearchController serves search and grid generation.
type SearchController struct {
	maxCells int
	log      logrus.FieldLogger
}

// NewSearchController returns a controller that rejects grids larger than
// maxCells.
func NewSearchController(maxCells int, log logrus.FieldLogger) *SearchController {
	if log == nil {
		log = discard()
	}
	return &SearchController{maxCells: maxCells, log: log}
}

// Register registers the search routes.
func (c *SearchController) Register(route *gin.RouterGroup) {
	route.POST("/search", c.search)
	route.POST("/grid/random", c.randomGrid)
}

// search handles POST /search.
func (c *SearchController) search(ctx *gin.Context) {
	var request SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if rows, cols := len(request.Grid), len(request.Grid[0]); !c.fits(rows, cols) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("grid %dx%d exceeds %d cells", rows, cols, c.maxCells)})
		return
	}

	alg := search.BreadthFirst
	if request.Algorithm != "" {
		var err error
		if alg, err = search.ParseAlgorithm(request.Algorithm); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	g, err := grid.Parse(request.Grid)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := search.Run(g, alg, search.WithLogger(c.log))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := &SearchResponse{
		ID:              uuid.NewString(),
		Algorithm:       alg.Key(),
		Found:           res.Found,
		Path:            toPoints(res.Path),
		Visited:         toPoints(res.Visited),
		VisitedCount:    len(res.Visited),
		PathLength:      res.Len(),
		ExecutionTimeMs: float64(res.Elapsed) / float64(time.Millisecond),
	}
	c.log.WithFields(logrus.Fields{
		"id":        response.ID,
		"algorithm": response.Algorithm,
		"cells":     g.Size(),
		"found":     response.Found,
	}).Info("search served")
	ctx.JSON(http.StatusOK, response)
}

// randomGrid handles POST /grid/random.
func (c *SearchController) randomGrid(ctx *gin.Context) {
	var request RandomGridRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !c.fits(request.Rows, request.Cols) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("grid %dx%d exceeds %d cells", request.Rows, request.Cols, c.maxCells)})
		return
	}
	if request.MaxCoverage == 0 {
		request.MaxCoverage = 50
	}

	g, err := grid.New(request.Rows, request.Cols)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	coverage, err := g.Randomize(request.MaxCoverage, grid.NewRand(request.Seed))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &RandomGridResponse{Grid: g.Lines(), Coverage: coverage})
}

// fits reports whether a rows×cols grid stays within maxCells without
// computing an overflowing product.
func (c *SearchController) fits(rows, cols int) bool {
	if rows <= 0 || cols <= 0 {
		return true // left to grid.New
	}
	return rows <= c.maxCells && cols <= c.maxCells && rows <= c.maxCells/cols
}

func discard() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func toPoints(cs []grid.Coord) []Point {
	out := make([]Point, len(cs))
	for i, c := range cs {
		out[i] = Point{Row: c.Row, Col: c.Col}
	}
	return out
}

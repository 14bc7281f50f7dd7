// Package http exposes the solver, analyser and generator over a small
// JSON API.
package http

import (
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"sudoku-engine/internal/analyser"
	"sudoku-engine/internal/generator"
	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/puzzles"
	"sudoku-engine/internal/solver"
	"sudoku-engine/internal/strategies"
)

// Server bundles the dependencies of the HTTP handlers.
type Server struct {
	Store *puzzles.Store
	Log   zerolog.Logger
}

// RegisterRoutes wires the API onto the gin engine.
func RegisterRoutes(r *gin.Engine, s *Server) {
	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/solve", s.solveHandler)
		api.POST("/analyse", s.analyseHandler)
		api.POST("/generate", s.generateHandler)
		api.GET("/puzzles", s.listHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// emptyGridForVariant maps a variant name to an empty grid template.
func emptyGridForVariant(variant string) (*grid.Grid, bool) {
	switch variant {
	case "", "classic":
		return grid.EmptyClassic(), true
	case "classic6":
		return grid.EmptyClassic6(), true
	case "nonconsecutive":
		return grid.EmptyNonconsecutive(), true
	case "diagonal-nonconsecutive":
		return grid.EmptyDiagonalNonconsecutive(), true
	default:
		return nil, false
	}
}

type puzzleRequest struct {
	Puzzle  string `json:"puzzle" binding:"required"`
	Variant string `json:"variant"`
}

func (s *Server) parsePuzzle(c *gin.Context) (*grid.Grid, string, bool) {
	var req puzzleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, "", false
	}

	empty, ok := emptyGridForVariant(req.Variant)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown variant: " + req.Variant})
		return nil, "", false
	}

	g, err := grid.FromString(empty, req.Puzzle)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return nil, "", false
	}
	return g, req.Variant, true
}

func (s *Server) solveHandler(c *gin.Context) {
	g, _, ok := s.parsePuzzle(c)
	if !ok {
		return
	}

	details := solver.Solve(g, solver.WithAllStrategies())

	steps := make([]gin.H, 0, len(details.Steps))
	for _, step := range details.Steps {
		steps = append(steps, gin.H{
			"strategy":    step.Strategy.Name(),
			"description": step.Description,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"result": details.Result.String(),
		"grid":   g.PuzzleString(),
		"steps":  steps,
	})
}

func (s *Server) analyseHandler(c *gin.Context) {
	g, variant, ok := s.parsePuzzle(c)
	if !ok {
		return
	}

	clues := make([]int, g.NumCells())
	for cell := 0; cell < g.NumCells(); cell++ {
		clues[cell] = g.Value(cell)
	}
	empty, _ := emptyGridForVariant(variant)

	unique := generator.HasUniqueSolution(empty, clues)
	solvable := analyser.MeetsCriteria(g, analyser.SolvableWith(solver.WithAllStrategies()))

	response := gin.H{
		"unique":   unique,
		"solvable": solvable,
	}
	if counts, ok := analyser.StepsToSolve(g, defaultGroups()); ok {
		response["step_counts"] = counts
	}
	c.JSON(http.StatusOK, response)
}

// defaultGroups buckets the catalogue into singles, intersections, subsets,
// patterns and chains for steps-to-solve reporting.
func defaultGroups() [][]strategies.Strategy {
	return [][]strategies.Strategy{
		{
			{Kind: strategies.KindFullHouse},
			{Kind: strategies.KindHiddenSingle},
			{Kind: strategies.KindNakedSingle},
		},
		{
			{Kind: strategies.KindBoxLine},
			{Kind: strategies.KindCellInteraction},
		},
		{
			{Kind: strategies.KindNakedSubset, Degree: 2},
			{Kind: strategies.KindHiddenSubset, Degree: 2},
			{Kind: strategies.KindNakedSubset, Degree: 3},
			{Kind: strategies.KindHiddenSubset, Degree: 3},
			{Kind: strategies.KindNakedSubset, Degree: 4},
			{Kind: strategies.KindHiddenSubset, Degree: 4},
		},
		{
			{Kind: strategies.KindFish, Degree: 2},
			{Kind: strategies.KindFish, Degree: 3},
			{Kind: strategies.KindFish, Degree: 4},
			{Kind: strategies.KindFinnedFish, Degree: 2},
			{Kind: strategies.KindFinnedFish, Degree: 3},
			{Kind: strategies.KindFinnedFish, Degree: 4},
			{Kind: strategies.KindXYWing},
			{Kind: strategies.KindXYZWing},
			{Kind: strategies.KindWWing},
			{Kind: strategies.KindWXYZWing},
			{Kind: strategies.KindMsls},
		},
		{
			{Kind: strategies.KindXChain},
			{Kind: strategies.KindXYChain},
			{Kind: strategies.KindAic},
			{Kind: strategies.KindForcingChain},
		},
	}
}

func (s *Server) generateHandler(c *gin.Context) {
	count := 1
	if raw := c.Query("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 20 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "count must be between 1 and 20"})
			return
		}
		count = parsed
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	template := grid.EmptyClassic()

	generated := make([]puzzles.Puzzle, 0, count)
	for i := 0; i < count; i++ {
		clues := generator.GeneratePuzzle(template, rng)
		key := make([]byte, len(clues))
		for idx, clue := range clues {
			key[idx] = byte('0' + clue)
		}

		puzzle, err := s.Store.Save(c.Request.Context(), "classic", string(key))
		if err != nil {
			s.Log.Error().Err(err).Msg("failed to store generated puzzle")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store puzzle"})
			return
		}
		generated = append(generated, puzzle)
	}

	c.JSON(http.StatusOK, gin.H{"puzzles": generated})
}

func (s *Server) listHandler(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 500 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 500"})
			return
		}
		limit = parsed
	}

	list, err := s.Store.List(c.Request.Context(), c.Query("variant"), limit)
	if err != nil {
		s.Log.Error().Err(err).Msg("failed to list puzzles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list puzzles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"puzzles": list})
}

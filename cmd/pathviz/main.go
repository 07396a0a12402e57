// Command pathviz opens the interactive grid pathfinding visualizer.
package main

import (
	"os"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/internal/config"
	"github.com/katalvlaran/pathviz/internal/controls"
	"github.com/katalvlaran/pathviz/internal/frontend"
	applog "github.com/katalvlaran/pathviz/internal/log"
	"github.com/katalvlaran/pathviz/search"
	"github.com/katalvlaran/pathviz/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		applog.New(os.Stderr, applog.ParseLevel("info")).WithError(err).Fatal("loading config")
	}
	logger := applog.New(os.Stderr, applog.ParseLevel(cfg.LogLevel))

	g, err := grid.New(cfg.Rows, cfg.Cols)
	if err != nil {
		logger.WithError(err).Fatal("creating grid")
	}

	ctl := controls.New(search.BreadthFirst)
	layout := session.NewLayout(cfg.Rows, cfg.Cols,
		float64(cfg.WindowWidth), float64(cfg.WindowHeight),
		cfg.GridWidth, cfg.GridHeight, cfg.GridGap)

	sess, err := session.New(g, layout, ctl,
		session.WithAudio(frontend.NewBeeper(ctl.Volume)),
		session.WithLogger(applog.Component(logger, "session")),
		session.WithRand(grid.NewRand(cfg.Seed)),
		session.WithMaxCoverage(cfg.MaxCoverage),
		session.WithThreshold(cfg.RevealThreshold),
	)
	if err != nil {
		logger.WithError(err).Fatal("creating session")
	}

	logger.WithField("grid", g.Rows()*g.Cols()).Info("starting visualizer")
	if err := frontend.Run(cfg, sess, ctl, logger); err != nil {
		logger.WithError(err).Fatal("window closed with error")
	}
}

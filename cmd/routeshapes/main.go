package main

import (
	"flag"
	"log/slog"
	"os"

	"routeshapes.onebusaway.org/internal/app"
	"routeshapes.onebusaway.org/internal/shape"
)

func main() {
	var cfg app.Config

	flag.StringVar(&cfg.GTFSSource, "gtfs", ".", "Directory containing shapes.txt, routes.txt and trips.txt, or a static GTFS zip file/URL")
	flag.StringVar(&cfg.OutputPath, "out", "route_shapes.geojson", "Output GeoJSON file")
	flag.Float64Var(&cfg.BufferRadius, "buffer", shape.DefaultBufferRadius, "Coverage buffer radius in coordinate units")
	flag.Float64Var(&cfg.SimplifyTolerance, "tolerance", shape.DefaultSimplifyTolerance, "Douglas-Peucker tolerance in coordinate units")
	flag.IntVar(&cfg.Workers, "workers", 1, "Number of routes to reduce concurrently")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	application := &app.Application{
		Config: cfg,
		Logger: logger,
	}

	if err := application.GenerateRouteShapes(); err != nil {
		logger.Error("failed to generate route shapes", "error", err)
		os.Exit(1)
	}
}

package app

import (
	"log/slog"
	"time"

	"routeshapes.onebusaway.org/internal/export"
	"routeshapes.onebusaway.org/internal/gtfsio"
	"routeshapes.onebusaway.org/internal/logging"
	"routeshapes.onebusaway.org/internal/shape"
)

// Config holds all the configuration settings for our Application. The
// defaults reproduce the reference behavior: read the GTFS tables from the
// current directory and write route_shapes.geojson next to them.
type Config struct {
	GTFSSource        string
	OutputPath        string
	BufferRadius      float64
	SimplifyTolerance float64
	Workers           int
	Verbose           bool
}

// Application holds the dependencies for the route shape generator.
type Application struct {
	Config Config
	Logger *slog.Logger
}

// GenerateRouteShapes runs the whole batch: load the three input tables,
// group shapes by route, reduce and simplify each route's geometry, and
// write the output collection. Input errors abort before any output file
// is produced.
func (app *Application) GenerateRouteShapes() error {
	start := time.Now()

	feed, err := gtfsio.Load(app.Config.GTFSSource, app.Logger)
	if err != nil {
		return err
	}

	index := gtfsio.NewPathIndex(feed.Points)
	grouped := gtfsio.GroupPathsByRoute(feed.Routes, feed.Trips)
	routeIDs := gtfsio.RouteIDsInOrder(feed.Routes, grouped)

	logging.LogOperation(app.Logger, "gtfs_data_loaded",
		slog.String("source", app.Config.GTFSSource),
		slog.Int("routes", len(feed.Routes)),
		slog.Int("shapes", index.Size()),
		slog.Int("routes_with_shapes", len(routeIDs)))

	assembler := shape.NewAssembler(index, app.Logger)
	assembler.BufferRadius = app.Config.BufferRadius
	assembler.SimplifyTolerance = app.Config.SimplifyTolerance
	assembler.Workers = app.Config.Workers

	shapes := assembler.Assemble(routeIDs, grouped)

	if err := export.WriteGeoJSON(app.Config.OutputPath, shapes, app.Logger); err != nil {
		return err
	}

	logging.LogOperation(app.Logger, "route_shapes_written",
		slog.String("output", app.Config.OutputPath),
		slog.Int("features", len(shapes)),
		slog.Duration("duration", time.Since(start)))

	return nil
}

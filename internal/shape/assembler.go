package shape

import (
	"log/slog"
	"sync"

	"github.com/paulmach/orb"

	"routeshapes.onebusaway.org/internal/logging"
	"routeshapes.onebusaway.org/internal/models"
)

// Assembler produces one RouteShape per route from the indexed paths.
type Assembler struct {
	Paths             PathSource
	Logger            *slog.Logger
	BufferRadius      float64
	SimplifyTolerance float64

	// Workers bounds the number of routes reduced concurrently. Each
	// route is independent; values below 2 keep the run sequential.
	Workers int
}

// NewAssembler returns an assembler with the reference tolerances and a
// sequential run model.
func NewAssembler(paths PathSource, logger *slog.Logger) *Assembler {
	return &Assembler{
		Paths:             paths,
		Logger:            logger,
		BufferRadius:      DefaultBufferRadius,
		SimplifyTolerance: DefaultSimplifyTolerance,
		Workers:           1,
	}
}

// Assemble builds the output collection: one simplified RouteShape per
// route ID, in the given route order. Routes whose shape set is empty or
// entirely degenerate produce no entry.
func (a *Assembler) Assemble(routeIDs []string, shapeIDsByRoute map[string][]string) []models.RouteShape {
	results := make([]*models.RouteShape, len(routeIDs))

	if a.Workers > 1 {
		jobs := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < a.Workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					results[i] = a.assembleRoute(routeIDs[i], shapeIDsByRoute[routeIDs[i]])
				}
			}()
		}
		for i := range routeIDs {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	} else {
		for i, routeID := range routeIDs {
			results[i] = a.assembleRoute(routeID, shapeIDsByRoute[routeID])
		}
	}

	shapes := make([]models.RouteShape, 0, len(routeIDs))
	for _, rs := range results {
		if rs != nil {
			shapes = append(shapes, *rs)
		}
	}
	return shapes
}

// assembleRoute runs the reduction pipeline for a single route. Returns nil
// when the route has no usable shape, which callers treat as "no entry".
func (a *Assembler) assembleRoute(routeID string, shapeIDs []string) *models.RouteShape {
	usable := a.usableShapeIDs(routeID, shapeIDs)
	if len(usable) == 0 {
		a.Logger.Warn("route has no usable shapes, skipping",
			slog.String("route_id", routeID),
			slog.Int("associated_shapes", len(shapeIDs)))
		return nil
	}

	representative := Representative(usable, a.Paths)
	seed, _ := a.Paths.Line(representative)

	variants := make([]orb.LineString, 0, len(usable)-1)
	for _, id := range usable {
		if id == representative {
			continue
		}
		line, _ := a.Paths.Line(id)
		variants = append(variants, line)
	}

	merged := Reduce(seed, variants, a.BufferRadius)
	simplified := Simplify(merged, a.SimplifyTolerance)

	logging.LogOperation(a.Logger, "route_shape_assembled",
		slog.String("route_id", routeID),
		slog.String("representative", representative),
		slog.Int("shapes", len(usable)),
		slog.Int("parts", len(simplified)))

	rs := models.NewRouteShape(routeID, simplified)
	return &rs
}

// usableShapeIDs filters a route's shape set down to shapes that exist in
// the index and have at least two points. Buffering and simplification are
// undefined on shorter paths, so they are skipped per shape rather than
// failing the route.
func (a *Assembler) usableShapeIDs(routeID string, shapeIDs []string) []string {
	usable := make([]string, 0, len(shapeIDs))
	for _, id := range shapeIDs {
		line, ok := a.Paths.Line(id)
		if !ok || len(line) < 2 {
			a.Logger.Debug("skipping degenerate shape",
				slog.String("route_id", routeID),
				slog.String("shape_id", id),
				slog.Int("points", len(line)))
			continue
		}
		usable = append(usable, id)
	}
	return usable
}

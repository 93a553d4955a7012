// Package export serializes assembled route shapes to disk.
package export

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/paulmach/orb/geojson"

	"routeshapes.onebusaway.org/internal/logging"
	"routeshapes.onebusaway.org/internal/models"
)

// FeatureCollection converts the assembled shapes into a GeoJSON feature
// collection, one feature per route.
func FeatureCollection(shapes []models.RouteShape) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, rs := range shapes {
		fc.Append(rs.Feature())
	}
	return fc
}

// WriteGeoJSON writes the feature collection for the given shapes to path.
// The collection is marshalled fully before the file is created, so a
// marshalling failure leaves no partial output behind.
func WriteGeoJSON(path string, shapes []models.RouteShape, logger *slog.Logger) (err error) {
	b, err := json.Marshal(FeatureCollection(shapes))
	if err != nil {
		return fmt.Errorf("error marshalling route shapes: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer logging.HandleDeferredError(&err, f.Close, logger, "write_route_shapes")

	if _, err = f.Write(b); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}

	return nil
}

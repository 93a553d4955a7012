package gtfsio

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/jamespfennell/gtfs"

	"routeshapes.onebusaway.org/internal/logging"
)

// Load reads the input tables from source. A directory is read as bare CSV
// tables; a .zip path or an http(s) URL is parsed as a full static GTFS
// archive and converted to the same in-memory tables.
func Load(source string, logger *slog.Logger) (*Feed, error) {
	if IsArchiveSource(source) {
		return LoadArchive(source, logger)
	}
	return LoadDirectory(source, logger)
}

// IsArchiveSource reports whether source should be treated as a zipped GTFS
// feed rather than a directory of CSV tables.
func IsArchiveSource(source string) bool {
	return strings.HasPrefix(source, "http://") ||
		strings.HasPrefix(source, "https://") ||
		strings.HasSuffix(source, ".zip")
}

// LoadArchive loads and parses a static GTFS zip from a local path or URL.
func LoadArchive(source string, logger *slog.Logger) (*Feed, error) {
	isLocalFile := !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://")

	b, err := rawFeedData(source, isLocalFile, logger)
	if err != nil {
		return nil, fmt.Errorf("error reading GTFS data: %w", err)
	}

	staticData, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("error parsing GTFS data: %w", err)
	}

	return convertStatic(staticData), nil
}

func rawFeedData(source string, isLocalFile bool, logger *slog.Logger) ([]byte, error) {
	var b []byte
	var err error

	if isLocalFile {
		b, err = os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local GTFS file: %w", err)
		}
	} else {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("error downloading GTFS data: %w", err)
		}
		defer logging.SafeCloseWithLogging(resp.Body, logger, "download_gtfs")

		b, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading GTFS data: %w", err)
		}
		return b, nil
	}
	return b, nil
}

// convertStatic flattens a parsed gtfs.Static into the neutral tables the
// generator works from. Sequence numbers are the parser's point order;
// trips without a shape are dropped here rather than during grouping.
func convertStatic(data *gtfs.Static) *Feed {
	feed := &Feed{}

	for _, r := range data.Routes {
		feed.Routes = append(feed.Routes, RouteRecord{
			ID:        r.Id,
			AgencyID:  r.Agency.Id,
			ShortName: r.ShortName,
			LongName:  r.LongName,
		})
	}

	for _, t := range data.Trips {
		if t.Route == nil || t.Shape == nil {
			continue
		}
		feed.Trips = append(feed.Trips, TripRecord{
			RouteID: t.Route.Id,
			ShapeID: t.Shape.ID,
		})
	}

	for _, s := range data.Shapes {
		for i, pt := range s.Points {
			feed.Points = append(feed.Points, PointRecord{
				ShapeID:  s.ID,
				Lat:      pt.Latitude,
				Lon:      pt.Longitude,
				Sequence: i,
			})
		}
	}

	return feed
}

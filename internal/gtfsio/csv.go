package gtfsio

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"routeshapes.onebusaway.org/internal/logging"
)

const (
	shapesFile = "shapes.txt"
	routesFile = "routes.txt"
	tripsFile  = "trips.txt"
)

// LoadDirectory reads shapes.txt, routes.txt and trips.txt from a directory
// of GTFS CSV tables. A missing table or a missing required column is fatal.
func LoadDirectory(dir string, logger *slog.Logger) (*Feed, error) {
	feed := &Feed{}

	err := readTable(dir, shapesFile, logger,
		[]string{"shape_id", "shape_pt_lat", "shape_pt_lon", "shape_pt_sequence"},
		func(get func(col string) string) error {
			lat, err := strconv.ParseFloat(get("shape_pt_lat"), 64)
			if err != nil {
				return fmt.Errorf("bad shape_pt_lat %q: %w", get("shape_pt_lat"), err)
			}
			lon, err := strconv.ParseFloat(get("shape_pt_lon"), 64)
			if err != nil {
				return fmt.Errorf("bad shape_pt_lon %q: %w", get("shape_pt_lon"), err)
			}
			seq, err := strconv.Atoi(get("shape_pt_sequence"))
			if err != nil {
				return fmt.Errorf("bad shape_pt_sequence %q: %w", get("shape_pt_sequence"), err)
			}

			feed.Points = append(feed.Points, PointRecord{
				ShapeID:  get("shape_id"),
				Lat:      lat,
				Lon:      lon,
				Sequence: seq,
			})
			return nil
		})
	if err != nil {
		return nil, err
	}

	err = readTable(dir, routesFile, logger,
		[]string{"route_id"},
		func(get func(col string) string) error {
			feed.Routes = append(feed.Routes, RouteRecord{
				ID:        get("route_id"),
				AgencyID:  get("agency_id"),
				ShortName: get("route_short_name"),
				LongName:  get("route_long_name"),
			})
			return nil
		})
	if err != nil {
		return nil, err
	}

	err = readTable(dir, tripsFile, logger,
		[]string{"route_id", "shape_id"},
		func(get func(col string) string) error {
			feed.Trips = append(feed.Trips, TripRecord{
				RouteID: get("route_id"),
				ShapeID: get("shape_id"),
			})
			return nil
		})
	if err != nil {
		return nil, err
	}

	return feed, nil
}

// readTable streams one CSV table through the row callback. The header row
// is indexed by column name; required columns must all be present.
func readTable(dir, name string, logger *slog.Logger, required []string, row func(get func(col string) string) error) error {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("missing input table %s: %w", name, err)
	}
	defer logging.SafeCloseWithLogging(f, logger, "read_"+name)

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("reading %s header: %w", name, err)
	}

	idx := makeIndex(header)
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return fmt.Errorf("%s: missing required column %q", name, col)
		}
	}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%s line %d: %w", name, line+1, err)
		}
		line++

		get := func(col string) string {
			if i, ok := idx[col]; ok && i < len(record) {
				return strings.TrimSpace(record[i])
			}
			return ""
		}
		if err := row(get); err != nil {
			return fmt.Errorf("%s line %d: %w", name, line, err)
		}
	}

	return nil
}

func makeIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		// GTFS files in the wild often start with a UTF-8 BOM.
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	return idx
}

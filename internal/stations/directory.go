// Package stations provides the read-only weather station directory.
package stations

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/Houeta/field-weather-service/internal/models"
)

//go:embed stations.json
var bundledStations []byte

// ErrInvalidStation is returned when a directory entry cannot be used for lookups.
var ErrInvalidStation = errors.New("invalid station")

// Directory is an immutable list of stations, safe for concurrent use.
type Directory struct {
	stations []models.Station
}

type directoryFile struct {
	Stations []models.Station `json:"stations"`
}

// Load reads the directory from path, or from the bundled list when path is empty.
func Load(path string) (*Directory, error) {
	data := bundledStations
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("failed to read stations file: %w", err)
		}
	}

	return Parse(data)
}

// Parse builds a directory from the JSON document {"stations": [...]}.
func Parse(data []byte) (*Directory, error) {
	var file directoryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode stations: %w", err)
	}

	for i, st := range file.Stations {
		if err := validate(st); err != nil {
			return nil, fmt.Errorf("station %d: %w", i, err)
		}
	}

	return &Directory{stations: file.Stations}, nil
}

// Stations returns a copy of all stations in directory order.
func (d *Directory) Stations() []models.Station {
	result := make([]models.Station, len(d.stations))
	copy(result, d.stations)

	return result
}

// Len returns the number of stations.
func (d *Directory) Len() int {
	return len(d.stations)
}

func validate(st models.Station) error {
	if st.Latitude < -90 || st.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidStation, st.Latitude)
	}
	if st.Longitude < -180 || st.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidStation, st.Longitude)
	}

	u, err := url.Parse(st.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: url %q is not an absolute http url", ErrInvalidStation, st.URL)
	}

	return nil
}

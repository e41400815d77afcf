package models

import (
	"encoding/json"
	"fmt"
)

// Station is a weather data source keyed by its location and fetch URL.
// Any extra attributes found in the directory are kept in Attributes and written back on marshal.
type Station struct {
	Latitude   float64
	Longitude  float64
	URL        string
	Attributes map[string]json.RawMessage
}

// Coordinates returns the station location.
func (s Station) Coordinates() Coordinates {
	return Coordinates{Latitude: s.Latitude, Longitude: s.Longitude}
}

// UnmarshalJSON decodes the known station keys and keeps the rest untouched.
func (s *Station) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode station: %w", err)
	}

	var st Station
	if err := decodeKey(raw, "latitude", &st.Latitude); err != nil {
		return err
	}
	if err := decodeKey(raw, "longitude", &st.Longitude); err != nil {
		return err
	}
	if err := decodeKey(raw, "url", &st.URL); err != nil {
		return err
	}

	if len(raw) > 0 {
		st.Attributes = raw
	}
	*s = st

	return nil
}

// MarshalJSON writes the station keys together with its extra attributes.
func (s Station) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Attributes)+3)
	for k, v := range s.Attributes {
		out[k] = v
	}
	out["latitude"] = s.Latitude
	out["longitude"] = s.Longitude
	out["url"] = s.URL

	return json.Marshal(out)
}

func decodeKey(raw map[string]json.RawMessage, key string, dst any) error {
	value, ok := raw[key]
	if !ok {
		return fmt.Errorf("station is missing %q", key)
	}
	delete(raw, key)

	if err := json.Unmarshal(value, dst); err != nil {
		return fmt.Errorf("failed to decode station %q: %w", key, err)
	}

	return nil
}

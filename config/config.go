// Package config groups the tunables of an axial-map build and loads them
// from YAML.
//
// A document only needs the keys it changes; the rest keep their defaults:
//
//	resolution: 64
//	poll_interval: 250ms
//	free_ends: true
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/axialmap/allline"
	"github.com/katalvlaran/axialmap/geom"
	"github.com/katalvlaran/axialmap/polygon"
	"github.com/katalvlaran/axialmap/progress"
)

// ErrInvalid indicates settings that fail validation.
var ErrInvalid = errors.New("config: invalid settings")

// Settings holds every tunable of the pipeline.
type Settings struct {
	// TidyScale times max(width,height) is the shortest wall kept.
	TidyScale float64 `yaml:"tidy_scale"`
	// DedupScale times max(width,height) is the axial line merge tolerance.
	DedupScale float64 `yaml:"dedup_scale"`
	// CropMargin times max(width,height) grows the region before cropping.
	CropMargin float64 `yaml:"crop_margin"`
	// Resolution of the pixel indexes; 0 derives it from the input size.
	Resolution int `yaml:"resolution"`
	// PollInterval between progress reports.
	PollInterval time.Duration `yaml:"poll_interval"`
	// ParallelThreshold is the |cos| above which a corner's edges count as parallel.
	ParallelThreshold float64 `yaml:"parallel_threshold"`
	// FreeEnds lets the ends of free-standing walls anchor axial lines.
	// Interior walls that touch nothing need it to be reached at all.
	FreeEnds bool `yaml:"free_ends"`
	// SingleSeed explores from the seed vertex only, without re-seeding.
	SingleSeed bool `yaml:"single_seed"`
}

// Default returns the settings the pipeline uses when none are given.
func Default() Settings {
	return Settings{
		TidyScale:         geom.ToleranceC,
		DedupScale:        geom.ToleranceB,
		CropMargin:        allline.DefaultCropMargin,
		PollInterval:      progress.DefaultInterval,
		ParallelThreshold: polygon.DefaultParallelThreshold,
	}
}

// Validate reports the first out-of-range field.
func (s Settings) Validate() error {
	switch {
	case !(s.TidyScale >= 0):
		return fmt.Errorf("%w: tidy_scale must be non-negative, got %g", ErrInvalid, s.TidyScale)
	case !(s.DedupScale >= 0):
		return fmt.Errorf("%w: dedup_scale must be non-negative, got %g", ErrInvalid, s.DedupScale)
	case !(s.CropMargin >= 0):
		return fmt.Errorf("%w: crop_margin must be non-negative, got %g", ErrInvalid, s.CropMargin)
	case s.Resolution < 0:
		return fmt.Errorf("%w: resolution must be non-negative, got %d", ErrInvalid, s.Resolution)
	case s.PollInterval < 0:
		return fmt.Errorf("%w: poll_interval must be non-negative, got %v", ErrInvalid, s.PollInterval)
	case !(s.ParallelThreshold > 0 && s.ParallelThreshold <= 1):
		return fmt.Errorf("%w: parallel_threshold must be in (0, 1], got %g", ErrInvalid, s.ParallelThreshold)
	}
	return nil
}

// Parse decodes a YAML document over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("config: parsing settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: reading settings: %w", err)
	}
	return Parse(data)
}

// Marshal encodes s as YAML.
func (s Settings) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(&s)
	if err != nil {
		return nil, fmt.Errorf("config: marshaling settings: %w", err)
	}
	return data, nil
}

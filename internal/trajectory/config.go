package trajectory

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DateRange is an inclusive date window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Epoch is one fixed multi-year bucket used to coarsely date
// establishment events. Label is the integer reported on the output
// layer, by convention the start year.
type Epoch struct {
	StartYear int
	EndYear   int
	Label     int
}

// Config holds every tunable of the analysis. Validate rejects a broken
// configuration before any location is processed.
type Config struct {
	SparseThreshold       float64
	TransitionalThreshold float64
	DenseThreshold        float64
	GainingSlope          float64
	LosingSlope           float64
	BaselineWindow        DateRange
	CurrentWindow         DateRange
	TrendWindow           DateRange
	CompositeMonths       []time.Month
	Epochs                []Epoch
	MaxProjectionYears    int
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DefaultConfig covers the 1985-2025 analysis period with five-year
// epochs and a growing-season month filter.
func DefaultConfig() Config {
	return Config{
		SparseThreshold:       0.2,
		TransitionalThreshold: 0.4,
		DenseThreshold:        0.6,
		GainingSlope:          0.005,
		LosingSlope:           -0.005,
		BaselineWindow:        DateRange{Start: date(1985, time.January, 1), End: date(1989, time.December, 31)},
		CurrentWindow:         DateRange{Start: date(2020, time.January, 1), End: date(2025, time.December, 31)},
		TrendWindow:           DateRange{Start: date(1985, time.January, 1), End: date(2025, time.December, 31)},
		CompositeMonths:       []time.Month{time.June, time.July, time.August, time.September},
		Epochs: []Epoch{
			{StartYear: 1990, EndYear: 1994, Label: 1990},
			{StartYear: 1995, EndYear: 1999, Label: 1995},
			{StartYear: 2000, EndYear: 2004, Label: 2000},
			{StartYear: 2005, EndYear: 2009, Label: 2005},
			{StartYear: 2010, EndYear: 2014, Label: 2010},
			{StartYear: 2015, EndYear: 2019, Label: 2015},
			{StartYear: 2020, EndYear: 2024, Label: 2020},
		},
		MaxProjectionYears: 50,
	}
}

// Validate checks the configuration invariants. A failure here is fatal
// for the whole run.
func (c Config) Validate() error {
	if !(c.SparseThreshold < c.TransitionalThreshold && c.TransitionalThreshold < c.DenseThreshold) {
		return fmt.Errorf("state thresholds must satisfy sparse < transitional < dense, got %v < %v < %v",
			c.SparseThreshold, c.TransitionalThreshold, c.DenseThreshold)
	}
	if c.GainingSlope <= 0 {
		return fmt.Errorf("gaining slope threshold must be positive, got %v", c.GainingSlope)
	}
	if c.LosingSlope >= 0 {
		return fmt.Errorf("losing slope threshold must be negative, got %v", c.LosingSlope)
	}

	windows := []struct {
		name   string
		window DateRange
	}{
		{"baseline", c.BaselineWindow},
		{"current", c.CurrentWindow},
		{"trend", c.TrendWindow},
	}
	for _, w := range windows {
		if w.window.Start.IsZero() || w.window.End.IsZero() {
			return fmt.Errorf("%s window is not set", w.name)
		}
		if w.window.End.Before(w.window.Start) {
			return fmt.Errorf("%s window ends before it starts: %s > %s",
				w.name, w.window.Start.Format("2006-01-02"), w.window.End.Format("2006-01-02"))
		}
	}

	for i, epoch := range c.Epochs {
		if epoch.EndYear < epoch.StartYear {
			return fmt.Errorf("epoch %d ends before it starts: %d > %d", epoch.Label, epoch.StartYear, epoch.EndYear)
		}
		if i == 0 {
			continue
		}
		previous := c.Epochs[i-1]
		if epoch.StartYear <= previous.EndYear {
			return fmt.Errorf("epochs %d and %d overlap or are out of order", previous.Label, epoch.Label)
		}
		if epoch.Label <= previous.Label {
			return fmt.Errorf("epoch labels must be strictly increasing, got %d after %d", epoch.Label, previous.Label)
		}
	}

	for _, month := range c.CompositeMonths {
		if month < time.January || month > time.December {
			return fmt.Errorf("invalid composite month: %d", month)
		}
	}

	if c.MaxProjectionYears <= 0 {
		return fmt.Errorf("max projection years must be positive, got %d", c.MaxProjectionYears)
	}
	return nil
}

type yamlDateRange struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type yamlEpoch struct {
	StartYear int `yaml:"start_year"`
	EndYear   int `yaml:"end_year"`
	Label     int `yaml:"label"`
}

type yamlConfig struct {
	SparseThreshold       *float64       `yaml:"sparse_threshold"`
	TransitionalThreshold *float64       `yaml:"transitional_threshold"`
	DenseThreshold        *float64       `yaml:"dense_threshold"`
	GainingSlope          *float64       `yaml:"gaining_slope"`
	LosingSlope           *float64       `yaml:"losing_slope"`
	BaselineWindow        *yamlDateRange `yaml:"baseline_window"`
	CurrentWindow         *yamlDateRange `yaml:"current_window"`
	TrendWindow           *yamlDateRange `yaml:"trend_window"`
	CompositeMonths       []int          `yaml:"composite_months"`
	Epochs                []yamlEpoch    `yaml:"epochs"`
	MaxProjectionYears    *int           `yaml:"max_projection_years"`
}

func parseDateRange(name string, raw *yamlDateRange) (DateRange, error) {
	start, err := time.Parse("2006-01-02", raw.Start)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid %s window start %q: %v", name, raw.Start, err)
	}
	end, err := time.Parse("2006-01-02", raw.End)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid %s window end %q: %v", name, raw.End, err)
	}
	return DateRange{Start: start, End: end}, nil
}

// LoadConfig reads a YAML configuration file and overlays it on the
// defaults. An empty path returns the validated defaults. The returned
// configuration is always validated.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, cfg.Validate()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %v", err)
	}
	var parsed yamlConfig
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %v", path, err)
	}

	if parsed.SparseThreshold != nil {
		cfg.SparseThreshold = *parsed.SparseThreshold
	}
	if parsed.TransitionalThreshold != nil {
		cfg.TransitionalThreshold = *parsed.TransitionalThreshold
	}
	if parsed.DenseThreshold != nil {
		cfg.DenseThreshold = *parsed.DenseThreshold
	}
	if parsed.GainingSlope != nil {
		cfg.GainingSlope = *parsed.GainingSlope
	}
	if parsed.LosingSlope != nil {
		cfg.LosingSlope = *parsed.LosingSlope
	}
	if parsed.BaselineWindow != nil {
		if cfg.BaselineWindow, err = parseDateRange("baseline", parsed.BaselineWindow); err != nil {
			return Config{}, err
		}
	}
	if parsed.CurrentWindow != nil {
		if cfg.CurrentWindow, err = parseDateRange("current", parsed.CurrentWindow); err != nil {
			return Config{}, err
		}
	}
	if parsed.TrendWindow != nil {
		if cfg.TrendWindow, err = parseDateRange("trend", parsed.TrendWindow); err != nil {
			return Config{}, err
		}
	}
	if parsed.CompositeMonths != nil {
		cfg.CompositeMonths = nil
		for _, m := range parsed.CompositeMonths {
			cfg.CompositeMonths = append(cfg.CompositeMonths, time.Month(m))
		}
	}
	if parsed.Epochs != nil {
		cfg.Epochs = nil
		for _, e := range parsed.Epochs {
			label := e.Label
			if label == 0 {
				label = e.StartYear
			}
			cfg.Epochs = append(cfg.Epochs, Epoch{StartYear: e.StartYear, EndYear: e.EndYear, Label: label})
		}
	}
	if parsed.MaxProjectionYears != nil {
		cfg.MaxProjectionYears = *parsed.MaxProjectionYears
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return cfg, nil
}

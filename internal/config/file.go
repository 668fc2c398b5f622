package config

import "time"

// EngineSettings holds the analysis settings that may be set in the
// configuration file. Zero values mean "not set".
type EngineSettings struct {
	// Lexicon is the path of a YAML lexicon to use instead of the embedded one.
	Lexicon string `yaml:"lexicon,omitempty"`

	// BatchSize overrides the number of concurrent analyses.
	BatchSize int `yaml:"batchSize,omitempty"`

	// MaxTextLength overrides the maximum accepted text length.
	MaxTextLength int `yaml:"maxTextLength,omitempty"`

	// StripHTML enables markup removal for job descriptions.
	StripHTML *bool `yaml:"stripHTML,omitempty"`
}

// AlertSettings holds the default alert filter.
type AlertSettings struct {
	// MinConfidence is the inclusive confidence floor.
	MinConfidence *float64 `yaml:"minConfidence,omitempty"`

	// Levels restricts alerts to the given risk levels.
	Levels []string `yaml:"levels,omitempty"`

	// Window is a duration string such as "24h" or "168h".
	Window string `yaml:"window,omitempty"`
}

// File represents the structure of the .scamscan configuration file.
type File struct {
	// Engine contains analysis settings.
	Engine EngineSettings `yaml:"engine,omitempty"`

	// Alerts contains the default alert filter used by the alerts command.
	Alerts AlertSettings `yaml:"alerts,omitempty"`

	// Database overrides the database directory.
	Database string `yaml:"database,omitempty"`
}

// Apply copies every setting present in the file onto cfg. Settings the
// file leaves unset keep their current value. An unparsable window is
// returned as an error and leaves cfg.TrendWindow untouched.
func (cf *File) Apply(cfg *Config) error {
	if cf.Engine.Lexicon != "" {
		cfg.LexiconPath = cf.Engine.Lexicon
	}
	if cf.Engine.BatchSize != 0 {
		cfg.BatchSize = cf.Engine.BatchSize
	}
	if cf.Engine.MaxTextLength != 0 {
		cfg.MaxTextLength = cf.Engine.MaxTextLength
	}
	if cf.Engine.StripHTML != nil {
		cfg.StripHTML = *cf.Engine.StripHTML
	}
	if cf.Alerts.MinConfidence != nil {
		cfg.AlertMinConfidence = *cf.Alerts.MinConfidence
	}
	if len(cf.Alerts.Levels) > 0 {
		cfg.AlertLevels = append([]string(nil), cf.Alerts.Levels...)
	}
	if cf.Database != "" {
		cfg.DBDir = cf.Database
	}
	if cf.Alerts.Window != "" {
		d, err := time.ParseDuration(cf.Alerts.Window)
		if err != nil {
			return err
		}
		cfg.TrendWindow = d
	}
	return nil
}

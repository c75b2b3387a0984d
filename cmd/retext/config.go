package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/skriva/retext/pkg/ocr"
	"github.com/skriva/retext/pkg/region"
)

// yamlConfig is the on-disk configuration.
type yamlConfig struct {
	Style struct {
		Family string  `yaml:"family"`
		Size   float64 `yaml:"size"`
		Color  string  `yaml:"color"`
	} `yaml:"style"`
	ConfidenceThreshold *float64 `yaml:"confidence_threshold"`
	OCR                 struct {
		Engine      string `yaml:"engine"`
		Language    string `yaml:"language"`
		PageSegMode *int   `yaml:"page_seg_mode"`
	} `yaml:"ocr"`
	DocAI struct {
		ProjectID   string `yaml:"project_id"`
		Location    string `yaml:"location"`
		ProcessorID string `yaml:"processor_id"`
	} `yaml:"docai"`
}

// config is the resolved runtime configuration.
type config struct {
	Style               region.FontStyle
	ConfidenceThreshold float64
	Engine              string
	Language            string
	PageSegMode         int
	DocAI               ocr.DocAIConfig
}

func defaultConfig() config {
	return config{
		Style:               region.FontStyle{Family: region.DefaultFamily, Size: 12, Color: region.Black},
		ConfidenceThreshold: ocr.DefaultConfidenceThreshold,
		Language:            "eng",
		PageSegMode:         6,
	}
}

// loadConfig reads the YAML file and fills in defaults for anything unset.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yc.Style.Family != "" {
		cfg.Style.Family = yc.Style.Family
	}
	if yc.Style.Size > 0 {
		cfg.Style.Size = yc.Style.Size
	}
	if yc.Style.Color != "" {
		col, err := parseHexColor(yc.Style.Color)
		if err != nil {
			return cfg, err
		}
		cfg.Style.Color = col
	}
	if yc.ConfidenceThreshold != nil {
		cfg.ConfidenceThreshold = *yc.ConfidenceThreshold
	}
	cfg.Engine = yc.OCR.Engine
	if yc.OCR.Language != "" {
		cfg.Language = yc.OCR.Language
	}
	if yc.OCR.PageSegMode != nil {
		cfg.PageSegMode = *yc.OCR.PageSegMode
	}
	cfg.DocAI = ocr.DocAIConfig{
		ProjectID:   yc.DocAI.ProjectID,
		Location:    yc.DocAI.Location,
		ProcessorID: yc.DocAI.ProcessorID,
	}
	return cfg, nil
}

// parseHexColor parses an RRGGBB color, with or without a leading '#'.
func parseHexColor(s string) (region.RGB, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	var col region.RGB
	if len(s) != 6 {
		return col, fmt.Errorf("invalid color %q: want RRGGBB", s)
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &col.R, &col.G, &col.B); err != nil {
		return col, fmt.Errorf("invalid color %q: want RRGGBB", s)
	}
	return col, nil
}

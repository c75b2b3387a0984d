package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skriva/retext/pkg/ocr"
	"github.com/skriva/retext/pkg/region"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, region.DefaultFamily, cfg.Style.Family)
	assert.Equal(t, 12.0, cfg.Style.Size)
	assert.Equal(t, ocr.DefaultConfidenceThreshold, cfg.ConfidenceThreshold)
	assert.Equal(t, "eng", cfg.Language)
	assert.Equal(t, 6, cfg.PageSegMode)
	assert.Empty(t, cfg.Engine)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "retext.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
style:
  family: Courier
  size: 14
  color: "FF0000"
confidence_threshold: 50
ocr:
  engine: tesseract
  language: isl
  page_seg_mode: 3
docai:
  project_id: my-project
  location: eu
  processor_id: abc123
`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Courier", cfg.Style.Family)
	assert.Equal(t, 14.0, cfg.Style.Size)
	assert.Equal(t, region.RGB{R: 255}, cfg.Style.Color)
	assert.Equal(t, 50.0, cfg.ConfidenceThreshold)
	assert.Equal(t, "tesseract", cfg.Engine)
	assert.Equal(t, "isl", cfg.Language)
	assert.Equal(t, 3, cfg.PageSegMode)
	assert.Equal(t, "my-project", cfg.DocAI.ProjectID)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want region.RGB
		ok   bool
	}{
		{"000000", region.RGB{}, true},
		{"#FFFFFF", region.RGB{R: 255, G: 255, B: 255}, true},
		{"1a2B3c", region.RGB{R: 0x1a, G: 0x2b, B: 0x3c}, true},
		{"red", region.RGB{}, false},
		{"12345", region.RGB{}, false},
		{"", region.RGB{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseHexColor(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

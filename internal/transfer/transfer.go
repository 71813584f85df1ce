// Package transfer reads and writes the export document: the full state of
// one user with a version tag, as JSON or YAML.
package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Tiliavir/temps-vecu/internal/model"
)

// ErrNotObject is returned when the top level of an import is not an object.
var ErrNotObject = errors.New("import document is not an object")

// Format is the document encoding.
type Format int

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "json"
}

// FormatFor picks the format from a file extension; anything but .yaml/.yml is JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// ParseFormat resolves "json" or "yaml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return JSON, fmt.Errorf("unknown format %q: want json or yaml", s)
}

// FileName is the suggested export name for a given day.
func FileName(t time.Time, f Format) string {
	ext := ".json"
	if f == YAML {
		ext = ".yaml"
	}
	return fmt.Sprintf("temps-vecu-%02d-%02d-%04d%s", t.Day(), int(t.Month()), t.Year(), ext)
}

// Export writes snap as a version 3 document for user.
func Export(w io.Writer, user string, snap model.Snapshot, f Format) error {
	doc := snap.Clone()
	doc.Normalize()
	doc.Version = model.SnapshotVersion
	doc.User = user
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	}
}

// Document is a decoded import. Nil fields were absent and leave the current
// state untouched when applied.
type Document struct {
	Version         *int               `json:"version" yaml:"version"`
	User            *string            `json:"user" yaml:"user"`
	Themes          *[]model.Theme     `json:"themes" yaml:"themes"`
	Entries         *model.Entries     `json:"entries" yaml:"entries"`
	Sizes           *[]int             `json:"sizes" yaml:"sizes"`
	Emotions        *[]string          `json:"emotions" yaml:"emotions"`
	EmotionColors   *map[string]string `json:"emotionColors" yaml:"emotionColors"`
	PebbleColorTray *string            `json:"pebbleColorTray" yaml:"pebbleColorTray"`
	PebbleColorChip *string            `json:"pebbleColorChip" yaml:"pebbleColorChip"`
	PebbleColor     *string            `json:"pebbleColor" yaml:"pebbleColor"`
	RingThickness   *float64           `json:"ringThickness" yaml:"ringThickness"`
	HandleDiameter  *float64           `json:"handleDiameter" yaml:"handleDiameter"`
}

// Import decodes a document. It fails on malformed input and on any top
// level that is not an object; nothing is applied in either case.
func Import(r io.Reader, f Format) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("reading import: %w", err)
	}
	unmarshal := json.Unmarshal
	if f == YAML {
		unmarshal = yaml.Unmarshal
	}

	var probe any
	if err := unmarshal(data, &probe); err != nil {
		return Document{}, fmt.Errorf("decoding %s: %w", f, err)
	}
	if _, ok := probe.(map[string]any); !ok {
		return Document{}, ErrNotObject
	}
	var doc Document
	if err := unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decoding %s: %w", f, err)
	}
	return doc, nil
}

// Apply overlays doc on current and returns the resulting snapshot.
func (doc Document) Apply(current model.Snapshot) model.Snapshot {
	next := current.Clone()
	if doc.Themes != nil {
		next.Themes = append([]model.Theme(nil), (*doc.Themes)...)
	}
	if doc.Entries != nil && *doc.Entries != nil {
		next.Entries = doc.Entries.Clone()
	}
	if doc.Sizes != nil && len(*doc.Sizes) > 0 {
		next.Sizes = append([]int(nil), (*doc.Sizes)...)
	}
	if doc.Emotions != nil {
		next.Emotions = append([]string{}, (*doc.Emotions)...)
	}
	if doc.EmotionColors != nil && *doc.EmotionColors != nil {
		next.EmotionColors = make(map[string]string, len(*doc.EmotionColors))
		for k, v := range *doc.EmotionColors {
			next.EmotionColors[k] = v
		}
	}
	if doc.PebbleColorTray != nil {
		next.PebbleColorTray = *doc.PebbleColorTray
	}
	if doc.PebbleColorChip != nil {
		next.PebbleColorChip = *doc.PebbleColorChip
	}
	if doc.PebbleColorTray == nil && doc.PebbleColorChip == nil && doc.PebbleColor != nil {
		next.PebbleColorTray = *doc.PebbleColor
		next.PebbleColorChip = *doc.PebbleColor
	}
	if doc.RingThickness != nil {
		next.RingThickness = *doc.RingThickness
	}
	if doc.HandleDiameter != nil {
		next.HandleDiameter = *doc.HandleDiameter
	}
	next.Normalize()
	return next
}

package scenario

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/floatzone/pkg/errors"
	"github.com/matzehuels/floatzone/pkg/floats"
)

// Format constants for scenario files.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
)

// Scenario is one containing block and the floats placed in it.
type Scenario struct {
	Name         string  `toml:"name,omitempty" json:"name,omitempty"`
	InlineSize   float64 `toml:"inline_size" json:"inline_size"`
	RespectOrder bool    `toml:"respect_order,omitempty" json:"respect_order,omitempty"`
	Floats       []Float `toml:"float" json:"floats"`
	Clearances   []Query `toml:"clearance,omitempty" json:"clearances,omitempty"`
}

// Float is one float of a scenario.
type Float struct {
	Label   string       `toml:"label,omitempty" json:"label,omitempty"`
	Side    floats.Side  `toml:"side" json:"side"`
	Width   float64      `toml:"width" json:"width"`
	Height  float64      `toml:"height" json:"height"`
	Ceiling float64      `toml:"ceiling,omitempty" json:"ceiling,omitempty"`
	Clear   floats.Clear `toml:"clear,omitempty" json:"clear,omitempty"`

	// Expect is the origin the float must be placed at, if set.
	Expect *[2]float64 `toml:"expect" json:"expect,omitempty"`
}

// Request converts f to a placement request.
func (f Float) Request() floats.Request {
	return floats.Request{
		Side:    f.Side,
		Size:    floats.Size{Inline: f.Width, Block: f.Height},
		Ceiling: f.Ceiling,
		Clear:   f.Clear,
	}
}

// Name returns the label, or "#i" for unlabelled floats.
func (f Float) Name(i int) string {
	if f.Label != "" {
		return f.Label
	}
	return fmt.Sprintf("#%d", i)
}

// Query is a clearance question asked after every float is placed.
type Query struct {
	Clear  floats.Clear `toml:"clear" json:"clear"`
	Expect *float64     `toml:"expect" json:"expect,omitempty"`
}

// Validate checks the scenario without placing anything. Errors carry
// errors.ErrCodeInvalidScenario and wrap the underlying validation error.
func (s *Scenario) Validate() error {
	if err := errors.ValidateLength(errors.ErrCodeInvalidSize, "inline_size", s.InlineSize); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidScenario, err, "scenario %q", s.Name)
	}
	for i, f := range s.Floats {
		if err := f.Request().Validate(s.InlineSize); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScenario, err, "scenario %q: float %s", s.Name, f.Name(i))
		}
	}
	for i, q := range s.Clearances {
		if err := q.Clear.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScenario, err, "scenario %q: clearance #%d", s.Name, i)
		}
	}
	return nil
}

// FormatFromPath returns the scenario format for a file name.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported scenario file extension %q (want .toml or .json)", ext)
	}
}

// Load reads and validates the scenario file at path. A scenario without a
// name is named after the file.
func Load(path string) (*Scenario, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scenario %s", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	s, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Decode reads a scenario in the given format from r and validates it.
func Decode(r io.Reader, format string) (*Scenario, error) {
	var s Scenario
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&s)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "decode toml")
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidScenario, "unknown keys %v", keys)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported scenario format %q", format)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Encode writes s to w in the given format.
func Encode(w io.Writer, s *Scenario, format string) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(s); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported scenario format %q", format)
	}
	return nil
}

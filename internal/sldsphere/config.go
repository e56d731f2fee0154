package sldsphere

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// NuDefault is the interface sharpness used when a shell leaves nu unset.
const NuDefault = 2.5

type ShellCfg struct {
	SLD       Real   `json:"sld" yaml:"sld" toml:"sld"`
	Thickness Real   `json:"thickness" yaml:"thickness" toml:"thickness"`
	Interface Real   `json:"interface,omitempty" yaml:"interface,omitempty" toml:"interface,omitempty"`
	Shape     string `json:"shape,omitempty" yaml:"shape,omitempty" toml:"shape,omitempty"` // erf, rpow, lpow, rexp, lexp
	Nu        *Real  `json:"nu,omitempty" yaml:"nu,omitempty" toml:"nu,omitempty"`
}

// Config is the on-disk model description. Pointer fields distinguish
// "unset" from a legitimate zero.
type Config struct {
	SolventSLD *Real      `json:"solventSLD,omitempty" yaml:"solventSLD,omitempty" toml:"solventSLD,omitempty"`
	Steps      int        `json:"steps,omitempty" yaml:"steps,omitempty" toml:"steps,omitempty"`
	Scale      Real       `json:"scale,omitempty" yaml:"scale,omitempty" toml:"scale,omitempty"`
	Background *Real      `json:"background,omitempty" yaml:"background,omitempty" toml:"background,omitempty"`
	Q          QGrid      `json:"q" yaml:"q" toml:"q"`
	Shells     []ShellCfg `json:"shells" yaml:"shells" toml:"shells"`
}

// Build validates the config and constructs the runtime model and q vector.
func (c *Config) Build() (*Model, []Real, error) {
	stack := make(Stack, 0, len(c.Shells))
	for i, sc := range c.Shells {
		sh, err := sc.Build()
		if err != nil {
			return nil, nil, fmt.Errorf("shell #%d: %w", i, err)
		}
		stack = append(stack, sh)
	}
	m := &Model{
		Stack:      stack,
		SolventSLD: valueOr(c.SolventSLD, SolventSLD),
		Steps:      c.Steps,
		Scale:      c.Scale,
		Background: valueOr(c.Background, Background),
	}
	if err := m.Validate(); err != nil {
		return nil, nil, err
	}
	qs, err := c.Q.Build()
	if err != nil {
		return nil, nil, err
	}
	return m, qs, nil
}

func (sc ShellCfg) Build() (Shell, error) {
	shape := ShapeErf
	if sc.Shape != "" {
		s, err := ParseBlendShape(sc.Shape)
		if err != nil {
			return Shell{}, err
		}
		shape = s
	}
	return Shell{
		SLD:       sc.SLD,
		Thickness: sc.Thickness,
		Interface: sc.Interface,
		Shape:     shape,
		Nu:        valueOr(sc.Nu, NuDefault),
	}, nil
}

func valueOr(p *Real, def Real) Real {
	if p == nil {
		return def
	}
	return *p
}

// LoadConfig reads a JSON, YAML or TOML model file (chosen by extension),
// fills defaults and applies environment overrides.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := decodeConfig(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if len(cfg.Shells) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoShells)
	}
	Logger.Debug("loaded config",
		zap.String("path", path),
		zap.Int("shells", len(cfg.Shells)),
		zap.Int("steps", cfg.Steps),
		zap.Int("qPoints", cfg.Q.Points))
	return cfg, nil
}

func decodeConfig(ext string, data []byte) (*Config, error) {
	var cfg Config
	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return nil, err
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config extension %q (want .json, .yaml, .yml or .toml)", ext)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Steps <= 0 {
		c.Steps = Steps
	}
	if c.Scale <= 0 {
		c.Scale = Scale
	}
	if c.SolventSLD == nil {
		v := Real(SolventSLD)
		c.SolventSLD = &v
	}
	if c.Background == nil {
		v := Real(Background)
		c.Background = &v
	}
	if len(c.Q.Values) == 0 {
		if c.Q.Points <= 0 {
			c.Q.Points = QPoints
		}
		if c.Q.Min <= 0 && c.Q.Max <= 0 {
			c.Q.Min, c.Q.Max = QMin, QMax
		}
	}
}

// applyEnvOverrides lets SLDSPHERE_STEPS and SLDSPHERE_BACKGROUND override the file.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("SLDSPHERE_STEPS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return fmt.Errorf("SLDSPHERE_STEPS: want integer >= 1, got %q", v)
		}
		c.Steps = n
	}
	if v := os.Getenv("SLDSPHERE_BACKGROUND"); v != "" {
		b, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("SLDSPHERE_BACKGROUND: %w", err)
		}
		c.Background = &b
	}
	return nil
}

package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"lox/interpreter-go/pkg/interpreter"
)

// ConfigFileName is the project configuration file searched for by FindConfig.
const ConfigFileName = "lox.yml"

// ColorMode controls coloured error output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid reports whether the mode is one of the supported values.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config represents the parsed contents of lox.yml.
type Config struct {
	Path    string
	Name    string
	Entry   string
	Natives []string
	Echo    bool
	Color   ColorMode
	History string

	entrySet bool
}

// DefaultConfig is used when no lox.yml is present.
func DefaultConfig() *Config {
	return &Config{
		Natives: interpreter.NativeNames(),
		Color:   ColorAuto,
	}
}

// EntryPath resolves Entry relative to the config file's directory.
func (c *Config) EntryPath() string {
	if c.Entry == "" || filepath.IsAbs(c.Entry) || c.Path == "" {
		return c.Entry
	}
	return filepath.Join(filepath.Dir(c.Path), c.Entry)
}

// HistoryPath expands a leading ~ in History.
func (c *Config) HistoryPath() string {
	if !strings.HasPrefix(c.History, "~") {
		return c.History
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, strings.TrimPrefix(c.History, "~"))
}

// InterpreterOptions maps the config onto interpreter construction options.
func (c *Config) InterpreterOptions() []interpreter.Option {
	return []interpreter.Option{interpreter.WithNatives(c.Natives...)}
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

type configFile struct {
	Name    string      `yaml:"name"`
	Entry   *string     `yaml:"entry"`
	Natives *stringList `yaml:"natives"`
	Echo    bool        `yaml:"echo"`
	Color   string      `yaml:"color"`
	History string      `yaml:"history"`
}

// LoadConfig parses lox.yml from disk, returning a validated config.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	cfg, err := decodeConfig(file, absPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeConfig(r io.Reader, path string) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: %s is empty", path)
		}
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return raw.toConfig(path), nil
}

func (cf configFile) toConfig(path string) *Config {
	cfg := DefaultConfig()
	cfg.Path = path
	cfg.Name = strings.TrimSpace(cf.Name)
	if cf.Entry != nil {
		cfg.Entry = strings.TrimSpace(*cf.Entry)
		cfg.entrySet = true
	}
	if cf.Natives != nil {
		cfg.Natives = cf.Natives.Clone()
	}
	cfg.Echo = cf.Echo
	if color := strings.TrimSpace(cf.Color); color != "" {
		cfg.Color = ColorMode(strings.ToLower(color))
	}
	cfg.History = strings.TrimSpace(cf.History)
	return cfg
}

func (c *Config) validate() error {
	var errs ValidationError
	if c.entrySet && c.Entry == "" {
		errs.Issues = append(errs.Issues, "entry must be a non-empty path when provided")
	}
	for _, name := range c.Natives {
		if !interpreter.IsNative(name) {
			errs.Issues = append(errs.Issues, fmt.Sprintf("natives: unknown native %q (known: %s)", name, strings.Join(interpreter.NativeNames(), ", ")))
		}
	}
	if !c.Color.IsValid() {
		errs.Issues = append(errs.Issues, fmt.Sprintf("color must be one of auto, always, never (got %q)", c.Color))
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// FindConfig walks from start up to the filesystem root looking for lox.yml.
// It returns an empty path when none exists.
func FindConfig(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("config: resolve %s: %w", start, err)
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// ResolveConfig loads the config at path, or discovers one from start when
// path is empty. Without a config file the defaults are returned.
func ResolveConfig(path, start string) (*Config, error) {
	if path != "" {
		return LoadConfig(path)
	}
	found, err := FindConfig(start)
	if err != nil {
		return nil, err
	}
	if found == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(found)
}

type stringList []string

func (l stringList) Clone() []string {
	out := make([]string, 0, len(l))
	for _, item := range l {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (l *stringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" || strings.TrimSpace(value.Value) == "" {
			*l = nil
			return nil
		}
		*l = stringList{strings.TrimSpace(value.Value)}
		return nil
	case yaml.SequenceNode:
		items := make([]string, 0, len(value.Content))
		for _, node := range value.Content {
			var str string
			if err := node.Decode(&str); err != nil {
				return err
			}
			items = append(items, str)
		}
		*l = stringList(items)
		return nil
	case yaml.AliasNode:
		return l.UnmarshalYAML(value.Alias)
	default:
		return fmt.Errorf("config: expected string or sequence for list but found %s", value.ShortTag())
	}
}

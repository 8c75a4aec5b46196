package config

import (
	"io"
	"os"
	"sort"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/logtree/channel"
	"github.com/philipp01105/logtree/core"
	"github.com/philipp01105/logtree/logger"
)

// LoggerConfig is the per-logger fragment of a configuration document.
// Empty fields leave the corresponding logger setting untouched.
type LoggerConfig struct {
	Level   string `yaml:"level"`
	Channel string `yaml:"channel"`
}

// Config is a declarative description of a logger hierarchy.
type Config struct {
	Loggers map[string]LoggerConfig `yaml:"loggers"`
}

// Load decodes a YAML configuration document. Unknown keys are rejected.
func Load(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode logging config")
	}
	return cfg, nil
}

// LoadFile reads a YAML configuration document from path.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "open logging config")
	}
	defer f.Close()
	cfg, err := Load(f)
	return cfg, errors.Wrapf(err, "file %s", path)
}

type envOverrides struct {
	Level   string `env:"LOGTREE_LEVEL"`
	Channel string `env:"LOGTREE_CHANNEL"`
}

// FromEnv merges the LOGTREE_LEVEL and LOGTREE_CHANNEL environment
// variables into the root logger entry, overriding whatever the document
// specified there.
func (c *Config) FromEnv() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return errors.Wrap(err, "parse logging env overrides")
	}
	if o.Level == "" && o.Channel == "" {
		return nil
	}
	if c.Loggers == nil {
		c.Loggers = make(map[string]LoggerConfig)
	}
	root := c.Loggers[logger.RootName]
	if o.Level != "" {
		root.Level = o.Level
	}
	if o.Channel != "" {
		root.Channel = o.Channel
	}
	c.Loggers[logger.RootName] = root
	return nil
}

// Apply creates or fetches each configured logger in reg and applies its
// settings. Entries are applied in lexicographic name order, which puts
// every parent before its children, so a child entry always overrides the
// snapshot it just inherited. Unknown levels and channel names fail with
// the underlying InvalidArgument error; nothing applied so far is rolled
// back.
func Apply(reg *logger.Registry, cfg Config) error {
	names := make([]string, 0, len(cfg.Loggers))
	for name := range cfg.Loggers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		lc := cfg.Loggers[name]
		l := reg.Get(name)
		if lc.Level != "" {
			level, err := core.ParseLevel(lc.Level)
			if err != nil {
				return errors.Wrapf(err, "logger %q", name)
			}
			l.SetLevel(level)
		}
		if lc.Channel != "" {
			ch, ok := channel.Find(lc.Channel)
			if !ok {
				return errors.Wrapf(channel.ErrUnknownChannel, "logger %q: %q", name, lc.Channel)
			}
			l.SetChannel(ch)
		}
	}
	return nil
}

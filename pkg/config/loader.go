package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/arthur-debert/backup/pkg/errors"
	"github.com/arthur-debert/backup/pkg/logging"
	"github.com/go-ini/ini"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment variables that override file values
const EnvPrefix = "BACKUP_"

// Recognized keys
const (
	KeyPaths    = "paths"
	KeyExcludes = "excludes"
	KeyClean    = "clean"
)

// Config is the configuration of one run
type Config struct {
	Paths    []string `koanf:"paths" json:"paths" yaml:"paths" toml:"paths"`
	Excludes []string `koanf:"excludes" json:"excludes" yaml:"excludes" toml:"excludes"`
	Clean    bool     `koanf:"clean" json:"clean" yaml:"clean" toml:"clean"`

	// Source is the file the configuration was read from
	Source string `koanf:"-" json:"-" yaml:"-" toml:"-"`
}

// Load reads the configuration file at path and applies environment
// overrides. The format follows the file extension; anything other than
// .toml, .yaml or .yml is read as INI.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config %s", path).WithDetail("path", path)
	}
	if err := loadFile(k, path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config %s", path).WithDetail("path", path)
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	if !k.Exists(KeyPaths) {
		return nil, errors.Newf(errors.ErrConfigInvalid, "missing required key %q in %s", KeyPaths, path).
			WithDetail("path", path).
			WithDetail("key", KeyPaths)
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToListHookFunc(),
				stringToBoolHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "malformed config %s", path).WithDetail("path", path)
	}

	cfg.Paths = compact(cfg.Paths)
	cfg.Excludes = compact(cfg.Excludes)
	cfg.Source = path

	logger.Debug().
		Str("path", path).
		Strs("paths", cfg.Paths).
		Strs("excludes", cfg.Excludes).
		Bool("clean", cfg.Clean).
		Msg("Configuration loaded")
	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return k.Load(file.Provider(path), toml.Parser())
	case ".yaml", ".yml":
		return k.Load(file.Provider(path), yaml.Parser())
	default:
		values, err := readINI(path)
		if err != nil {
			return err
		}
		return k.Load(confmap.Provider(values, "."), nil)
	}
}

// readINI returns the keys of the DEFAULT section, whether implicit or
// written as [DEFAULT] or [default]. Key names are case-insensitive and
// values are kept whole, '#' and ';' included.
func readINI(path string) (map[string]interface{}, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:     true,
		IgnoreInlineComment: true,
	}, path)
	if err != nil {
		return nil, err
	}

	values := make(map[string]interface{})
	for _, name := range []string{strings.ToLower(ini.DefaultSection), ini.DefaultSection} {
		section, err := f.GetSection(name)
		if err != nil {
			continue
		}
		for _, key := range section.Keys() {
			values[key.Name()] = key.String()
		}
	}
	return values, nil
}

var stringSliceType = reflect.TypeOf([]string{})

// stringToListHookFunc splits a single string into a list with SplitList
func stringToListHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != stringSliceType {
			return data, nil
		}
		return SplitList(data.(string)), nil
	}
}

// stringToBoolHookFunc treats only "true" (any case) as true. Unlike
// strconv.ParseBool it never fails: any other string is false.
func stringToBoolHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return data, nil
		}
		return strings.EqualFold(strings.TrimSpace(data.(string)), "true"), nil
	}
}

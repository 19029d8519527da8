// Package config loads the service configuration from YAML and the
// environment through koanf.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// LoadWithEnv reads <name>.yaml from the working directory or one of
// dirs (relative to it), overlays environment variables and decodes the
// result into T. An env var maps onto the YAML key whose segments match
// ignoring case and punctuation, so STORAGE_CACHEDIR sets storage.cacheDir.
func LoadWithEnv[T any](name string, dirs ...string) (*T, error) {
	path, err := findConfigFile(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	fromYAML := k.Raw()
	overrides := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, fromYAML), value
		},
	})
	if err := k.Load(overrides, nil); err != nil {
		return nil, errors.Wrap(err, "load environment")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoderConfig(cfg)}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return cfg, nil
}

func findConfigFile(file string, dirs []string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "working directory")
	}

	candidates := []string{filepath.Join(wd, file)}
	for _, dir := range dirs {
		candidates = append(candidates, filepath.Join(wd, dir, file))
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, nil
		}
	}

	return "", errors.Errorf("%s not found in %s", file, strings.Join(candidates, ", "))
}

// decoderConfig accepts "30s" style durations and string scalars from the
// environment.
func decoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		MatchName:        strings.EqualFold,
	}
}

// canonicalizeEnvKey turns REPLICA_RETRY_MAXRETRIES into
// replica.retry.maxRetries by walking the keys already loaded. Segments
// with no match are lowercased as they are.
func canonicalizeEnvKey(raw string, loaded map[string]any) string {
	var path []string
	level := loaded

	for _, seg := range strings.Split(strings.ToLower(raw), "_") {
		if seg == "" {
			continue
		}
		key, child, ok := matchKey(level, seg)
		if !ok {
			key, child = seg, nil
		}
		path = append(path, key)
		level = child
	}

	return strings.Join(path, ".")
}

func matchKey(level map[string]any, seg string) (string, map[string]any, bool) {
	want := fold(seg)
	for key, value := range level {
		if fold(key) == want {
			child, _ := value.(map[string]any)

			return key, child, true
		}
	}

	return "", nil, false
}

// fold keeps letters and digits, lowercased.
func fold(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/svgbanner/pkg/errors"
)

type fileConfig struct {
	Server   Server                    `toml:"server"`
	Profiles map[string]toml.Primitive `toml:"profiles"`
}

type profileHead struct {
	Base string `toml:"base"`
}

type profileFile struct {
	Base string `toml:"base"`
	Profile
}

// Load reads a TOML configuration file on top of the built-in defaults.
// It returns the keys that were present in the file but not understood, so
// callers can warn about typos.
func Load(path string) (*Config, []string, error) {
	if err := errors.ValidateConfigPath(path); err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
	}
	cfg, undecoded, err := Parse(string(data))
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, undecoded, nil
}

// Parse decodes TOML configuration text on top of the built-in defaults and
// validates the result.
//
// A profile table that names an existing profile overrides only the keys it
// sets. A new profile starts from its base, which must be a built-in
// profile, or from classic when no base is given.
func Parse(data string) (*Config, []string, error) {
	cfg := Default()
	builtins := Default().Profiles

	raw := fileConfig{Server: cfg.Server}
	md, err := toml.Decode(data, &raw)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode")
	}
	cfg.Server = raw.Server

	// Built-in profiles first so new profiles can use overridden bases.
	for _, pass := range []bool{true, false} {
		for name, prim := range raw.Profiles {
			if _, builtin := builtins[name]; builtin != pass {
				continue
			}
			var head profileHead
			if err := md.PrimitiveDecode(prim, &head); err != nil {
				return nil, nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "profile %s", name)
			}

			base, ok := cfg.Profiles[name]
			if head.Base != "" || !ok {
				parent := head.Base
				if parent == "" {
					parent = ProfileClassic
				}
				if _, builtin := builtins[parent]; !builtin {
					return nil, nil, errors.New(errors.ErrCodeInvalidConfig, "profile %s: base %q is not a built-in profile", name, parent)
				}
				base = cfg.Profiles[parent]
			}

			pf := profileFile{Profile: base}
			if err := md.PrimitiveDecode(prim, &pf); err != nil {
				return nil, nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "profile %s", name)
			}
			pf.Profile.Name = name
			cfg.Profiles[name] = pf.Profile
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	var undecoded []string
	for _, key := range md.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return cfg, undecoded, nil
}

// Package frontcfg loads the CLI driver's run-time configuration: a TOML
// file of per-grammar overrides (discardable terminal names, identifier
// length limit) read with github.com/BurntSushi/toml, mirroring
// dekarrin-tunaq's own use of that library for its own config loading. It
// also defines the rezi-encodable compiled grammar bundle that backs
// cmd/frontkit's -compile-cache/-use-cache flags (spec.md §9's build-time
// vs run-time distinction).
package frontcfg

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk shape of a frontkit TOML config file. Every field
// is optional; a missing field keeps the CLI driver's built-in default.
type Config struct {
	// Grammar names the default grammar registry ("regex", "arith",
	// "json", or "jack") when -grammar is not given on the command line.
	Grammar string `toml:"grammar"`

	// MaxIdentLength overrides the identifier-class length limit
	// (lex.Config.MaxLength) for grammars that have an identifier class
	// (arith has none; json and jack do). Zero means unlimited.
	MaxIdentLength int `toml:"max_ident_length"`

	// ExtraDiscard names additional terminal Kinds (by the grammar's own
	// Namer.Name spelling, e.g. "COMMENT") to discard before parsing, on
	// top of whatever the grammar already discards by default.
	ExtraDiscard []string `toml:"extra_discard"`

	// CompileCache is the bundle path restored from when -use-cache is not
	// given. It is only ever read: a bundle is written only when
	// -compile-cache is given explicitly.
	CompileCache string `toml:"compile_cache"`
}

// Default returns the built-in configuration used when no -config flag is
// given.
func Default() Config {
	return Config{Grammar: "json"}
}

// Load reads and decodes a TOML config file at path. A field absent from
// the file keeps Default's value only if the caller starts from Default()
// and overlays Load's result field by field; Load itself just decodes what
// is present.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("frontcfg: decode %s: %w", path, err)
	}
	return cfg, nil
}

// Merge overlays non-zero fields of override onto c and returns the
// result, leaving both inputs untouched.
func (c Config) Merge(override Config) Config {
	out := c
	if override.Grammar != "" {
		out.Grammar = override.Grammar
	}
	if override.MaxIdentLength != 0 {
		out.MaxIdentLength = override.MaxIdentLength
	}
	if len(override.ExtraDiscard) > 0 {
		out.ExtraDiscard = override.ExtraDiscard
	}
	if override.CompileCache != "" {
		out.CompileCache = override.CompileCache
	}
	return out
}

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package declargs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// applyDefaultsFile layers option defaults from a TOML or YAML file, chosen
// by extension. The key set is fixed: an unknown key is a construction error.
func (p *Parser) applyDefaultsFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("defaults file: %w", err)
	}

	vals := make(map[string]any)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(raw, &vals); err != nil {
			return fmt.Errorf("defaults file %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &vals); err != nil {
			return fmt.Errorf("defaults file %s: %w", path, err)
		}
	default:
		return fmt.Errorf("defaults file %s: unsupported extension %q (want .toml, .yaml or .yml)", path, ext)
	}

	for key, val := range vals {
		opt, ok := p.byName[key]
		if !ok {
			return fmt.Errorf("defaults file %s: unknown option %q", path, key)
		}
		def, err := coerce(opt.Kind, val)
		if err != nil {
			return fmt.Errorf("defaults file %s: option %q: %w", path, key, err)
		}
		opt.def = def
	}
	return nil
}

// applyEnv lets environment variables override defaults for options that
// declare one. Command-line values still win.
func (p *Parser) applyEnv() error {
	for _, opt := range p.options {
		if opt.EnvVar == "" {
			continue
		}
		s, ok := p.lookupEnv(opt.EnvVar)
		if !ok {
			continue
		}
		def, err := coerce(opt.Kind, s)
		if err != nil {
			return fmt.Errorf("environment %s: option %q: %w", opt.EnvVar, opt.Name, err)
		}
		opt.def = def
	}
	return nil
}

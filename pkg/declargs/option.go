// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package declargs

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the value type of an option. It determines how command-line
// tokens, defaults, and environment values are converted, and whether the
// option uses toggle semantics (KindBool).
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindDuration
	KindStrings
)

// String returns the type name shown in help output, e.g. "--port int".
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindDuration:
		return "duration"
	case KindStrings:
		return "strings"
	default:
		return "unknown"
	}
}

// Option describes a single command-line option. A slice of Options is the
// explicit, data-only schema form; OptionsFromStruct derives the same
// descriptors from a tagged struct. Options are copied at construction and
// immutable afterwards.
type Option struct {
	// Name is the long flag name, registered as --Name.
	Name string
	// Kind is the value type. KindBool options take no value on the command
	// line: default false means presence stores true, default true means
	// presence stores false.
	Kind Kind
	// Default is the value used when the flag is absent. Accepts a value of
	// the option's Go type or a string literal to be converted.
	Default any
	// Help is the text shown next to the flag in help output.
	Help string
	// Shortcuts are alternate spellings. The first single-character shortcut
	// becomes the -x shorthand; the rest are registered as hidden aliases
	// sharing the same destination (multi-character aliases take --).
	Shortcuts []string
	// EnvVar optionally names an environment variable that overrides Default
	// when set. Command-line values still win.
	EnvVar string
	// Hidden omits the option from help output without disabling it.
	Hidden bool

	def    any // resolved default, typed per Kind
	holder *optionValue
}

func (o *Option) validate() error {
	if o.Name == "" {
		return &SchemaError{Reason: "option has no name"}
	}
	if strings.HasPrefix(o.Name, "-") {
		return &SchemaError{Field: o.Name, Reason: "option name must not start with '-'"}
	}
	if strings.ContainsAny(o.Name, " \t=") {
		return &SchemaError{Field: o.Name, Reason: "option name must not contain spaces or '='"}
	}
	if o.Kind < KindString || o.Kind > KindStrings {
		return &SchemaError{Field: o.Name, Reason: "unknown option kind"}
	}
	for _, s := range o.Shortcuts {
		if s == "" {
			return &SchemaError{Field: o.Name, Reason: "empty shortcut"}
		}
		if strings.HasPrefix(s, "-") {
			return &SchemaError{Field: o.Name, Reason: fmt.Sprintf("shortcut %q must not include the '-' prefix", s)}
		}
	}
	def, err := coerce(o.Kind, o.Default)
	if err != nil {
		return &SchemaError{Field: o.Name, Reason: fmt.Sprintf("bad default: %v", err)}
	}
	o.def = def
	return nil
}

// shorthand splits the option's shortcuts into the pflag single-rune
// shorthand (first one-character shortcut) and the remaining alias spellings.
func (o *Option) shorthand() (string, []string) {
	short := ""
	var aliases []string
	for _, s := range o.Shortcuts {
		if short == "" && len(s) == 1 {
			short = s
			continue
		}
		aliases = append(aliases, s)
	}
	return short, aliases
}

// coerce converts v to the canonical Go type for kind: string, bool, int64,
// uint64, float64, time.Duration or []string. Strings are parsed, so defaults
// declared as tag literals and values read from defaults files or the
// environment all pass through the same conversion.
func coerce(kind Kind, v any) (any, error) {
	if v == nil {
		return zeroFor(kind), nil
	}
	switch kind {
	case KindString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case KindBool:
		switch t := v.(type) {
		case bool:
			return t, nil
		case string:
			b, err := strconv.ParseBool(t)
			if err != nil {
				return nil, fmt.Errorf("invalid bool value %q", t)
			}
			return b, nil
		}
	case KindInt:
		switch t := v.(type) {
		case int:
			return int64(t), nil
		case int8:
			return int64(t), nil
		case int16:
			return int64(t), nil
		case int32:
			return int64(t), nil
		case int64:
			return t, nil
		case string:
			i, err := strconv.ParseInt(t, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid int value %q", t)
			}
			return i, nil
		}
	case KindUint:
		switch t := v.(type) {
		case uint:
			return uint64(t), nil
		case uint8:
			return uint64(t), nil
		case uint16:
			return uint64(t), nil
		case uint32:
			return uint64(t), nil
		case uint64:
			return t, nil
		case int:
			if t < 0 {
				return nil, fmt.Errorf("invalid uint value %d", t)
			}
			return uint64(t), nil
		case int64:
			if t < 0 {
				return nil, fmt.Errorf("invalid uint value %d", t)
			}
			return uint64(t), nil
		case string:
			u, err := strconv.ParseUint(t, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid uint value %q", t)
			}
			return u, nil
		}
	case KindFloat:
		switch t := v.(type) {
		case float32:
			return float64(t), nil
		case float64:
			return t, nil
		case int:
			return float64(t), nil
		case int64:
			return float64(t), nil
		case string:
			f, err := strconv.ParseFloat(t, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid float value %q", t)
			}
			return f, nil
		}
	case KindDuration:
		switch t := v.(type) {
		case time.Duration:
			return t, nil
		case string:
			d, err := time.ParseDuration(t)
			if err != nil {
				return nil, fmt.Errorf("invalid duration %q", t)
			}
			return d, nil
		}
	case KindStrings:
		switch t := v.(type) {
		case []string:
			return append([]string(nil), t...), nil
		case []any:
			out := make([]string, 0, len(t))
			for _, e := range t {
				s, ok := e.(string)
				if !ok {
					return nil, fmt.Errorf("invalid string list element %v", e)
				}
				out = append(out, s)
			}
			return out, nil
		case string:
			return splitList(t), nil
		}
	}
	return nil, fmt.Errorf("cannot use %T as %s", v, kind)
}

func zeroFor(kind Kind) any {
	switch kind {
	case KindBool:
		return false
	case KindInt:
		return int64(0)
	case KindUint:
		return uint64(0)
	case KindFloat:
		return float64(0)
	case KindDuration:
		return time.Duration(0)
	case KindStrings:
		return []string(nil)
	default:
		return ""
	}
}

// splitList splits a comma-separated value, dropping empty elements.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

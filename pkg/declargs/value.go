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

// optionValue is the single destination shared by an option's long flag and
// every alias registered for it. It implements pflag.Value.
type optionValue struct {
	kind    Kind
	def     any
	current any
	changed bool
}

func newOptionValue(kind Kind, def any) *optionValue {
	return &optionValue{kind: kind, def: def, current: def}
}

// reset restores the resolved default so a Parser can be reused; parsed
// results never persist across Parse calls.
func (v *optionValue) reset() {
	v.current = v.def
	v.changed = false
}

func (v *optionValue) Type() string { return v.kind.String() }

func (v *optionValue) Set(s string) error {
	if v.kind == KindStrings {
		parts := splitList(s)
		if v.changed {
			v.current = append(v.current.([]string), parts...)
		} else {
			v.current = parts
		}
		v.changed = true
		return nil
	}
	val, err := coerce(v.kind, s)
	if err != nil {
		return err
	}
	v.current = val
	v.changed = true
	return nil
}

func (v *optionValue) String() string {
	switch t := v.current.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case time.Duration:
		if t == 0 {
			// Keeps pflag from printing "(default 0s)" for zero durations.
			return "0"
		}
		return t.String()
	case []string:
		if len(t) == 0 {
			return ""
		}
		return "[" + strings.Join(t, ",") + "]"
	default:
		return fmt.Sprint(t)
	}
}

// get returns the resolved value. Slices are copied so results stay
// independent of later parses.
func (v *optionValue) get() any {
	if s, ok := v.current.([]string); ok {
		return append([]string(nil), s...)
	}
	return v.current
}

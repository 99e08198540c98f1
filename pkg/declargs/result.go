// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package declargs

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"
)

// Result maps option names to resolved values: either the value provided on
// the command line or the option's default. The key set is fixed at parser
// construction; lookups of unknown names report ok=false and typed getters
// return zero values. A fresh Result is produced by every Parse call.
type Result struct {
	values map[string]any
	names  []string
}

// Names returns the fixed option key set, sorted.
func (r Result) Names() []string {
	names := slices.Clone(r.names)
	slices.Sort(names)
	return names
}

// Has reports whether name is part of the result's key set.
func (r Result) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Value returns the resolved value for name. Values use the canonical types
// string, bool, int64, uint64, float64, time.Duration and []string.
func (r Result) Value(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// String returns the resolved string value, or "" for other kinds and
// unknown names.
func (r Result) String(name string) string {
	v, _ := r.values[name].(string)
	return v
}

// Bool returns the resolved boolean value, or false.
func (r Result) Bool(name string) bool {
	v, _ := r.values[name].(bool)
	return v
}

// Int returns the resolved integer value, or 0.
func (r Result) Int(name string) int {
	v, _ := r.values[name].(int64)
	return int(v)
}

// Uint returns the resolved unsigned value, or 0.
func (r Result) Uint(name string) uint64 {
	v, _ := r.values[name].(uint64)
	return v
}

// Float returns the resolved float value, or 0.
func (r Result) Float(name string) float64 {
	v, _ := r.values[name].(float64)
	return v
}

// Duration returns the resolved duration value, or 0.
func (r Result) Duration(name string) time.Duration {
	v, _ := r.values[name].(time.Duration)
	return v
}

// Strings returns the resolved string-list value, or nil.
func (r Result) Strings(name string) []string {
	v, _ := r.values[name].([]string)
	return v
}

// Decode writes the resolved values back into a tagged schema struct, the
// structured-record counterpart to key lookups. Field names resolve with the
// same tag rules as OptionsFromStruct; fields without a matching option are
// left untouched.
func (r Result) Decode(into any) error {
	v := reflect.ValueOf(into)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("decode target must be a non-nil struct pointer, got %T", into)
	}
	v = v.Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Tag.Get("flag")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(field.Name)
		}
		val, ok := r.values[name]
		if !ok {
			continue
		}
		if err := setField(v.Field(i), val); err != nil {
			return fmt.Errorf("decode field %s: %w", field.Name, err)
		}
	}
	return nil
}

func setField(field reflect.Value, val any) error {
	if field.Type() == reflect.TypeOf(time.Duration(0)) {
		d, ok := val.(time.Duration)
		if !ok {
			return fmt.Errorf("cannot assign %T to duration", val)
		}
		field.SetInt(int64(d))
		return nil
	}
	switch field.Kind() {
	case reflect.String:
		s, ok := val.(string)
		if !ok {
			return fmt.Errorf("cannot assign %T to string", val)
		}
		field.SetString(s)
	case reflect.Bool:
		b, ok := val.(bool)
		if !ok {
			return fmt.Errorf("cannot assign %T to bool", val)
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := val.(int64)
		if !ok {
			return fmt.Errorf("cannot assign %T to int", val)
		}
		field.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, ok := val.(uint64)
		if !ok {
			return fmt.Errorf("cannot assign %T to uint", val)
		}
		field.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, ok := val.(float64)
		if !ok {
			return fmt.Errorf("cannot assign %T to float", val)
		}
		field.SetFloat(f)
	case reflect.Slice:
		s, ok := val.([]string)
		if !ok || field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("cannot assign %T to %s", val, field.Type())
		}
		out := reflect.MakeSlice(field.Type(), len(s), len(s))
		for i, e := range s {
			out.Index(i).SetString(e)
		}
		field.Set(out)
	default:
		return fmt.Errorf("unsupported field type %s", field.Type())
	}
	return nil
}

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package declargs

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Describer is implemented by schema structs that carry their own parser
// description. NewFromStruct uses it when no explicit description was
// supplied.
type Describer interface {
	Description() string
}

// OptionsFromStruct derives option descriptors from the exported fields of a
// struct, in declaration order. Recognized tags:
//
//	flag:"name"     long flag name (default: lowercased field name); "-" excludes the field
//	short:"e,x"     shortcut spellings, comma separated
//	help:"..."      help text
//	default:"..."   default literal, used when the field value is zero
//	env:"NAME"      environment variable overriding the default
//	hidden:"true"   omit from help output
//
// A non-zero field value on the supplied instance takes priority over the
// default tag.
func OptionsFromStruct(schema any) ([]Option, error) {
	v := reflect.ValueOf(schema)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, &SchemaError{Reason: "schema is a nil pointer"}
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, &SchemaError{Reason: fmt.Sprintf("schema must be a struct, got %T", schema)}
	}

	t := v.Type()
	var options []Option
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

		kind, err := kindOf(field.Type)
		if err != nil {
			return nil, &SchemaError{Field: field.Name, Reason: err.Error()}
		}

		opt := Option{
			Name:   name,
			Kind:   kind,
			Help:   field.Tag.Get("help"),
			EnvVar: field.Tag.Get("env"),
			Hidden: field.Tag.Get("hidden") == "true",
		}
		if short := field.Tag.Get("short"); short != "" {
			for _, s := range strings.Split(short, ",") {
				if s = strings.TrimSpace(s); s != "" {
					opt.Shortcuts = append(opt.Shortcuts, s)
				}
			}
		}

		if fv := v.Field(i); !fv.IsZero() {
			opt.Default = fv.Interface()
		} else if def, ok := field.Tag.Lookup("default"); ok {
			opt.Default = def
		}
		options = append(options, opt)
	}
	return options, nil
}

func kindOf(t reflect.Type) (Kind, error) {
	if t == reflect.TypeOf(time.Duration(0)) {
		return KindDuration, nil
	}
	switch t.Kind() {
	case reflect.String:
		return KindString, nil
	case reflect.Bool:
		return KindBool, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindInt, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindUint, nil
	case reflect.Float32, reflect.Float64:
		return KindFloat, nil
	case reflect.Slice:
		if t.Elem().Kind() == reflect.String {
			return KindStrings, nil
		}
	}
	return 0, fmt.Errorf("unsupported field type %s", t)
}

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package declargs

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type serveOptions struct {
	Host     string        `flag:"host" short:"H" help:"Address to bind" default:"localhost"`
	Port     int           `flag:"port" short:"p" help:"Port to listen on" default:"8080"`
	Verbose  bool          `flag:"verbose" short:"v" help:"Display verbose output"`
	Quiet    bool          `flag:"quiet" default:"true" help:"Suppress progress output"`
	Timeout  time.Duration `flag:"timeout" help:"Request timeout" default:"30s"`
	Tags     []string      `flag:"tag" help:"Tags to apply"`
	internal string        // unexported, never an option
	Scratch  string        `flag:"-"` // explicitly excluded
}

func (serveOptions) Description() string { return "Serve files over HTTP" }

func TestOptionsFromStruct(t *testing.T) {
	options, err := OptionsFromStruct(serveOptions{})
	if err != nil {
		t.Fatalf("OptionsFromStruct() error = %v", err)
	}

	want := []Option{
		{Name: "host", Kind: KindString, Help: "Address to bind", Shortcuts: []string{"H"}, Default: "localhost"},
		{Name: "port", Kind: KindInt, Help: "Port to listen on", Shortcuts: []string{"p"}, Default: "8080"},
		{Name: "verbose", Kind: KindBool, Help: "Display verbose output", Shortcuts: []string{"v"}},
		{Name: "quiet", Kind: KindBool, Help: "Suppress progress output", Default: "true"},
		{Name: "timeout", Kind: KindDuration, Help: "Request timeout", Default: "30s"},
		{Name: "tag", Kind: KindStrings, Help: "Tags to apply"},
	}
	if diff := cmp.Diff(want, options, cmpopts.IgnoreUnexported(Option{})); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestOptionsFromStruct_FieldValueBeatsDefaultTag(t *testing.T) {
	options, err := OptionsFromStruct(serveOptions{Host: "0.0.0.0"})
	if err != nil {
		t.Fatalf("OptionsFromStruct() error = %v", err)
	}
	if got := options[0].Default; got != "0.0.0.0" {
		t.Errorf("host default = %v, want %q", got, "0.0.0.0")
	}
	// Zero fields still fall back to the tag literal.
	if got := options[1].Default; got != "8080" {
		t.Errorf("port default = %v, want %q", got, "8080")
	}
}

func TestOptionsFromStruct_PointerSchema(t *testing.T) {
	options, err := OptionsFromStruct(&serveOptions{Port: 9090})
	if err != nil {
		t.Fatalf("OptionsFromStruct() error = %v", err)
	}
	if got := options[1].Default; got != 9090 {
		t.Errorf("port default = %v, want 9090", got)
	}
}

func TestOptionsFromStruct_Errors(t *testing.T) {
	var se *SchemaError

	if _, err := OptionsFromStruct(42); !errors.As(err, &se) {
		t.Errorf("OptionsFromStruct(42) error = %v, want SchemaError", err)
	}
	if _, err := OptionsFromStruct((*serveOptions)(nil)); !errors.As(err, &se) {
		t.Errorf("OptionsFromStruct(nil pointer) error = %v, want SchemaError", err)
	}

	type badSchema struct {
		Callback func() `flag:"cb"`
	}
	if _, err := OptionsFromStruct(badSchema{}); !errors.As(err, &se) {
		t.Errorf("OptionsFromStruct(badSchema) error = %v, want SchemaError", err)
	}
}

func TestNewFromStruct_EndToEnd(t *testing.T) {
	p, err := NewFromStruct("serve", serveOptions{})
	if err != nil {
		t.Fatalf("NewFromStruct() error = %v", err)
	}
	if got, want := p.NumOptions(), 6; got != want {
		t.Errorf("NumOptions() = %d, want %d", got, want)
	}

	res, err := p.Parse([]string{"-H", "0.0.0.0", "--verbose", "--quiet", "--tag", "a", "--tag", "b"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var got serveOptions
	if err := res.Decode(&got); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := serveOptions{
		Host:    "0.0.0.0",
		Port:    8080,
		Verbose: true,
		Quiet:   false, // default true, presence inverts
		Timeout: 30 * time.Second,
		Tags:    []string{"a", "b"},
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(serveOptions{})); diff != "" {
		t.Errorf("decoded options mismatch (-want +got):\n%s", diff)
	}
}

func TestNewFromStruct_DescriptionFromSchema(t *testing.T) {
	p, err := NewFromStruct("serve", serveOptions{})
	if err != nil {
		t.Fatalf("NewFromStruct() error = %v", err)
	}
	if !strings.Contains(p.Help(), "Serve files over HTTP") {
		t.Errorf("help output missing schema description:\n%s", p.Help())
	}

	// An explicit description wins over the schema's.
	p, err = NewFromStruct("serve", serveOptions{}, WithDescription("Custom description"))
	if err != nil {
		t.Fatalf("NewFromStruct() error = %v", err)
	}
	help := p.Help()
	if !strings.Contains(help, "Custom description") || strings.Contains(help, "Serve files over HTTP") {
		t.Errorf("explicit description did not win:\n%s", help)
	}
}

func TestNewFromStruct_EnvOverridesDefault(t *testing.T) {
	type options struct {
		Host string `flag:"host" env:"TOOL_HOST" default:"localhost"`
	}
	env := map[string]string{"TOOL_HOST": "example.com"}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	p, err := NewFromStruct("tool", options{}, WithEnvLookup(lookup))
	if err != nil {
		t.Fatalf("NewFromStruct() error = %v", err)
	}
	res, err := p.Parse(nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := res.String("host"); got != "example.com" {
		t.Errorf("host = %q, want %q (env should beat default)", got, "example.com")
	}

	// Command line still wins over the environment.
	res, err = p.Parse([]string{"--host", "cli.example.com"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := res.String("host"); got != "cli.example.com" {
		t.Errorf("host = %q, want %q (CLI should beat env)", got, "cli.example.com")
	}
}

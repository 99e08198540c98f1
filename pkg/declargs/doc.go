// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package declargs derives a working command-line parser from a declarative
// option schema: typed fields, default values, help text, and shortcut
// aliases, without repeating option names as string literals at every use
// site.
//
// A schema is either a tagged struct or an explicit []Option list. Each
// non-excluded field produces exactly one flag, registered on a spf13/pflag
// flag set that handles tokenization, value forms and diagnostics.
//
// # Basic usage
//
//	type options struct {
//	    Example string `flag:"example" short:"e" help:"Example option"`
//	    Verbose bool   `flag:"verbose" help:"Display verbose output"`
//	}
//
//	p := declargs.Must(declargs.NewFromStruct("mytool", options{}))
//	res := p.MustParse(os.Args[1:])
//	fmt.Println(res.String("example"), res.Bool("verbose"))
//
// Results allow key-based access (String, Bool, Int, ...) over a key set
// fixed at construction, or can be decoded back into the schema struct:
//
//	var opts options
//	if err := res.Decode(&opts); err != nil { ... }
//
// # Boolean semantics
//
// Boolean options take no value on the command line. A bool with default
// false becomes a store-true flag; a bool with default true becomes a
// store-false flag, so giving the flag always inverts the default. All other
// kinds require one value per invocation, stored as provided.
//
// # Shortcuts
//
// Shortcut spellings come from the short tag (comma separated) or from an
// explicit side table passed with WithShortcuts. The first single-character
// shortcut becomes the -x shorthand; further spellings are hidden aliases
// resolving to the same destination. Multi-character aliases are spelled
// with a double dash.
//
// # Layered defaults
//
// Defaults resolve lowest to highest: schema default, defaults file
// (WithDefaultsFile, TOML or YAML), environment variable (env tag), command
// line.
package declargs

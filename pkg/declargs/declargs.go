// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package declargs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
)

// exit is swapped out in tests.
var exit = os.Exit

// Parser derives a working command-line parser from a declarative option
// schema. Construction happens once; each Parse call produces a fresh Result.
// Every Parser owns its own flag set, so instances share no state.
type Parser struct {
	name        string
	description string

	options []*Option
	byName  map[string]*Option
	fs      *pflag.FlagSet

	out          io.Writer
	errOut       io.Writer
	defaultsFile string
	lookupEnv    func(string) (string, bool)
	shortcuts    map[string][]string
}

// ParserOption customizes parser construction.
type ParserOption func(*Parser)

// WithDescription sets the one-line description shown at the top of help
// output. It wins over a schema-provided description.
func WithDescription(desc string) ParserOption {
	return func(p *Parser) { p.description = desc }
}

// withDefaultDescription applies a schema-provided description only when no
// explicit one was supplied.
func withDefaultDescription(desc string) ParserOption {
	return func(p *Parser) {
		if p.description == "" {
			p.description = desc
		}
	}
}

// WithShortcuts supplies shortcut spellings as a side table keyed by option
// name, merged with any shortcuts declared on the options themselves.
func WithShortcuts(shorts map[string][]string) ParserOption {
	return func(p *Parser) {
		for name, aliases := range shorts {
			p.shortcuts[name] = append(p.shortcuts[name], aliases...)
		}
	}
}

// WithOutput redirects help output (default os.Stdout).
func WithOutput(w io.Writer) ParserOption {
	return func(p *Parser) { p.out = w }
}

// WithErrorOutput redirects parse diagnostics (default os.Stderr).
func WithErrorOutput(w io.Writer) ParserOption {
	return func(p *Parser) { p.errOut = w }
}

// WithDefaultsFile reads option defaults from a TOML or YAML file, chosen by
// extension. File values override schema defaults; environment variables and
// command-line values still win.
func WithDefaultsFile(path string) ParserOption {
	return func(p *Parser) { p.defaultsFile = path }
}

// WithEnvLookup replaces os.LookupEnv for EnvVar resolution.
func WithEnvLookup(fn func(string) (string, bool)) ParserOption {
	return func(p *Parser) { p.lookupEnv = fn }
}

// New builds a parser from an explicit option list. Every option produces
// exactly one flag; shortcut spellings resolve to the same destination as the
// long form. Schema faults (bad names, bad defaults, duplicate spellings) are
// construction errors.
func New(name string, options []Option, mods ...ParserOption) (*Parser, error) {
	p := &Parser{
		name:      name,
		byName:    make(map[string]*Option, len(options)),
		out:       os.Stdout,
		errOut:    os.Stderr,
		lookupEnv: os.LookupEnv,
		shortcuts: make(map[string][]string),
	}
	for _, mod := range mods {
		mod(p)
	}

	for _, o := range options {
		opt := o
		opt.Shortcuts = mergeShortcuts(o.Name, o.Shortcuts, p.shortcuts[o.Name])
		if err := opt.validate(); err != nil {
			return nil, err
		}
		if _, dup := p.byName[opt.Name]; dup {
			return nil, &DuplicateOptionError{Name: opt.Name}
		}
		p.options = append(p.options, &opt)
		p.byName[opt.Name] = &opt
	}
	if err := p.checkSpellings(); err != nil {
		return nil, err
	}

	if p.defaultsFile != "" {
		if err := p.applyDefaultsFile(p.defaultsFile); err != nil {
			return nil, err
		}
	}
	if err := p.applyEnv(); err != nil {
		return nil, err
	}

	// All user-visible output goes through the Parser; the engine's own
	// printing is discarded so diagnostics are not emitted twice.
	p.fs = pflag.NewFlagSet(name, pflag.ContinueOnError)
	p.fs.SortFlags = false
	p.fs.SetOutput(io.Discard)
	for _, opt := range p.options {
		p.register(opt)
	}
	return p, nil
}

// NewFromStruct builds a parser from a tagged struct schema. Field values of
// the supplied instance become defaults; if the schema implements Describer
// and no explicit description was supplied, its Description is used.
func NewFromStruct(name string, schema any, mods ...ParserOption) (*Parser, error) {
	options, err := OptionsFromStruct(schema)
	if err != nil {
		return nil, err
	}
	if d, ok := schema.(Describer); ok {
		mods = append(mods, withDefaultDescription(d.Description()))
	}
	return New(name, options, mods...)
}

// Must panics on construction errors:
//
//	p := declargs.Must(declargs.NewFromStruct("greet", options{}))
func Must(p *Parser, err error) *Parser {
	if err != nil {
		panic(err)
	}
	return p
}

// mergeShortcuts combines tag-declared shortcuts with the side table,
// dropping repeats and spellings identical to the long name.
func mergeShortcuts(name string, declared, extra []string) []string {
	seen := map[string]bool{name: true}
	merged := make([]string, 0, len(declared)+len(extra))
	for _, s := range append(append([]string(nil), declared...), extra...) {
		if seen[s] {
			continue
		}
		seen[s] = true
		merged = append(merged, s)
	}
	return merged
}

// checkSpellings rejects any flag spelling claimed twice, across option names
// and shortcuts, before the engine gets a chance to panic on redefinition.
func (p *Parser) checkSpellings() error {
	seen := make(map[string]bool, len(p.options))
	for _, opt := range p.options {
		seen[opt.Name] = true
	}
	for _, opt := range p.options {
		for _, s := range opt.Shortcuts {
			if seen[s] {
				return &DuplicateOptionError{Name: s}
			}
			seen[s] = true
		}
	}
	return nil
}

// register wires one option onto the engine: the long flag, an optional
// single-rune shorthand, and hidden alias flags sharing the same destination.
func (p *Parser) register(opt *Option) {
	opt.holder = newOptionValue(opt.Kind, opt.def)
	short, aliases := opt.shorthand()

	help := opt.Help
	if len(aliases) > 0 {
		help = withAliasSuffix(help, aliases)
	}
	p.fs.VarP(opt.holder, opt.Name, short, help)
	f := p.fs.Lookup(opt.Name)
	f.Hidden = opt.Hidden
	p.setToggle(f, opt)

	for _, alias := range aliases {
		sh := ""
		if len(alias) == 1 {
			sh = alias
		}
		p.fs.VarP(opt.holder, alias, sh, "")
		af := p.fs.Lookup(alias)
		af.Hidden = true
		p.setToggle(af, opt)
	}
}

// setToggle gives boolean options their no-argument semantics: presence of a
// default-false flag stores true, presence of a default-true flag stores
// false. Non-boolean flags keep requiring a value.
func (p *Parser) setToggle(f *pflag.Flag, opt *Option) {
	if opt.Kind != KindBool {
		return
	}
	if opt.def == true {
		f.NoOptDefVal = "false"
	} else {
		f.NoOptDefVal = "true"
	}
}

func withAliasSuffix(help string, aliases []string) string {
	spelled := make([]string, 0, len(aliases))
	for _, a := range aliases {
		if len(a) == 1 {
			spelled = append(spelled, "-"+a)
		} else {
			spelled = append(spelled, "--"+a)
		}
	}
	suffix := fmt.Sprintf("(aliases: %s)", strings.Join(spelled, ", "))
	if help == "" {
		return suffix
	}
	return help + " " + suffix
}

// NumOptions reports how many options are registered. Aliases and shortcut
// spellings do not count; excluded schema fields never register.
func (p *Parser) NumOptions() int { return len(p.options) }

// Parse resolves args into a Result. Tokenization, --name=value and
// -n value forms, unknown-flag and missing-value diagnostics all come from
// the underlying engine unchanged. Positional arguments are rejected.
// ErrHelp is returned when -h or --help was given.
func (p *Parser) Parse(args []string) (Result, error) {
	for _, opt := range p.options {
		opt.holder.reset()
	}
	if err := p.fs.Parse(args); err != nil {
		if errors.Is(err, ErrHelp) {
			return Result{}, ErrHelp
		}
		return Result{}, err
	}
	if rest := p.fs.Args(); len(rest) > 0 {
		return Result{}, fmt.Errorf("unexpected argument %q", rest[0])
	}

	values := make(map[string]any, len(p.options))
	names := make([]string, 0, len(p.options))
	for _, opt := range p.options {
		values[opt.Name] = opt.holder.get()
		names = append(names, opt.Name)
	}
	return Result{values: values, names: names}, nil
}

// MustParse is Parse with the conventional process-level error policy: help
// requests print the full help text and exit 0; any other parse error prints
// the engine's diagnostic and exits 2.
func (p *Parser) MustParse(args []string) Result {
	res, err := p.Parse(args)
	switch {
	case errors.Is(err, ErrHelp):
		p.WriteHelp(p.out)
		exit(0)
	case err != nil:
		fmt.Fprintln(p.errOut, color.RedString("%s: error: %v", p.name, err))
		fmt.Fprintf(p.errOut, "Run '%s --help' for usage.\n", p.name)
		exit(2)
	}
	return res
}

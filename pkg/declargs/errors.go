// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package declargs

import (
	"fmt"

	"github.com/spf13/pflag"
)

// ErrHelp is returned by Parse when the user asked for help with -h or
// --help. MustParse prints the full help text and exits 0 instead.
var ErrHelp = pflag.ErrHelp

// SchemaError reports a malformed option declaration: an unsupported field
// type, a bad shortcut spelling, or a default literal that cannot be
// converted. It is a construction fault; there is no recovery path.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("schema field %s: %s", e.Field, e.Reason)
	}
	return "schema: " + e.Reason
}

// DuplicateOptionError reports that two options (or an option and a shortcut)
// claim the same flag spelling. Reported before anything is registered on the
// engine, which would otherwise panic on the redefinition.
type DuplicateOptionError struct {
	Name string
}

func (e *DuplicateOptionError) Error() string {
	return fmt.Sprintf("duplicate option %q", e.Name)
}

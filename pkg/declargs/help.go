// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package declargs

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const fallbackHelpWidth = 80

// Help returns the full help text, wrapped for the parser's output writer.
func (p *Parser) Help() string {
	return p.help(helpWidthFor(p.out))
}

// WriteHelp writes the full help text to w.
func (p *Parser) WriteHelp(w io.Writer) {
	io.WriteString(w, p.help(helpWidthFor(w)))
}

func (p *Parser) help(width int) string {
	var b strings.Builder

	b.WriteString(p.name)
	if p.description != "" {
		b.WriteString(" - ")
		b.WriteString(p.description)
	}
	b.WriteString("\n\n")

	b.WriteString("USAGE:\n")
	fmt.Fprintf(&b, "    %s [OPTIONS]\n\n", p.name)

	b.WriteString("OPTIONS:\n")
	b.WriteString(p.fs.FlagUsagesWrapped(width))
	b.WriteString("  -h, --help   Show this help message\n")

	return b.String()
}

// helpWidthFor picks the wrap width: the terminal width when w is one, 80
// columns otherwise.
func helpWidthFor(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fallbackHelpWidth
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols < 20 {
		return fallbackHelpWidth
	}
	return cols
}

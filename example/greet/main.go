// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command greet demonstrates building a parser from a tagged struct schema.
//
//	greet --name Gopher -r 2 --shout
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/zcold/declarative-cli/pkg/declargs"
)

type options struct {
	Name   string `flag:"name" short:"n" help:"Who to greet" default:"world"`
	Shout  bool   `flag:"shout" short:"s" help:"Greet in upper case"`
	Repeat int    `flag:"repeat" short:"r" help:"Number of greetings" default:"1"`
}

func (options) Description() string { return "Print a friendly greeting" }

func main() {
	p := declargs.Must(declargs.NewFromStruct("greet", options{}))
	res := p.MustParse(os.Args[1:])

	greeting := fmt.Sprintf("Hello, %s!", res.String("name"))
	if res.Bool("shout") {
		greeting = strings.ToUpper(greeting)
	}
	for i := 0; i < res.Int("repeat"); i++ {
		fmt.Println(greeting)
	}
}

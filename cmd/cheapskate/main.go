// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Command cheapskate reads Markdown from a file (or stdin) and writes
// HTML or a formatted Markdown round-trip to stdout, or, with -debug,
// a debug tree to stderr.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bgamari/cheapskate"
	"github.com/bgamari/cheapskate/format"
	markdownhtml "github.com/bgamari/cheapskate/html"
)

func main() {
	var (
		debug              = flag.Bool("debug", false, "dump the container tree instead of rendering")
		fmtOut             = flag.Bool("fmt", false, "format the parsed document back to Markdown")
		allowRawHTML       = flag.Bool("allow-raw-html", false, "pass raw HTML blocks through unescaped")
		sanitize           = flag.Bool("sanitize", false, "strip raw HTML blocks instead of escaping or passing them through")
		preserveHardBreaks = flag.Bool("preserve-hard-breaks", false, "render hard line breaks as <br> instead of collapsing them to a space")
	)
	flag.Parse()

	var input io.Reader = os.Stdin
	if args := flag.Args(); len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		input = f
	}

	text, err := io.ReadAll(input)
	if err != nil {
		log.Fatalf("cheapskate: %v", err)
	}

	opts := cheapskate.Options{
		Debug:              *debug,
		AllowRawHTML:       *allowRawHTML,
		Sanitize:           *sanitize,
		PreserveHardBreaks: *preserveHardBreaks,
	}
	if opts.Debug {
		opts.DebugWriter = os.Stderr
	}

	blocks, _ := cheapskate.Parse(opts, string(text))
	if opts.Debug {
		return
	}

	if *fmtOut {
		fmt.Print(format.Format(blocks))
		return
	}

	renderer := &markdownhtml.Renderer{Options: opts}
	if err := renderer.Render(os.Stdout, blocks); err != nil {
		log.Fatalf("cheapskate: %v", err)
	}
}

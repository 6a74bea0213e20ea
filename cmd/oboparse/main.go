// Command oboparse is a thin CLI front end over package goobo: flag
// parsing and file wiring only, no parsing or serialization logic of
// its own.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ritamzico/goobo"
)

func main() {
	in := flag.String("in", "", "input OBO file (default: stdin)")
	out := flag.String("out", "", "output file (default: stdout)")
	threaded := flag.Bool("threaded", false, "parse with the worker-pool parser instead of the sequential one")
	workers := flag.Int("workers", 0, "worker count for -threaded (default: GOMAXPROCS)")
	ordered := flag.Bool("ordered", true, "preserve source order of entity frames with -threaded")
	validate := flag.Bool("validate", false, "check cardinality invariants and report violations on stderr")
	jsonOut := flag.Bool("json", false, "write the kind-tagged JSON envelope instead of OBO text")
	flag.Parse()

	r := os.Stdin
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "oboparse: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	c := goobo.NewCache()
	var (
		doc *goobo.Document
		err error
	)
	if *threaded {
		doc, err = goobo.ParseThreaded(r, c, *workers, *ordered)
	} else {
		doc, err = goobo.Parse(r, c)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "oboparse: parse error: %v\n", err)
		os.Exit(1)
	}

	if *validate {
		errs := doc.Validate()
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "oboparse: %v\n", e)
		}
		if len(errs) > 0 {
			os.Exit(1)
		}
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "oboparse: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if *jsonOut {
		b, err := goobo.ToJSON(doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "oboparse: %v\n", err)
			os.Exit(1)
		}
		w.Write(append(b, '\n'))
		return
	}

	if err := goobo.Write(doc, w); err != nil {
		fmt.Fprintf(os.Stderr, "oboparse: %v\n", err)
		os.Exit(1)
	}
}

/*
Copyright 2011-2017 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command suftest builds the suffix array of a file (or stdin) and checks
// it against every ordering invariant search.SufCheck knows how to verify.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dsufgo/suffixsort/divsufsort"
	"github.com/dsufgo/suffixsort/search"
)

func printHelp(status int) {
	fmt.Fprintln(os.Stderr, "suftest, a suffix array tester")
	fmt.Fprintf(os.Stderr, "usage: %s FILE\n\n", os.Args[0])
	os.Exit(status)
}

func main() {
	if len(os.Args) == 1 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		printHelp(0)
	}

	if len(os.Args) != 2 {
		printHelp(1)
	}

	fname := os.Args[1]
	var src []byte
	var err error

	if fname == "-" {
		src, err = io.ReadAll(os.Stdin)
		fname = "stdin"
	} else {
		src, err = os.ReadFile(fname)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read '%s': %v\n", os.Args[0], fname, err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "%s: %d bytes ...\n", fname, len(src))

	start := time.Now()
	sa := make([]int, len(src))
	divsufsort.NewSuffixSorter().ComputeSuffixArray(src, sa)
	fmt.Fprintf(os.Stderr, "%v\n", time.Since(start))

	if err := search.SufCheck(src, sa, true); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
		os.Exit(1)
	}

	fmt.Fprintln(os.Stderr, "Done.")
}

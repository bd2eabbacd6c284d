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

// Command unbwt reverses a block-archive produced by a forward BWT encoder:
// a little-endian uint32 blocksize header followed by (pidx uint32, payload
// []byte) records, the last payload possibly shorter than blocksize. A
// record with pidx == 0 ends the stream.
package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/dsufgo/suffixsort/bwt"
)

func printHelp(status int) {
	fmt.Fprintln(os.Stderr, "unbwt, an inverse Burrows-Wheeler transform tool")
	fmt.Fprintf(os.Stderr, "usage: %s INFILE OUTFILE\n\n", os.Args[0])
	os.Exit(status)
}

func openInput(name string) (io.Reader, func(), error) {
	if name == "-" {
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(name)

	if err != nil {
		return nil, nil, err
	}

	return f, func() { f.Close() }, nil
}

func openOutput(name string) (io.Writer, func(), error) {
	if name == "-" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(name)

	if err != nil {
		return nil, nil, err
	}

	return f, func() { f.Close() }, nil
}

func readUint32(r io.Reader) (uint32, error) {
	var buf [4]byte

	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(buf[:]), nil
}

func main() {
	if len(os.Args) == 1 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		printHelp(0)
	}

	if len(os.Args) != 3 {
		printHelp(1)
	}

	in, closeIn, err := openInput(os.Args[1])

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot open '%s': %v\n", os.Args[0], os.Args[1], err)
		os.Exit(1)
	}

	defer closeIn()

	out, closeOut, err := openOutput(os.Args[2])

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot open '%s': %v\n", os.Args[0], os.Args[2], err)
		os.Exit(1)
	}

	defer closeOut()

	blocksize, err := readUint32(in)

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read blocksize: %v\n", os.Args[0], err)
		os.Exit(1)
	}

	payload := make([]byte, blocksize)
	decoded := make([]byte, blocksize)
	transform := bwt.NewBWT()
	total := 0

	for {
		pidx, err := readUint32(in)

		if err == io.EOF {
			break
		}

		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: cannot read record header: %v\n", os.Args[0], err)
			os.Exit(1)
		}

		if pidx == 0 {
			break
		}

		n, err := io.ReadFull(in, payload)

		if err != nil && err != io.ErrUnexpectedEOF {
			fmt.Fprintf(os.Stderr, "%s: cannot read payload: %v\n", os.Args[0], err)
			os.Exit(1)
		}

		if err := transform.Inverse(payload[:n], decoded[:n], int(pidx)); err != nil {
			fmt.Fprintf(os.Stderr, "%s: inverse transform failed: %v\n", os.Args[0], err)
			os.Exit(1)
		}

		if _, err := out.Write(decoded[:n]); err != nil {
			fmt.Fprintf(os.Stderr, "%s: cannot write output: %v\n", os.Args[0], err)
			os.Exit(1)
		}

		total += n
	}

	fmt.Fprintf(os.Stderr, "%d bytes\n", total)
}

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

package main

import (
	"fmt"
	"os"

	"github.com/duffcomp/huffpack"
)

const _APP_HEADER = "huffpack (C) 2026, a small Huffman archiver"

func main() {
	argsMap := make(map[string]interface{})
	status := processCommandLine(os.Args, argsMap)

	if status != 0 {
		os.Exit(status)
	}

	if argsMap["mode"] == nil {
		printUsage()
		os.Exit(huffpack.ErrMissingParam)
	}

	mode := argsMap["mode"].(string)
	delete(argsMap, "mode")

	var code int

	if mode == "c" {
		code = compress(argsMap)
	} else {
		code = extract(argsMap)
	}

	os.Exit(code)
}

func compress(argsMap map[string]interface{}) int {
	code := huffpack.ErrUnknown

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "An unexpected error occurred during compression: %v\n", r)
			code = huffpack.ErrUnknown
		}
	}()

	c, err := NewCompressor(argsMap)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create compressor: %v\n", err)
		return huffpack.ErrMissingParam
	}

	code = c.Compress()
	return code
}

func extract(argsMap map[string]interface{}) int {
	code := huffpack.ErrUnknown

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "An unexpected error occurred during extraction: %v\n", r)
			code = huffpack.ErrUnknown
		}
	}()

	e, err := NewExtractor(argsMap)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create extractor: %v\n", err)
		return huffpack.ErrMissingParam
	}

	code = e.Extract()
	return code
}

func printUsage() {
	fmt.Fprintln(os.Stderr, _APP_HEADER)
	fmt.Fprintln(os.Stderr, "Usage: huffpack [-x|-X] [-v] <archive> [<file> ...]")
}

// processCommandLine scans os.Args into argsMap, following the
// convention of treating the first non-flag argument as the archive
// path and any remaining non-flag arguments as files to compress.
// Unrecognized flags are warned about and skipped, never fatal.
func processCommandLine(args []string, argsMap map[string]interface{}) int {
	mode := "c"
	verbose := false
	var archive string
	var files []string

	for i := 1; i < len(args); i++ {
		a := args[i]

		if len(a) == 0 {
			continue
		}

		if a[0] != '-' {
			if archive == "" {
				archive = a
			} else {
				files = append(files, a)
			}

			continue
		}

		switch a {
		case "-x", "-X":
			mode = "d"
		case "-v":
			verbose = true
		case "-h", "--help":
			printUsage()
			return -1
		default:
			fmt.Fprintf(os.Stderr, "Argument %s ignored\n", a)
		}
	}

	if archive == "" {
		return 0
	}

	argsMap["mode"] = mode
	argsMap["archive"] = archive
	argsMap["files"] = files
	argsMap["verbose"] = verbose
	return 0
}

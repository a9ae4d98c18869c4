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
	"io"
	"os"

	"github.com/duffcomp/huffpack"
	"github.com/duffcomp/huffpack/archive"
)

// Extractor drives the "unpack an archive" mode of the CLI.
type Extractor struct {
	archivePath string
	verbose     bool
}

// NewExtractor builds an Extractor from the parsed command-line map.
func NewExtractor(argsMap map[string]interface{}) (*Extractor, error) {
	archivePath, _ := argsMap["archive"].(string)

	if archivePath == "" {
		return nil, fmt.Errorf("Missing archive path")
	}

	verbose, _ := argsMap["verbose"].(bool)
	return &Extractor{archivePath: archivePath, verbose: verbose}, nil
}

// Extract reads every entry out of the archive and writes it to a file
// of its stored name in the current directory, overwriting whatever is
// there, same as the program this one is modeled on.
func (this *Extractor) Extract() int {
	in, err := os.Open(this.archivePath)

	if err != nil {
		fmt.Fprintf(os.Stderr, "File %s is incorrect: %v\n", this.archivePath, err)
		return huffpack.ErrOpenFile
	}

	defer in.Close()

	r, err := archive.NewReader(in)

	if err != nil {
		fmt.Fprintf(os.Stderr, "File %s is incorrect: %v\n", this.archivePath, err)
		return huffpack.ErrInvalidFile
	}

	if this.verbose {
		r.AddListener(Printer{})
	}

	for {
		name, entry, err := r.Next()

		if err == io.EOF {
			break
		}

		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading archive: %v\n", err)
			return huffpack.ErrReadFile
		}

		if err := extractOne(name, entry); err != nil {
			fmt.Fprintf(os.Stderr, "Error extracting %s: %v\n", name, err)
		}
	}

	return 0
}

func extractOne(name string, entry io.Reader) error {
	out, err := os.Create(name)

	if err != nil {
		return err
	}

	defer out.Close()

	_, err = io.Copy(out, entry)
	return err
}

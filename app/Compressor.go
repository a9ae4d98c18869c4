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
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/duffcomp/huffpack"
	"github.com/duffcomp/huffpack/archive"
)

// Compressor drives the "create an archive" mode of the CLI.
type Compressor struct {
	archivePath string
	files       []string
	verbose     bool
}

// NewCompressor builds a Compressor from the parsed command-line map.
func NewCompressor(argsMap map[string]interface{}) (*Compressor, error) {
	archivePath, _ := argsMap["archive"].(string)

	if archivePath == "" {
		return nil, fmt.Errorf("Missing archive path")
	}

	files, _ := argsMap["files"].([]string)
	verbose, _ := argsMap["verbose"].(bool)

	return &Compressor{archivePath: archivePath, files: expandGlobs(files), verbose: verbose}, nil
}

// expandGlobs replaces any argument containing glob metacharacters with
// the files it matches on the local filesystem, via doublestar so '**'
// works the same way it does in the rest of the retrieved corpus.
// Arguments without metacharacters pass through unchanged.
func expandGlobs(args []string) []string {
	var out []string

	for _, a := range args {
		if !strings.ContainsAny(a, "*?[{") {
			out = append(out, a)
			continue
		}

		matches, err := doublestar.FilepathGlob(a)

		if err != nil || len(matches) == 0 {
			out = append(out, a)
			continue
		}

		out = append(out, matches...)
	}

	return out
}

// Compress creates the archive and writes every input file into it,
// skipping (with a warning) any file that cannot be opened.
func (this *Compressor) Compress() int {
	out, err := os.Create(this.archivePath)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Can't create file %s: %v\n", this.archivePath, err)
		return huffpack.ErrCreateFile
	}

	defer out.Close()

	w, err := archive.NewWriter(out)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Can't initialize archive: %v\n", err)
		return huffpack.ErrCreateFile
	}

	if this.verbose {
		w.AddListener(Printer{})
	}

	for _, path := range this.files {
		if err := this.addFile(w, path); err != nil {
			fmt.Fprintf(os.Stderr, "Can't open file %s: %v\n", path, err)
		}
	}

	if err := w.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Can't finalize archive: %v\n", err)
		return huffpack.ErrWriteFile
	}

	return 0
}

func (this *Compressor) addFile(w *archive.Writer, path string) error {
	in, err := os.Open(path)

	if err != nil {
		return err
	}

	defer in.Close()

	_, err = w.WriteEntry(path, in)
	return err
}

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

// Printer is a huffpack.Listener that renders archive/entry progress
// events to stderr, one line per event. Used under -v.
type Printer struct{}

func (this Printer) ProcessEvent(evt *huffpack.Event) {
	fmt.Fprintln(os.Stderr, evt.String())
}

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

package archive

// IOError wraps a message with one of the huffpack.Err* codes, letting
// callers distinguish failure classes without string matching.
type IOError struct {
	msg  string
	code int
}

func NewIOError(msg string, code int) *IOError {
	return &IOError{msg: msg, code: code}
}

func (this IOError) Error() string {
	return this.msg
}

func (this IOError) Message() string {
	return this.msg
}

func (this IOError) ErrorCode() int {
	return this.code
}

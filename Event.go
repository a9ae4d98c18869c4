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

package huffpack

import (
	"fmt"
	"time"
)

const (
	EvtArchiveStart = 0
	EvtEntryStart   = 1
	EvtBlockEncoded = 2
	EvtBlockDecoded = 3
	EvtEntryEnd     = 4
	EvtArchiveEnd   = 5
)

// Event carries one step of progress through compression or extraction,
// reported through a Listener. Most fields are only meaningful for a
// subset of event types: name for entry/archive events, size for
// entry-end events (-1 on events that carry no size).
type Event struct {
	eventType int
	name      string
	size      int64
	eventTime time.Time
}

func NewEvent(evtType int, name string, size int64, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, name: name, size: size, eventTime: evtTime}
}

func (this *Event) Type() int {
	return this.eventType
}

func (this *Event) Name() string {
	return this.name
}

func (this *Event) Time() time.Time {
	return this.eventTime
}

func (this *Event) Size() int64 {
	return this.size
}

func (this *Event) String() string {
	t := ""

	switch this.eventType {
	case EvtArchiveStart:
		t = "ARCHIVE_START"
	case EvtEntryStart:
		t = "ENTRY_START"
	case EvtBlockEncoded:
		t = "BLOCK_ENCODED"
	case EvtBlockDecoded:
		t = "BLOCK_DECODED"
	case EvtEntryEnd:
		t = "ENTRY_END"
	case EvtArchiveEnd:
		t = "ARCHIVE_END"
	}

	if this.size >= 0 {
		return fmt.Sprintf("[%s] %s (%d bytes)", t, this.name, this.size)
	}

	return fmt.Sprintf("[%s] %s", t, this.name)
}

// Listener receives progress events from a Writer or Reader.
type Listener interface {
	ProcessEvent(evt *Event)
}

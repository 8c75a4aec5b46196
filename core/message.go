package core

import "time"

// Message is one finished log record. It is built by a Logger at dispatch
// time, after the level filter has passed, and handed to the attached
// Channel by value. Messages are never mutated after construction.
//
// File and Line carry the source location when the caller supplied one;
// File == "" means no location was recorded.
type Message struct {
	Name     string
	Text     string
	Priority Level
	File     string
	Line     int
	Time     time.Time
}

// Package core defines the shared types used across the logtree framework.
//
// It provides the Level type for severity filtering, the immutable Message
// value that represents a single log record, and the Channel interface that
// message sinks implement.
//
// A Channel is a shared handle: the same Channel value may be attached to any
// number of loggers and held externally at the same time. Nothing in logtree
// takes ownership of a channel; its lifetime is that of the longest holder.
package core

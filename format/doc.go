// Package format contains the value-formatting utilities of logtree.
//
// Format performs positional $-placeholder substitution, Dump renders a byte
// buffer in canonical hex+ASCII form, and the Formatter implementations turn
// finished messages into output lines for stream-style channels.
package format

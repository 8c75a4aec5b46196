// Package channel provides the Channel implementations that ship with
// logtree, plus a process-wide registry of channels by name.
//
// None of these channels is a terminal console/file/syslog sink; those are
// supplied by the application. What lives here is composition and glue:
// Splitter fans one message out to several channels, Async decouples the
// caller from a slow channel, Stream renders messages onto any io.Writer,
// Zap bridges into a zap.Logger, and Null and Memory exist for disabling and
// for tests.
//
// The name registry backs setting a logger's channel through the string
// property interface and through declarative configuration:
//
//	channel.Register("audit", channel.NewStream(w, nil))
//	logger.SetProperty("app.audit", "channel", "audit")
package channel

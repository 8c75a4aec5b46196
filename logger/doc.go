// Package logger is the public API of logtree. Most users only need to
// import this package.
//
// Loggers are owned by a Registry and organized hierarchically by dotted
// name: "app.db.pool" is a descendant of "app.db", which descends from
// "app", which descends from the root logger "". A logger created on first
// access copies the level and channel of its nearest existing ancestor once,
// at creation time; the two are not linked afterwards, so reconfiguring a
// parent never retroactively touches children that already exist. Bulk
// reconfiguration of a whole subtree is still available through the static
// SetLevel, SetChannel and SetProperty, which scan the presently registered
// names by prefix.
//
// The package-level functions operate on a process-wide default Registry:
//
//	log := logger.Get("app.db")
//	log.SetChannel(ch)
//	if log.IsDebug() {
//	    log.Debugf("slow query: $0 took $1ms", q, ms)
//	}
//
// Tests that must not share state can work against their own Registry from
// NewRegistry.
//
// Filtering happens before any formatting cost is paid: the severity probes
// (IsDebug, IsTrace, ...) and the formatted variants check the level first,
// so a filtered-out call costs one atomic load and a comparison.
package logger

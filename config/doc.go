// Package config configures a logger registry declaratively.
//
// A configuration document maps logger names to a symbolic level and/or the
// name of a channel registered with the channel package:
//
//	loggers:
//	  "":
//	    level: warning
//	  app.db:
//	    level: trace
//	    channel: audit
//
// Load reads such a document from YAML, FromEnv lets LOGTREE_LEVEL and
// LOGTREE_CHANNEL override the root entry, and Apply walks the entries
// parents-first so an explicit child setting always wins over an inherited
// parent snapshot.
package config

// Package config provides the configuration for the modal editor.
//
// The editor runs with built-in defaults and reads no file unless one is
// named explicitly. A configuration file is TOML:
//
//	[editor]
//	poll_interval = "100ms"  # longest wait for input before redrawing
//
//	[log]
//	level = "info"           # debug, info, warn or error
//	file = "/tmp/modal.log"  # logging is off when empty
//
// Values from the file are merged over Default and then validated. Unknown
// keys are rejected so that a misspelled setting is reported rather than
// silently ignored.
//
// Usage:
//
//	cfg, err := config.Load(path)
//	if err != nil {
//	    var verr *config.ValidationError
//	    if errors.As(err, &verr) { ... }
//	}
package config

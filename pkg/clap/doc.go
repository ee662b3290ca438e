// Package clap is the native boundary of clap-info.
//
// It owns every call into a CLAP plugin module: loading the shared library,
// validating clap_entry, walking the plugin factory, creating plugin
// instances and calling through extension function tables. Everything it
// returns is copied into Go memory and re-validated (bounded strings,
// NUL-terminated fixed buffers, null-checked tables), so callers never touch
// a raw pointer.
//
// The package is not safe for concurrent use. CLAP requires main-thread
// calls for everything this package does; callers should run a whole
// introspection pass on one locked OS thread.
package clap

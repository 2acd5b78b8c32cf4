// Command golessons runs the built-in course from the terminal.
//
// Usage:
//
//	golessons list             # show the curriculum
//	golessons run <slug>       # run one lesson (e.g. golessons run variables)
//	golessons all              # run the whole course in order
//	golessons verify           # checksum of the embedded curriculum
//
// The --plain flag disables styled output; lesson bodies themselves are
// always plain text, styling only ever applies to the CLI's own chrome
// (headers, listings, error lines).
//
// Exit codes
//
//   - 0: success
//   - 1: a lesson body failed
//   - 2: usage or wiring error
package main

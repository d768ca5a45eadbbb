// Package filetime provides platform-agnostic reading and
// updating of the timestamps recorded for a file: access
// time, modification time and, where the platform records
// one, creation time.
//
// The canonical representation is the FileTime value, a
// (seconds, nanoseconds) pair relative to the Unix epoch.
// Conversion between FileTime and each platform's native
// encoding is lossless for every instant the native
// encoding can represent, and fails explicitly otherwise.
//
// The setters accept an Update per timestamp field, so a
// single call can change one field while provably leaving
// the other one untouched, or resolve a field to the wall
// clock at the moment of the call.
package filetime

// Package deferred renders a parsed format string (package fstring), once
// its argument references have been resolved (package args), against the
// actual argument values available at the point of rendering.
//
// The values themselves are "deferred" in the sense that the format string
// was built (and its arguments disambiguated) before any value was known;
// Value is the closed set of things that can show up at render time, and
// Render walks the format string's segments evaluating each format segment
// against the ResolvedOptions derived from it.
package deferred

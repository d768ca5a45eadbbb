//go:build filetimedebug
// +build filetimedebug

package filetime

// debugBuild enables the second-only emulation toggle.
const debugBuild = true

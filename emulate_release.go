//go:build !filetimedebug
// +build !filetimedebug

package filetime

// debugBuild is false outside of filetimedebug builds,
// hard-wiring the emulation toggle off so release builds
// never consult the environment.
const debugBuild = false

//go:build !compiled

package build

// CompiledFrontend reports whether the frontend was compiled to a native
// executable and embedded as such.
const CompiledFrontend = false

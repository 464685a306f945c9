//go:build !release

package build

// Release reports whether the binary was compiled as a production build.
const Release = false

//go:build !release

package embedded

import "embed"

// Development builds run the dev server from source and embed no artifact.
var distFS embed.FS

//go:build release && !compiled

package embedded

import "embed"

//go:embed dist/bundle.js
var distFS embed.FS

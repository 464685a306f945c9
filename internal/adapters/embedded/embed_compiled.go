//go:build release && compiled && !windows

package embedded

import "embed"

//go:embed dist/client
var distFS embed.FS

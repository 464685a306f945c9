//go:build release && compiled

package embedded

import "embed"

//go:embed dist/client.exe
var distFS embed.FS

// Package static embeds the API documentation assets served on /docs and /static.
package static

import "embed"

//go:embed openapi.html openapi.json
var Files embed.FS

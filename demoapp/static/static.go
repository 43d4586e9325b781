package static

import "embed"

//go:embed *.js
var Assets embed.FS

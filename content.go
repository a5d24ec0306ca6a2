package fitdash

import "embed"

// Content holds the default configuration and sample data
//
//go:embed etc
var Content embed.FS

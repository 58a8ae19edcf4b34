// Package embedded carries the default grade-band table and market
// benchmark values compiled into the binary, so a fresh session is usable
// before any configuration is loaded.
package embedded

import (
	"embed"
)

// FS embeds the default band and benchmark yaml files at build time.
//
//go:embed defaults/*
var FS embed.FS

package docsite

import "embed"

// EmbeddedAssets contains static assets shipped with the server:
// docsite.css
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

package web

import (
	_ "embed"
)

// IndexPage is served at / when no INDEX_FILE is configured
//
//go:embed index.html
var IndexPage []byte

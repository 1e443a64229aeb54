// Package web holds the embedded ingest form served at the site root.
package web

import (
	_ "embed"
)

//go:embed index.html
var Index []byte

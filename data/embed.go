// Package data ships the market snapshots embedded in the binary.
package data

import (
	"embed"
	"io/fs"
)

//go:embed snapshots/*.json
var files embed.FS

// Snapshots returns the embedded snapshot directory as an fs.FS rooted at
// the snapshot files.
func Snapshots() fs.FS {
	sub, err := fs.Sub(files, "snapshots")
	if err != nil {
		// fs.Sub only fails on an invalid path, which "snapshots" is not.
		panic(err)
	}
	return sub
}

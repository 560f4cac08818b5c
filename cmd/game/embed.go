package main

import (
	"embed"
	"io/fs"
)

const configDir = "configs"

//go:embed configs
var embedded embed.FS

// configFS is rooted at the embedded configs directory
var configFS = mustSub(embedded, configDir)

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

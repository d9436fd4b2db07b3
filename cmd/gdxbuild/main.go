package main

import "github.com/gdxbuild/gdxbuild/cmd/gdxbuild/internal"

func main() {
	internal.Execute()
}

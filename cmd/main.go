package main

import (
	"os"

	kgquerycmd "github.com/narrativegraph/kgquery/cmd/kgquery"
)

func main() {
	if err := kgquerycmd.Execute(); err != nil {
		os.Exit(1)
	}
}

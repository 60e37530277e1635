package main

import (
	"os"

	"github.com/hamburgroadsurfer-create/LRP/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

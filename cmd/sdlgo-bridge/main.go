//go:build !ios && !android && (amd64 || arm64)

package main

import (
	"fmt"
	"os"

	"github.com/obinnaokechukwu/sdlgo/cmd/sdlgo-bridge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

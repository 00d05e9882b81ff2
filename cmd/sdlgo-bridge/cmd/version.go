//go:build !ios && !android && (amd64 || arm64)

package cmd

import (
	"fmt"

	"github.com/obinnaokechukwu/sdlgo"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "sdlgo-bridge %s\n", Version)
		if err := sdlgo.Load(); err != nil {
			fmt.Fprintf(out, "SDL3: not available (%v)\n", err)
			if path, err := sdlgo.FindLibrary(); err == nil {
				fmt.Fprintf(out, "SDL3 library: %s\n", path)
			} else {
				fmt.Fprintln(out, "SDL3 library: not found in search paths")
			}
			return
		}
		major, minor, micro := sdlgo.Version()
		fmt.Fprintf(out, "SDL3: %d.%d.%d (%s)\n", major, minor, micro, sdlgo.LibraryPath())
	},
}

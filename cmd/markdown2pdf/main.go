// Command markdown2pdf is the CLI entry point.
package main

import "github.com/theiskaa/markdown2pdf/cmd"

func main() {
	cmd.Execute()
}

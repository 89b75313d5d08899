package main

import "github.com/theirongolddev/lima/cmd"

func main() {
	cmd.Execute()
}

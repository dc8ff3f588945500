package main

import "github.com/rkobusch-privat/unger-warburg-website/cmd"

func main() {
	cmd.Execute()
}

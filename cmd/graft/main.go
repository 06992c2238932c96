package main

import "graft/cmd/graft/cmd"

func main() {
	cmd.Execute()
}

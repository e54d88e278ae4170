package main

import "save-sync/cmd"

func main() {
	cmd.Execute()
}

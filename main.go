package main

import "action-notes/cmd"

func main() {
	cmd.Execute()
}

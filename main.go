package main

import "github.com/bruncdev/deo/cmd"

func main() {
	cmd.Execute()
}

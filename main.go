package main

import "github.com/rpmellow/notepad/cmd"

func main() {
	cmd.Execute()
}

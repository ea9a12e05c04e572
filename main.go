package main

import "github.com/notargets/gotripack/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/lisplet/lisplet/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/cpawley/ostap/cmd"

func main() {
	cmd.Execute()
}

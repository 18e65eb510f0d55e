package main

import "github.com/cubelab/cubesim/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/hausenergie/energymon/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/iterary/plastron/cmd"

func main() {
	cmd.Execute()
}

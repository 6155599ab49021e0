package main

import "github.com/josephlewis42/shtree/cmd"

func main() {
	cmd.Execute()
}

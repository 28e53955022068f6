package main

import "github.com/mj1618/winfind/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/oshokin/ab-modules/cmd/ab-modules/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/reitmaier/banjara-api/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/eventhub/server/cmd/server/cmd"

func main() {
	cmd.Execute()
}

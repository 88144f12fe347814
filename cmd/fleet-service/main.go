package main

import "fleet-service/cmd/fleet-service/command"

func main() {
	command.Execute()
}

package main

import "hmiq/cmd/hmiq-cli/cmd"

func main() {
	cmd.Execute()
}

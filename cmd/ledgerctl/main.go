package main

import "ledger-service/internal/cli"

func main() {
	cli.Execute()
}

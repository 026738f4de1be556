package main

import "hr-records/internal/cli"

func main() {
	cli.Execute()
}

package main

import "hwdoctor/internal/cli"

func main() {
	cli.Execute()
}

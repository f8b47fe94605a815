package main

import "doc-quality/src/handler/cli"

func main() {
	cli.Run()
}

package main

import "github.com/kinlog/exsearch/cmd"

func main() {
	cmd.Execute()
}

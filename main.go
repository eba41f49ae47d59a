package main

import "github.com/kirksw/orgls/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/lokomat-fes/lokictl/cmd"

func main() {
	cmd.Execute()
}

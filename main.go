package main

import "github.com/routelab/dvr/cmd"

func main() {
	cmd.Execute()
}

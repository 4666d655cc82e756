package main

import "github.com/alexiusacademia/gostrand/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/edespino/tunnelblickctl/cmd"

func main() {
	cmd.Execute()
}

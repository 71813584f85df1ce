package main

import "github.com/Tiliavir/temps-vecu/cmd"

func main() {
	cmd.Execute()
}

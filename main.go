package main

import "nbntrack/cmd"

func main() {
	cmd.Execute()
}

package main

import "sitesmith/cmd"

func main() {
	cmd.Execute()
}

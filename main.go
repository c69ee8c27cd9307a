package main

import "github.com/hayati-app/hayati/cmd"

func main() {
	cmd.Execute()
}

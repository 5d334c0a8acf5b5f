package main

import "github.com/example/mely/internal/cmd"

func main() {
	cmd.ExecuteDefault()
}

package main

import "github.com/lingust/lingust/internal/cmd"

func main() {
	cmd.Execute()
}

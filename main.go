package main

import (
	"github.com/purpose168/stylepad-cn/internal/cmd"
)

func main() {
	cmd.Execute()
}

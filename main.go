package main

import (
	"github.com/0xERR0R/tldextract/cmd"
)

func main() {
	cmd.Execute()
}

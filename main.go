package main

import (
	"github.com/leasewatch/nftenant/cmd"
)

func main() {
	cmd.Execute()
}

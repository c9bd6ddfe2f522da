package main

import (
	"github.com/BitcoinHQ/ethereum/cmd/rlpdump/cmd"
)

func main() {
	cmd.Execute()
}

package main

import (
	"github.com/streamingfast/near-firehose-indexer/cmd/firenear/cli"
)

func main() {
	cli.Main()
}

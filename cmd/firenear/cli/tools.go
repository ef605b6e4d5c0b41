package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/golang/protobuf/jsonpb"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamingfast/near-firehose-indexer/firehose"
	pbnear "github.com/streamingfast/near-firehose-indexer/pb/sf/near/type/v1"
)

var toolsCmd = &cobra.Command{Use: "tools", Short: "Developer tools around emitted FIRE lines"}

var toolsPrintCmd = &cobra.Command{
	Use:     "print",
	Short:   "Decodes FIRE BLOCK lines and prints their blocks",
	Args:    cobra.NoArgs,
	PreRunE: bindFlags,
	RunE:    toolsPrintE,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsPrintCmd)

	toolsPrintCmd.Flags().String("input", "-", "File holding FIRE lines, - for stdin")
	toolsPrintCmd.Flags().String("format", "text", "Output format, one of text or json")
}

func toolsPrintE(cmd *cobra.Command, args []string) error {
	format := viper.GetString("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format %q, expected text or json", format)
	}

	input, closeInput, err := openInput(viper.GetString("input"))
	if err != nil {
		return err
	}
	defer closeInput()

	marshaler := &jsonpb.Marshaler{Indent: "  "}
	reader := firehose.NewReader(input)

	for {
		block, err := reader.ReadBlock()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading block: %w", err)
		}

		if format == "json" {
			if err := marshaler.Marshal(os.Stdout, block); err != nil {
				return fmt.Errorf("block %s: %w", block.AsRef(), err)
			}
			fmt.Println()
			continue
		}

		printBlock(block)
	}
}

func printBlock(block *pbnear.Block) {
	transactions, receipts, outcomes := 0, 0, 0
	for _, shard := range block.Shards {
		outcomes += len(shard.ReceiptExecutionOutcomes)
		if shard.Chunk != nil {
			transactions += len(shard.Chunk.Transactions)
			receipts += len(shard.Chunk.Receipts)
		}
	}

	fmt.Printf("Block %s, parent #%d (%s), LIB %s, %s\n",
		block.AsRef(),
		block.PreviousNum(),
		block.PreviousID(),
		block.LIBID(),
		block.Time().Format("2006-01-02T15:04:05.000Z"),
	)
	fmt.Printf("  %d shards, %d transactions, %d receipts, %d execution outcomes, %d state changes\n",
		len(block.Shards), transactions, receipts, outcomes, len(block.StateChanges))
}

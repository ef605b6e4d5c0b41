package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/streamingfast/near-firehose-indexer/codec"
	"github.com/streamingfast/near-firehose-indexer/firehose"
	"github.com/streamingfast/near-firehose-indexer/metrics"
	"github.com/streamingfast/near-firehose-indexer/near"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EmitHandler projects every block to its wire form and writes its FIRE line.
type EmitHandler struct {
	writer  *firehose.Writer
	metrics *metrics.Collector
}

// NewEmitHandler accepts a nil collector.
func NewEmitHandler(writer *firehose.Writer, collector *metrics.Collector) *EmitHandler {
	return &EmitHandler{
		writer:  writer,
		metrics: collector,
	}
}

func (h *EmitHandler) ProcessBlock(ctx context.Context, block *near.Block) error {
	start := time.Now()
	out, err := codec.BlockToProto(block)
	if err != nil {
		return fmt.Errorf("projecting: %w", err)
	}
	h.metrics.BlockProjected(time.Since(start))

	before := h.writer.Written()
	if err := h.writer.WriteBlock(out); err != nil {
		return err
	}
	h.metrics.BlockEmitted(out.Num(), out.Time(), h.writer.Written()-before)

	zlog.Debug("emitted block", zap.String("block", out.AsRef()), zap.Object("stats", statsOf(block)))
	return nil
}

type blockStats struct {
	shards            int
	transactions      int
	receipts          int
	executionOutcomes int
}

func statsOf(block *near.Block) blockStats {
	stats := blockStats{shards: len(block.Shards)}
	for _, shard := range block.Shards {
		stats.executionOutcomes += len(shard.ReceiptExecutionOutcomes)
		if shard.Chunk == nil {
			continue
		}
		stats.transactions += len(shard.Chunk.Transactions)
		stats.receipts += len(shard.Chunk.Receipts)
	}
	return stats
}

func (s blockStats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("shards", s.shards)
	enc.AddInt("transactions", s.transactions)
	enc.AddInt("receipts", s.receipts)
	enc.AddInt("execution_outcomes", s.executionOutcomes)
	return nil
}

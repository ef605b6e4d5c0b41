package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/streamingfast/near-firehose-indexer/near"
	"github.com/streamingfast/shutter"
	"go.uber.org/zap"
)

// Source yields domain blocks in order, io.EOF once exhausted.
type Source interface {
	Next(ctx context.Context) (*near.Block, error)
}

type Handler interface {
	ProcessBlock(ctx context.Context, block *near.Block) error
}

type HandlerFunc func(ctx context.Context, block *near.Block) error

func (f HandlerFunc) ProcessBlock(ctx context.Context, block *near.Block) error {
	return f(ctx, block)
}

// Pipeline pulls one block from its source, hands it to its handler and only
// then pulls the next one. Any error terminates it.
type Pipeline struct {
	*shutter.Shutter

	source  Source
	handler Handler

	startBlockNum uint64
	stopBlockNum  uint64

	done chan struct{}
}

type Option func(p *Pipeline)

// WithStartBlock skips blocks below startBlockNum.
func WithStartBlock(startBlockNum uint64) Option {
	return func(p *Pipeline) {
		p.startBlockNum = startBlockNum
	}
}

// WithStopBlock ends the pipeline, without error, once a block at or above
// stopBlockNum is seen. Zero means no stop block.
func WithStopBlock(stopBlockNum uint64) Option {
	return func(p *Pipeline) {
		p.stopBlockNum = stopBlockNum
	}
}

func New(source Source, handler Handler, opts ...Option) *Pipeline {
	p := &Pipeline{
		Shutter: shutter.New(),
		source:  source,
		handler: handler,
		done:    make(chan struct{}),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Done is closed once Run has returned. Terminated closes as soon as Shutdown
// is called, while the block in flight may still be written.
func (p *Pipeline) Done() <-chan struct{} {
	return p.done
}

// Run blocks until the source is exhausted, an error occurs or the pipeline
// is shut down. The pipeline is terminated with the returned error. A
// shutdown interrupts a wait on the source but never the block being handled.
// Run must be called only once.
func (p *Pipeline) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancel(ctx)
	p.OnTerminating(func(_ error) {
		cancel()
	})

	defer func() {
		p.Shutdown(err)
		cancel()
		close(p.done)
	}()

	zlog.Info("starting pipeline", zap.Uint64("start_block", p.startBlockNum), zap.Uint64("stop_block", p.stopBlockNum))

	var processed uint64
	for {
		if p.IsTerminating() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		block, err := p.source.Next(ctx)
		if err != nil && p.IsTerminating() {
			zlog.Info("pipeline shut down while waiting on source", zap.Uint64("processed_blocks", processed))
			return nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				zlog.Info("source exhausted", zap.Uint64("processed_blocks", processed))
				return nil
			}
			return fmt.Errorf("reading next block: %w", err)
		}

		if block.Header == nil {
			return fmt.Errorf("block without header")
		}

		height := block.Header.Height
		if height < p.startBlockNum {
			if tracer.Enabled() {
				zlog.Debug("skipping block below start block", zap.Uint64("height", height))
			}
			continue
		}

		if p.stopBlockNum != 0 && height >= p.stopBlockNum {
			zlog.Info("stop block reached", zap.Uint64("height", height), zap.Uint64("processed_blocks", processed))
			return nil
		}

		if err := p.handler.ProcessBlock(ctx, block); err != nil {
			return fmt.Errorf("block #%d: %w", height, err)
		}
		processed++
	}
}

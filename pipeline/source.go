package pipeline

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/streamingfast/near-firehose-indexer/near"
)

// StreamerMessageSource decodes one StreamerMessage JSON document per line,
// blank lines are ignored.
//
// Lines are read by a background goroutine so Next returns as soon as its
// context is done, even while the input has nothing to read.
type StreamerMessageSource struct {
	in         *bufio.Reader
	lineNumber int

	startOnce sync.Once
	lines     chan readResult
	err       error
}

type readResult struct {
	line []byte
	err  error
}

func NewStreamerMessageSource(in io.Reader) *StreamerMessageSource {
	return &StreamerMessageSource{
		in:    bufio.NewReaderSize(in, 4*1024*1024),
		lines: make(chan readResult),
	}
}

func (s *StreamerMessageSource) readLines() {
	for {
		line, err := s.in.ReadBytes('\n')
		s.lines <- readResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}

func (s *StreamerMessageSource) Next(ctx context.Context) (*near.Block, error) {
	s.startOnce.Do(func() { go s.readLines() })

	for {
		if s.err != nil {
			return nil, s.err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var result readResult
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case result = <-s.lines:
		}

		if result.err != nil {
			s.err = result.err
		}
		if result.err != nil && !errors.Is(result.err, io.EOF) {
			return nil, result.err
		}
		if len(result.line) == 0 {
			continue
		}
		s.lineNumber++

		line := bytes.TrimSpace(result.line)
		if len(line) == 0 {
			continue
		}

		block, err := near.DecodeStreamerMessage(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", s.lineNumber, err)
		}
		return block, nil
	}
}

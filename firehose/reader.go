package firehose

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/protobuf/proto"
	pbnear "github.com/streamingfast/near-firehose-indexer/pb/sf/near/type/v1"
	"go.uber.org/zap"
)

var ErrInvalidLine = errors.New("invalid FIRE line")

// Reader reads back the blocks of a stream produced by Writer. Lines not
// starting with `FIRE ` are other process output and are skipped, so are FIRE
// lines of another kind than BLOCK.
type Reader struct {
	in         *bufio.Reader
	lineNumber int
}

func NewReader(in io.Reader) *Reader {
	return &Reader{in: bufio.NewReaderSize(in, 1024*1024)}
}

// ReadBlock returns io.EOF once the input is exhausted.
func (r *Reader) ReadBlock() (*pbnear.Block, error) {
	for {
		line, err := r.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if len(line) == 0 && errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		r.lineNumber++

		truncated := !strings.HasSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\n")

		if !strings.HasPrefix(line, linePrefix+" ") {
			if tracer.Enabled() {
				zlog.Debug("skipping non FIRE line", zap.Int("line", r.lineNumber))
			}
			if truncated {
				return nil, io.EOF
			}
			continue
		}

		if truncated {
			return nil, fmt.Errorf("line %d: %w", r.lineNumber, io.ErrUnexpectedEOF)
		}

		block, err := parseLine(line)
		if err == errOtherKind {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", r.lineNumber, err)
		}
		return block, nil
	}
}

var errOtherKind = errors.New("not a block line")

func parseLine(line string) (*pbnear.Block, error) {
	// FIRE BLOCK <height> <hash> <prev_height> <prev_hash> <lib_hash> <timestamp> <payload>
	chunks := strings.Split(line, " ")
	if len(chunks) < 2 || chunks[1] != blockTag {
		return nil, errOtherKind
	}
	if len(chunks) != 9 {
		return nil, fmt.Errorf("%w: expected 9 fields, got %d", ErrInvalidLine, len(chunks))
	}

	height, err := strconv.ParseUint(chunks[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: height %q: %s", ErrInvalidLine, chunks[2], err)
	}

	prevHeight, err := strconv.ParseUint(chunks[4], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: prev height %q: %s", ErrInvalidLine, chunks[4], err)
	}

	timestamp, err := strconv.ParseUint(chunks[7], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: timestamp %q: %s", ErrInvalidLine, chunks[7], err)
	}

	payload, err := hex.DecodeString(chunks[8])
	if err != nil {
		return nil, fmt.Errorf("%w: payload: %s", ErrInvalidLine, err)
	}

	block := &pbnear.Block{}
	if err := proto.Unmarshal(payload, block); err != nil {
		return nil, fmt.Errorf("%w: decoding payload: %s", ErrInvalidLine, err)
	}

	header := block.GetHeader()
	if header == nil {
		return nil, fmt.Errorf("%w: payload has no header", ErrInvalidLine)
	}

	switch {
	case header.Height != height:
		return nil, fmt.Errorf("%w: line height %d, payload height %d", ErrInvalidLine, height, header.Height)
	case header.PrevHeight != prevHeight:
		return nil, fmt.Errorf("%w: line prev height %d, payload prev height %d", ErrInvalidLine, prevHeight, header.PrevHeight)
	case header.TimestampNanosec != timestamp:
		return nil, fmt.Errorf("%w: line timestamp %d, payload timestamp %d", ErrInvalidLine, timestamp, header.TimestampNanosec)
	}

	if err := checkHash("hash", chunks[3], header.GetHash()); err != nil {
		return nil, err
	}
	if err := checkHash("prev hash", chunks[5], header.GetPrevHash()); err != nil {
		return nil, err
	}
	if err := checkHash("lib hash", chunks[6], header.GetLastFinalBlock()); err != nil {
		return nil, err
	}

	return block, nil
}

func checkHash(name string, field string, expected *pbnear.CryptoHash) error {
	actual, err := hex.DecodeString(field)
	if err != nil {
		return fmt.Errorf("%w: %s %q: %s", ErrInvalidLine, name, field, err)
	}

	if !bytes.Equal(actual, expected.GetBytes()) {
		return fmt.Errorf("%w: line %s %s, payload %s %s", ErrInvalidLine, name, field, name, expected.AsString())
	}
	return nil
}

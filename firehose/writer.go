package firehose

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"github.com/golang/protobuf/proto"
	pbnear "github.com/streamingfast/near-firehose-indexer/pb/sf/near/type/v1"
	"go.uber.org/zap"
)

const (
	linePrefix = "FIRE"
	blockTag   = "BLOCK"
)

// Writer emits one `FIRE BLOCK` line per block:
//
//	FIRE BLOCK <height> <hash> <prev_height> <prev_hash> <lib_hash> <timestamp_nanosec> <payload>
//
// Hashes and payload are lowercase hex, the payload being the protobuf
// encoding of the block.
type Writer struct {
	out io.Writer

	written uint64
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// WriteBlock hands the whole line to the underlying writer in a single Write
// call so concurrent writers of the same sink never interleave inside a line.
func (w *Writer) WriteBlock(block *pbnear.Block) error {
	line, err := FormatLine(block)
	if err != nil {
		return err
	}

	n, err := w.out.Write(line)
	w.written += uint64(n)
	if err != nil {
		return fmt.Errorf("writing block %s: %w", block.AsRef(), err)
	}
	if n != len(line) {
		return fmt.Errorf("writing block %s: %w (%d of %d bytes)", block.AsRef(), io.ErrShortWrite, n, len(line))
	}

	if tracer.Enabled() {
		zlog.Debug("wrote block line", zap.Stringer("block", blockRef{block}), zap.Int("size", n))
	}
	return nil
}

// Written is the total amount of bytes handed to the sink so far.
func (w *Writer) Written() uint64 {
	return w.written
}

// FormatLine renders the line of block, including its trailing newline.
func FormatLine(block *pbnear.Block) ([]byte, error) {
	header := block.GetHeader()
	if header == nil {
		return nil, fmt.Errorf("block has no header")
	}

	payload, err := proto.Marshal(block)
	if err != nil {
		return nil, fmt.Errorf("marshalling block %s: %w", block.AsRef(), err)
	}

	hash := header.GetHash().GetBytes()
	prevHash := header.GetPrevHash().GetBytes()
	libHash := header.GetLastFinalBlock().GetBytes()

	size := len(linePrefix) + len(blockTag) + 3*20 + 2*(len(hash)+len(prevHash)+len(libHash)+len(payload)) + 8
	line := make([]byte, 0, size)

	line = append(line, linePrefix...)
	line = append(line, ' ')
	line = append(line, blockTag...)
	line = append(line, ' ')
	line = strconv.AppendUint(line, header.Height, 10)
	line = append(line, ' ')
	line = appendHex(line, hash)
	line = append(line, ' ')
	line = strconv.AppendUint(line, header.PrevHeight, 10)
	line = append(line, ' ')
	line = appendHex(line, prevHash)
	line = append(line, ' ')
	line = appendHex(line, libHash)
	line = append(line, ' ')
	line = strconv.AppendUint(line, header.TimestampNanosec, 10)
	line = append(line, ' ')
	line = appendHex(line, payload)
	line = append(line, '\n')

	return line, nil
}

func appendHex(dst []byte, src []byte) []byte {
	start := len(dst)
	dst = append(dst, make([]byte, hex.EncodedLen(len(src)))...)
	hex.Encode(dst[start:], src)
	return dst
}

type blockRef struct {
	block *pbnear.Block
}

func (r blockRef) String() string {
	return r.block.AsRef()
}

package firehose

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/streamingfast/near-firehose-indexer/codec"
	"github.com/streamingfast/near-firehose-indexer/near"
	pbnear "github.com/streamingfast/near-firehose-indexer/pb/sf/near/type/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBlock(t *testing.T, height uint64) *pbnear.Block {
	t.Helper()

	block, err := codec.BlockToProto(near.TestTransferBlock(t, height, 7))
	require.NoError(t, err)
	return block
}

func TestFormatLine(t *testing.T) {
	block := testBlock(t, 100)

	line, err := FormatLine(block)
	require.NoError(t, err)
	require.True(t, bytes.HasSuffix(line, []byte("\n")))
	assert.Equal(t, 1, bytes.Count(line, []byte("\n")))

	fields := strings.Split(strings.TrimSuffix(string(line), "\n"), " ")
	require.Len(t, fields, 9)

	header := near.TestTransferBlock(t, 100, 7).Header
	assert.Equal(t, "FIRE", fields[0])
	assert.Equal(t, "BLOCK", fields[1])
	assert.Equal(t, "100", fields[2])
	assert.Equal(t, header.Hash.String(), fields[3])
	assert.Equal(t, "99", fields[4])
	assert.Equal(t, header.PrevHash.String(), fields[5])
	assert.Equal(t, header.LastFinalBlock.String(), fields[6])
	assert.Equal(t, fmt.Sprintf("%d", header.TimestampNanosec), fields[7])
	assert.Equal(t, strings.ToLower(fields[8]), fields[8])

	payload, err := proto.Marshal(block)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%x", payload), fields[8])
}

func TestFormatLine_MissingHeader(t *testing.T) {
	_, err := FormatLine(&pbnear.Block{})
	assert.Error(t, err)
}

func TestWriter_OneWritePerBlock(t *testing.T) {
	sink := &recordingWriter{}
	writer := NewWriter(sink)

	for height := uint64(10); height < 15; height++ {
		require.NoError(t, writer.WriteBlock(testBlock(t, height)))
	}

	require.Len(t, sink.writes, 5)
	for i, write := range sink.writes {
		assert.True(t, strings.HasPrefix(write, fmt.Sprintf("FIRE BLOCK %d ", 10+i)), "write %d out of order", i)
		assert.True(t, strings.HasSuffix(write, "\n"))
	}

	total := 0
	for _, write := range sink.writes {
		total += len(write)
	}
	assert.Equal(t, uint64(total), writer.Written())
}

func TestWriter_ShortWrite(t *testing.T) {
	writer := NewWriter(&shortWriter{})

	err := writer.WriteBlock(testBlock(t, 10))
	assert.True(t, errors.Is(err, io.ErrShortWrite))
}

func TestWriter_SinkError(t *testing.T) {
	sinkErr := errors.New("broken pipe")
	writer := NewWriter(&failingWriter{err: sinkErr})

	err := writer.WriteBlock(testBlock(t, 10))
	assert.True(t, errors.Is(err, sinkErr))
}

func TestReader_RoundTrip(t *testing.T) {
	buffer := bytes.NewBuffer(nil)
	writer := NewWriter(buffer)

	var expected []*pbnear.Block
	for height := uint64(100); height < 103; height++ {
		block := testBlock(t, height)
		expected = append(expected, block)

		require.NoError(t, writer.WriteBlock(block))
		buffer.WriteString("2022-04-21T10:00:00Z INFO some other log line\n")
		buffer.WriteString("FIRE INIT 1.0 sf.near.type.v1.Block\n")
	}

	reader := NewReader(buffer)
	for _, want := range expected {
		actual, err := reader.ReadBlock()
		require.NoError(t, err)
		assert.True(t, proto.Equal(want, actual), "block #%d differs", want.Num())
	}

	_, err := reader.ReadBlock()
	assert.Equal(t, io.EOF, err)
}

func TestReader_InvalidLines(t *testing.T) {
	line, err := FormatLine(testBlock(t, 100))
	require.NoError(t, err)
	fields := strings.Split(strings.TrimSuffix(string(line), "\n"), " ")

	tamper := func(index int, value string) string {
		tampered := append([]string{}, fields...)
		tampered[index] = value
		return strings.Join(tampered, " ") + "\n"
	}

	tests := []struct {
		name string
		in   string
	}{
		{"height mismatch", tamper(2, "101")},
		{"prev height mismatch", tamper(4, "98")},
		{"hash mismatch", tamper(3, strings.Repeat("00", 32))},
		{"prev hash mismatch", tamper(5, strings.Repeat("00", 32))},
		{"lib hash mismatch", tamper(6, strings.Repeat("00", 32))},
		{"timestamp mismatch", tamper(7, "1")},
		{"height not a number", tamper(2, "abc")},
		{"payload not hex", tamper(8, "zz")},
		{"payload not a block", tamper(8, "ffff")},
		{"missing fields", strings.Join(fields[:8], " ") + "\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewReader(strings.NewReader(test.in)).ReadBlock()
			assert.True(t, errors.Is(err, ErrInvalidLine), "got %v", err)
		})
	}
}

func TestReader_TruncatedLine(t *testing.T) {
	line, err := FormatLine(testBlock(t, 100))
	require.NoError(t, err)

	_, err = NewReader(bytes.NewReader(line[:len(line)/2])).ReadBlock()
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

type recordingWriter struct {
	writes []string
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	w.writes = append(w.writes, string(p))
	return len(p), nil
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return len(p) - 1, nil
}

type failingWriter struct {
	err error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

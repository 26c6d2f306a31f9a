package mailsource

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"zerospam/internal/fileutil"
)

type linesSource struct {
	path string
	opts Options
}

func (s *linesSource) Name() string { return "lines " + s.path }

// Load treats each non-blank line as one message body. Line length is bounded
// only by MaxMessageBytes.
func (s *linesSource) Load(ctx context.Context) ([]Message, error) {
	rc, origin, err := openTarget(s.path, s.opts)
	if err != nil {
		return nil, fmt.Errorf("open lines: %w", err)
	}
	defer rc.Close()

	reader := bufio.NewReader(rc)
	var msgs []Message
	for lineNo := 1; ; lineNo++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, err := readLine(reader, s.opts.MaxMessageBytes)
		if err != nil && !errors.Is(err, io.EOF) {
			if errors.Is(err, fileutil.ErrTooLarge) {
				return nil, fmt.Errorf("message line-%d: %w", lineNo, err)
			}
			return nil, fmt.Errorf("read lines: %w", err)
		}
		if strings.TrimSpace(line) != "" {
			msg := Message{ID: "line-" + strconv.Itoa(lineNo), Origin: origin, Body: line}
			if sizeErr := checkSize(msg, s.opts.MaxMessageBytes); sizeErr != nil {
				return nil, sizeErr
			}
			msgs = append(msgs, msg)
		}
		if errors.Is(err, io.EOF) {
			return msgs, nil
		}
	}
}

// readLine returns the next line without its terminator. With a positive
// limit it stops reading as soon as the line cannot fit.
func readLine(r *bufio.Reader, limit int64) (string, error) {
	var buf []byte
	for {
		chunk, err := r.ReadSlice('\n')
		buf = append(buf, chunk...)
		if limit > 0 && int64(len(buf)) > limit+2 {
			return "", fmt.Errorf("%w (%d bytes)", fileutil.ErrTooLarge, limit)
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		line := strings.TrimSuffix(string(buf), "\n")
		line = strings.TrimSuffix(line, "\r")
		return line, err
	}
}

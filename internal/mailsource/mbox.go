package mailsource

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/mail"
	"strconv"
	"strings"
)

type mboxSource struct {
	path string
	opts Options
}

func (s *mboxSource) Name() string { return "mbox " + s.path }

// Load splits the mailbox on "From " separator lines. Headers are dropped and
// mboxrd quoting (">From ") is reversed in bodies.
func (s *mboxSource) Load(ctx context.Context) ([]Message, error) {
	rc, origin, err := openTarget(s.path, s.opts)
	if err != nil {
		return nil, fmt.Errorf("open mbox: %w", err)
	}
	defer rc.Close()

	raws, err := splitMbox(rc)
	if err != nil {
		return nil, fmt.Errorf("read mbox: %w", err)
	}

	msgs := make([]Message, 0, len(raws))
	for i, raw := range raws {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		msg := mboxMessage(raw, i+1)
		msg.Origin = origin
		if err := checkSize(msg, s.opts.MaxMessageBytes); err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

func splitMbox(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var (
		out     []string
		current strings.Builder
		started bool
	)
	flush := func() {
		if !started {
			return
		}
		out = append(out, strings.TrimRight(current.String(), "\n"))
		current.Reset()
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "From ") {
			flush()
			started = true
			continue
		}
		if !started {
			if strings.TrimSpace(line) == "" {
				continue
			}
			return nil, fmt.Errorf("missing leading \"From \" separator")
		}
		current.WriteString(unquoteFrom(line))
		current.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return out, nil
}

// unquoteFrom strips one '>' from lines of the form ">+From ".
func unquoteFrom(line string) string {
	trimmed := strings.TrimLeft(line, ">")
	if len(trimmed) < len(line) && strings.HasPrefix(trimmed, "From ") {
		return line[1:]
	}
	return line
}

func mboxMessage(raw string, ordinal int) Message {
	id := "message-" + strconv.Itoa(ordinal)
	parsed, err := mail.ReadMessage(strings.NewReader(raw))
	if err != nil {
		return Message{ID: id, Body: raw}
	}
	if mid := strings.Trim(strings.TrimSpace(parsed.Header.Get("Message-Id")), "<>"); mid != "" {
		id = mid
	}
	body, err := io.ReadAll(parsed.Body)
	if err != nil {
		return Message{ID: id, Body: raw}
	}
	return Message{ID: id, Body: string(body)}
}

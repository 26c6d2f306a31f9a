package mailsource

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/mail"
	"os"
	"path/filepath"
	"strings"

	"zerospam/internal/fileutil"
	"zerospam/internal/logging"
)

type dirSource struct {
	path string
	opts Options
}

func (s *dirSource) Name() string { return "dir " + s.path }

// Load reads every regular, non-hidden file in the directory in name order.
func (s *dirSource) Load(ctx context.Context) ([]Message, error) {
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}
	logger := s.opts.logger(KindDir)

	var msgs []Message
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !entry.Type().IsRegular() {
			continue
		}
		full := filepath.Join(s.path, name)

		limit := int64(0)
		if s.opts.MaxMessageBytes > 0 && !isEML(name) {
			limit = s.opts.MaxMessageBytes
		}
		data, err := fileutil.ReadFileLimited(full, limit)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		body := string(data)
		if isEML(name) {
			parsed, perr := emlBody(data)
			if perr != nil {
				logger.Warn("eml parse failed; scoring raw file",
					logging.String("file", name),
					logging.Error(perr),
				)
			} else {
				body = parsed
			}
		}

		msg := Message{ID: name, Origin: full, Body: body}
		if err := checkSize(msg, s.opts.MaxMessageBytes); err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

func isEML(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".eml")
}

func emlBody(data []byte) (string, error) {
	msg, err := mail.ReadMessage(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	body, err := io.ReadAll(msg.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

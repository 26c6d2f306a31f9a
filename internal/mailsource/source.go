package mailsource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"zerospam/internal/fileutil"
	"zerospam/internal/logging"
)

// Source kinds accepted by Open.
const (
	KindDir    = "dir"
	KindMbox   = "mbox"
	KindJSON   = "json"
	KindLines  = "lines"
	KindSQLite = "sqlite"
)

// StdinTarget selects standard input for stream based sources.
const StdinTarget = "-"

// ErrUnknownKind reports an unsupported source kind.
var ErrUnknownKind = errors.New("unknown source kind")

// Message is one loaded mail.
type Message struct {
	// ID identifies the message within its origin (file name, Message-ID,
	// row id or ordinal).
	ID string `json:"id"`
	// Origin is the file, database or stream the message came from.
	Origin string `json:"origin"`
	// Body is the text that gets scored.
	Body string `json:"-"`
}

// Source loads a batch of messages.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]Message, error)
}

// Options tunes adapter behavior.
type Options struct {
	// MaxMessageBytes rejects any single message larger than this many bytes.
	// Zero disables the limit.
	MaxMessageBytes int64
	// Query is the SQL used by the sqlite source.
	Query string
	// Stdin replaces os.Stdin for targets equal to StdinTarget.
	Stdin io.Reader
	Logger *slog.Logger
}

func (o Options) logger(kind string) *slog.Logger {
	return logging.NewComponentLogger(o.Logger, "mailsource").With(logging.String(logging.FieldSource, kind))
}

func (o Options) stdin() io.Reader {
	if o.Stdin != nil {
		return o.Stdin
	}
	return os.Stdin
}

// Open returns the adapter for kind reading from target.
func Open(kind, target string, opts Options) (Source, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	target = strings.TrimSpace(target)
	if target == "" {
		if kind != KindLines && kind != KindJSON {
			return nil, fmt.Errorf("%s source requires a target path", kind)
		}
		target = StdinTarget
	}

	switch kind {
	case KindDir:
		return &dirSource{path: target, opts: opts}, nil
	case KindMbox:
		return &mboxSource{path: target, opts: opts}, nil
	case KindJSON:
		return &jsonSource{path: target, opts: opts}, nil
	case KindLines:
		return &linesSource{path: target, opts: opts}, nil
	case KindSQLite:
		query := strings.TrimSpace(opts.Query)
		if query == "" {
			return nil, errors.New("sqlite source requires a query")
		}
		return &sqliteSource{path: target, query: query, opts: opts}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
}

// Load opens the adapter for kind and loads it in one step.
func Load(ctx context.Context, kind, target string, opts Options) ([]Message, error) {
	src, err := Open(kind, target, opts)
	if err != nil {
		return nil, err
	}
	msgs, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", src.Name(), err)
	}
	opts.logger(kind).Debug("messages loaded", logging.Int("count", len(msgs)), logging.String("target", target))
	return msgs, nil
}

// Bodies returns the message bodies in order.
func Bodies(msgs []Message) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.Body
	}
	return out
}

func checkSize(msg Message, limit int64) error {
	if limit > 0 && int64(len(msg.Body)) > limit {
		return fmt.Errorf("message %s: %w (%d bytes)", msg.ID, fileutil.ErrTooLarge, limit)
	}
	return nil
}

func openTarget(path string, opts Options) (io.ReadCloser, string, error) {
	if path == StdinTarget {
		return io.NopCloser(opts.stdin()), "stdin", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, path, err
	}
	return f, path, nil
}

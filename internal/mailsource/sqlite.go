package mailsource

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"

	_ "modernc.org/sqlite"
)

type sqliteSource struct {
	path  string
	query string
	opts  Options
}

func (s *sqliteSource) Name() string { return "sqlite " + s.path }

// Load runs the configured query read-only. The first column is the body; a
// second column, when present, becomes the message ID.
func (s *sqliteSource) Load(ctx context.Context) ([]Message, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("stat sqlite db: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA query_only = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	rows, err := db.QueryContext(ctx, s.query)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("query returned no columns")
	}

	var msgs []Message
	for rows.Next() {
		var (
			body sql.NullString
			id   sql.NullString
		)
		dest := make([]any, len(cols))
		dest[0] = &body
		for i := 1; i < len(cols); i++ {
			if i == 1 {
				dest[i] = &id
				continue
			}
			dest[i] = new(any)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		msg := Message{
			ID:     strconv.Itoa(len(msgs)),
			Origin: s.path,
			Body:   body.String,
		}
		if id.Valid {
			msg.ID = id.String
		}
		if err := checkSize(msg, s.opts.MaxMessageBytes); err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return msgs, nil
}

package mailsource

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"zerospam/internal/fileutil"
	"zerospam/internal/spamscore"
)

type jsonSource struct {
	path string
	opts Options
}

func (s *jsonSource) Name() string { return "json " + s.path }

// Load decodes a JSON array of strings. Any other document shape fails with
// the same argument error the scorer reports for non-sequence input.
func (s *jsonSource) Load(ctx context.Context) ([]Message, error) {
	rc, origin, err := openTarget(s.path, s.opts)
	if err != nil {
		return nil, fmt.Errorf("open json: %w", err)
	}
	defer rc.Close()

	data, err := fileutil.ReadAllLimited(rc, 0)
	if err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	bodies, err := spamscore.MailsFromAny(doc)
	if err != nil {
		return nil, err
	}

	msgs := make([]Message, len(bodies))
	for i, body := range bodies {
		msgs[i] = Message{ID: strconv.Itoa(i), Origin: origin, Body: body}
		if err := checkSize(msgs[i], s.opts.MaxMessageBytes); err != nil {
			return nil, err
		}
	}
	return msgs, nil
}

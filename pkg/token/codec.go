package token

import (
	"bytes"
	"fmt"
	"sort"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/tidwall/pretty"
)

// numbers are kept as json.Number so that a numeric user_id
// survives decoding without losing precision
var json = jsoniter.Config{
	EscapeHTML:             true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// fileRecord mirrors Record on the way in, user_id may
// be written either as a string or as a number
type fileRecord struct {
	Token      string      `json:"token"`
	Type       string      `json:"type"`
	UserID     interface{} `json:"user_id"`
	ValidUntil int64       `json:"valid_until"`
}

// encodeTokens serializes the whole token set into its canonical
// representation: a pretty-printed JSON array ordered by key
func encodeTokens(tokens map[string]Token) ([]byte, error) {
	records := make([]Record, 0, len(tokens))
	for _, t := range tokens {
		records = append(records, t.Record())
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Token < records[j].Token
	})

	buf, err := json.Marshal(records)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal token records")
	}

	return pretty.Pretty(buf), nil
}

// decodeRecords parses the backing file content, blank content
// and a JSON null both mean an empty set
func decodeRecords(data []byte) ([]Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var raw []fileRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	records := make([]Record, len(raw))
	for i, r := range raw {
		records[i] = Record{
			Token:      r.Token,
			Type:       r.Type,
			ValidUntil: r.ValidUntil,
		}

		switch v := r.UserID.(type) {
		case nil:
		case string:
			records[i].UserID = v
		default:
			records[i].UserID = fmt.Sprint(v)
		}
	}

	return records, nil
}

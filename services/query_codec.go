package services

import (
	"fmt"
	"net/url"
	"strings"
)

// Decode failure kinds reported by DecodeQuery
const (
	DecodeEmptyInput    = "empty_input"
	DecodeMalformedPair = "malformed_pair"
	DecodeEncoding      = "encoding"
	DecodeNoPairs       = "no_pairs"
)

// DecodeError describes why a raw query string could not be decoded.
// Segment carries the offending key=value fragment when there is one.
type DecodeError struct {
	Kind    string
	Segment string
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case DecodeEmptyInput:
		return "query string is empty"
	case DecodeMalformedPair:
		return fmt.Sprintf("invalid pair in query string: '%s'", e.Segment)
	case DecodeEncoding:
		return fmt.Sprintf("failed to decode query segment: '%s'", e.Segment)
	case DecodeNoPairs:
		return "no values found in query string"
	}
	return "invalid query string"
}

// DecodeQuery parses a raw key=value&key=value query string into a map of
// decoded keys to decoded values. Each segment must split into exactly two
// '='-separated parts with a non-empty key. Both halves are percent-decoded;
// a literal '+' in the value becomes a space (form-encoding convention).
// Duplicate keys resolve last-value-wins. Pure function, no I/O.
func DecodeQuery(raw string) (map[string]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &DecodeError{Kind: DecodeEmptyInput}
	}

	params := make(map[string]string)
	for _, segment := range strings.Split(raw, "&") {
		kv := strings.Split(segment, "=")
		if len(kv) != 2 || strings.TrimSpace(kv[0]) == "" {
			return nil, &DecodeError{Kind: DecodeMalformedPair, Segment: segment}
		}

		key, err := url.PathUnescape(kv[0])
		if err != nil {
			return nil, &DecodeError{Kind: DecodeEncoding, Segment: segment}
		}
		value, err := url.PathUnescape(kv[1])
		if err != nil {
			return nil, &DecodeError{Kind: DecodeEncoding, Segment: segment}
		}

		params[key] = strings.ReplaceAll(value, "+", " ")
	}

	if len(params) == 0 {
		return nil, &DecodeError{Kind: DecodeNoPairs}
	}

	return params, nil
}

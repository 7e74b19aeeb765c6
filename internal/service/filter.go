package service

import (
	"errors"
	"strconv"
	"strings"

	"github.com/target/chroniker-go/internal/domain/model"
)

// ErrInvalidFilter is returned when a filter clause is not exactly "key=value".
var ErrInvalidFilter = errors.New("invalid filter format")

// Filter is an ordered conjunction of field equality constraints.
type Filter []model.FieldFilter

// ParseFilter parses "key=value,key2=value2". Values "true"/"false" (any case)
// become bool, non-empty ASCII digit strings become int64 and everything else
// stays a string. A repeated key keeps its first position and its last value.
// An empty input yields an empty filter.
func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return nil, nil
	}

	clauses := strings.Split(s, ",")
	f := make(Filter, 0, len(clauses))
	index := make(map[string]int, len(clauses))
	for _, clause := range clauses {
		key, value, ok := strings.Cut(clause, "=")
		if !ok || key == "" || strings.Contains(value, "=") {
			return nil, ErrInvalidFilter
		}

		v := coerceValue(value)
		if i, seen := index[key]; seen {
			f[i].Value = v
			continue
		}
		index[key] = len(f)
		f = append(f, model.FieldFilter{Field: key, Value: v})
	}
	return f, nil
}

func coerceValue(raw string) any {
	switch strings.ToLower(raw) {
	case "true":
		return true
	case "false":
		return false
	}
	if isDigits(raw) {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n
		}
	}
	return raw
}

// isDigits matches ASCII digits only; other Unicode digits leave the value a string.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Len returns the number of constraints.
func (f Filter) Len() int { return len(f) }

// String renders the filter as {"key": value, ...} in input order.
func (f Filter) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, c := range f {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(c.Field))
		b.WriteString(": ")
		switch v := c.Value.(type) {
		case string:
			b.WriteString(strconv.Quote(v))
		case bool:
			b.WriteString(strconv.FormatBool(v))
		case int64:
			b.WriteString(strconv.FormatInt(v, 10))
		}
	}
	b.WriteByte('}')
	return b.String()
}

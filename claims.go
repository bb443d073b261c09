package firetoken

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// version is the legacy claims format version, always 0.
const version = 0

// Claims returns the claims JSON that CreateToken signs. Exposed so callers
// can inspect exactly what a token will assert.
//
// Layout matches the legacy verifier byte for byte: "v" and "iat" carry a
// space after the colon, map entries do not, options precede the nested "d"
// object. "iat" deviates from RFC 7519 — Firebase expects milliseconds, not
// seconds. Key order within the options and data blocks is unspecified.
func (g *Generator) Claims() (string, error) {
	var sb strings.Builder

	sb.WriteString(`{"v": `)
	sb.WriteString(strconv.Itoa(version))
	sb.WriteString(`,"iat": `)
	sb.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 10))
	sb.WriteByte(',')

	if len(g.options) > 0 {
		if err := writeEntries(&sb, g.options); err != nil {
			return "", err
		}
		sb.WriteByte(',')
	}

	sb.WriteString(`"d":{`)
	if err := writeEntries(&sb, g.data); err != nil {
		return "", err
	}
	sb.WriteString(`}}`)

	return sb.String(), nil
}

// writeEntries emits a comma-joined "key":value sequence without a trailing
// comma. Keys and string values are written as-is, unescaped.
func writeEntries(sb *strings.Builder, entries map[string]any) error {
	first := true
	for key, value := range entries {
		literal, err := scalarLiteral(value)
		if err != nil {
			return err
		}

		if !first {
			sb.WriteByte(',')
		}
		first = false

		sb.WriteByte('"')
		sb.WriteString(key)
		sb.WriteString(`":`)
		sb.WriteString(literal)
	}

	return nil
}

// scalarLiteral renders a scalar claim value as a JSON literal. The value set
// is closed: anything outside it is a caller bug surfaced as
// ErrUnsupportedType naming the offending type.
func scalarLiteral(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "null", nil
	case string:
		return `"` + v + `"`, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

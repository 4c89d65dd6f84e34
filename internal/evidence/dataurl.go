package evidence

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrEmptyPayload = errors.New("empty evidence payload")

// DecodeDataURL accepts either a data URL ("data:image/...;base64,<payload>")
// or a bare base64 string and returns the raw bytes.
func DecodeDataURL(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyPayload
	}
	if strings.HasPrefix(s, "data:") {
		idx := strings.IndexByte(s, ',')
		if idx < 0 {
			return nil, errors.New("malformed data URL")
		}
		s = s[idx+1:]
	}
	return base64.StdEncoding.DecodeString(s)
}

// EncodeDataURL wraps raw bytes as an embeddable data URL.
func EncodeDataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

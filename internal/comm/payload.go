package comm

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Payload is file data for a reference or background image, decoded once
// at the boundary. MIME is set only when the payload arrived as an
// inline data URL; raw byte payloads carry no MIME.
type Payload struct {
	MIME string
	Data []byte
}

// DecodePayload converts the two accepted wire shapes into a Payload:
// a data-URL string (accepted only when kind is "image") or raw bytes.
// Anything else is rejected with ErrInvalidArgument.
func DecodePayload(fileData any, kind string) (Payload, error) {
	switch data := fileData.(type) {
	case string:
		if kind == string(ReferenceImage) && strings.HasPrefix(data, "data:") {
			return decodeDataURL(data)
		}
		return Payload{}, fmt.Errorf("%w: unsupported file data type", ErrInvalidArgument)
	case []byte:
		return Payload{Data: data}, nil
	default:
		return Payload{}, fmt.Errorf("%w: unsupported file data type", ErrInvalidArgument)
	}
}

// decodeDataURL parses "data:<mime>;base64,<payload>" into a Payload.
func decodeDataURL(url string) (Payload, error) {
	rest := strings.TrimPrefix(url, "data:")
	meta, encoded, ok := strings.Cut(rest, ",")
	if !ok {
		return Payload{}, fmt.Errorf("%w: malformed data URL", ErrInvalidArgument)
	}
	mime := strings.TrimSuffix(meta, ";base64")

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: decoding base64 payload: %v", ErrInvalidArgument, err)
	}
	return Payload{MIME: mime, Data: raw}, nil
}

// EncodeDataURL renders bytes as an inline data URL for previews.
func EncodeDataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Package pemfile extracts the DER payload from PEM-armored key files.
package pemfile

import (
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoPEMData is returned when the input contains no Base64 payload.
var ErrNoPEMData = errors.New("pemfile: no PEM data found")

// Load reads the file at path and returns its decoded DER bytes.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pemfile: reading %s: %w", path, err)
	}
	return Decode(data)
}

// Decode strips the -----BEGIN/END----- delimiter lines and
// Base64-decodes the body. Well-formed input goes through the standard
// PEM decoder; inputs it rejects (missing delimiters, stray text around
// the block) fall back to a line filter that drops every ------prefixed
// line and decodes whatever Base64 remains.
func Decode(data []byte) ([]byte, error) {
	if block, _ := pem.Decode(data); block != nil && len(block.Bytes) > 0 {
		return block.Bytes, nil
	}

	var body strings.Builder
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "-----") {
			continue
		}
		body.WriteString(line)
	}
	if body.Len() == 0 {
		return nil, ErrNoPEMData
	}

	der, err := base64.StdEncoding.DecodeString(body.String())
	if err != nil {
		return nil, fmt.Errorf("pemfile: decoding base64 body: %w", err)
	}
	return der, nil
}

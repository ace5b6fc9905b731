package util

import (
	"bytes"
	"errors"
	"io"
	"os"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

// sniffLen bytes are enough to catch images or archives dropped into the
// data directory under a .txt name.
const sniffLen = 512

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// IsLikelyBinary is used by doctor to flag category files that are not text.
func IsLikelyBinary(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, err
	}
	return bytes.IndexByte(head[:n], 0) >= 0, nil
}

// CleanFileContent drops a leading UTF-8 BOM and replaces invalid UTF-8 with
// U+FFFD. Valid characters are never rewritten: hashtags are compared byte
// for byte, so "sun set" must stay one token.
func CleanFileContent(content []byte, src string) (string, error) {
	content = bytes.TrimPrefix(content, utf8BOM)
	if !utf8.Valid(content) {
		log.WithField("file", src).Warn("invalid UTF-8 in category file, replacing invalid bytes")
		content = bytes.ToValidUTF8(content, []byte(string(utf8.RuneError)))
	}
	return string(content), nil
}

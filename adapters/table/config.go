package table

import (
	"fmt"
	"strings"
)

// Supported text encodings for delimited sources
const (
	EncodingLatin1 = "iso-8859-1"
	EncodingUTF8   = "utf-8"
)

// SourceConfig holds configuration for the table source
type SourceConfig struct {
	FilePath string `json:"file_path" yaml:"file_path"`
	Encoding string `json:"encoding" yaml:"encoding"`
	Sheet    string `json:"sheet" yaml:"sheet"`
}

// DefaultSourceConfig returns the defaults for the personality table
func DefaultSourceConfig() SourceConfig {
	return SourceConfig{
		FilePath: "MBTI_data.csv",
		Encoding: EncodingLatin1,
	}
}

// normalizeEncoding maps common spellings onto the supported encodings
func normalizeEncoding(encoding string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "iso-8859-1", "iso8859-1", "latin1", "latin-1":
		return EncodingLatin1, nil
	case "utf-8", "utf8":
		return EncodingUTF8, nil
	default:
		return "", fmt.Errorf("unsupported encoding: %s", encoding)
	}
}

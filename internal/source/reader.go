package source

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/osse101/raiddata/internal/domain"
)

// File is a source file split into undecoded records
type File struct {
	Path    string
	Hash    string
	ModTime time.Time
	Records []json.RawMessage
}

// ReadFile loads a JSON array file. A missing or malformed file is reported
// as domain.ErrUnreadableSource.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFileFailed, path, fmt.Errorf("%w: %v", domain.ErrUnreadableSource, err))
	}
	f, err := ParseFile(path, data)
	if err != nil {
		return nil, err
	}
	if info, err := os.Stat(path); err == nil {
		f.ModTime = info.ModTime()
	}
	return f, nil
}

// ParseFile splits already loaded bytes into records
func ParseFile(path string, data []byte) (*File, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFileFailed, path, fmt.Errorf("%w: %v", domain.ErrUnreadableSource, err))
	}
	sum := sha256.Sum256(data)
	return &File{
		Path:    path,
		Hash:    hex.EncodeToString(sum[:]),
		Records: records,
	}, nil
}

// Decode decodes the record at index i into T
func Decode[T any](f *File, i int) (T, error) {
	var v T
	if err := json.Unmarshal(f.Records[i], &v); err != nil {
		return v, fmt.Errorf(ErrFmtDecodeRecord, domain.ErrMalformedRecord, i, err)
	}
	return v, nil
}

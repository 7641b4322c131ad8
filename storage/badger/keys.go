package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/poiesic/catharsis/core"
)

// Key prefixes for different data types
const (
	contentUnitPrefix       = "conunit"
	contentUnitStatusPrefix = "conunits"
	contentUnitDatePrefix   = "conunitd"
)

// makeContentUnitKey generates a key for a content unit by ID.
func makeContentUnitKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", contentUnitPrefix, id))
}

// makeStatusKey generates a composite key for the status index.
// Format: prefix:status:id
func makeStatusKey(status core.Status, id core.ID) []byte {
	prefix := contentUnitStatusPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 9 // 1 byte for status + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	buf[offset] = byte(status)
	offset++
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialStatusKey generates a partial key for status scans.
// Format: prefix:status
func makePartialStatusKey(status core.Status) []byte {
	prefix := contentUnitStatusPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+1)
	offset := copy(buf, prefixBytes)
	buf[offset] = byte(status)
	return buf
}

// makeDateKey generates a composite key for the creation date index.
// Format: prefix:timestamp:id
func makeDateKey(timestamp time.Time, id core.ID) []byte {
	prefix := contentUnitDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

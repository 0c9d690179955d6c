package badger

import (
	"encoding/binary"
	"fmt"
)

// Key prefixes for different data types
const (
	documentPrefix = "docrec"
	profilePrefix  = "prorec"
	orderPrefix    = "ordrec"
	orderSeq       = "ordrecseq"
)

// makeDocumentKey generates a key for a document by ID.
func makeDocumentKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", documentPrefix, id))
}

// makeProfileKey generates a key for a profile by user ID.
func makeProfileKey(userID string) []byte {
	return []byte(fmt.Sprintf("%s:%s", profilePrefix, userID))
}

// makeOrderKey generates a key for an order by sequence number.
// The sequence is written in BigEndian order so lexicographic iteration
// visits orders in append order.
func makeOrderKey(seq uint64) []byte {
	prefix := orderPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], seq)
	return buf
}

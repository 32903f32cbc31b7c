package editable

import (
	"encoding/hex"
	"sort"

	"lukechampine.com/blake3"
)

// PutAsset adds or replaces an embedded binary payload under a file ID
// and marks the session modified.
func (s *Session) PutAsset(id string, data []byte) {
	s.assets[id] = data
	s.modified = true
}

// Asset returns the embedded payload for a file ID.
func (s *Session) Asset(id string) ([]byte, bool) {
	data, ok := s.assets[id]
	return data, ok
}

// HasAsset reports whether a payload is attached under the file ID.
func (s *Session) HasAsset(id string) bool {
	_, ok := s.assets[id]
	return ok
}

// RemoveAsset detaches and returns the payload under the file ID. The
// session is marked modified either way, matching editor semantics where
// the attempt itself is a user action.
func (s *Session) RemoveAsset(id string) ([]byte, bool) {
	s.modified = true
	data, ok := s.assets[id]
	if ok {
		delete(s.assets, id)
	}
	return data, ok
}

// AssetIDs returns the attached file IDs in sorted order.
func (s *Session) AssetIDs() []string {
	ids := make([]string, 0, len(s.assets))
	for id := range s.assets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AssetDigest returns the hex BLAKE3 digest of the payload under the
// file ID, for change detection and deduplication.
func (s *Session) AssetDigest(id string) (string, bool) {
	data, ok := s.assets[id]
	if !ok {
		return "", false
	}
	return digest(data), true
}

func digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

package repository

import (
	"encoding/json"

	"go.uber.org/zap"
)

// decodeStored parses a stored JSON value. Corrupt state is fail-open: the
// caller proceeds with its empty default, and the bad value is gone on the
// next successful write.
func decodeStored(log *zap.Logger, key string, raw string, v any) bool {
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		log.Warn("discarding corrupt stored value", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func encodeStored(v any) string {
	raw, _ := json.Marshal(v)
	return string(raw)
}

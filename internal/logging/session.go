package logging

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"
)

const (
	sessionPrefix = "session_"
	sessionSuffix = ".log"
)

// GenerateSessionID creates a unique identifier for one playground run.
// Format: YYYYMMDD_HHMMSS_xxxx (timestamp + 4 random hex chars)
func GenerateSessionID() string {
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return time.Now().Format("20060102_150405") + "_" + hex.EncodeToString(random)
}

// ShortSessionID returns the random suffix of a session ID.
func ShortSessionID(sessionID string) string {
	if len(sessionID) < 4 {
		return sessionID
	}
	return sessionID[len(sessionID)-4:]
}

// ParseSessionFilename extracts the session ID from a log filename.
// Example: "session_20251217_205106_a7b3.log" -> "20251217_205106_a7b3", true
func ParseSessionFilename(filename string) (string, bool) {
	if len(filename) <= len(sessionPrefix)+len(sessionSuffix) {
		return "", false
	}
	id, ok := strings.CutPrefix(filename, sessionPrefix)
	if !ok {
		return "", false
	}
	return strings.CutSuffix(id, sessionSuffix)
}

// SessionFilename generates the log filename for a session ID.
func SessionFilename(sessionID string) string {
	return sessionPrefix + sessionID + sessionSuffix
}

package project

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

const (
	handleLength      = 13
	maxHandleAttempts = 1000
)

// makeHandle hashes the current time plus a seed suffix and keeps the first
// 13 hex characters. The seed grows on each collision with the tree.
func (p *Project) makeHandle() (string, error) {
	seed := ""
	for attempt := 0; attempt < maxHandleAttempts; attempt++ {
		now := float64(p.now().UnixNano()) / 1e9
		sum := sha256.Sum256([]byte(strconv.FormatFloat(now, 'f', -1, 64) + seed))
		handle := hex.EncodeToString(sum[:])[:handleLength]
		if _, taken := p.items[handle]; !taken {
			return handle, nil
		}
		p.logger.WithField("handle", handle).Warn("Duplicate handle encountered! Retrying ...")
		seed += "!"
	}
	return "", ErrHandleExhausted
}

// checkHandle normalises an optional handle: empty and the legacy "None"
// placeholder mean absent.
func checkHandle(handle string) string {
	handle = strings.TrimSpace(handle)
	if handle == "None" {
		return ""
	}
	return handle
}

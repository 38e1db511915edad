// Package identity derives deterministic, content-addressed identifiers
// for agents, claims, and analysis payloads. Identical inputs always
// produce identical ids, so the ids can key caches and tag published
// claim payloads without coordination.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Namespace scopes every id to this toolkit's address space.
const Namespace = "jeffa_seo_v1"

// ContentID hashes the namespace, kind, and parts into a hex id. Parts
// are NUL-separated so distinct splits never collide.
func ContentID(kind string, parts ...string) string {
	h := sha256.New()
	h.Write([]byte(Namespace))
	h.Write([]byte{0})
	h.Write([]byte(kind))
	for _, p := range parts {
		h.Write([]byte{0})
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// AgentID derives the id of a named agent. Names are case-insensitive.
func AgentID(name string) string {
	return ContentID("agent", strings.ToLower(strings.TrimSpace(name)))
}

// ClaimID derives the id of a claim payload about a subject.
func ClaimID(subject, payload string) string {
	return ContentID("claim", subject, payload)
}

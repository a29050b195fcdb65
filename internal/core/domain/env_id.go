package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"go.trai.ch/zerr"
)

// HashSpec computes the deterministic identity hash of an environment. The
// host keys per-environment deployment and cache directories by it.
//
// Exactly one branch fires, matching the spec's active identity: for envfile
// specs the parsed document is serialized with sorted keys so that
// semantically identical files hash identically regardless of key order; for
// name and directory specs the raw string is hashed. The solved package list
// is deliberately not part of the hash, so a re-solve against unchanged
// inputs never changes it.
func HashSpec(spec EnvSpec, content *EnvFile) (string, error) {
	h := sha256.New()

	switch spec.Kind() {
	case SpecEnvFile:
		// encoding/json emits map keys in sorted order, giving a canonical
		// byte representation of the document.
		data, err := json.Marshal(content.Document)
		if err != nil {
			return "", zerr.Wrap(err, "failed to canonicalize envfile content")
		}
		_, _ = h.Write(data)
	case SpecDirectory:
		_, _ = h.Write([]byte(spec.Directory()))
	case SpecName:
		_, _ = h.Write([]byte(spec.Name()))
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

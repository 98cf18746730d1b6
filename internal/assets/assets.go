package assets

import (
	_ "embed"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

//go:embed reveal.js
var revealScript []byte

// fingerprintLen is the number of digest bytes kept in a fingerprinted
// file name. Four bytes (eight hex characters) is plenty for cache
// busting a handful of assets.
const fingerprintLen = 4

// RevealScript returns the embedded section reveal script.
// Callers must not modify the returned slice.
func RevealScript() []byte {
	return revealScript
}

// Fingerprint derives a cache-busting file name from the content of an
// asset: "reveal.js" with content digest ab12cd34 becomes
// "reveal.ab12cd34.js". Names without an extension get the digest
// appended.
//
// The digest is SHA3-256 of the content, so the name changes exactly
// when the content does and rebuilding unchanged content keeps the
// same name.
func Fingerprint(name string, data []byte) string {
	hash := sha3.Sum256(data)
	short := hex.EncodeToString(hash[:fingerprintLen])

	dot := strings.LastIndex(name, ".")
	if dot <= 0 {
		return name + "." + short
	}
	return name[:dot] + "." + short + name[dot:]
}

package dcmio

import (
	"crypto/sha1"
	"math/big"
	"strings"
)

// Organizational root used when rewriting noncompliant UIDs. The suffix
// mimics the device/study/series/image components of the DICOM example
// scheme.
const (
	orgRoot   = "1.2.840.12345"
	uidPrefix = orgRoot + ".3.152.235.2.12"
	maxUIDLen = 64
)

// DefaultSOPClassUID is Secondary Capture Image Storage, substituted when
// a SOP Class UID is not a registered value.
const DefaultSOPClassUID = "1.2.840.10008.5.1.4.1.1.7"

// ValidUID reports whether uid satisfies the DICOM UI rules: non-empty,
// at most 64 characters, dot-separated decimal components with no leading
// zeros.
func ValidUID(uid string) bool {
	if uid == "" || len(uid) > maxUIDLen {
		return false
	}
	for _, comp := range strings.Split(uid, ".") {
		if comp == "" {
			return false
		}
		for _, r := range comp {
			if r < '0' || r > '9' {
				return false
			}
		}
		if len(comp) > 1 && comp[0] == '0' {
			return false
		}
	}
	return true
}

// DeriveUID maps a noncompliant UID to a compliant one under the
// organizational root. The unique suffix is the decimal form of the
// SHA-1 digest of the original value, truncated so the result stays
// within the 64-character limit. Equal inputs always map to equal
// outputs.
func DeriveUID(original string) string {
	sum := sha1.Sum([]byte(original))
	suffix := new(big.Int).SetBytes(sum[:]).String()
	avail := maxUIDLen - len(uidPrefix) - 1
	if len(suffix) > avail {
		suffix = suffix[:avail]
	}
	return uidPrefix + "." + suffix
}

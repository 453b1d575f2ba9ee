package auth

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// GravatarURL derives the avatar URL from an email address. The derivation is
// a pure function: the same email always yields the same URL.
// Size 200, rating pg, "mystery man" default image.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=200&r=pg&d=mm",
		hex.EncodeToString(sum[:]))
}

// Package ids mints identifiers for dashboard records.
//
// Generate is deterministic and backs the synthetic fixtures: the same
// (prefix, index) pair always yields the same ID. Random backs records created
// at runtime, such as templates.
package ids

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	alphabet   = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	bodyLength = 28
	randLength = 12
)

// namespace roots the name-based UUIDs so bodies never collide with other
// SHA-1 UUID users.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("verifydesk/ids"))

// Generate returns "<prefix>_<28 base62 chars>" for index.
// A trailing underscore on prefix is accepted.
func Generate(prefix string, index int) string {
	prefix = strings.TrimSuffix(prefix, "_")

	var b strings.Builder
	b.Grow(len(prefix) + 1 + bodyLength)
	b.WriteString(prefix)
	b.WriteByte('_')

	written := 0
	for block := 0; written < bodyLength; block++ {
		sum := uuid.NewSHA1(namespace, fmt.Appendf(nil, "%s:%d:%d", prefix, index, block))
		for _, c := range sum {
			if written == bodyLength {
				break
			}
			b.WriteByte(alphabet[int(c)%len(alphabet)])
			written++
		}
	}
	return b.String()
}

// Random returns prefix followed by 12 lowercase alphanumerics. prefix is
// used verbatim, so callers include their own separator.
func Random(prefix string) string {
	body := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + body[:randLength]
}

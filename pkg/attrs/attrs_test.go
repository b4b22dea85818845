package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractString(t *testing.T) {
	list := []any{"kind", "inquiries", "count", 3, "template_id", "itmpl_1", "dangling"}

	assert.Equal(t, "inquiries", ExtractString(list, "kind"))
	assert.Equal(t, "", ExtractString(list, "count"), "non-string values are ignored")
	assert.Equal(t, "", ExtractString(list, "dangling"), "keys without values are ignored")
	assert.Equal(t, "", ExtractString(nil, "kind"))
}

func TestExtractFirst(t *testing.T) {
	list := []any{"tag", "vip", "template_id", ""}

	assert.Equal(t, "vip", ExtractFirst(list, "template_id", "tag"))
	assert.Equal(t, "", ExtractFirst(list, "missing"))
}

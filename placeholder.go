package mdhtml

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Placeholder tokens use CJK corner brackets so they cannot collide with
// natural Markdown text, plus the owning context id and a sequence
// index: 《CODE_9f2c41d78a3e_0》. The id is minted fresh per context, so
// two contexts created in the same process never produce the same token
// and restoring with a foreign context's data is a no-op.
const (
	placeholderOpen  = "《"
	placeholderClose = "》"
)

type placeholderContext struct {
	kind  string
	id    string
	spans []string
}

func newPlaceholderContext(kind string) *placeholderContext {
	return &placeholderContext{
		kind: kind,
		id:   strings.ReplaceAll(uuid.NewString(), "-", "")[:12],
	}
}

// protect stores replacement and returns the token standing in for it.
func (c *placeholderContext) protect(replacement string) string {
	c.spans = append(c.spans, replacement)
	return c.token(len(c.spans) - 1)
}

func (c *placeholderContext) token(index int) string {
	return fmt.Sprintf("%s%s_%s_%d%s", placeholderOpen, c.kind, c.id, index, placeholderClose)
}

// restore substitutes every token owned by this context back with its
// stored replacement. Tokens from other contexts are left untouched.
func (c *placeholderContext) restore(text string) string {
	for i := len(c.spans) - 1; i >= 0; i-- {
		text = strings.ReplaceAll(text, c.token(i), c.spans[i])
	}
	return text
}

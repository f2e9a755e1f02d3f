package loader

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// maxSanitizePasses bounds entity decoding and policy passes; nested
// encodings deeper than this are left as literal entity text.
const maxSanitizePasses = 4

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeText returns raw as plain text. Entities are decoded before the
// policy runs so encoded markup is stripped as well, and the policy is
// reapplied until its output no longer changes. The writer escapes the
// result again.
func sanitizeText(raw string) string {
	if !strings.ContainsAny(raw, "<>&") {
		return raw
	}

	text := raw
	for i := 0; i < maxSanitizePasses; i++ {
		decoded := html.UnescapeString(text)
		if decoded == text {
			break
		}
		text = decoded
	}

	policy := textSanitizer()
	for i := 0; i < maxSanitizePasses; i++ {
		cleaned := html.UnescapeString(policy.Sanitize(text))
		if cleaned == text {
			break
		}
		text = cleaned
	}
	return text
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

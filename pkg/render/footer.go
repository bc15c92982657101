package render

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// DefaultFooter is the footer line stamped on every rendered document when
// no override is configured.
const DefaultFooter = "Powered by Didactidigital"

var (
	footerPolicyOnce sync.Once
	footerPolicy     *bluemonday.Policy
)

// Footer resolves the footer markup for a render pass. Custom markup is
// sanitised to a small inline subset; markup that sanitises away entirely
// falls back to the default line.
func (o Options) Footer() string {
	raw := strings.TrimSpace(o.FooterHTML)
	if raw == "" {
		return DefaultFooter
	}
	cleaned := strings.TrimSpace(footerSanitizer().Sanitize(raw))
	if cleaned == "" {
		return DefaultFooter
	}
	return cleaned
}

func footerSanitizer() *bluemonday.Policy {
	footerPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "strong", "i", "em", "span", "br")
		policy.AllowAttrs("class").OnElements("span")
		policy.AllowAttrs("href", "rel").OnElements("a")
		policy.AllowElements("a")
		policy.RequireNoFollowOnLinks(true)
		footerPolicy = policy
	})
	return footerPolicy
}

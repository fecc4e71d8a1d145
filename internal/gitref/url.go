package gitref

import (
	"fmt"

	"github.com/samber/lo"
)

// CanonicalURL builds the clone URL. Only shorthand references follow the protocol preference;
// a URL typed in full keeps its transport.
func (r *ParsedReference) CanonicalURL(preferHTTPS bool) string {
	switch r.Form {
	case FormSSH:
		return fmt.Sprintf("git@%s:%s/%s.git", r.Host, r.Org, r.Repo)
	case FormHTTPS:
		return fmt.Sprintf("%s%s/%s.git", r.RawPrefix, r.Org, r.Repo)
	default:
		return lo.Ternary(preferHTTPS,
			fmt.Sprintf("https://%s/%s/%s.git", r.Host, r.Org, r.Repo),
			fmt.Sprintf("git@%s:%s/%s.git", r.Host, r.Org, r.Repo),
		)
	}
}

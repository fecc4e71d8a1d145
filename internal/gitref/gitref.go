package gitref

import (
	"fmt"
	"regexp"
	"strings"
)

// Form records how a reference was written by the user.
type Form int

const (
	FormShorthand Form = iota
	FormSSH
	FormHTTPS
)

func (f Form) String() string {
	switch f {
	case FormSSH:
		return "ssh"
	case FormHTTPS:
		return "https"
	default:
		return "shorthand"
	}
}

// ParsedReference is a repository reference broken into its parts.
// Repo never carries a ".git" suffix, and Tail is either empty or starts with "/".
type ParsedReference struct {
	Host      string
	Org       string
	Repo      string
	Tail      string
	Form      Form
	RawPrefix string // "git@host:", "https://host/" or "host/" exactly as typed
}

type InvalidReferenceError struct {
	Input string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("invalid repo reference: %s", e.Input)
}

// Alternatives are tried left to right; the first that lets the whole string match wins.
var referencePattern = regexp.MustCompile(
	`^(?P<prefix>git@(?P<git_host>[^:]+):|https?://(?P<http_host>[^/]+)/|(?P<host>[^/:]+)[/:])` +
		`(?P<org>[^/]+)/(?P<repo>[^/.]+)(?:(?P<tail>/.*)|\.git)?$`,
)

// JoinPrefix puts an alias prefix such as "github.com/org" in front of a reference.
func JoinPrefix(prefix string, reference string) string {
	if prefix == "" || strings.HasPrefix(reference, "/") {
		return reference
	}
	return strings.TrimSuffix(prefix, "/") + "/" + reference
}

// Parse splits a reference into host, org, repo and tail. The prefix, when non-empty, is joined
// in front of the reference first.
func Parse(reference string, prefix string) (*ParsedReference, error) {
	input := JoinPrefix(prefix, reference)

	match := referencePattern.FindStringSubmatch(input)
	if match == nil {
		return nil, &InvalidReferenceError{Input: input}
	}
	group := func(name string) string {
		return match[referencePattern.SubexpIndex(name)]
	}

	parsed := &ParsedReference{
		Org:       group("org"),
		Repo:      group("repo"),
		Tail:      group("tail"),
		RawPrefix: group("prefix"),
	}
	switch {
	case group("git_host") != "":
		parsed.Host = group("git_host")
		parsed.Form = FormSSH
	case group("http_host") != "":
		parsed.Host = group("http_host")
		parsed.Form = FormHTTPS
	default:
		parsed.Host = group("host")
		parsed.Form = FormShorthand
	}
	// Host and org become directory names under the root; "." or ".." would leave that layout.
	if isDotSegment(parsed.Host) || isDotSegment(parsed.Org) {
		return nil, &InvalidReferenceError{Input: input}
	}
	return parsed, nil
}

func isDotSegment(segment string) bool {
	return segment == "." || segment == ".."
}

// Path is host/org/repo followed by the tail.
func (r *ParsedReference) Path() string {
	return r.Host + "/" + r.Org + "/" + r.Repo + r.Tail
}

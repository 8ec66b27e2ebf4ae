package docindex

import (
	"regexp"
	"strings"
)

var slashRunRe = regexp.MustCompile(`/{2,}`)

// ResolveBase normalizes a site base path to "" (root) or a form with a
// single leading slash and no trailing slash.
// Example: "/docs/" → "/docs", "/" → "".
func ResolveBase(base string) string {
	base = strings.Trim(strings.TrimSpace(base), "/")
	if base == "" {
		return ""
	}
	return slashRunRe.ReplaceAllString("/"+base, "/")
}

// FileToHref converts a source path relative to the docs directory into
// its public URL.
// Example: guide/index.md → /guide/ (clean URLs) or /guide.html.
func FileToHref(relativePath, base string, cleanURLs bool) string {
	path := strings.ReplaceAll(relativePath, `\`, "/")
	path = strings.TrimPrefix(path, "./")
	path = strings.TrimSuffix(path, ".md")

	// index pages represent their directory
	if path == "index" {
		path = ""
	} else {
		path = strings.TrimSuffix(path, "/index")
	}
	path = strings.Trim(path, "/")

	var href string
	switch {
	case path == "":
		href = "/"
	case cleanURLs:
		href = "/" + path + "/"
	default:
		href = "/" + path + ".html"
	}

	return slashRunRe.ReplaceAllString(base+href, "/")
}

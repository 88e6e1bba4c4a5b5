package addon

import "regexp"

// versionLinePattern matches the first TOC version declaration line. The
// capture group is the value only, so a replacement touches nothing but
// the value bytes and leaves the line terminator (LF or CRLF) intact.
var versionLinePattern = regexp.MustCompile(`(?m)^## Version: (.*?)\r?$`)

// ExtractVersion returns the value of the first `## Version:` line in
// content. The second return value is false when no such line exists.
func ExtractVersion(content string) (string, bool) {
	m := versionLinePattern.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ReplaceVersion substitutes the value of the first `## Version:` line
// with newVersion, preserving all other content byte for byte. If no
// version line exists the content is returned unchanged; that case cannot
// occur for a record that was successfully loaded, so it is a defensive
// no-op rather than an error.
func ReplaceVersion(content, newVersion string) string {
	loc := versionLinePattern.FindStringSubmatchIndex(content)
	if loc == nil {
		return content
	}
	// loc[2]:loc[3] is the value capture group.
	return content[:loc[2]] + newVersion + content[loc[3]:]
}

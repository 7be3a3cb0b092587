package mdhtml

import "strings"

// skipFrontMatter drops a leading metadata block delimited by ---, +++
// or ;;; lines. The opener must be the first line, the line after it
// must look like metadata, and an unclosed block is left in place so no
// content is lost.
func skipFrontMatter(src string) string {
	lines := strings.Split(src, "\n")
	if len(lines) < 3 {
		return src
	}
	delim := strings.TrimSpace(lines[0])
	switch delim {
	case "---", "+++", ";;;":
	default:
		return src
	}
	if !frontMatterMetadataLikely(lines[1]) {
		return src
	}
	for i := 2; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delim {
			return strings.Join(lines[i+1:], "\n")
		}
	}
	return src
}

func frontMatterMetadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.Contains(trimmed, ":") || strings.Contains(trimmed, "=")
}

package cli

import "strings"

// ParseInput splits a line on whitespace. The first token is the command,
// lower-cased; the rest are positional arguments. A blank line yields an
// empty command.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

package fspath

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// ExpandUser replaces a leading "~" or "~user" with the respective home
// directory. If the user or the home directory cannot be determined, the
// path is returned unchanged.
func (p Path) ExpandUser() Path {
	s := string(p)
	if !strings.HasPrefix(s, "~") {
		return p
	}

	i := 1
	for i < len(s) && !os.IsPathSeparator(s[i]) {
		i++
	}

	var home string
	if i == 1 {
		dir, err := homedir.Dir()
		if err != nil || dir == "" {
			return p
		}
		home = dir
	} else {
		u, err := user.Lookup(s[1:i])
		if err != nil || u.HomeDir == "" {
			return p
		}
		home = u.HomeDir
	}

	j := len(home)
	for j > 0 && os.IsPathSeparator(home[j-1]) {
		j--
	}
	expanded := home[:j] + s[i:]
	if expanded == "" {
		return Path(string(filepath.Separator))
	}
	return Path(expanded)
}

// ExpandVars replaces environment variables of the form $name and
// ${name}. Unknown variables are left unchanged.
func (p Path) ExpandVars() Path {
	s := string(p)
	if !strings.Contains(s, "$") {
		return p
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '$' {
			b.WriteByte(s[i])
			i++
			continue
		}

		name, width := scanVarName(s[i+1:])
		if width == 0 {
			b.WriteByte('$')
			i++
			continue
		}
		if val, ok := os.LookupEnv(name); ok {
			b.WriteString(val)
		} else {
			b.WriteString(s[i : i+1+width])
		}
		i += 1 + width
	}
	return Path(b.String())
}

// scanVarName returns the variable name following a '$' and the number
// of bytes it occupies, braces included.
func scanVarName(s string) (string, int) {
	if s == "" {
		return "", 0
	}
	if s[0] == '{' {
		end := strings.IndexByte(s, '}')
		if end < 0 {
			return "", 0
		}
		return s[1:end], end + 1
	}
	n := 0
	for n < len(s) && isVarChar(s[n]) {
		n++
	}
	return s[:n], n
}

func isVarChar(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

// Expand expands variables, then the home directory and finally
// normalizes the result.
func (p Path) Expand() Path {
	return p.ExpandVars().ExpandUser().Normalize()
}

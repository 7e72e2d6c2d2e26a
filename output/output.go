// Package output renders paths and their metadata for the console.
package output

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/fkie-cad/fspath"
	"github.com/sirupsen/logrus"
	"github.com/targodan/go-errors"
)

// Formatter formats paths for human readable console output.
type Formatter interface {
	FormatName(p fspath.Path) string
	FormatPath(p fspath.Path, maxlen int) string
	FormatSize(size int64) string
	FormatTime(t time.Time) string
}

type prettyFormatter struct {
	now func() time.Time
}

// NewPrettyFormatter creates a new pretty formatter for human readable
// console output. Directories and links are colored, sizes and times
// are humanized.
func NewPrettyFormatter() Formatter {
	return &prettyFormatter{now: time.Now}
}

// FormatName returns the name of the path, colored by the kind of entry.
func (f *prettyFormatter) FormatName(p fspath.Path) string {
	name := p.Name()
	if name == "" {
		name = p.String()
	}
	switch {
	case p.IsSymlink():
		return color.CyanString("%s", name)
	case p.IsDir():
		return color.New(color.FgBlue, color.Bold).Sprint(name + string(filepath.Separator))
	}
	return name
}

// FormatPath shortens the path to at most maxlen bytes by replacing
// middle elements with "...". The final element is kept as long as
// possible.
func (f *prettyFormatter) FormatPath(p fspath.Path, maxlen int) string {
	s := p.String()
	if len(s) <= maxlen {
		return s
	}
	if maxlen <= 3 {
		return strings.Repeat(".", maxlen)
	}

	parts := strings.Split(s, string(filepath.Separator))
	if len(parts) > 2 {
		short := filepath.Join(parts[0], "...", parts[len(parts)-1])
		if parts[0] == "" {
			short = string(filepath.Separator) + short
		}
		if len(short) <= maxlen {
			return short
		}
	}
	return "..." + s[len(s)-maxlen+3:]
}

func (f *prettyFormatter) FormatSize(size int64) string {
	if size < 0 {
		return "-"
	}
	return humanize.Bytes(uint64(size))
}

func (f *prettyFormatter) FormatTime(t time.Time) string {
	return humanize.RelTime(t, f.now(), "ago", "from now")
}

// Lister writes directory listings.
type Lister struct {
	out       io.Writer
	formatter Formatter
	// Long enables mode, size, owner and modification time columns.
	Long bool
}

// NewLister creates a Lister writing to out.
func NewLister(out io.Writer, formatter Formatter) *Lister {
	return &Lister{out: out, formatter: formatter}
}

// WriteListing writes one line per path. Paths which cannot be stated
// are still listed, their errors are collected and returned at the end.
func (l *Lister) WriteListing(paths []fspath.Path) error {
	var err error
	for _, p := range paths {
		if !l.Long {
			if _, werr := fmt.Fprintln(l.out, l.formatter.FormatName(p)); werr != nil {
				return werr
			}
			continue
		}

		line, lerr := l.longLine(p)
		if lerr != nil {
			logrus.WithError(lerr).WithField("path", p).Warn("Could not retrieve metadata.")
			err = errors.NewMultiError(err, lerr)
		}
		if _, werr := fmt.Fprintln(l.out, line); werr != nil {
			return werr
		}
	}
	return err
}

func (l *Lister) longLine(p fspath.Path) (string, error) {
	stat, err := p.Lstat()
	if err != nil {
		return fmt.Sprintf("%-10s %8s %-12s %-16s %s", "?", "?", "?", "?", l.formatter.FormatName(p)), err
	}
	owner, err := p.Owner()
	if err != nil {
		owner = "?"
		if !errors.Is(err, fspath.ErrNotImplemented) {
			logrus.WithError(err).WithField("path", p).Debug("Could not look up owner.")
		}
	}
	size := stat.Size()
	if stat.IsDir() {
		size = -1
	}
	return fmt.Sprintf("%-10s %8s %-12s %-16s %s",
		stat.Mode().String(),
		l.formatter.FormatSize(size),
		owner,
		l.formatter.FormatTime(stat.ModTime()),
		l.formatter.FormatName(p),
	), nil
}

// infoLabelWidth is the width of the label column of WriteInfo,
// including the separating space.
const infoLabelWidth = 10

// WriteInfo writes all metadata known about a single path. If width is
// positive, the path rows are shortened so lines fit into width columns.
func WriteInfo(out io.Writer, formatter Formatter, p fspath.Path, width int) error {
	stat, err := p.Stat()
	if err != nil {
		return err
	}

	kind := "file"
	switch {
	case p.IsSymlink():
		kind = "symlink"
	case stat.IsDir():
		kind = "directory"
	case !stat.Mode().IsRegular():
		kind = "special"
	}
	if p.IsMount() {
		kind += ", mount point"
	}

	owner, err := p.Owner()
	if err != nil {
		owner = err.Error()
	}

	rows := [][2]string{
		{"Path", shortPath(formatter, p, width)},
		{"Type", kind},
		{"Size", fmt.Sprintf("%s (%d bytes)", formatter.FormatSize(stat.Size()), stat.Size())},
		{"Mode", stat.Mode().String()},
		{"Owner", owner},
		{"Modified", formatTimeRow(formatter, p.ModTime)},
		{"Accessed", formatTimeRow(formatter, p.AccessTime)},
		{"Changed", formatTimeRow(formatter, p.ChangeTime)},
	}
	if resolved, err := p.RealPath(); err == nil {
		rows = append(rows, [2]string{"Resolved", shortPath(formatter, resolved, width)})
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(out, "%-9s %s\n", row[0]+":", row[1]); err != nil {
			return err
		}
	}
	return nil
}

func shortPath(formatter Formatter, p fspath.Path, width int) string {
	if width <= 0 {
		return p.String()
	}
	maxlen := width - infoLabelWidth
	if maxlen < 0 {
		maxlen = 0
	}
	return formatter.FormatPath(p, maxlen)
}

func formatTimeRow(formatter Formatter, get func() (time.Time, error)) string {
	t, err := get()
	if err != nil {
		return err.Error()
	}
	return fmt.Sprintf("%s (%s)", t.Format(time.RFC3339), formatter.FormatTime(t))
}

package output

import (
	"bytes"
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/fkie-cad/fspath"
	"github.com/fkie-cad/fspath/testutil"

	. "github.com/smartystreets/goconvey/convey"
)

const randomChars = "abcd" + string(filepath.Separator)

func randomPath(length int) fspath.Path {
	ret := ""
	for i := 0; i < length; i++ {
		ind := rand.Int() % len(randomChars)
		ret += randomChars[ind : ind+1]
	}
	return fspath.Path(ret)
}

func init() {
	color.NoColor = true
}

func TestFormatPath_NoPanic(t *testing.T) {
	Convey("Formatting paths in a prettyFormatter", t, func() {
		f := NewPrettyFormatter()
		for pathlen := 0; pathlen < 32; pathlen++ {
			for maxlen := 0; maxlen < 32; maxlen++ {
				Convey(fmt.Sprintf("with a path of length %d and maxlength %d", pathlen, maxlen), func() {
					path := randomPath(pathlen)
					Convey("should not panic and respect the maximum length.", func() {
						var formatted string
						So(func() {
							formatted = f.FormatPath(path, maxlen)
						}, ShouldNotPanic)
						So(len(formatted), ShouldBeLessThanOrEqualTo, maxlen)
					})
				})
			}
		}
	})
}

func TestFormatPath_KeepsName(t *testing.T) {
	Convey("Shortening a long path", t, func() {
		p := fspath.Path("first").Join("second", "third", "fourth", "name.txt")
		f := NewPrettyFormatter()

		Convey("should keep the first and last element if possible.", func() {
			So(f.FormatPath(p, 20), ShouldEqual, filepath.Join("first", "...", "name.txt"))
		})
		Convey("should not touch short paths.", func() {
			So(f.FormatPath(p, 100), ShouldEqual, p.String())
		})
	})
}

func TestFormatSizeAndTime(t *testing.T) {
	Convey("The pretty formatter", t, func() {
		now := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)
		f := &prettyFormatter{now: func() time.Time { return now }}

		Convey("should humanize sizes.", func() {
			So(f.FormatSize(2000), ShouldEqual, "2.0 kB")
			So(f.FormatSize(-1), ShouldEqual, "-")
		})
		Convey("should humanize times relative to now.", func() {
			So(f.FormatTime(now.Add(-3*time.Hour)), ShouldEqual, "3 hours ago")
		})
	})
}

func TestLister(t *testing.T) {
	root := fspath.Path(testutil.TempTree(t, "a.txt", "sub/"))

	Convey("Listing paths", t, func() {
		buf := &bytes.Buffer{}
		l := NewLister(buf, NewPrettyFormatter())
		children, err := root.List("")
		So(err, ShouldBeNil)

		Convey("in short form should print one name per line.", func() {
			So(l.WriteListing(children), ShouldBeNil)
			So(buf.String(), ShouldEqual, "a.txt\nsub"+string(filepath.Separator)+"\n")
		})
		Convey("in long form should print metadata.", func() {
			l.Long = true
			So(l.WriteListing(children), ShouldBeNil)
			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			So(lines, ShouldHaveLength, 2)
			So(lines[0], ShouldEndWith, "a.txt")
			So(lines[0], ShouldContainSubstring, "0 B")
		})
		Convey("in long form should report missing paths but continue.", func() {
			l.Long = true
			err := l.WriteListing([]fspath.Path{root.Join("missing"), root.Join("a.txt")})
			So(err, ShouldNotBeNil)
			So(buf.String(), ShouldContainSubstring, "a.txt")
		})
	})
}

func TestWriteInfo(t *testing.T) {
	root := fspath.Path(testutil.TempTree(t, "a.txt"))

	Convey("Writing info on a file", t, func() {
		buf := &bytes.Buffer{}
		err := WriteInfo(buf, NewPrettyFormatter(), root.Join("a.txt"), 0)

		Convey("should list its metadata.", func() {
			So(err, ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "Type:     file")
			So(buf.String(), ShouldContainSubstring, "Size:     0 B (0 bytes)")
			So(buf.String(), ShouldContainSubstring, "Modified:")
		})
	})

	Convey("Writing info with a limited width", t, func() {
		deep := root.Join("first", "second", "third", "fourth", "fifth")
		testutil.MakeTree(t, deep.String(), "name.txt")
		p := deep.Join("name.txt")
		buf := &bytes.Buffer{}
		err := WriteInfo(buf, NewPrettyFormatter(), p, 40)

		Convey("should shorten the path rows to fit.", func() {
			So(err, ShouldBeNil)
			for _, line := range strings.Split(buf.String(), "\n") {
				if strings.HasPrefix(line, "Path:") || strings.HasPrefix(line, "Resolved:") {
					So(len(line), ShouldBeLessThanOrEqualTo, 40)
					So(line, ShouldContainSubstring, "...")
					So(line, ShouldEndWith, "name.txt")
				}
			}
			So(buf.String(), ShouldContainSubstring, "Resolved:")
		})
	})

	Convey("Writing info on a missing path should fail.", t, func() {
		err := WriteInfo(&bytes.Buffer{}, NewPrettyFormatter(), root.Join("missing"), 0)
		So(err, ShouldNotBeNil)
	})
}

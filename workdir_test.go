package fspath

import (
	"errors"
	"os"
	"testing"

	"github.com/fkie-cad/fspath/testutil"

	. "github.com/smartystreets/goconvey/convey"
)

func TestWithin(t *testing.T) {
	root := Path(testutil.TempTree(t, "target/"))
	target := root.Join("target")
	wd := Path(testutil.KeepWorkDir(t))

	Convey("Running a function within a directory", t, func() {
		var inside Path
		err := target.Within(func() error {
			var err error
			inside, err = Getwd()
			return err
		})

		Convey("should change the working directory during the call.", func() {
			So(err, ShouldBeNil)
			So(inside, ShouldEqual, target)
		})
		Convey("should restore the working directory afterwards.", func() {
			after, err := Getwd()
			So(err, ShouldBeNil)
			So(after, ShouldEqual, wd)
		})
	})

	Convey("Running a failing function within a directory", t, func() {
		expected := errors.New("some error")
		err := target.Within(func() error {
			return expected
		})

		Convey("should return its error.", func() {
			So(err, ShouldEqual, expected)
		})
		Convey("should restore the working directory.", func() {
			after, _ := Getwd()
			So(after, ShouldEqual, wd)
		})
	})

	Convey("Running a panicking function within a directory", t, func() {
		So(func() {
			_ = target.Within(func() error {
				panic("boom")
			})
		}, ShouldPanicWith, "boom")

		Convey("should restore the working directory.", func() {
			after, _ := Getwd()
			So(after, ShouldEqual, wd)
		})
	})

	Convey("Entering a missing directory", t, func() {
		called := false
		err := root.Join("missing").Within(func() error {
			called = true
			return nil
		})

		Convey("should fail without calling the function or changing directory.", func() {
			So(err, ShouldNotBeNil)
			So(called, ShouldBeFalse)
			after, _ := Getwd()
			So(after, ShouldEqual, wd)
		})
	})
}

func TestEnterExit(t *testing.T) {
	root := Path(testutil.TempTree(t, "target/"))
	target := root.Join("target")
	wd := Path(testutil.KeepWorkDir(t))

	Convey("Entering a directory", t, func() {
		scope, err := target.Enter()
		So(err, ShouldBeNil)
		So(scope.Previous(), ShouldEqual, wd)

		current, _ := os.Getwd()
		So(Path(current), ShouldEqual, target)

		Convey("and exiting should restore the previous directory.", func() {
			So(scope.Exit(), ShouldBeNil)
			current, _ := os.Getwd()
			So(Path(current), ShouldEqual, wd)

			Convey("Exiting twice should have no effect.", func() {
				So(os.Chdir(string(root)), ShouldBeNil)
				So(scope.Exit(), ShouldBeNil)
				current, _ := os.Getwd()
				So(Path(current), ShouldEqual, root)
				So(os.Chdir(string(wd)), ShouldBeNil)
			})
		})
	})
}

package version

import "fmt"

// FSPathVersion is the version of this module.
var FSPathVersion = Version{
	Major:  0,
	Minor:  1,
	Bugfix: 0,
}

// Version is a semantic version. It marshals to JSON as its string form,
// e.g. "0.1.0".
type Version struct {
	Major  int
	Minor  int
	Bugfix int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Bugfix)
}

func (v Version) MarshalJSON() ([]byte, error) {
	s := v.String()
	b := make([]byte, 0, len(s)+2)
	b = append(b, '"')
	b = append(b, s...)
	b = append(b, '"')
	return b, nil
}

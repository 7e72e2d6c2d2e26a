package fspath

import "github.com/sirupsen/logrus"

// chown changes ownership of a path. Platforms supporting it replace it
// during initialization, everywhere else it does nothing.
var chown = chownUnsupported

func chownUnsupported(path string, uid, gid int) error {
	logrus.WithField("path", path).Debug("Chown is not supported on this platform, ignoring.")
	return nil
}

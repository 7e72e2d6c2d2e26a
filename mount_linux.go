package fspath

import (
	"github.com/moby/sys/mountinfo"
	"github.com/sirupsen/logrus"
)

func isMount(path string) bool {
	mounted, err := mountinfo.Mounted(path)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Trace("Could not determine mount state.")
		return false
	}
	return mounted
}

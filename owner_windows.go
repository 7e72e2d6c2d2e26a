package fspath

import (
	"os"

	"golang.org/x/sys/windows"
)

func init() {
	ownerLookup = ownerWindows
}

func ownerWindows(path string) (string, error) {
	sd, err := windows.GetNamedSecurityInfo(path, windows.SE_FILE_OBJECT, windows.OWNER_SECURITY_INFORMATION)
	if err != nil {
		return "", &os.PathError{Op: "GetNamedSecurityInfo", Path: path, Err: err}
	}
	sid, _, err := sd.Owner()
	if err != nil {
		return "", err
	}
	account, domain, _, err := sid.LookupAccount("")
	if err != nil {
		return "", err
	}
	return domain + `\` + account, nil
}

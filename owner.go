package fspath

// ownerLookup resolves the account owning a path. Platforms supporting
// ownership replace it during initialization.
var ownerLookup = ownerNotImplemented

// Owner returns the name of the account owning the file or directory,
// following symbolic links. On windows the name has the form
// DOMAIN\Account and may denote a group.
func (p Path) Owner() (string, error) {
	return ownerLookup(string(p))
}

func ownerNotImplemented(string) (string, error) {
	return "", &NotImplementedError{Op: "ownership"}
}

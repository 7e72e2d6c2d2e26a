// Package fspath provides Path, a string type for filesystem paths with
// methods for the path manipulation and file metadata functions of the
// operating system.
//
//	p := fspath.Path("/tmp").Join("spam", "eggs.txt")
//	if !p.Exists() {
//		_, err := p.Touch()
//		...
//	}
//
// Every method delegates directly to the operating system. Nothing is
// cached, and errors of the underlying calls are returned unchanged.
package fspath

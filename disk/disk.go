// Package disk extracts partitions and their filesystem contents from raw
// disk images. Partition tables are read with go-diskfs; filesystem payloads
// are unpacked by shelling out to the standard Linux tooling (blkid,
// debugfs, mcopy, sfdisk, mkfs.vfat, mkfs.ext4).
package disk

import "fmt"

// DiskError is the error kind returned by every operation in this package.
// Err, if set, carries the underlying subprocess or I/O failure.
type DiskError struct {
	Msg string
	Err error
}

func (e *DiskError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *DiskError) Unwrap() error { return e.Err }

func diskErr(err error, format string, args ...any) *DiskError {
	return &DiskError{Msg: fmt.Sprintf(format, args...), Err: err}
}

package disk

import (
	"github.com/katexochen/partition-tools/internal/execx"
)

// MkfsVfat formats a device or image file with a FAT filesystem carrying
// the given volume label.
func MkfsVfat(path, label string) error {
	if err := execx.Run("mkfs.vfat", "-n", label, path); err != nil {
		return diskErr(err, "creating FAT32 filesystem on %s", path)
	}
	return nil
}

// MkfsExt4 formats a device or image file with an ext4 filesystem.
// extraOptions are passed to mkfs.ext4 after the fixed arguments. -F is
// always set so that regular files can be formatted.
func MkfsExt4(path, label string, extraOptions ...string) error {
	args := append([]string{"-F", "-L", label, path}, extraOptions...)
	if err := execx.Run("mkfs.ext4", args...); err != nil {
		return diskErr(err, "creating ext4 filesystem on %s", path)
	}
	return nil
}

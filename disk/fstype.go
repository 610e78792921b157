package disk

import (
	"github.com/katexochen/partition-tools/internal/execx"
)

// FsType is a filesystem type as reported by blkid. Values other than the
// named constants carry the raw blkid token.
type FsType string

const (
	// FsTypeFat covers the FAT family (FAT12, FAT16, FAT32).
	FsTypeFat FsType = "FAT"
	// FsTypeExt covers the Linux ext family (ext2, ext3, ext4).
	FsTypeExt FsType = "EXT"
	// FsTypeUnformatted stands in for blkid reporting no type at all.
	FsTypeUnformatted FsType = "empty or unformatted"
)

func (t FsType) String() string { return string(t) }

// IsSupported reports whether filesystem contents of this type can be
// extracted.
func (t FsType) IsSupported() bool {
	return t == FsTypeFat || t == FsTypeExt
}

// ProbeFsType determines the filesystem type of an image file by examining
// its filesystem signatures with blkid. A blkid failure (for example on an
// image without any known signature) is reported as an error, not as an
// unknown type.
func ProbeFsType(imagePath string) (FsType, error) {
	out, err := execx.Read("blkid", "-o", "value", "-s", "TYPE", imagePath)
	if err != nil {
		return "", diskErr(err, "probing filesystem type of %s", imagePath)
	}
	return fsTypeFromBlkid(out), nil
}

func fsTypeFromBlkid(token string) FsType {
	switch token {
	case "vfat", "fat", "fat12", "fat16", "fat32", "msdos":
		return FsTypeFat
	case "ext2", "ext3", "ext4":
		return FsTypeExt
	case "":
		return FsTypeUnformatted
	default:
		return FsType(token)
	}
}

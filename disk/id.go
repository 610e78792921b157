package disk

import (
	"strings"

	"github.com/katexochen/partition-tools/internal/execx"
)

// GetDiskID returns the disk identifier of an image or block device: the
// bare hex value for MBR disks (sfdisk's leading "0x" is stripped), the
// GUID for GPT disks.
func GetDiskID(path string) (string, error) {
	id, err := execx.Read("sfdisk", "--disk-id", path)
	if err != nil {
		return "", diskErr(err, "retrieving disk id of %s", path)
	}
	return strings.TrimPrefix(id, "0x"), nil
}

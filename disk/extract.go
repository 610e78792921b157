package disk

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/katexochen/partition-tools/internal/execx"
)

// extractBufSize is the window size for streaming partition bytes out of
// the image.
const extractBufSize = 4 * 1024 * 1024

// ExtractPartition copies the raw bytes of a partition out of a disk image
// into a standalone file at dstPath, truncating any existing file there.
// If the image is shorter than the partition table claims, the copy stops
// at end of file and the destination ends up short.
func ExtractPartition(imagePath string, part Partition, blockSize uint64, dstPath string) error {
	startBytes := int64(part.Start * blockSize)
	sizeBytes := int64(part.Size * blockSize)

	src, err := os.Open(imagePath)
	if err != nil {
		return diskErr(err, "opening disk image")
	}
	defer src.Close()
	dst, err := os.Create(dstPath)
	if err != nil {
		return diskErr(err, "creating partition file")
	}
	defer dst.Close()

	if _, err := src.Seek(startBytes, io.SeekStart); err != nil {
		return diskErr(err, "seeking in disk image")
	}

	buf := make([]byte, extractBufSize)
	remaining := sizeBytes
	for remaining > 0 {
		window := buf
		if remaining < int64(len(window)) {
			window = window[:remaining]
		}
		n, err := src.Read(window)
		if err != nil && err != io.EOF {
			return diskErr(err, "reading from disk image")
		}
		if n == 0 {
			log.Warnf("disk image ends %d bytes short of partition %d", remaining, part.Number)
			break
		}
		if _, err := dst.Write(window[:n]); err != nil {
			return diskErr(err, "writing to partition file")
		}
		remaining -= int64(n)
	}
	return nil
}

// ExtractFilesystem unpacks the filesystem contained in a partition image
// into dstDir, creating the directory and any missing ancestors first. Ext
// filesystems are dumped with debugfs, FAT filesystems are copied out with
// mcopy. The destination is not cleared beforehand.
func ExtractFilesystem(partitionImage, dstDir string, fsType FsType) error {
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return diskErr(err, "creating destination directory")
	}

	// debugfs runs with its working directory set to dstDir, so the image
	// path must survive the directory change.
	absImage, err := filepath.Abs(partitionImage)
	if err != nil {
		return diskErr(err, "canonicalizing partition image path")
	}
	absImage, err = filepath.EvalSymlinks(absImage)
	if err != nil {
		return diskErr(err, "canonicalizing partition image path")
	}

	switch fsType {
	case FsTypeExt:
		if err := execx.RunIn(dstDir, "debugfs", "-R", "rdump / .", absImage); err != nil {
			return diskErr(err, "extracting ext filesystem with debugfs")
		}
	case FsTypeFat:
		if err := execx.Run("mcopy", "-i", absImage, "-snop", "::", dstDir); err != nil {
			return diskErr(err, "extracting FAT filesystem with mcopy")
		}
	default:
		return diskErr(nil, "cannot extract filesystem: unsupported type %q", fsType)
	}
	return nil
}

// ExtractRequest names a partition and the directory its filesystem
// contents should be unpacked into.
type ExtractRequest struct {
	Number int
	Dir    string
}

// ExtractImagePartitions extracts the requested partitions of a disk image
// and unpacks their filesystem contents. Requests are processed strictly in
// order: each partition is copied into tempDir as partition-<N>.img,
// probed, extracted into its destination directory and cleaned up again
// before the next request is handled. On failure, destinations populated by
// earlier requests are left as they are. The partition table of the image
// is returned for further inspection.
//
// Concurrent callers must use distinct tempDirs, the temp file names would
// collide otherwise.
func ExtractImagePartitions(imagePath string, requests []ExtractRequest, tempDir string) (*PartitionTable, error) {
	table, err := ReadPartitionTable(imagePath)
	if err != nil {
		return nil, err
	}

	for _, req := range requests {
		part, ok := table.Partition(req.Number)
		if !ok {
			return nil, diskErr(nil, "partition %d not found in image", req.Number)
		}

		partImage := filepath.Join(tempDir, fmt.Sprintf("partition-%d.img", req.Number))
		if err := ExtractPartition(imagePath, part, table.BlockSize, partImage); err != nil {
			return nil, err
		}

		fsType, err := ProbeFsType(partImage)
		if err != nil {
			return nil, err
		}
		if !fsType.IsSupported() {
			// Clean up before bailing. The unlink is best-effort, a miss
			// must not mask the real error.
			os.Remove(partImage)
			return nil, diskErr(nil, "partition %d has unsupported filesystem type: %q", req.Number, fsType)
		}

		if err := ExtractFilesystem(partImage, req.Dir, fsType); err != nil {
			return nil, err
		}

		log.Infof("extracted partition %d (%s) to %s", req.Number, fsType, req.Dir)

		os.Remove(partImage)
	}

	return table, nil
}

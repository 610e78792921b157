package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/katexochen/partition-tools/disk"
)

const defaultSize = 64 * 1024 * 1024

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 4 {
		return fmt.Errorf("usage: %s <vfat|ext4> <label> <path> [size-bytes] [mkfs options...]", os.Args[0])
	}
	fsKind, label, path := os.Args[1], os.Args[2], os.Args[3]

	size := int64(defaultSize)
	var extra []string
	if len(os.Args) > 4 {
		s, err := strconv.ParseInt(os.Args[4], 10, 64)
		if err != nil {
			return fmt.Errorf("parsing size %q: %w", os.Args[4], err)
		}
		size = s
		extra = os.Args[5:]
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating image file: %w", err)
	}
	if err := f.Truncate(size); err != nil {
		f.Close()
		return fmt.Errorf("growing image file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing image file: %w", err)
	}

	switch fsKind {
	case "vfat":
		if len(extra) > 0 {
			return fmt.Errorf("extra mkfs options are only supported for ext4")
		}
		return disk.MkfsVfat(path, label)
	case "ext4":
		return disk.MkfsExt4(path, label, extra...)
	default:
		return fmt.Errorf("unknown filesystem %q, want vfat or ext4", fsKind)
	}
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/katexochen/partition-tools/disk"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: %s <image[.zst]> <partition>=<dir>...", os.Args[0])
	}
	imagePath := os.Args[1]

	requests, err := parseRequests(os.Args[2:])
	if err != nil {
		return err
	}

	tempDir, err := os.MkdirTemp("", "extract-partitions-")
	if err != nil {
		return fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	if strings.HasSuffix(imagePath, ".zst") {
		imagePath, err = decompressImage(imagePath, tempDir)
		if err != nil {
			return fmt.Errorf("decompressing image: %w", err)
		}
	}

	table, err := disk.ExtractImagePartitions(imagePath, requests, tempDir)
	if err != nil {
		return err
	}

	fmt.Printf("%s: block size %d\n", imagePath, table.BlockSize)
	for _, p := range table.Partitions {
		fmt.Printf("  partition %d: start %d, size %d blocks\n", p.Number, p.Start, p.Size)
	}
	return nil
}

func parseRequests(args []string) ([]disk.ExtractRequest, error) {
	var requests []disk.ExtractRequest
	for _, arg := range args {
		numStr, dir, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("malformed request %q, want <partition>=<dir>", arg)
		}
		num, err := strconv.Atoi(numStr)
		if err != nil {
			return nil, fmt.Errorf("parsing partition number %q: %w", numStr, err)
		}
		requests = append(requests, disk.ExtractRequest{Number: num, Dir: dir})
	}
	return requests, nil
}

// decompressImage unpacks a zstd compressed disk image into tempDir, next
// to where the partition images will go, and returns its path.
func decompressImage(path, tempDir string) (string, error) {
	in, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening compressed image: %w", err)
	}
	defer in.Close()

	// Prefixed so the name cannot collide with the partition-<N>.img files.
	outPath := filepath.Join(tempDir, "image-"+strings.TrimSuffix(filepath.Base(path), ".zst"))
	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("creating decompressed image: %w", err)
	}
	defer out.Close()

	d, err := zstd.NewReader(in)
	if err != nil {
		return "", fmt.Errorf("creating zstd reader: %w", err)
	}
	defer d.Close()
	if _, err := io.Copy(out, d); err != nil {
		return "", fmt.Errorf("decompressing zstd: %w", err)
	}
	return outPath, nil
}

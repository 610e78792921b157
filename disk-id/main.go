package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/katexochen/partition-tools/disk"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	id, err := diskID(os.Args[1:])
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}

func diskID(args []string) (string, error) {
	var canonical bool
	if len(args) > 0 && args[0] == "-canonical" {
		canonical = true
		args = args[1:]
	}
	if len(args) != 1 {
		return "", fmt.Errorf("usage: %s [-canonical] <image-or-device>", os.Args[0])
	}

	id, err := disk.GetDiskID(args[0])
	if err != nil {
		return "", err
	}
	if canonical {
		// GPT disk GUIDs only; normalizes case and checks the format.
		guid, err := uuid.Parse(id)
		if err != nil {
			return "", fmt.Errorf("disk id %q is not a GUID: %w", id, err)
		}
		id = guid.String()
	}
	return id, nil
}

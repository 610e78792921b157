package disk

import (
	"github.com/diskfs/go-diskfs"
)

// Partition is one entry of a partition table. Start and Size are counted
// in logical blocks.
type Partition struct {
	Number int
	Start  uint64
	Size   uint64
}

// PartitionTable describes the partitions of a disk image.
type PartitionTable struct {
	Partitions []Partition
	BlockSize  uint64
}

// Partition returns the partition with the given number, if present.
func (t *PartitionTable) Partition(number int) (Partition, bool) {
	for _, p := range t.Partitions {
		if p.Number == number {
			return p, true
		}
	}
	return Partition{}, false
}

// ReadPartitionTable reads the MBR or GPT partition table of a disk image.
// Partition numbers are 1-based table positions, so they match what sfdisk
// and fdisk display; empty slots are skipped.
func ReadPartitionTable(imagePath string) (*PartitionTable, error) {
	d, err := diskfs.Open(imagePath, diskfs.WithOpenMode(diskfs.ReadOnly))
	if err != nil {
		return nil, diskErr(err, "opening disk image")
	}
	defer d.File.Close()

	rawTable, err := d.GetPartitionTable()
	if err != nil {
		return nil, diskErr(err, "reading partition table")
	}

	blockSize := uint64(d.LogicalBlocksize)
	table := &PartitionTable{BlockSize: blockSize}
	for i, p := range rawTable.GetPartitions() {
		// go-diskfs reports offsets in bytes.
		size := uint64(p.GetSize())
		if size == 0 {
			continue
		}
		table.Partitions = append(table.Partitions, Partition{
			Number: i + 1,
			Start:  uint64(p.GetStart()) / blockSize,
			Size:   size / blockSize,
		})
	}
	return table, nil
}

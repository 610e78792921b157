package disk

import (
	"path/filepath"
	"testing"

	"github.com/diskfs/go-diskfs"
	"github.com/diskfs/go-diskfs/partition/gpt"
	"github.com/diskfs/go-diskfs/partition/mbr"
)

func createMBRImage(t *testing.T) string {
	t.Helper()
	imgPath := filepath.Join(t.TempDir(), "disk.img")
	d, err := diskfs.Create(imgPath, 10*1024*1024, diskfs.Raw, diskfs.SectorSizeDefault)
	if err != nil {
		t.Fatal(err)
	}
	defer d.File.Close()
	table := &mbr.Table{
		Partitions: []*mbr.Partition{
			{Type: mbr.Fat32LBA, Start: 2048, Size: 4096},
			{Type: mbr.Linux, Start: 6144, Size: 8192},
		},
		LogicalSectorSize:  512,
		PhysicalSectorSize: 512,
	}
	if err := d.Partition(table); err != nil {
		t.Fatal(err)
	}
	return imgPath
}

func TestReadPartitionTableMBR(t *testing.T) {
	imgPath := createMBRImage(t)

	table, err := ReadPartitionTable(imgPath)
	if err != nil {
		t.Fatal(err)
	}

	if table.BlockSize != 512 {
		t.Errorf("got block size %d, want 512", table.BlockSize)
	}
	want := []Partition{
		{Number: 1, Start: 2048, Size: 4096},
		{Number: 2, Start: 6144, Size: 8192},
	}
	if len(table.Partitions) != len(want) {
		t.Fatalf("got %d partitions, want %d: %v", len(table.Partitions), len(want), table.Partitions)
	}
	for i, p := range table.Partitions {
		if p != want[i] {
			t.Errorf("partition %d: got %+v, want %+v", i, p, want[i])
		}
	}
}

func TestReadPartitionTableGPT(t *testing.T) {
	imgPath := filepath.Join(t.TempDir(), "disk.img")
	d, err := diskfs.Create(imgPath, 10*1024*1024, diskfs.Raw, diskfs.SectorSizeDefault)
	if err != nil {
		t.Fatal(err)
	}
	defer d.File.Close()
	table := &gpt.Table{
		Partitions: []*gpt.Partition{
			{Start: 2048, End: 6143, Size: 4096 * 512, Type: gpt.EFISystemPartition, Name: "esp"},
			{Start: 6144, End: 14335, Size: 8192 * 512, Type: gpt.LinuxFilesystem, Name: "root"},
		},
		LogicalSectorSize:  512,
		PhysicalSectorSize: 512,
		ProtectiveMBR:      true,
	}
	if err := d.Partition(table); err != nil {
		t.Fatal(err)
	}

	got, err := ReadPartitionTable(imgPath)
	if err != nil {
		t.Fatal(err)
	}

	if got.BlockSize != 512 {
		t.Errorf("got block size %d, want 512", got.BlockSize)
	}
	want := []Partition{
		{Number: 1, Start: 2048, Size: 4096},
		{Number: 2, Start: 6144, Size: 8192},
	}
	if len(got.Partitions) != len(want) {
		t.Fatalf("got %d partitions, want %d: %v", len(got.Partitions), len(want), got.Partitions)
	}
	for i, p := range got.Partitions {
		if p != want[i] {
			t.Errorf("partition %d: got %+v, want %+v", i, p, want[i])
		}
	}
}

func TestReadPartitionTableMissingImage(t *testing.T) {
	if _, err := ReadPartitionTable("does-not-exist.img"); err == nil {
		t.Fatal("expected error for missing image")
	}
}

func TestPartitionLookup(t *testing.T) {
	table := &PartitionTable{
		Partitions: []Partition{
			{Number: 1, Start: 2048, Size: 4096},
			{Number: 3, Start: 6144, Size: 8192},
		},
		BlockSize: 512,
	}

	p, ok := table.Partition(3)
	if !ok || p.Start != 6144 {
		t.Errorf("lookup of partition 3 returned %+v, %v", p, ok)
	}
	if _, ok := table.Partition(7); ok {
		t.Error("lookup of absent partition 7 should fail")
	}
}

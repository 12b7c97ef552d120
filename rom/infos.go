package rom

import (
	"context"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/go-faster/jx"
)

// Engine memory geometry, for information only.
const (
	memorySize = 4096
	loadAddr   = 0x200
)

// Infos describes a ROM image.
type Infos struct {
	Location string
	Size     int
	CRC32    uint32
}

// ReadInfos fetches the ROM at location and describes it.
func ReadInfos(ctx context.Context, location string) (*Infos, error) {
	data, err := Fetch(ctx, location)
	if err != nil {
		return nil, err
	}
	return &Infos{
		Location: location,
		Size:     len(data),
		CRC32:    crc32.ChecksumIEEE(data),
	}, nil
}

// Fits reports whether the image fits in engine memory above the load
// address. An image that does not fit gets truncated by the engine.
func (inf *Infos) Fits() bool {
	return inf.Size <= memorySize-loadAddr
}

// PrintInfos writes a human readable description of the ROM.
func (inf *Infos) PrintInfos(w io.Writer) {
	fmt.Fprintf(w, "Location: %s\n", inf.Location)
	fmt.Fprintf(w, "Size:     %d bytes\n", inf.Size)
	fmt.Fprintf(w, "CRC32:    %08x\n", inf.CRC32)
	fmt.Fprintf(w, "Fits:     %t\n", inf.Fits())
}

// WriteJSON writes the same description as a single JSON object.
func (inf *Infos) WriteJSON(w io.Writer) error {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("location")
	e.Str(inf.Location)
	e.FieldStart("size")
	e.Int(inf.Size)
	e.FieldStart("crc32")
	e.Str(fmt.Sprintf("%08x", inf.CRC32))
	e.FieldStart("fits")
	e.Bool(inf.Fits())
	e.ObjEnd()

	_, err := w.Write(e.Bytes())
	return err
}

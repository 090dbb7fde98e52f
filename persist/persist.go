package persist

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/hepvec/blobstore"
	"github.com/hupe1980/hepvec/codec"
	"github.com/hupe1980/hepvec/columnar"
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/dispatch"
	"github.com/hupe1980/hepvec/internal/resource"
	"github.com/hupe1980/hepvec/jagged"
	"github.com/hupe1980/hepvec/numeric"
)

type events interface {
	dispatch.Vector
	Offsets() []int
	Flatten() dispatch.Vector
}

type column struct {
	name string
	role Role
	raw  []byte
}

// Write stores v under name. v must be a columnar or jagged vector; payload
// columns are stored with the coordinates.
func Write(ctx context.Context, store blobstore.BlobStore, name string, v dispatch.Vector, opts ...Option) error {
	o := applyOptions(opts)
	start := time.Now()

	h, cols, err := table(v)
	if err != nil {
		return err
	}

	stored, err := encodeColumns(ctx, o.resources, o.compression, h, cols)
	if err != nil {
		return err
	}

	hb, err := o.codec.Marshal(h)
	if err != nil {
		return fmt.Errorf("persist: encode header: %w", err)
	}
	data := frame(o.codec.Name(), hb, stored)

	if err := o.resources.AcquireIO(ctx, len(data)); err != nil {
		return err
	}
	if o.noOverwrite {
		cond, ok := store.(blobstore.Conditional)
		if !ok {
			return fmt.Errorf("persist: store %T does not support conditional writes", store)
		}
		if err := cond.PutIfAbsent(ctx, name, data); err != nil {
			if errors.Is(err, blobstore.ErrExists) {
				return fmt.Errorf("%w: %s", ErrExists, name)
			}
			return err
		}
	} else if err := store.Put(ctx, name, data); err != nil {
		return err
	}

	o.logger.LogAttrs(ctx, slog.LevelDebug, "array written",
		slog.String("name", name),
		slog.String("class", v.Class().String()),
		slog.Int("records", h.Length),
		slog.Int("bytes", len(data)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// table flattens v into a header and its raw columns.
func table(v dispatch.Vector) (*header, []column, error) {
	h := &header{Backend: v.Class().Backend.String(), Momentum: v.Class().IsMomentum()}
	var offsets []int
	flat := v
	switch v.Class().Backend {
	case dispatch.Columnar:
	case dispatch.Jagged:
		e, ok := v.(events)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnsupported, v.Class())
		}
		offsets = e.Offsets()
		flat = e.Flatten()
		h.Events = len(offsets) - 1
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupported, v.Class())
	}

	op, err := columnar.Lift(flat)
	if err != nil {
		return nil, nil, err
	}
	var cols []column
	elems := op.Groups.Elements(op.Dimension())
	i := 0
	for _, k := range op.System().Kinds() {
		for _, n := range k.Names() {
			cols = append(cols, column{name: n, role: RoleCoordinate, raw: encodeFloats(elems[i])})
			i++
		}
	}
	for _, f := range op.Extras {
		cols = append(cols, column{name: f.Name, role: RolePayload, raw: encodeFloats(f.Value)})
	}
	if offsets != nil {
		cols = append(cols, column{name: "offsets", role: RoleOffsets, raw: encodeInts(offsets)})
	}
	if len(elems) > 0 {
		h.Length = len(elems[0])
	}
	return h, cols, nil
}

// encodeColumns compresses the columns in parallel and fills h.Columns.
func encodeColumns(ctx context.Context, rc *resource.Controller, c Compression, h *header, cols []column) ([][]byte, error) {
	h.Columns = make([]columnHeader, len(cols))
	stored := make([][]byte, len(cols))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(rc.Workers())
	for i, col := range cols {
		g.Go(func() error {
			if err := rc.AcquireWorker(ctx); err != nil {
				return err
			}
			defer rc.ReleaseWorker()
			out, used, err := compress(col.raw, c)
			if err != nil {
				return fmt.Errorf("persist: column %s: %w", col.name, err)
			}
			stored[i] = out
			h.Columns[i] = columnHeader{
				Name:        col.name,
				Role:        col.role,
				Compression: used,
				Raw:         len(col.raw),
				Size:        len(out),
				CRC:         checksum(out),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stored, nil
}

func frame(codecName string, hb []byte, blocks [][]byte) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, Magic)
	_ = binary.Write(&buf, binary.LittleEndian, Version)
	buf.WriteByte(byte(len(codecName)))
	buf.WriteString(codecName)
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(hb)))
	buf.Write(hb)
	for _, b := range blocks {
		buf.Write(b)
	}
	_ = binary.Write(&buf, binary.LittleEndian, checksum(buf.Bytes()))
	return buf.Bytes()
}

// Read loads the array stored under name.
func Read(ctx context.Context, store blobstore.BlobStore, name string, opts ...Option) (dispatch.Vector, error) {
	o := applyOptions(opts)
	start := time.Now()

	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	if err := o.resources.AcquireIO(ctx, int(blob.Size())); err != nil {
		return nil, err
	}
	data, err := blobstore.ReadAll(ctx, blob)
	if err != nil {
		return nil, err
	}

	h, body, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	raw := 0
	for _, c := range h.Columns {
		raw += c.Raw
	}
	if err := o.resources.AcquireMemory(int64(raw)); err != nil {
		return nil, fmt.Errorf("persist: %s needs %d bytes: %w", name, raw, err)
	}
	defer o.resources.ReleaseMemory(int64(raw))

	cols, err := decodeColumns(ctx, o.resources, h, body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	v, err := rebuild(h, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	o.logger.LogAttrs(ctx, slog.LevelDebug, "array read",
		slog.String("name", name),
		slog.String("class", v.Class().String()),
		slog.Int("records", h.Length),
		slog.Int("bytes", len(data)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return v, nil
}

// parse validates the frame of data and returns the header and the column
// blocks.
func parse(data []byte) (*header, []byte, error) {
	if len(data) < prefixSize+4+trailerSize {
		return nil, nil, fmt.Errorf("%w: %d bytes", ErrCorrupt, len(data))
	}
	end := len(data) - trailerSize
	if binary.LittleEndian.Uint32(data[end:]) != checksum(data[:end]) {
		return nil, nil, fmt.Errorf("%w: checksum mismatch", ErrCorrupt)
	}
	if binary.LittleEndian.Uint32(data) != Magic {
		return nil, nil, fmt.Errorf("%w: bad magic", ErrCorrupt)
	}
	if v := binary.LittleEndian.Uint16(data[4:]); v != Version {
		return nil, nil, fmt.Errorf("%w: %d", ErrVersion, v)
	}
	pos := 6
	n := int(data[pos])
	pos++
	if pos+n+4 > end {
		return nil, nil, fmt.Errorf("%w: truncated header", ErrCorrupt)
	}
	cname := string(data[pos : pos+n])
	pos += n
	c, ok := codec.ByName(cname)
	if !ok {
		return nil, nil, fmt.Errorf("%w: unknown codec %q", ErrCorrupt, cname)
	}
	hl := int(binary.LittleEndian.Uint32(data[pos:]))
	pos += 4
	if hl > end-pos {
		return nil, nil, fmt.Errorf("%w: truncated header", ErrCorrupt)
	}
	h := new(header)
	if err := c.Unmarshal(data[pos:pos+hl], h); err != nil {
		return nil, nil, fmt.Errorf("%w: header: %v", ErrCorrupt, err)
	}
	pos += hl
	size := 0
	for _, col := range h.Columns {
		if col.Size < 0 || col.Raw < 0 || col.Raw%8 != 0 {
			return nil, nil, fmt.Errorf("%w: column %s sizes", ErrCorrupt, col.Name)
		}
		size += col.Size
	}
	if size != end-pos {
		return nil, nil, fmt.Errorf("%w: %d column bytes, want %d", ErrCorrupt, end-pos, size)
	}
	return h, data[pos:end], nil
}

// decodeColumns verifies and decompresses the column blocks in parallel.
// Uncompressed blocks alias body.
func decodeColumns(ctx context.Context, rc *resource.Controller, h *header, body []byte) ([][]byte, error) {
	out := make([][]byte, len(h.Columns))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(rc.Workers())
	pos := 0
	for i, col := range h.Columns {
		block := body[pos : pos+col.Size]
		pos += col.Size
		g.Go(func() error {
			if err := rc.AcquireWorker(ctx); err != nil {
				return err
			}
			defer rc.ReleaseWorker()
			if checksum(block) != col.CRC {
				return fmt.Errorf("%w: column %s checksum mismatch", ErrCorrupt, col.Name)
			}
			raw, err := decompress(block, col.Compression, col.Raw)
			if err != nil {
				return fmt.Errorf("column %s: %w", col.Name, err)
			}
			out[i] = raw
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// rebuild assembles the vector described by h from decoded columns.
func rebuild(h *header, cols [][]byte) (dispatch.Vector, error) {
	var (
		fields  []columnar.Field
		offsets []int
	)
	for i, col := range h.Columns {
		switch col.Role {
		case RoleCoordinate, RolePayload:
			values := numeric.Array(decodeFloats(cols[i]))
			if len(values) != h.Length {
				return nil, fmt.Errorf("%w: column %s has %d records, want %d", ErrCorrupt, col.Name, len(values), h.Length)
			}
			fields = append(fields, coords.Named(col.Name, values))
		case RoleOffsets:
			offsets = decodeInts(cols[i])
		default:
			return nil, fmt.Errorf("%w: column %s has role %q", ErrCorrupt, col.Name, col.Role)
		}
	}

	g, err := coords.Gather(fields...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	flavor := coords.Generic
	if h.Momentum {
		flavor = coords.Momentum
	}
	flat, err := columnar.New(flavor, g.Groups, g.Extras...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	switch h.Backend {
	case dispatch.Columnar.String():
		return flat, nil
	case dispatch.Jagged.String():
		if len(offsets) != h.Events+1 || offsets[len(offsets)-1] != h.Length {
			return nil, fmt.Errorf("%w: offsets do not match %d events of %d records", ErrCorrupt, h.Events, h.Length)
		}
		v, err := jagged.Of(offsets, flat)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: backend %q", ErrCorrupt, h.Backend)
	}
}

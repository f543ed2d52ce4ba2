package player

import (
	"encoding/binary"
	"fmt"
)

// codecVersion increments when the storage encoding changes.
const codecVersion uint8 = 1

const encodedStateLen = 1 + 4 + 4 + 4

// EncodeState packs a state into its storage form.
//
// Layout:
//
//	version | width | height | counter
//
// All integers are big-endian uint32.
func EncodeState(s *State) []byte {
	out := make([]byte, 0, encodedStateLen)
	out = append(out, codecVersion)
	out = binary.BigEndian.AppendUint32(out, s.Dimensions.Width)
	out = binary.BigEndian.AppendUint32(out, s.Dimensions.Height)
	out = binary.BigEndian.AppendUint32(out, s.Counter)
	return out
}

// DecodeState is the inverse of EncodeState. It rejects unknown versions and
// buffers that are short or carry trailing bytes.
func DecodeState(b []byte) (*State, error) {
	r := &rd{b: b}
	v, err := r.u8()
	if err != nil {
		return nil, err
	}
	if v != codecVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptState, v)
	}
	s := &State{}
	if s.Dimensions.Width, err = r.u32(); err != nil {
		return nil, err
	}
	if s.Dimensions.Height, err = r.u32(); err != nil {
		return nil, err
	}
	if s.Counter, err = r.u32(); err != nil {
		return nil, err
	}
	if err := r.end(); err != nil {
		return nil, err
	}
	return s, nil
}

// encodeMeta stores the creator as a u8 length-prefixed string.
func encodeMeta(creator string) ([]byte, error) {
	if len(creator) > 255 {
		return nil, fmt.Errorf("creator too long: %d bytes", len(creator))
	}
	out := make([]byte, 0, 1+len(creator))
	out = append(out, byte(len(creator)))
	return append(out, creator...), nil
}

func decodeMeta(b []byte) (string, error) {
	r := &rd{b: b}
	l, err := r.u8()
	if err != nil {
		return "", err
	}
	creator, err := r.bytes(int(l))
	if err != nil {
		return "", err
	}
	if err := r.end(); err != nil {
		return "", err
	}
	return string(creator), nil
}

// rd reads big-endian values from a byte slice.
type rd struct {
	b []byte
	i int
}

func (r *rd) need(n int) error {
	if r.i+n > len(r.b) {
		return fmt.Errorf("%w: decode overflow at byte %d", ErrCorruptState, r.i)
	}
	return nil
}

func (r *rd) u8() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.b[r.i]
	r.i++
	return v, nil
}

func (r *rd) u32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.b[r.i : r.i+4])
	r.i += 4
	return v, nil
}

func (r *rd) bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	v := r.b[r.i : r.i+n]
	r.i += n
	return v, nil
}

func (r *rd) end() error {
	if r.i != len(r.b) {
		return fmt.Errorf("%w: %d trailing bytes", ErrCorruptState, len(r.b)-r.i)
	}
	return nil
}

package querycache

import (
	"bytes"
	"encoding/binary"
	"errors"
	"time"
)

// Entry envelope:
//
//	magic(4) | ver(1) | gen(u64 be) | fetchedAt(unix nano, i64 be) | vlen(u32 be) | payload(vlen)
//
// Anything that fails validation is treated as corruption and deleted on
// read; foreign writes under cache keys get the same treatment.

const wireVersion byte = 1

var (
	errCorrupt = errors.New("querycache: corrupt entry")
	wireMagic  = [...]byte{'F', 'J', 'Q', 'C'}
)

func encodeEntry(gen uint64, fetchedAt time.Time, payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(4 + 1 + 8 + 8 + 4 + len(payload))

	buf.Write(wireMagic[:])
	buf.WriteByte(wireVersion)

	var u8 [8]byte
	binary.BigEndian.PutUint64(u8[:], gen)
	buf.Write(u8[:])

	binary.BigEndian.PutUint64(u8[:], uint64(fetchedAt.UnixNano()))
	buf.Write(u8[:])

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

func decodeEntry(b []byte) (gen uint64, fetchedAt time.Time, payload []byte, err error) {
	const hdr = 4 + 1 + 8 + 8 + 4
	if len(b) < hdr || !bytes.Equal(b[:4], wireMagic[:]) || b[4] != wireVersion {
		return 0, time.Time{}, nil, errCorrupt
	}

	off := 5
	gen = binary.BigEndian.Uint64(b[off : off+8])
	off += 8

	fetchedAt = time.Unix(0, int64(binary.BigEndian.Uint64(b[off:off+8])))
	off += 8

	vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if vlen < 0 || vlen > len(b)-off {
		return 0, time.Time{}, nil, errCorrupt
	}

	return gen, fetchedAt, b[off : off+vlen], nil
}

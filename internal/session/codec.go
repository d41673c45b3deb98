package session

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"
)

// ErrCorruptState is returned when a state file exists but cannot be decoded.
var ErrCorruptState = errors.New("session state is corrupt")

var magic = [4]byte{'P', 'O', 'M', 'O'}

const codecVersion byte = 1

// Encode serializes a record.
//
// Layout (big endian): magic "POMO", version byte, work, short break and
// long break as int64 nanoseconds, blocks uint8, running byte, start int64,
// session id length uint8 followed by its bytes.
func Encode(r Record) ([]byte, error) {
	if len(r.SessionID) > 255 {
		return nil, fmt.Errorf("session id too long: %d bytes", len(r.SessionID))
	}

	var buf bytes.Buffer
	buf.Write(magic[:])
	buf.WriteByte(codecVersion)

	fields := []any{
		int64(r.WorkDuration),
		int64(r.ShortBreak),
		int64(r.LongBreak),
		r.WorkBlocks,
		r.Running,
		r.Start,
		uint8(len(r.SessionID)),
	}
	for _, f := range fields {
		if err := binary.Write(&buf, binary.BigEndian, f); err != nil {
			return nil, err
		}
	}
	buf.WriteString(r.SessionID)

	return buf.Bytes(), nil
}

// Decode parses a record produced by Encode. A record whose cadence cannot
// be walked is reported as corrupt.
func Decode(data []byte) (Record, error) {
	rd := bytes.NewReader(data)

	var head [5]byte
	if _, err := io.ReadFull(rd, head[:]); err != nil {
		return Record{}, fmt.Errorf("%w: short header", ErrCorruptState)
	}
	if !bytes.Equal(head[:4], magic[:]) {
		return Record{}, fmt.Errorf("%w: bad magic", ErrCorruptState)
	}
	if head[4] != codecVersion {
		return Record{}, fmt.Errorf("%w: unsupported version %d", ErrCorruptState, head[4])
	}

	var (
		work, short, long int64
		r                 Record
		idLen             uint8
	)
	fields := []any{&work, &short, &long, &r.WorkBlocks, &r.Running, &r.Start, &idLen}
	for _, f := range fields {
		if err := binary.Read(rd, binary.BigEndian, f); err != nil {
			return Record{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
		}
	}

	id := make([]byte, idLen)
	if _, err := io.ReadFull(rd, id); err != nil {
		return Record{}, fmt.Errorf("%w: truncated session id", ErrCorruptState)
	}
	if rd.Len() != 0 {
		return Record{}, fmt.Errorf("%w: %d trailing bytes", ErrCorruptState, rd.Len())
	}

	r.WorkDuration = time.Duration(work)
	r.ShortBreak = time.Duration(short)
	r.LongBreak = time.Duration(long)
	r.SessionID = string(id)
	if err := r.Cadence().Validate(); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return r, nil
}

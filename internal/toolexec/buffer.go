// SPDX-License-Identifier: MPL-2.0

package toolexec

import "bytes"

// DefaultMaxOutput caps each captured stream at 1 MiB.
const DefaultMaxOutput int64 = 1 << 20

// cappedBuffer keeps the first max bytes written to it and discards the rest.
// Writes never fail, so a chatty child process is not killed by a broken pipe.
type cappedBuffer struct {
	buf       bytes.Buffer
	max       int64
	truncated bool
}

func newCappedBuffer(limit int64) *cappedBuffer {
	if limit <= 0 {
		limit = DefaultMaxOutput
	}
	return &cappedBuffer{max: limit}
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	room := b.max - int64(b.buf.Len())
	if room <= 0 {
		b.truncated = b.truncated || len(p) > 0
		return len(p), nil
	}
	if int64(len(p)) > room {
		b.buf.Write(p[:room])
		b.truncated = true
		return len(p), nil
	}
	b.buf.Write(p)
	return len(p), nil
}

func (b *cappedBuffer) String() string { return b.buf.String() }

package tcp

import (
	"bufio"
	"encoding/binary"
	"io"
	"net"

	"github.com/pkg/errors"
)

const (
	FrameHeaderSize = 4
	MaxFrameSize    = 8 << 20
)

// FrameConn carries one message per frame: a 4-byte big-endian payload
// length followed by the payload.
type FrameConn struct {
	conn net.Conn
	br   *bufio.Reader
	bw   *bufio.Writer
}

func NewFrameConn(conn net.Conn) *FrameConn {
	return &FrameConn{
		conn: conn,
		br:   bufio.NewReader(conn),
		bw:   bufio.NewWriter(conn),
	}
}

func (f *FrameConn) Send(payload []byte) error {
	if len(payload) > MaxFrameSize {
		return errors.Errorf("frame: send: payload too big, length: %v", len(payload))
	}
	var header [FrameHeaderSize]byte
	binary.BigEndian.PutUint32(header[:], uint32(len(payload)))
	if _, err := f.bw.Write(header[:]); err != nil {
		return errors.Wrap(err, "frame: send: failed to write header")
	}
	if _, err := f.bw.Write(payload); err != nil {
		return errors.Wrapf(err, "frame: send: failed to write %v bytes of payload", len(payload))
	}
	return errors.Wrap(f.bw.Flush(), "frame: send: flush")
}

// Receive returns io.EOF, unwrapped, only when the stream ends on a frame
// boundary.
func (f *FrameConn) Receive() ([]byte, error) {
	var header [FrameHeaderSize]byte
	if _, err := io.ReadFull(f.br, header[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.Wrap(err, "frame: receive: failed to read header")
	}
	size := binary.BigEndian.Uint32(header[:])
	if size > MaxFrameSize {
		return nil, errors.Errorf("frame: receive: payload too big, length: %v", size)
	}
	payload := make([]byte, size)
	if _, err := io.ReadFull(f.br, payload); err != nil {
		return nil, errors.Wrapf(err, "frame: receive: failed to read %v bytes of payload", size)
	}
	return payload, nil
}

func (f *FrameConn) RemoteAddr() net.Addr {
	return f.conn.RemoteAddr()
}

func (f *FrameConn) Close() error {
	return f.conn.Close()
}

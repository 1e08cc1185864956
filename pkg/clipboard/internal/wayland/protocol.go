//go:build linux

// Package wayland implements just enough of the Wayland wire protocol to
// own the clipboard selection via zwlr_data_control_v1 and serve plain
// text to pasting clients. No external clipboard tool is needed on
// wlroots compositors.
package wayland

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

var le = binary.LittleEndian

// Object IDs we assign (client range: 2–0xfeffffff).
const (
	idDisplay   uint32 = 1
	idRegistry  uint32 = 2
	idCallback1 uint32 = 3 // first sync
	idSeat      uint32 = 4
	idDCManager uint32 = 5 // zwlr_data_control_manager_v1
	idDCSource  uint32 = 6 // zwlr_data_control_source_v1
	idDCDevice  uint32 = 7 // zwlr_data_control_device_v1
	idCallback2 uint32 = 8 // second sync
)

// plainTextMIMEs are the offers made for the selection. Everything maps to
// the same bytes; the set covers what GTK, Qt and terminal emulators ask for.
var plainTextMIMEs = []string{
	"text/plain;charset=utf-8",
	"text/plain",
	"UTF8_STRING",
	"STRING",
	"TEXT",
}

type conn struct {
	fd         int
	inBuf      []byte
	pendingFds []int
}

func dial() (*conn, error) {
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		return nil, fmt.Errorf("wayland: XDG_RUNTIME_DIR not set")
	}
	display := os.Getenv("WAYLAND_DISPLAY")
	if display == "" {
		display = "wayland-0"
	}
	sockPath := filepath.Join(runtimeDir, display)

	fd, err := syscall.Socket(syscall.AF_UNIX, syscall.SOCK_STREAM, 0)
	if err != nil {
		return nil, err
	}
	if err := syscall.Connect(fd, &syscall.SockaddrUnix{Name: sockPath}); err != nil {
		syscall.Close(fd) //nolint:errcheck
		return nil, fmt.Errorf("wayland: connect %s: %w", sockPath, err)
	}
	return &conn{fd: fd}, nil
}

func (c *conn) close() {
	syscall.Close(c.fd) //nolint:errcheck
}

// request sends one Wayland request message.
func (c *conn) request(objectID uint32, opcode uint16, args ...[]byte) error {
	argLen := 0
	for _, a := range args {
		argLen += len(a)
	}
	size := uint16(8 + argLen)
	buf := make([]byte, 8, size)
	le.PutUint32(buf[0:], objectID)
	le.PutUint32(buf[4:], uint32(opcode)|uint32(size)<<16)
	for _, a := range args {
		buf = append(buf, a...)
	}
	_, err := syscall.Write(c.fd, buf)
	return err
}

// event reads the next complete Wayland event. fd is -1 unless the message
// carried a file descriptor via SCM_RIGHTS.
func (c *conn) event() (objectID uint32, opcode uint16, payload []byte, fd int, err error) {
	fd = -1
	for {
		if len(c.inBuf) >= 8 {
			sizeOpcode := le.Uint32(c.inBuf[4:8])
			size := int(sizeOpcode >> 16)
			if size >= 8 && len(c.inBuf) >= size {
				objectID = le.Uint32(c.inBuf[0:4])
				opcode = uint16(sizeOpcode & 0xffff)
				payload = make([]byte, size-8)
				copy(payload, c.inBuf[8:size])
				c.inBuf = c.inBuf[size:]
				if len(c.pendingFds) > 0 {
					fd = c.pendingFds[0]
					c.pendingFds = c.pendingFds[1:]
				}
				return
			}
		}

		buf := make([]byte, 4096)
		oob := make([]byte, syscall.CmsgSpace(4*8)) // room for up to 8 fds
		n, oobn, _, _, recvErr := syscall.Recvmsg(c.fd, buf, oob, 0)
		if recvErr != nil {
			err = recvErr
			return
		}
		if n == 0 {
			err = fmt.Errorf("wayland: connection closed")
			return
		}
		c.inBuf = append(c.inBuf, buf[:n]...)

		if oobn > 0 {
			if scms, parseErr := syscall.ParseSocketControlMessage(oob[:oobn]); parseErr == nil {
				for _, scm := range scms {
					if rights, parseErr := syscall.ParseUnixRights(&scm); parseErr == nil {
						c.pendingFds = append(c.pendingFds, rights...)
					}
				}
			}
		}
	}
}

func uint32Arg(v uint32) []byte {
	b := make([]byte, 4)
	le.PutUint32(b, v)
	return b
}

// stringArg encodes a Wayland string: uint32 length (incl. null), bytes,
// padding to 4-byte alignment.
func stringArg(s string) []byte {
	sBytes := append([]byte(s), 0)
	length := len(sBytes)
	padded := (length + 3) &^ 3
	buf := make([]byte, 4+padded)
	le.PutUint32(buf[0:], uint32(length))
	copy(buf[4:], sBytes)
	return buf
}

// decodeString reads a Wayland string from payload bytes.
func decodeString(data []byte) (string, []byte, error) {
	if len(data) < 4 {
		return "", data, fmt.Errorf("wayland: short string length field")
	}
	length := int(le.Uint32(data[:4]))
	data = data[4:]
	if length == 0 {
		return "", data, nil
	}
	padded := (length + 3) &^ 3
	if len(data) < padded {
		return "", data, fmt.Errorf("wayland: short string data")
	}
	s := string(data[:length-1]) // exclude null terminator
	return s, data[padded:], nil
}

// ServeText claims the Wayland clipboard and serves text to every paste
// request. It blocks until another clipboard write cancels our ownership.
func ServeText(text []byte) error {
	c, err := dial()
	if err != nil {
		return err
	}
	defer c.close()

	if err := c.request(idDisplay, 1 /*get_registry*/, uint32Arg(idRegistry)); err != nil {
		return err
	}
	if err := c.request(idDisplay, 0 /*sync*/, uint32Arg(idCallback1)); err != nil {
		return err
	}

	seatName, dcManagerName, err := collectGlobals(c)
	if err != nil {
		return err
	}

	if err := bindAndClaim(c, seatName, dcManagerName); err != nil {
		return err
	}

	return serveLoop(c, text)
}

// collectGlobals reads registry globals until the first sync callback fires,
// returning the registry names of wl_seat and the data-control manager.
func collectGlobals(c *conn) (seatName, dcManagerName uint32, err error) {
	var seatFound, dcManagerFound bool

	for {
		objectID, opcode, payload, fd, evErr := c.event()
		if evErr != nil {
			return 0, 0, evErr
		}
		if fd >= 0 {
			syscall.Close(fd) //nolint:errcheck
		}

		switch {
		case objectID == idRegistry && opcode == 0 /*global*/ :
			if len(payload) < 4 {
				continue
			}
			name := le.Uint32(payload[:4])
			iface, _, decErr := decodeString(payload[4:])
			if decErr != nil {
				continue
			}
			switch iface {
			case "wl_seat":
				seatName = name
				seatFound = true
			case "zwlr_data_control_manager_v1":
				dcManagerName = name
				dcManagerFound = true
			}

		case objectID == idCallback1 && opcode == 0 /*done*/ :
			if !seatFound {
				return 0, 0, fmt.Errorf("wayland: wl_seat not found")
			}
			if !dcManagerFound {
				return 0, 0, fmt.Errorf("wayland: zwlr_data_control_manager_v1 not found (compositor may not support wlr-data-control)")
			}
			return seatName, dcManagerName, nil
		}
	}
}

// bindAndClaim binds the seat and data-control manager, creates a source
// offering the plain-text MIME set, and sets it as the selection. It returns
// after the second sync confirms ownership.
func bindAndClaim(c *conn, seatName, dcManagerName uint32) error {
	// wl_registry.bind new_id encodes inline: [name][interface string][version][new_id]
	if err := c.request(idRegistry, 0 /*bind*/, uint32Arg(seatName),
		stringArg("wl_seat"), uint32Arg(1), uint32Arg(idSeat)); err != nil {
		return err
	}
	if err := c.request(idRegistry, 0 /*bind*/, uint32Arg(dcManagerName),
		stringArg("zwlr_data_control_manager_v1"), uint32Arg(2), uint32Arg(idDCManager)); err != nil {
		return err
	}

	if err := c.request(idDCManager, 0 /*create_data_source*/, uint32Arg(idDCSource)); err != nil {
		return err
	}
	for _, mimeType := range plainTextMIMEs {
		if err := c.request(idDCSource, 0 /*offer*/, stringArg(mimeType)); err != nil {
			return err
		}
	}

	if err := c.request(idDCManager, 1 /*get_data_device*/, uint32Arg(idDCDevice), uint32Arg(idSeat)); err != nil {
		return err
	}
	if err := c.request(idDCDevice, 0 /*set_selection*/, uint32Arg(idDCSource)); err != nil {
		return err
	}

	if err := c.request(idDisplay, 0 /*sync*/, uint32Arg(idCallback2)); err != nil {
		return err
	}
	for {
		objectID, opcode, _, fd, err := c.event()
		if err != nil {
			return err
		}
		if fd >= 0 {
			syscall.Close(fd) //nolint:errcheck
		}
		if objectID == idCallback2 && opcode == 0 /*done*/ {
			return nil
		}
	}
}

// serveLoop answers paste requests until ownership is cancelled.
func serveLoop(c *conn, text []byte) error {
	offered := make(map[string]bool, len(plainTextMIMEs))
	for _, m := range plainTextMIMEs {
		offered[m] = true
	}

	for {
		objectID, opcode, payload, fd, err := c.event()
		if err != nil {
			// Connection closed means compositor exited; treat as done.
			return nil
		}

		if objectID != idDCSource {
			if fd >= 0 {
				syscall.Close(fd) //nolint:errcheck
			}
			continue
		}

		switch opcode {
		case 0: // zwlr_data_control_source_v1.send
			mimeType, _, _ := decodeString(payload)
			if fd >= 0 {
				if offered[mimeType] {
					syscall.Write(fd, text) //nolint:errcheck
				}
				syscall.Close(fd) //nolint:errcheck
			}
		case 1: // zwlr_data_control_source_v1.cancelled
			return nil
		}
	}
}

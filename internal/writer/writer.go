// Package writer implements the program listing output.
package writer

import (
	"fmt"
	"hash/crc32"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
)

const dataBytesPerLine = 16

type lineWriterFunc func(line string, address uint16, byteCount int) error

// Options of the writer.
type Options struct {
	OffsetComments bool // prefix comments with the address of the line
	HexComments    bool // add the opcode bytes as comment to code lines
}

// Writer writes a linear listing of a program image as it is loaded into
// memory. Words that do not decode to an instruction are written as data.
type Writer struct {
	options Options
	writer  io.Writer
}

// line is a single code instruction or a run of data bytes.
type line struct {
	address uint16
	data    []byte
	ins     chip8.Instruction
	code    bool
}

// New creates a new writer.
func New(writer io.Writer, options Options) *Writer {
	return &Writer{
		options: options,
		writer:  writer,
	}
}

// Write outputs the listing of the program image.
func (w Writer) Write(rom []byte) error {
	if err := w.writeCommentHeader(rom); err != nil {
		return err
	}

	lines := decodeLines(rom)
	labels := collectLabels(lines)

	for i := 0; i < len(lines); i++ {
		ln := lines[i]
		if err := w.writeLabel(i, labels[ln.address]); err != nil {
			return err
		}

		if ln.code {
			if err := w.writeCodeLine(ln, labels); err != nil {
				return fmt.Errorf("writing code line: %w", err)
			}
			continue
		}

		// bundle data until the next code line or label
		var data []byte
		start := ln.address
		for ; i < len(lines) && !lines[i].code; i++ {
			if lines[i].address != start && labels[lines[i].address] != "" {
				break
			}
			data = append(data, lines[i].data...)
		}
		i--

		if err := w.BundleDataWrites(start, data, w.writeDataLine); err != nil {
			return fmt.Errorf("writing data: %w", err)
		}
	}
	return nil
}

// BundleDataWrites bundles writes of data bytes to print dataBytesPerLine bytes per line.
func (w Writer) BundleDataWrites(address uint16, data []byte, lineWriter lineWriterFunc) error {
	remaining := len(data)
	for i := 0; remaining > 0; {
		toWrite := min(remaining, dataBytesPerLine)

		buf := &strings.Builder{}
		buf.WriteString(".byte ")
		for j := range toWrite {
			if _, err := fmt.Fprintf(buf, "$%02X, ", data[i+j]); err != nil {
				return fmt.Errorf("writing data byte: %w", err)
			}
		}
		line := strings.TrimRight(buf.String(), ", ")

		if err := lineWriter(line, address+uint16(i), toWrite); err != nil {
			return err
		}

		i += toWrite
		remaining -= toWrite
	}
	return nil
}

// writeCommentHeader writes the CRC32 checksum and code base address as comments to the output.
func (w Writer) writeCommentHeader(rom []byte) error {
	if _, err := fmt.Fprintf(w.writer, "; ROM CRC32 checksum: %08x\n", crc32.ChecksumIEEE(rom)); err != nil {
		return fmt.Errorf("writing checksum: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; ROM size: %d bytes\n", len(rom)); err != nil {
		return fmt.Errorf("writing size: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Code base address: $%04X\n\n", chip8.ProgramStart); err != nil {
		return fmt.Errorf("writing code base address: %w", err)
	}
	return nil
}

func (w Writer) writeLabel(index int, label string) error {
	if label == "" {
		return nil
	}

	if index > 0 {
		if _, err := fmt.Fprintln(w.writer); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w.writer, "%s:\n", label); err != nil {
		return fmt.Errorf("writing label: %w", err)
	}
	return nil
}

func (w Writer) writeCodeLine(ln line, labels map[uint16]string) error {
	code := ln.ins.String()
	if label, ok := labels[ln.ins.NNN]; ok && (ln.ins.Op == chip8.OpJp || ln.ins.Op == chip8.OpCall) {
		code = ln.ins.Name() + " " + label
	}

	var comments []string
	if w.options.OffsetComments {
		comments = append(comments, fmt.Sprintf("$%04X", ln.address))
	}
	if w.options.HexComments {
		comments = append(comments, fmt.Sprintf("%02X %02X", ln.data[0], ln.data[1]))
	}

	if len(comments) == 0 {
		_, err := fmt.Fprintf(w.writer, "  %s\n", code)
		return err
	}
	_, err := fmt.Fprintf(w.writer, "  %-30s ; %s\n", code, strings.Join(comments, "  "))
	return err
}

func (w Writer) writeDataLine(line string, address uint16, _ int) error {
	var err error
	if w.options.OffsetComments {
		_, err = fmt.Fprintf(w.writer, "  %-30s ; $%04X\n", line, address)
	} else {
		_, err = fmt.Fprintf(w.writer, "  %s\n", line)
	}
	if err != nil {
		return fmt.Errorf("writing data line: %w", err)
	}
	return nil
}

// decodeLines splits the image into two byte words. A trailing odd byte is
// returned as data.
func decodeLines(rom []byte) []line {
	lines := make([]line, 0, len(rom)/2+1)
	for offset := 0; offset < len(rom); offset += 2 {
		address := uint16(chip8.ProgramStart + offset)
		if offset+1 >= len(rom) {
			lines = append(lines, line{address: address, data: rom[offset:]})
			break
		}

		data := rom[offset : offset+2]
		ins, ok := chip8.Decode(uint16(data[0])<<8 | uint16(data[1]))
		lines = append(lines, line{
			address: address,
			data:    data,
			ins:     ins,
			code:    ok,
		})
	}
	return lines
}

// collectLabels names the program entry point and every jump and call target
// that starts a line of the listing.
func collectLabels(lines []line) map[uint16]string {
	starts := make(map[uint16]struct{}, len(lines))
	for _, ln := range lines {
		starts[ln.address] = struct{}{}
	}

	labels := map[uint16]string{}
	for _, ln := range lines {
		if !ln.code {
			continue
		}
		if _, ok := starts[ln.ins.NNN]; !ok {
			continue
		}

		switch ln.ins.Op {
		case chip8.OpCall:
			labels[ln.ins.NNN] = fmt.Sprintf("_func_%04x", ln.ins.NNN)
		case chip8.OpJp:
			if _, ok := labels[ln.ins.NNN]; !ok {
				labels[ln.ins.NNN] = fmt.Sprintf("_label_%04x", ln.ins.NNN)
			}
		}
	}

	if len(lines) > 0 {
		labels[chip8.ProgramStart] = "Start"
	}
	return labels
}

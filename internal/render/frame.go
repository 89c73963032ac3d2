package render

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// OpCode identifies one canvas call
type OpCode uint8

const (
	OpClearRect OpCode = iota + 1
	OpFillStyle
	OpFillRect
	OpFillCircle
	OpStrokeLine
)

// Op is a single recorded canvas call
type Op struct {
	Code  OpCode    `msgpack:"c"`
	Args  []float64 `msgpack:"a,omitempty"`
	Color string    `msgpack:"s,omitempty"` // OpFillStyle only
}

// Frame is everything drawn for one tick, in call order
type Frame struct {
	Tick   uint64  `msgpack:"tick"`
	Width  float64 `msgpack:"w"`
	Height float64 `msgpack:"h"`
	Ops    []Op    `msgpack:"ops"`
}

// Recorder is a Canvas that records calls instead of drawing them. Useful
// for replaying on a remote surface and for asserting draw order.
type Recorder struct {
	ops []Op
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.ops = append(r.ops, Op{Code: OpClearRect, Args: []float64{x, y, w, h}})
}

func (r *Recorder) SetFillStyle(color string) {
	r.ops = append(r.ops, Op{Code: OpFillStyle, Color: color})
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.ops = append(r.ops, Op{Code: OpFillRect, Args: []float64{x, y, w, h}})
}

func (r *Recorder) FillCircle(x, y, radius float64) {
	r.ops = append(r.ops, Op{Code: OpFillCircle, Args: []float64{x, y, radius}})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2 float64) {
	r.ops = append(r.ops, Op{Code: OpStrokeLine, Args: []float64{x1, y1, x2, y2}})
}

// Ops returns the calls recorded since the last Reset
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Reset drops recorded calls, keeping capacity
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

// Frame packages the recorded calls. The frame shares the recorder's
// backing array, so encode it before the next Reset.
func (r *Recorder) Frame(tick uint64, width, height float64) Frame {
	return Frame{Tick: tick, Width: width, Height: height, Ops: r.ops}
}

// FrameWriter streams msgpack-encoded frames back to back
type FrameWriter struct {
	enc *msgpack.Encoder
}

func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{enc: msgpack.NewEncoder(w)}
}

func (fw *FrameWriter) Write(f Frame) error {
	if err := fw.enc.Encode(&f); err != nil {
		return fmt.Errorf("encode frame %d: %w", f.Tick, err)
	}
	return nil
}

// FrameReader decodes a stream written by FrameWriter
type FrameReader struct {
	dec *msgpack.Decoder
}

func NewFrameReader(r io.Reader) *FrameReader {
	return &FrameReader{dec: msgpack.NewDecoder(r)}
}

// Read returns the next frame, or io.EOF at the end of the stream
func (fr *FrameReader) Read() (Frame, error) {
	var f Frame
	if err := fr.dec.Decode(&f); err != nil {
		return Frame{}, err
	}
	return f, nil
}

package bookkeeper

import (
	"encoding/json"
	"io"
	"strconv"
)

// JSONWriter is the streaming writer abstraction the JSON renderers are
// written against. Calls append to the underlying io.Writer in emission
// order; key ordering in the output is therefore exactly the call order.
//
// The writer latches the first write error: once an error occurred every
// later call is a no-op and Err returns it.
type JSONWriter interface {
	StartObject()
	EndObject()
	Key(name string)
	String(v string)
	Int(v int64)
	Double(v float64)
	Bool(v bool)
	StartArray()
	EndArray()
	// RawValue splices an already-serialized JSON fragment verbatim,
	// without re-parsing or re-escaping it.
	RawValue(raw string)
	Err() error
}

// NewCompactWriter returns the compact backend: minified JSON, no
// whitespace.
func NewCompactWriter(w io.Writer) JSONWriter {
	return &jsonStream{w: w}
}

// NewPrettyWriter returns the pretty-printed backend: one element per
// line, 4-space indentation.
func NewPrettyWriter(w io.Writer) JSONWriter {
	return &jsonStream{w: w, indent: "    "}
}

// jsonStream implements both backends; the pretty one sets indent.
type jsonStream struct {
	w        io.Writer
	indent   string // empty for the compact backend
	depth    int
	started  bool // something was written already
	needSep  bool // a value was emitted at this level, next one needs ","
	afterKey bool // a key was just emitted, next value follows its ":"
	err      error
}

var _ JSONWriter = (*jsonStream)(nil)

func (s *jsonStream) write(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
	s.started = true
}

// breakLine starts a fresh indented line in pretty mode.
func (s *jsonStream) breakLine() {
	if s.indent == "" || !s.started {
		return
	}
	s.write("\n")
	for i := 0; i < s.depth; i++ {
		s.write(s.indent)
	}
}

// beforeValue emits the separator owed before the next value.
func (s *jsonStream) beforeValue() {
	if s.afterKey {
		s.afterKey = false
		return
	}
	if s.needSep {
		s.write(",")
	}
	s.breakLine()
}

func (s *jsonStream) StartObject() {
	s.beforeValue()
	s.write("{")
	s.depth++
	s.needSep = false
}

func (s *jsonStream) EndObject() {
	s.depth--
	if s.needSep {
		s.breakLine()
	}
	s.write("}")
	s.needSep = true
}

func (s *jsonStream) StartArray() {
	s.beforeValue()
	s.write("[")
	s.depth++
	s.needSep = false
}

func (s *jsonStream) EndArray() {
	s.depth--
	if s.needSep {
		s.breakLine()
	}
	s.write("]")
	s.needSep = true
}

func (s *jsonStream) Key(name string) {
	if s.needSep {
		s.write(",")
	}
	s.breakLine()
	s.write(quote(name))
	if s.indent != "" {
		s.write(": ")
	} else {
		s.write(":")
	}
	s.afterKey = true
}

func (s *jsonStream) String(v string) {
	s.beforeValue()
	s.write(quote(v))
	s.needSep = true
}

func (s *jsonStream) Int(v int64) {
	s.beforeValue()
	s.write(strconv.FormatInt(v, 10))
	s.needSep = true
}

func (s *jsonStream) Double(v float64) {
	s.beforeValue()
	s.write(strconv.FormatFloat(v, 'f', -1, 64))
	s.needSep = true
}

func (s *jsonStream) Bool(v bool) {
	s.beforeValue()
	s.write(strconv.FormatBool(v))
	s.needSep = true
}

func (s *jsonStream) RawValue(raw string) {
	s.beforeValue()
	s.write(raw)
	s.needSep = true
}

func (s *jsonStream) Err() error { return s.err }

// quote escapes a string for JSON. json.Marshal on a string cannot fail.
func quote(v string) string {
	b, _ := json.Marshal(v)
	return string(b)
}

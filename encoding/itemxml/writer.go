package itemxml

import (
	"bufio"
	"encoding/xml"
	"io"
)

// Writer streams an item-exchange document. NewWriter emits the document
// header; Close emits the closing tag and flushes. Write errors are sticky
// and surface from Close.
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter starts a new document on w.
func NewWriter(w io.Writer) *Writer {
	iw := &Writer{w: bufio.NewWriter(w)}
	iw.writeString("<?xml version=\"1.0\"?>\n<items>\n")
	return iw
}

// Write emits one item.
func (w *Writer) Write(item Item) {
	w.writeString(`  <item class="`)
	w.writeEscaped(item.Class)
	w.writeString(`" id="`)
	w.writeEscaped(item.ID)
	w.writeString("\">\n")
	for _, a := range item.Attrs {
		w.writeString(`    <attribute name="`)
		w.writeEscaped(a.Name)
		w.writeString(`" value="`)
		w.writeEscaped(a.Value)
		w.writeString("\" />\n")
	}
	for _, r := range item.Refs {
		w.writeString(`    <reference name="`)
		w.writeEscaped(r.Name)
		w.writeString(`" ref_id="`)
		w.writeEscaped(r.RefID)
		w.writeString("\" />\n")
	}
	w.writeString("  </item>\n")
}

// Close finishes the document and returns the first error encountered, if
// any.
func (w *Writer) Close() error {
	w.writeString("</items>\n")
	if err := w.w.Flush(); err != nil && w.err == nil {
		w.err = err
	}
	return w.err
}

func (w *Writer) writeString(s string) {
	if w.err != nil {
		return
	}
	if _, err := w.w.WriteString(s); err != nil {
		w.err = err
	}
}

func (w *Writer) writeEscaped(s string) {
	if w.err != nil {
		return
	}
	if err := xml.EscapeText(w.w, []byte(s)); err != nil {
		w.err = err
	}
}

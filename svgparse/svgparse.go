// Reads back documents written by svgdoc: the page title
// and every drawing surface with its shapes.
// Only circle, rect and ellipse elements are understood inside
// a drawing surface; see ErrorMode for the other ones.
package svgparse

import (
	"encoding/xml"
	"errors"
	"io"
	"os"

	"github.com/Matthew-Goosney/svgart/svgdoc"
	"golang.org/x/net/html/charset"
)

// ErrorMode determines how unsupported elements found
// inside a drawing surface are handled.
type ErrorMode uint8

const (
	// IgnoreErrorMode skips the element silently.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode skips the element and logs a warning.
	WarnErrorMode
	// StrictErrorMode aborts the parsing.
	StrictErrorMode
)

var errNoElement = errors.New("invalid art document: no element found")

// Drawing is the content of a parsed document.
type Drawing struct {
	Title    string
	Canvases []*svgdoc.Canvas
}

// Document rebuilds a document holding the parsed canvases,
// each at indentation level 1.
func (d *Drawing) Document() *svgdoc.Document {
	doc := svgdoc.NewDocument(d.Title)
	for _, c := range d.Canvases {
		doc.AddComponent(c, 1)
	}
	return doc
}

// ReadDocumentStream parses the document from the given io.Reader.
// Ill-formed HTML is tolerated (missing closing tags, HTML entities),
// but the attributes of supported shapes must be valid.
func ReadDocumentStream(stream io.Reader, errMode ErrorMode) (*Drawing, error) {
	cursor := &docCursor{drawing: new(Drawing), errorMode: errMode}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errNoElement
				}
				break
			}
			return cursor.drawing, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			if err = cursor.readStartElement(se); err != nil {
				return cursor.drawing, err
			}
		case xml.EndElement:
			cursor.readEndElement(se)
		case xml.CharData:
			if cursor.inTitleText {
				cursor.drawing.Title += string(se)
			}
		}
	}
	return cursor.drawing, nil
}

// ReadDocument parses the named file.
func ReadDocument(path string, errMode ErrorMode) (*Drawing, error) {
	fin, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadDocumentStream(fin, errMode)
}

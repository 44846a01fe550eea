package mtxt

import "strings"

// Splits the given text into lines that fit within maxWidth pixels,
// using the advances provided by the given metrics.
//
// Explicit line breaks ("\n", "\r\n" or a lone "\r") are always
// respected and never merged. Within each paragraph, words are
// separated by whitespace and wrapped greedily: a word is added to
// the current line as long as the line width plus one space plus the
// word width doesn't exceed maxWidth. Lines are re-joined with single
// spaces, and leading or trailing whitespace is dropped.
//
// Words are never split. A word wider than maxWidth gets a line of
// its own, which will overflow the canvas. Empty paragraphs produce
// empty lines, and empty text produces exactly one empty line, so the
// result always contains at least one line.
//
// The only possible error comes from the metrics (see [ErrUnsupportedGlyph]).
func BreakLines(text string, maxWidth int, metrics Metrics) ([]string, error) {
	if maxWidth < 0 { maxWidth = 0 }

	var wrap lineWrapTempVariables
	wrap.Init(metrics, maxWidth)
	for _, paragraph := range splitExplicitBreaks(text) {
		err := wrap.Paragraph(paragraph)
		if err != nil { return nil, err }
	}
	return wrap.lines, nil
}

func splitExplicitBreaks(text string) []string {
	if strings.IndexByte(text, '\r') != -1 {
		text = strings.ReplaceAll(text, "\r\n", "\n")
		text = strings.ReplaceAll(text, "\r", "\n")
	}
	return strings.Split(text, "\n")
}

// --- line wrap ---

type lineWrapTempVariables struct {
	metrics Metrics
	maxWidth int
	lines []string

	line strings.Builder
	lineWidth int
	lineHasWords bool

	spaceWidth int
	spaceWidthKnown bool
}

func (self *lineWrapTempVariables) Init(metrics Metrics, maxWidth int) {
	self.metrics = metrics
	self.maxWidth = maxWidth
}

// Wraps a single paragraph (text without explicit line breaks).
func (self *lineWrapTempVariables) Paragraph(paragraph string) error {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		self.lines = append(self.lines, "")
		return nil
	}

	for _, word := range words {
		wordWidth, err := LineWidth(word, self.metrics)
		if err != nil { return err }
		if !self.lineHasWords {
			self.startLine(word, wordWidth)
			continue
		}

		spaceWidth, err := self.getSpaceWidth()
		if err != nil { return err }
		if self.lineWidth + spaceWidth + wordWidth <= self.maxWidth {
			self.line.WriteByte(' ')
			self.line.WriteString(word)
			self.lineWidth += spaceWidth + wordWidth
		} else {
			self.flushLine()
			self.startLine(word, wordWidth)
		}
	}
	self.flushLine()
	return nil
}

func (self *lineWrapTempVariables) startLine(word string, wordWidth int) {
	self.line.WriteString(word)
	self.lineWidth = wordWidth
	self.lineHasWords = true
}

func (self *lineWrapTempVariables) flushLine() {
	self.lines = append(self.lines, self.line.String())
	self.line.Reset()
	self.lineWidth = 0
	self.lineHasWords = false
}

// The space advance is only requested once two words need to be
// joined, so fonts without a space glyph can still lay out single
// words per paragraph.
func (self *lineWrapTempVariables) getSpaceWidth() (int, error) {
	if self.spaceWidthKnown { return self.spaceWidth, nil }
	width, err := self.metrics.Advance(' ')
	if err != nil { return 0, err }
	self.spaceWidth = width
	self.spaceWidthKnown = true
	return width, nil
}

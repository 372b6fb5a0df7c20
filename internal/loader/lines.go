package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// maxLineSize bounds a single source line.
const maxLineSize = 1 << 20

// line is a trimmed, non-blank source line with its 1-based number.
type line struct {
	num  int
	text string
}

// eachLine calls fn for every non-blank line of r, trimmed of surrounding
// whitespace. It stops at the first error returned by fn.
func eachLine(r io.Reader, source string, fn func(l line) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	num := 0
	for scanner.Scan() {
		num++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if err := fn(line{num: num, text: text}); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", source, err)
	}
	return nil
}

var errNotFinite = errors.New("value is not finite")

// parseFinite parses a decimal number, rejecting NaN and infinities.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}

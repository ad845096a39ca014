package pdfdoc

import (
	"strconv"
)

// placement records one Do of a named XObject together with the rectangle
// the current transformation matrix mapped the unit square to.
type placement struct {
	name string
	rect Rect
}

// scanPlacements walks a decoded content stream and returns every XObject
// placement. It tracks only the operators that affect image geometry:
// q/Q for the graphics state stack, cm for the CTM, and Do for painting.
// Everything else, including text and inline path content, just clears
// the operand buffer.
//
// The scanner is deliberately lax: malformed operand runs are dropped
// instead of failing, because a page with one unparsable drawing command
// can still carry a perfectly usable image placement.
func scanPlacements(content []byte) []placement {
	var placements []placement

	ctm := identityMatrix()
	stack := []matrix{}

	var nums []float64
	var lastName string

	flush := func() {
		nums = nums[:0]
		lastName = ""
	}

	for i := 0; i < len(content); {
		ch := content[i]

		switch {
		case isWhitespace(ch):
			i++

		case ch == '%': // comment to end of line
			for i < len(content) && content[i] != '\n' && content[i] != '\r' {
				i++
			}

		case ch == '(': // literal string, nestable with escapes
			depth := 0
			for ; i < len(content); i++ {
				switch content[i] {
				case '\\':
					i++
					continue
				case '(':
					depth++
				case ')':
					depth--
				}
				if depth == 0 {
					i++
					break
				}
			}

		case ch == '<' && i+1 < len(content) && content[i+1] == '<':
			i += 2 // inline dict delimiters carry no geometry

		case ch == '>' && i+1 < len(content) && content[i+1] == '>':
			i += 2

		case ch == '<': // hex string
			for i < len(content) && content[i] != '>' {
				i++
			}
			i++

		case ch == '[' || ch == ']' || ch == '{' || ch == '}':
			i++

		case ch == '/': // name
			start := i + 1
			i++
			for i < len(content) && !isDelimiter(content[i]) {
				i++
			}
			lastName = string(content[start:i])

		default: // number or operator token
			start := i
			for i < len(content) && !isDelimiter(content[i]) {
				i++
			}
			tok := string(content[start:i])

			if v, err := strconv.ParseFloat(tok, 64); err == nil {
				nums = append(nums, v)
				continue
			}

			switch tok {
			case "q":
				stack = append(stack, ctm)
			case "Q":
				if n := len(stack); n > 0 {
					ctm = stack[n-1]
					stack = stack[:n-1]
				}
			case "cm":
				if n := len(nums); n >= 6 {
					m := matrix{
						a: nums[n-6], b: nums[n-5],
						c: nums[n-4], d: nums[n-3],
						e: nums[n-2], f: nums[n-1],
					}
					ctm = m.mul(ctm)
				}
			case "Do":
				if lastName != "" {
					placements = append(placements, placement{
						name: lastName,
						rect: unitSquareBounds(ctm),
					})
				}
			case "BI": // inline image: skip to EI
				i = skipInlineImage(content, i)
			}
			flush()
		}
	}

	return placements
}

// skipInlineImage advances past a BI ... ID ... EI inline image block.
func skipInlineImage(content []byte, i int) int {
	for i+1 < len(content) {
		if content[i] == 'E' && content[i+1] == 'I' &&
			(i+2 >= len(content) || isDelimiter(content[i+2])) {
			return i + 2
		}
		i++
	}
	return len(content)
}

func isWhitespace(ch byte) bool {
	switch ch {
	case 0, '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

func isDelimiter(ch byte) bool {
	if isWhitespace(ch) {
		return true
	}
	switch ch {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

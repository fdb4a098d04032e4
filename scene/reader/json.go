package reader

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/achilleasa/scenedesc/scene"
	"github.com/tidwall/gjson"
)

// Parse a JSON document.
func parseJSON(data []byte) (*node, error) {
	if !gjson.ValidBytes(data) {
		return nil, &scene.ParseError{Reason: "malformed JSON document"}
	}
	if !utf8.Valid(data) {
		return nil, &scene.ParseError{Reason: "malformed JSON document: invalid UTF-8"}
	}

	// Value offsets reported by gjson are relative to the first non-blank byte.
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	base := len(data) - len(trimmed)

	return jsonNode(data, base, gjson.ParseBytes(trimmed)), nil
}

func jsonNode(data []byte, base int, res gjson.Result) *node {
	n := &node{line: jsonLine(data, base+res.Index)}

	switch res.Type {
	case gjson.Null:
		n.kind = nullNode
	case gjson.False, gjson.True:
		n.kind = boolNode
		n.b = res.Bool()
	case gjson.Number:
		n.kind = numberNode
		n.num = res.Num
		n.isInt = !strings.ContainsAny(res.Raw, ".eE")
	case gjson.String:
		n.kind = stringNode
		n.str = res.Str
	case gjson.JSON:
		if res.IsArray() {
			n.kind = arrayNode
			res.ForEach(func(_, value gjson.Result) bool {
				n.items = append(n.items, jsonNode(data, base, value))
				return true
			})
		} else {
			n.kind = objectNode
			res.ForEach(func(key, value gjson.Result) bool {
				n.keys = append(n.keys, key.Str)
				n.values = append(n.values, jsonNode(data, base, value))
				return true
			})
		}
	}

	return n
}

// Map a byte offset to a 1-based line number.
func jsonLine(data []byte, offset int) int {
	if offset < 0 || offset > len(data) {
		return 0
	}
	return bytes.Count(data[:offset], []byte{'\n'}) + 1
}

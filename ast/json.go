package ast

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FromJSON decodes the parser collaborator's tree interchange form: nested
// JSON arrays of atoms, mirroring the nested tuples the parser emits.
//
//	["=", "x", ["+", "y", 1]]
//
// Arrays become interior nodes; strings become leaves; numbers and booleans
// become leaves holding their literal text. A bare atom at the root decodes
// to a single leaf.
func FromJSON(data []byte) (Node, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("ast: invalid JSON: %w", err)
	}
	return fromValue(raw)
}

func fromValue(v interface{}) (Node, error) {
	switch t := v.(type) {
	case []interface{}:
		n := &Interior{Children: make([]Node, 0, len(t))}
		for _, c := range t {
			child, err := fromValue(c)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		}
		return n, nil
	case string:
		return &Leaf{Value: t}, nil
	case json.Number:
		return &Leaf{Value: t.String()}, nil
	case float64:
		return &Leaf{Value: strconv.FormatFloat(t, 'g', -1, 64)}, nil
	case bool:
		return &Leaf{Value: strconv.FormatBool(t)}, nil
	case nil:
		return nil, fmt.Errorf("ast: null is not a valid tree atom")
	default:
		return nil, fmt.Errorf("ast: unsupported JSON value %T", v)
	}
}

// ToJSON encodes a tree back to the nested-array interchange form.
func ToJSON(root Node) ([]byte, error) {
	return json.Marshal(toValue(root))
}

func toValue(n Node) interface{} {
	switch t := n.(type) {
	case *Leaf:
		return t.Value
	case *Interior:
		out := make([]interface{}, len(t.Children))
		for i, c := range t.Children {
			out[i] = toValue(c)
		}
		return out
	default:
		return nil
	}
}

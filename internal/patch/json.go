package patch

import (
	"encoding/json"
	"fmt"
)

// wireOperation is the JSON form of a single operation:
//
//	{"op": "add", "path": "/todos/~", "value": {...}}
//	{"op": "move", "path": "/a", "from": "/b"}
type wireOperation struct {
	Op    OpType          `json:"op"`
	Path  *string         `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
	From  *string         `json:"from,omitempty"`
}

// Parse decodes a JSON Patch document. Nothing is executed: an unknown op or
// a malformed operation anywhere aborts decoding of the whole document.
func Parse(data []byte) (Patch, error) {
	var p Patch
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return p, nil
}

// MarshalJSON encodes p as a JSON Patch document.
func (p Patch) MarshalJSON() ([]byte, error) {
	wire := make([]wireOperation, 0, len(p))
	for i, op := range p {
		w, err := encodeOperation(op)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
		wire = append(wire, w)
	}

	return json.Marshal(wire)
}

// UnmarshalJSON decodes a JSON Patch document. Values stay undecoded as
// [RawValue] until the operation runs.
func (p *Patch) UnmarshalJSON(data []byte) error {
	var wire []wireOperation
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOperation, err)
	}

	ops := make(Patch, 0, len(wire))
	for i, w := range wire {
		op, err := w.operation()
		if err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
		ops = append(ops, op)
	}

	*p = ops
	return nil
}

func encodeOperation(op Operation) (wireOperation, error) {
	if op == nil {
		return wireOperation{}, ErrUnknownOperation
	}

	path := op.Target()
	w := wireOperation{Op: op.Op(), Path: &path}

	var err error
	switch o := op.(type) {
	case Test:
		w.Value, err = encodeValue(o.Value)
	case Add:
		w.Value, err = encodeValue(o.Value)
	case Replace:
		w.Value, err = encodeValue(o.Value)
	case Remove:
	case Move:
		w.From = &o.From
	case Copy:
		w.From = &o.From
	default:
		return wireOperation{}, fmt.Errorf("%w: %T", ErrUnknownOperation, op)
	}

	return w, err
}

func encodeValue(value any) (json.RawMessage, error) {
	switch raw := value.(type) {
	case RawValue:
		return json.RawMessage(raw.mustJSON()), nil
	case json.RawMessage:
		return RawValue(raw).mustJSON(), nil
	}

	b, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTypeMismatch, err)
	}
	return b, nil
}

func (r RawValue) mustJSON() []byte {
	b, _ := r.MarshalJSON()
	return b
}

func (w wireOperation) operation() (Operation, error) {
	if w.Path == nil {
		return nil, fmt.Errorf("%w: %q without path", ErrInvalidOperation, w.Op)
	}
	path := *w.Path

	// an explicit null keeps its bytes, only an absent member is empty
	if len(w.Value) == 0 && (w.Op == OpTest || w.Op == OpAdd || w.Op == OpReplace) {
		return nil, fmt.Errorf("%w: %s without value", ErrInvalidOperation, w.Op)
	}
	value := RawValue(w.Value)

	switch w.Op {
	case OpTest:
		return Test{Path: path, Value: value}, nil
	case OpAdd:
		return Add{Path: path, Value: value}, nil
	case OpRemove:
		return Remove{Path: path}, nil
	case OpReplace:
		return Replace{Path: path, Value: value}, nil
	case OpMove:
		if w.From == nil {
			return nil, fmt.Errorf("%w: move without from", ErrInvalidOperation)
		}
		return Move{Path: path, From: *w.From}, nil
	case OpCopy:
		if w.From == nil {
			return nil, fmt.Errorf("%w: copy without from", ErrInvalidOperation)
		}
		return Copy{Path: path, From: *w.From}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, w.Op)
}

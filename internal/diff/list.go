package diff

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/MKhiriev/go-diffsync/internal/patch"
)

// list diffs two slices hunk by hunk. Indices are emitted against the list as
// it looks once every preceding hunk has been applied, so the prefix before
// a hunk starting at j1 always equals modified[:j1].
func (d *differ) list(path string, o, m reflect.Value) error {
	matcher := difflib.NewMatcherWithJunk(keys(o), keys(m), false, nil)

	for _, hunk := range matcher.GetOpCodes() {
		switch hunk.Tag {
		case 'e':
			// equal keys may still hide fields the key does not see
			for k := 0; k < hunk.I2-hunk.I1; k++ {
				if err := d.element(path, hunk.J1+k, o.Index(hunk.I1+k), m.Index(hunk.J1+k)); err != nil {
					return err
				}
			}
		case 'r':
			if err := d.change(path, hunk, o, m); err != nil {
				return err
			}
		case 'd':
			for i := hunk.I1; i < hunk.I2; i++ {
				if err := d.removeAt(path, hunk.J1, o.Index(i)); err != nil {
					return err
				}
			}
		case 'i':
			for j := hunk.J1; j < hunk.J2; j++ {
				if err := d.insertAt(path, j, m.Index(j)); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// change pairs up replaced elements and diffs each pair in place, then
// removes the surplus originals or inserts the surplus new elements.
func (d *differ) change(path string, hunk difflib.OpCode, o, m reflect.Value) error {
	removed := hunk.I2 - hunk.I1
	added := hunk.J2 - hunk.J1
	n := min(removed, added)

	for k := 0; k < n; k++ {
		if err := d.element(path, hunk.J1+k, o.Index(hunk.I1+k), m.Index(hunk.J1+k)); err != nil {
			return err
		}
	}

	for k := n; k < removed; k++ {
		if err := d.removeAt(path, hunk.J1+n, o.Index(hunk.I1+k)); err != nil {
			return err
		}
	}

	for k := n; k < added; k++ {
		if err := d.insertAt(path, hunk.J1+k, m.Index(hunk.J1+k)); err != nil {
			return err
		}
	}

	return nil
}

func (d *differ) element(path string, i int, o, m reflect.Value) error {
	return d.graph(patch.Join(path, patch.Index(i)), o, m, true)
}

func (d *differ) removeAt(path string, i int, o reflect.Value) error {
	original, err := value(o)
	if err != nil {
		return err
	}

	at := patch.Join(path, patch.Index(i))
	d.emit(patch.Test{Path: at, Value: original}, patch.Remove{Path: at})

	return nil
}

func (d *differ) insertAt(path string, i int, m reflect.Value) error {
	modified, err := value(m)
	if err != nil {
		return err
	}

	d.emit(patch.Add{Path: patch.Join(path, patch.Index(i)), Value: modified})

	return nil
}

// keys renders every element of a list to a comparable string.
func keys(v reflect.Value) []string {
	out := make([]string, v.Len())
	for i := range out {
		out[i] = key(v.Index(i))
	}
	return out
}

func key(v reflect.Value) string {
	if b, err := json.Marshal(v.Interface()); err == nil {
		return string(b)
	}
	return fmt.Sprintf("%#v", v.Interface())
}

package sonnyjim

import (
	"fmt"
	"io"
	"strconv"
)

// DebugFormat writes a debug rendering of v (resolved through a) to w:
// objects as `{k: v, ...}`, arrays as `[v, ...]`, leaves written raw from
// their source/scratch span. It is not a re-serializer — string leaves
// are written exactly as they appeared in the source, escapes and all,
// not decoded and not re-escaped — so it is for diagnostics, not for
// producing valid JSON output. This mirrors original_source/src/fmt.rs's
// FmtValue: the one place in this package that recurses by tree depth
// rather than walking the arena's flat vectors, since a debug dump is
// read once and thrown away, not held in memory as a shared structure.
func DebugFormat(a *Arena, v Value, w io.Writer) error {
	return debugFormat(a, v, w)
}

func debugFormat(a *Arena, v Value, w io.Writer) error {
	switch v.Kind.Tag {
	case TagLeaf:
		return debugFormatLeaf(a, v, w)
	case TagObject:
		return debugFormatObject(a, v, w)
	case TagArray:
		return debugFormatArray(a, v, w)
	default:
		return fmt.Errorf("sonnyjim: unknown value tag %d", v.Kind.Tag)
	}
}

func debugFormatLeaf(a *Arena, v Value, w io.Writer) error {
	switch v.Kind.Leaf.Kind {
	case LeafNull:
		_, err := io.WriteString(w, "null")
		return err
	case LeafBool:
		_, err := io.WriteString(w, strconv.FormatBool(v.Kind.Leaf.Bool))
		return err
	case LeafNumber, LeafString:
		_, err := io.WriteString(w, a.Text(v))
		return err
	default:
		return fmt.Errorf("sonnyjim: unknown leaf kind %d", v.Kind.Leaf.Kind)
	}
}

func debugFormatObject(a *Arena, v Value, w io.Writer) error {
	if _, err := io.WriteString(w, "{"); err != nil {
		return err
	}
	keys := a.KeysIn(v.Kind.Keys)
	values := a.ValuesIn(v.Kind.Values)
	for i, k := range keys {
		if i > 0 {
			if _, err := io.WriteString(w, ", "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%q: ", a.Resolve(k)); err != nil {
			return err
		}
		if err := debugFormat(a, values[i], w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}")
	return err
}

func debugFormatArray(a *Arena, v Value, w io.Writer) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	values := a.ValuesIn(v.Kind.Values)
	for i, child := range values {
		if i > 0 {
			if _, err := io.WriteString(w, ", "); err != nil {
				return err
			}
		}
		if err := debugFormat(a, child, w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]")
	return err
}

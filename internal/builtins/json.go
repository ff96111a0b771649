package builtins

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/golisp/internal/runtime"
)

// RegisterJSON registers json-encode and json-decode, the domain-stack
// bridge to the host's JSON ecosystem. Encoding walks the value tree and
// assembles JSON text incrementally with sjson; decoding parses with
// gjson and walks the resulting tree back into values. Nil maps to
// null, Bool/Int/Str map directly, Kw and Sym encode as their bare name
// string (decode never reconstructs a Kw or Sym), List and Vec both
// encode as a JSON array (decode always produces a Vec), and Map
// encodes as a JSON object with stringified keys. Atom and Fn cannot be
// encoded.
func RegisterJSON(r *Registry) {
	r.Register("json-encode", jsonEncode, CategoryJSON, "Encode a value as a JSON string.")
	r.Register("json-decode", jsonDecode, CategoryJSON, "Parse a JSON string into a value.")
}

func jsonEncode(args []runtime.Value) (runtime.Value, error) {
	if err := arity("json-encode", args, 1); err != nil {
		return nil, err
	}
	raw, err := encodeJSON(args[0])
	if err != nil {
		return nil, err
	}
	return runtime.NewStr(raw), nil
}

func encodeJSON(v runtime.Value) (string, error) {
	switch t := v.(type) {
	case *runtime.Nil:
		return "null", nil
	case *runtime.Bool:
		return strconv.FormatBool(t.Val), nil
	case *runtime.Int:
		return strconv.FormatInt(t.Val, 10), nil
	case *runtime.Str:
		return strconv.Quote(t.Val), nil
	case *runtime.Sym:
		return strconv.Quote(t.Name), nil
	case *runtime.Kw:
		return strconv.Quote(t.Name), nil
	case *runtime.List:
		return encodeJSONArray(t.Items)
	case *runtime.Vec:
		return encodeJSONArray(t.Items)
	case *runtime.Map:
		return encodeJSONObject(t)
	default:
		return "", runtime.NewDomainError("json-encode: value of type %s is not encodable", v.Type())
	}
}

func encodeJSONArray(items []runtime.Value) (string, error) {
	doc := []byte("[]")
	for i, item := range items {
		raw, err := encodeJSON(item)
		if err != nil {
			return "", err
		}
		doc, err = sjson.SetRawBytes(doc, strconv.Itoa(i), []byte(raw))
		if err != nil {
			return "", runtime.NewDomainError("json-encode: %s", err)
		}
	}
	return string(doc), nil
}

func encodeJSONObject(m *runtime.Map) (string, error) {
	doc := []byte("{}")
	var outerErr error
	m.Range(func(k, v runtime.Value) bool {
		raw, err := encodeJSON(v)
		if err != nil {
			outerErr = err
			return false
		}
		doc, err = sjson.SetRawBytes(doc, jsonKeyString(k), []byte(raw))
		if err != nil {
			outerErr = runtime.NewDomainError("json-encode: %s", err)
			return false
		}
		return true
	})
	if outerErr != nil {
		return "", outerErr
	}
	return string(doc), nil
}

func jsonKeyString(k runtime.Value) string {
	switch t := k.(type) {
	case *runtime.Str:
		return t.Val
	case *runtime.Kw:
		return t.Name
	case *runtime.Sym:
		return t.Name
	default:
		return k.String()
	}
}

func jsonDecode(args []runtime.Value) (runtime.Value, error) {
	if err := arity("json-decode", args, 1); err != nil {
		return nil, err
	}
	s, err := asStr("json-decode", args[0])
	if err != nil {
		return nil, err
	}
	if !gjson.Valid(s) {
		return nil, runtime.NewDomainError("json-decode: invalid JSON")
	}
	return decodeJSON(gjson.Parse(s)), nil
}

func decodeJSON(r gjson.Result) runtime.Value {
	switch r.Type {
	case gjson.Null:
		return runtime.NilValue
	case gjson.True:
		return runtime.BoolTrue
	case gjson.False:
		return runtime.BoolFalse
	case gjson.Number:
		return runtime.NewInt(r.Int())
	case gjson.String:
		return runtime.NewStr(r.String())
	case gjson.JSON:
		if r.IsArray() {
			var items []runtime.Value
			r.ForEach(func(_, v gjson.Result) bool {
				items = append(items, decodeJSON(v))
				return true
			})
			return runtime.NewVec(items...)
		}
		m := runtime.NewMap()
		r.ForEach(func(k, v gjson.Result) bool {
			m.Set(runtime.NewStr(k.String()), decodeJSON(v))
			return true
		})
		return m
	default:
		return runtime.NilValue
	}
}

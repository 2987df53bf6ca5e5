package contract

// ValueKind tags the variant held by a Value.
type ValueKind string

const (
	ValueText  ValueKind = "text"
	ValueInt   ValueKind = "int"
	ValueFloat ValueKind = "float"
)

// Value is a tagged-variant tool argument. The interpreter produces values with
// permissive coercion (numeric-looking text becomes a number, everything else
// stays text); tools consume them positionally.
type Value struct {
	Kind  ValueKind `json:"kind"`
	Text  string    `json:"text,omitempty"`
	Int   int64     `json:"int,omitempty"`
	Float float64   `json:"float,omitempty"`
}

func TextValue(s string) Value {
	return Value{Kind: ValueText, Text: s}
}

func IntValue(n int64) Value {
	return Value{Kind: ValueInt, Int: n}
}

func FloatValue(f float64) Value {
	return Value{Kind: ValueFloat, Float: f}
}

// AsText returns the textual form of the value.
func (v Value) AsText() (string, bool) {
	return v.Text, v.Kind == ValueText
}

// AsInt returns an integer when the value is numeric. Floats are truncated.
func (v Value) AsInt() (int64, bool) {
	switch v.Kind {
	case ValueInt:
		return v.Int, true
	case ValueFloat:
		return int64(v.Float), true
	default:
		return 0, false
	}
}

// AsFloat returns a float when the value is numeric.
func (v Value) AsFloat() (float64, bool) {
	switch v.Kind {
	case ValueFloat:
		return v.Float, true
	case ValueInt:
		return float64(v.Int), true
	default:
		return 0, false
	}
}

// ToolInvocation is a parsed (name, args) pair extracted from model output,
// not yet executed.
type ToolInvocation struct {
	Name string  `json:"name"`
	Args []Value `json:"args,omitempty"`
}

// ToolResult is the uniform envelope every tool execution produces.
type ToolResult struct {
	Tool    string `json:"tool"`
	Success bool   `json:"success"`
	Result  any    `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

package evaluator

import (
	"math"
	"math/big"
	"strconv"

	"github.com/dlclark/regexp2"

	"github.com/kdy1/go-jsonc-eslint-parser/internal/ast"
	"github.com/kdy1/go-jsonc-eslint-parser/internal/perror"
)

// Undefined is the runtime value "undefined" decodes to — Go has no
// native counterpart, and it must stay distinguishable from JSON null
// (which decodes to untyped nil).
type Undefined struct{}

// Hole marks a sparse array's elided index, distinguishable from an
// explicit JSON null at the same position.
type Hole struct{}

// OrderedObject is a JSONObjectExpression's materialized value. A plain
// Go map does not preserve insertion order, so Keys tracks it
// separately. A later duplicate key overwrites the earlier value in
// Values and keeps its first-seen position in Keys — duplicates are
// accepted, not rejected.
type OrderedObject struct {
	Keys   []string
	Values map[string]any
}

// Get returns the value stored at key and whether it was present.
func (o *OrderedObject) Get(key string) (any, bool) {
	v, ok := o.Values[key]
	return v, ok
}

func newOrderedObject() *OrderedObject {
	return &OrderedObject{Values: make(map[string]any)}
}

func (o *OrderedObject) set(key string, value any) {
	if _, exists := o.Values[key]; !exists {
		o.Keys = append(o.Keys, key)
	}
	o.Values[key] = value
}

// GetStaticJSONValue materializes node into a runtime value, dispatching
// by concrete node kind. It never mutates node.
func GetStaticJSONValue(node ast.Node) (any, *perror.ParseError) {
	switch n := node.(type) {
	case *ast.JSONProgram:
		if len(n.Body) != 1 {
			return nil, errAt(n, "program does not wrap exactly one statement")
		}
		return GetStaticJSONValue(n.Body[0])
	case *ast.JSONExpressionStatement:
		return GetStaticJSONValue(n.Expression)
	case *ast.JSONObjectExpression:
		return evalObject(n)
	case *ast.JSONProperty:
		return evalProperty(n)
	case *ast.JSONArrayExpression:
		return evalArray(n)
	case *ast.JSONLiteral:
		return evalLiteral(n), nil
	case *ast.JSONUnaryExpression:
		return evalUnary(n)
	case *ast.JSONBinaryExpression:
		return evalBinary(n)
	case *ast.JSONTemplateLiteral:
		return evalTemplate(n)
	case *ast.JSONIdentifier:
		return evalIdentifier(n)
	default:
		return nil, errAt(node, "unsupported node kind for static evaluation")
	}
}

func evalObject(n *ast.JSONObjectExpression) (*OrderedObject, *perror.ParseError) {
	obj := newOrderedObject()
	for _, prop := range n.Properties {
		key, value, err := evalPropertyPair(prop)
		if err != nil {
			return nil, err
		}
		obj.set(key, value)
	}
	return obj, nil
}

// evalProperty handles a direct GetStaticJSONValue(property) call,
// yielding a single-entry object rather than a bare key/value pair.
func evalProperty(prop *ast.JSONProperty) (*OrderedObject, *perror.ParseError) {
	key, value, err := evalPropertyPair(prop)
	if err != nil {
		return nil, err
	}
	obj := newOrderedObject()
	obj.set(key, value)
	return obj, nil
}

func evalPropertyPair(prop *ast.JSONProperty) (string, any, *perror.ParseError) {
	key, err := propertyKeyName(prop.Key)
	if err != nil {
		return "", nil, err
	}
	value, err := GetStaticJSONValue(prop.Value)
	if err != nil {
		return "", nil, err
	}
	return key, value, nil
}

func propertyKeyName(key ast.Node) (string, *perror.ParseError) {
	switch k := key.(type) {
	case *ast.JSONIdentifier:
		return k.Name, nil
	case *ast.JSONLiteral:
		switch v := k.Value.(type) {
		case string:
			return v, nil
		case float64:
			return strconv.FormatFloat(v, 'g', -1, 64), nil
		}
	}
	return "", errAt(key, "property key is not a string, number, or identifier")
}

func evalArray(n *ast.JSONArrayExpression) ([]any, *perror.ParseError) {
	out := make([]any, len(n.Elements))
	for i, el := range n.Elements {
		if el == nil {
			out[i] = Hole{}
			continue
		}
		v, err := GetStaticJSONValue(el)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func evalLiteral(n *ast.JSONLiteral) any {
	switch n.Kind {
	case ast.LiteralRegExp:
		return evalRegExp(n)
	case ast.LiteralBigInt:
		return evalBigInt(n)
	default:
		return n.Value
	}
}

// evalRegExp attempts to construct a regex, falling back to the literal
// pattern/flags text on unsupported flags.
func evalRegExp(n *ast.JSONLiteral) any {
	opts, ok := regexpFlags(n.Regex.Flags)
	if ok {
		if re, err := regexp2.Compile(n.Regex.Pattern, opts); err == nil {
			return re
		}
	}
	return "/" + n.Regex.Pattern + "/" + n.Regex.Flags
}

func regexpFlags(flags string) (regexp2.RegexOptions, bool) {
	opts := regexp2.None
	for _, f := range flags {
		switch f {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		case 'x':
			opts |= regexp2.IgnorePatternWhitespace
		case 'g', 'y', 'u':
			// matching-mode flags with no regexp2 compile-time analogue;
			// tolerated rather than rejected.
		default:
			return 0, false
		}
	}
	return opts, true
}

// evalBigInt attempts to construct an arbitrary-precision integer,
// falling back to the raw digit text on failure.
func evalBigInt(n *ast.JSONLiteral) any {
	v, ok := new(big.Int).SetString(n.BigIntText, 10)
	if !ok {
		return n.BigIntText
	}
	return v
}

func evalUnary(n *ast.JSONUnaryExpression) (any, *perror.ParseError) {
	argVal, err := GetStaticJSONValue(n.Argument)
	if err != nil {
		return nil, err
	}
	v, ok := toFloat(argVal)
	if !ok {
		return nil, errAt(n.Argument, "unary operand is not numeric")
	}
	switch n.Operator {
	case "-":
		return -v, nil
	case "+":
		return v, nil
	default:
		return nil, errAt(n, "unknown unary operator "+n.Operator)
	}
}

func evalBinary(n *ast.JSONBinaryExpression) (any, *perror.ParseError) {
	leftVal, err := GetStaticJSONValue(n.Left)
	if err != nil {
		return nil, err
	}
	rightVal, err := GetStaticJSONValue(n.Right)
	if err != nil {
		return nil, err
	}
	l, ok := toFloat(leftVal)
	if !ok {
		return nil, errAt(n.Left, "binary operand is not numeric")
	}
	r, ok := toFloat(rightVal)
	if !ok {
		return nil, errAt(n.Right, "binary operand is not numeric")
	}
	switch n.Operator {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		return l / r, nil // IEEE-754: division by zero yields +/-Inf or NaN
	case "%":
		return math.Mod(l, r), nil
	case "**":
		return math.Pow(l, r), nil
	default:
		return nil, errAt(n, "unknown binary operator "+n.Operator)
	}
}

func evalTemplate(n *ast.JSONTemplateLiteral) (any, *perror.ParseError) {
	if len(n.Quasis) != 1 {
		return nil, errAt(n, "template literal must have exactly one quasi")
	}
	return n.Quasis[0].Cooked, nil
}

func evalIdentifier(n *ast.JSONIdentifier) (any, *perror.ParseError) {
	switch n.Name {
	case "Infinity":
		return math.Inf(1), nil
	case "NaN":
		return math.NaN(), nil
	case "undefined":
		return Undefined{}, nil
	default:
		return nil, errAt(n, "unknown identifier "+n.Name)
	}
}

func toFloat(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

func errAt(node ast.Node, message string) *perror.ParseError {
	line, col := 0, 0
	if loc := node.SourceLoc(); loc != nil {
		line, col = loc.Start.Line, loc.Start.Column
	}
	return perror.At(perror.IllegalArgument, message, line, col, node.Pos())
}

package evaluator

import (
	"math"
	"math/big"
	"testing"

	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdy1/go-jsonc-eslint-parser/internal/ast"
)

func numberLit(v float64) *ast.JSONLiteral {
	return &ast.JSONLiteral{Kind: ast.LiteralNumber, Value: v}
}

func stringLit(v string) *ast.JSONLiteral {
	return &ast.JSONLiteral{Kind: ast.LiteralString, Value: v}
}

func TestGetStaticJSONValueObject(t *testing.T) {
	prop := &ast.JSONProperty{
		Key:   &ast.JSONIdentifier{Name: "a", IsExpression: false},
		Value: numberLit(1),
		Kind:  "init",
	}
	obj := &ast.JSONObjectExpression{Properties: []*ast.JSONProperty{prop}}

	v, perr := GetStaticJSONValue(obj)
	require.Nil(t, perr)

	oo, ok := v.(*OrderedObject)
	require.True(t, ok)
	val, present := oo.Get("a")
	require.True(t, present)
	assert.Equal(t, float64(1), val)
}

func TestDuplicateKeysLastWriteWins(t *testing.T) {
	obj := &ast.JSONObjectExpression{Properties: []*ast.JSONProperty{
		{Key: stringLit("a"), Value: numberLit(1), Kind: "init"},
		{Key: stringLit("a"), Value: numberLit(2), Kind: "init"},
	}}

	v, perr := GetStaticJSONValue(obj)
	require.Nil(t, perr)

	oo := v.(*OrderedObject)
	assert.Equal(t, []string{"a"}, oo.Keys, "a duplicate key must not appear twice in insertion order")
	val, _ := oo.Get("a")
	assert.Equal(t, float64(2), val, "the later value must win")
}

func TestArrayWithHoles(t *testing.T) {
	arr := &ast.JSONArrayExpression{Elements: []ast.Node{numberLit(1), nil, numberLit(3)}}

	v, perr := GetStaticJSONValue(arr)
	require.Nil(t, perr)

	out := v.([]any)
	require.Len(t, out, 3)
	assert.Equal(t, float64(1), out[0])
	assert.Equal(t, Hole{}, out[1])
	assert.Equal(t, float64(3), out[2])
}

func TestUndefinedIdentifier(t *testing.T) {
	v, perr := GetStaticJSONValue(&ast.JSONIdentifier{Name: "undefined"})
	require.Nil(t, perr)
	assert.Equal(t, Undefined{}, v)
}

func TestBinaryExpressionDivisionByZero(t *testing.T) {
	bin := &ast.JSONBinaryExpression{Operator: "/", Left: numberLit(1), Right: numberLit(0)}
	v, perr := GetStaticJSONValue(bin)
	require.Nil(t, perr)
	assert.True(t, math.IsInf(v.(float64), 1))
}

func TestBinaryExpressionZeroOverZeroIsNaN(t *testing.T) {
	bin := &ast.JSONBinaryExpression{Operator: "/", Left: numberLit(0), Right: numberLit(0)}
	v, perr := GetStaticJSONValue(bin)
	require.Nil(t, perr)
	assert.True(t, math.IsNaN(v.(float64)))
}

func TestBinaryExpressionArithmetic(t *testing.T) {
	tests := []struct {
		op   string
		l, r float64
		want float64
	}{
		{"+", 1, 2, 3},
		{"-", 5, 3, 2},
		{"*", 4, 2, 8},
		{"%", 7, 3, 1},
		{"**", 2, 10, 1024},
	}
	for _, tt := range tests {
		bin := &ast.JSONBinaryExpression{Operator: tt.op, Left: numberLit(tt.l), Right: numberLit(tt.r)}
		v, perr := GetStaticJSONValue(bin)
		require.Nil(t, perr)
		assert.Equal(t, tt.want, v)
	}
}

func TestUnaryExpression(t *testing.T) {
	neg := &ast.JSONUnaryExpression{Operator: "-", Argument: numberLit(5)}
	v, perr := GetStaticJSONValue(neg)
	require.Nil(t, perr)
	assert.Equal(t, float64(-5), v)

	pos := &ast.JSONUnaryExpression{Operator: "+", Argument: numberLit(5)}
	v, perr = GetStaticJSONValue(pos)
	require.Nil(t, perr)
	assert.Equal(t, float64(5), v)
}

func TestBigIntFallbackAndSuccess(t *testing.T) {
	big1 := &ast.JSONLiteral{Kind: ast.LiteralBigInt, BigIntText: "12345678901234567890"}
	v := evalLiteral(big1)
	bi, ok := v.(*big.Int)
	require.True(t, ok)
	assert.Equal(t, "12345678901234567890", bi.String())

	bad := &ast.JSONLiteral{Kind: ast.LiteralBigInt, BigIntText: "not-a-number"}
	v2 := evalLiteral(bad)
	assert.Equal(t, "not-a-number", v2)
}

func TestRegExpFallbackOnUnsupportedFlag(t *testing.T) {
	lit := &ast.JSONLiteral{Kind: ast.LiteralRegExp, Regex: &ast.RegExpValue{Pattern: "abc", Flags: "z"}}
	v := evalLiteral(lit)
	assert.Equal(t, "/abc/z", v)
}

func TestRegExpCompilesWithSupportedFlags(t *testing.T) {
	lit := &ast.JSONLiteral{Kind: ast.LiteralRegExp, Regex: &ast.RegExpValue{Pattern: "a+", Flags: "i"}}
	v := evalLiteral(lit)
	re, ok := v.(*regexp2.Regexp)
	require.True(t, ok)
	matched, err := re.MatchString("AAA")
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestTemplateLiteralCooked(t *testing.T) {
	quasi := &ast.JSONTemplateElement{Tail: true, Cooked: "hi\nthere"}
	tmpl := &ast.JSONTemplateLiteral{Quasis: []*ast.JSONTemplateElement{quasi}}
	v, perr := GetStaticJSONValue(tmpl)
	require.Nil(t, perr)
	assert.Equal(t, "hi\nthere", v)
}

func TestIllegalArgumentOnUnsupportedNode(t *testing.T) {
	_, perr := GetStaticJSONValue(&ast.JSONTemplateElement{})
	require.NotNil(t, perr)
}

func TestNumericPropertyKeyIsFormatted(t *testing.T) {
	prop := &ast.JSONProperty{Key: numberLit(1.5), Value: stringLit("v"), Kind: "init"}
	v, perr := GetStaticJSONValue(prop)
	require.Nil(t, perr)
	oo := v.(*OrderedObject)
	val, present := oo.Get("1.5")
	require.True(t, present)
	assert.Equal(t, "v", val)
}

package ast

import "testing"

// buildSample constructs {"a": [1, -2]} by hand, assembling the tree
// from struct literals rather than parsing source.
func buildSample() *JSONProgram {
	key := &JSONIdentifier{Name: "a", IsExpression: false}
	one := &JSONLiteral{Kind: LiteralNumber, Value: float64(1)}
	two := &JSONLiteral{Kind: LiteralNumber, Value: float64(2)}
	neg := &JSONUnaryExpression{Operator: "-", Argument: two}
	arr := &JSONArrayExpression{Elements: []Node{one, neg}}
	prop := &JSONProperty{Key: key, Value: arr, Kind: "init"}
	obj := &JSONObjectExpression{Properties: []*JSONProperty{prop}}
	stmt := &JSONExpressionStatement{Expression: obj}
	return &JSONProgram{Body: []*JSONExpressionStatement{stmt}}
}

func TestWalkVisitsEveryNode(t *testing.T) {
	prog := buildSample()

	count := 0
	Walk(prog, VisitorFunc(func(n Node) bool {
		count++
		return true
	}))

	// program, statement, object, property, identifier, array, literal, unary, literal
	if count != 9 {
		t.Fatalf("Walk visited %d nodes, want 9", count)
	}
}

func TestWalkStopsAtFalse(t *testing.T) {
	prog := buildSample()

	visited := 0
	Walk(prog, VisitorFunc(func(n Node) bool {
		visited++
		return false
	}))

	if visited != 1 {
		t.Errorf("Walk visited %d nodes after a false return, want 1", visited)
	}
}

func TestWalkSkipsArrayHoles(t *testing.T) {
	one := &JSONLiteral{Kind: LiteralNumber, Value: float64(1)}
	arr := &JSONArrayExpression{Elements: []Node{one, nil, one}}

	visited := 0
	Walk(arr, VisitorFunc(func(n Node) bool {
		visited++
		return true
	}))

	if visited != 3 {
		t.Errorf("Walk visited %d nodes over a sparse array, want 3 (array + two literals)", visited)
	}
}

func TestChildren(t *testing.T) {
	key := &JSONIdentifier{Name: "a", IsExpression: false}
	val := &JSONLiteral{Kind: LiteralNumber, Value: float64(1)}
	prop := &JSONProperty{Key: key, Value: val, Kind: "init"}

	kids := Children(prop)
	if len(kids) != 2 {
		t.Fatalf("Children(prop) = %d nodes, want 2", len(kids))
	}
	if kids[0] != Node(key) || kids[1] != Node(val) {
		t.Errorf("Children(prop) returned nodes out of order")
	}
}

package ast

// VisitorKeys maps each non-leaf JSON-family node kind to the ordered list
// of its child-bearing field names, used by tree walkers. Every kind
// appears exactly once.
var VisitorKeys = map[string][]string{
	"JSONProgram":             {"body"},
	"JSONExpressionStatement": {"expression"},

	"JSONIdentifier": {},
	"JSONLiteral":    {},

	"JSONObjectExpression": {"properties"},
	"JSONProperty":         {"key", "value"},
	"JSONArrayExpression":  {"elements"},

	"JSONUnaryExpression":  {"argument"},
	"JSONBinaryExpression": {"left", "right"},

	"JSONTemplateLiteral": {"quasis"},
	"JSONTemplateElement": {},
}

// GetVisitorKeys returns the child-field names for a node kind: an empty
// slice for a leaf kind, or nil if the kind is unknown.
func GetVisitorKeys(nodeType string) []string {
	return VisitorKeys[nodeType]
}

package engine

import (
	"cmp"
	"fmt"
	"strings"

	"go.einride.tech/aip/filtering"
	"go.einride.tech/aip/ordering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// FieldType describes a supported filter field type.
type FieldType string

// Field types
const (
	FieldString FieldType = "string"
	FieldInt    FieldType = "int"
	FieldBool   FieldType = "bool"
)

// Fields defines filterable fields and their types.
type Fields map[string]FieldType

// Resolver returns a value for a field name.
type Resolver func(name string) (any, bool)

// ParseFilter parses an AIP-160 filter expression over fields.
// A blank filter returns nil.
func ParseFilter(filter string, fields Fields) (*expr.Expr, error) {
	if strings.TrimSpace(filter) == "" {
		return nil, nil
	}

	decls, err := declarations(fields)
	if err != nil {
		return nil, err
	}

	parsed, err := filtering.ParseFilterString(filter, decls)
	if err != nil {
		return nil, fmt.Errorf("parse filter: %w", err)
	}

	return parsed.CheckedExpr.GetExpr(), nil
}

func declarations(fields Fields) (*filtering.Declarations, error) {
	// the parser reads true and false as bare identifiers
	decls := []filtering.DeclarationOption{
		filtering.DeclareStandardFunctions(),
		filtering.DeclareIdent("true", filtering.TypeBool),
		filtering.DeclareIdent("false", filtering.TypeBool),
	}
	for name, kind := range fields {
		switch kind {
		case FieldString:
			decls = append(decls, filtering.DeclareIdent(name, filtering.TypeString))
		case FieldInt:
			decls = append(decls, filtering.DeclareIdent(name, filtering.TypeInt))
		case FieldBool:
			decls = append(decls, filtering.DeclareIdent(name, filtering.TypeBool))
		default:
			return nil, fmt.Errorf("unsupported field type for %s", name)
		}
	}

	return filtering.NewDeclarations(decls...)
}

type orderByRequest string

func (o orderByRequest) GetOrderBy() string { return string(o) }

// ParseOrderBy parses an AIP-132 order_by clause into sort keys.
// Each path must be a key of allowed, whose value supplies rank and numeric hints.
func ParseOrderBy(orderBy string, allowed map[string]SortKey) ([]SortKey, error) {
	if strings.TrimSpace(orderBy) == "" {
		return nil, nil
	}

	parsed, err := ordering.ParseOrderBy(orderByRequest(orderBy))
	if err != nil {
		return nil, fmt.Errorf("parse order_by: %w", err)
	}

	keys := make([]SortKey, 0, len(parsed.Fields))
	for _, field := range parsed.Fields {
		key, ok := allowed[field.Path]
		if !ok {
			return nil, fmt.Errorf("unsupported order_by field: %s", field.Path)
		}
		key.Field = field.Path
		key.Desc = field.Desc
		keys = append(keys, key)
	}
	return keys, nil
}

// comparisons maps each comparison function to the ordering results it accepts
var comparisons = map[string]func(c int) bool{
	filtering.FunctionEquals:        func(c int) bool { return c == 0 },
	filtering.FunctionNotEquals:     func(c int) bool { return c != 0 },
	filtering.FunctionLessThan:      func(c int) bool { return c < 0 },
	filtering.FunctionLessEquals:    func(c int) bool { return c <= 0 },
	filtering.FunctionGreaterThan:   func(c int) bool { return c > 0 },
	filtering.FunctionGreaterEquals: func(c int) bool { return c >= 0 },
}

// Evaluate reports whether the record behind resolve satisfies e.
// A nil expression matches everything.
func Evaluate(e *expr.Expr, resolve Resolver) (bool, error) {
	if e == nil {
		return true, nil
	}

	call := e.GetCallExpr()
	if call == nil {
		return false, fmt.Errorf("unsupported expression type: %T", e.GetExprKind())
	}
	args := call.GetArgs()

	switch fn := call.GetFunction(); fn {
	case filtering.FunctionAnd, filtering.FunctionOr:
		if len(args) != 2 {
			return false, fmt.Errorf("%s requires 2 arguments", fn)
		}
		left, err := Evaluate(args[0], resolve)
		if err != nil {
			return false, err
		}
		// AND settles on false, OR on true
		if left == (fn == filtering.FunctionOr) {
			return left, nil
		}
		return Evaluate(args[1], resolve)

	case filtering.FunctionNot:
		if len(args) != 1 {
			return false, fmt.Errorf("NOT requires 1 argument")
		}
		inner, err := Evaluate(args[0], resolve)
		if err != nil {
			return false, err
		}
		return !inner, nil

	case filtering.FunctionHas:
		field, lit, err := resolveOperands(args, resolve)
		if err != nil {
			return false, err
		}
		// name:"x" is a case-insensitive substring match
		text, ok := field.(string)
		needle, ok2 := lit.(string)
		if !ok || !ok2 {
			return false, fmt.Errorf("has requires string operands")
		}
		return strings.Contains(strings.ToLower(text), strings.ToLower(needle)), nil

	default:
		holds, ok := comparisons[fn]
		if !ok {
			return false, fmt.Errorf("unsupported function: %s", fn)
		}
		field, lit, err := resolveOperands(args, resolve)
		if err != nil {
			return false, err
		}
		c, err := order(field, lit)
		if err != nil {
			return false, err
		}
		return holds(c), nil
	}
}

// resolveOperands reads the field named by the left argument and the literal on the right
func resolveOperands(args []*expr.Expr, resolve Resolver) (any, any, error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("comparison requires 2 arguments")
	}

	name := args[0].GetIdentExpr().GetName()
	if name == "" {
		return nil, nil, fmt.Errorf("left operand must be a field")
	}
	field, ok := resolve(name)
	if !ok {
		return nil, nil, fmt.Errorf("unknown field: %s", name)
	}

	lit, err := literal(args[1])
	if err != nil {
		return nil, nil, err
	}
	return field, lit, nil
}

// literal returns the value of a string, int or bool constant.
// true and false arrive as identifiers.
func literal(e *expr.Expr) (any, error) {
	if c := e.GetConstExpr(); c != nil {
		switch v := c.GetConstantKind().(type) {
		case *expr.Constant_StringValue:
			return v.StringValue, nil
		case *expr.Constant_Int64Value:
			return v.Int64Value, nil
		case *expr.Constant_BoolValue:
			return v.BoolValue, nil
		}
		return nil, fmt.Errorf("unsupported literal type: %T", c.GetConstantKind())
	}

	switch name := e.GetIdentExpr().GetName(); name {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return nil, fmt.Errorf("right operand must be a literal")
}

// order compares a field value with a literal of the same type
func order(field, lit any) (int, error) {
	switch f := field.(type) {
	case string:
		if l, ok := lit.(string); ok {
			return cmp.Compare(f, l), nil
		}
	case int64:
		if l, ok := lit.(int64); ok {
			return cmp.Compare(f, l), nil
		}
	case bool:
		// bools only have = and !=
		if l, ok := lit.(bool); ok {
			if f == l {
				return 0, nil
			}
			return 1, nil
		}
	}
	return 0, fmt.Errorf("cannot compare %T with %T", field, lit)
}

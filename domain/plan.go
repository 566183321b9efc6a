package domain

import (
	"fmt"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"github.com/expr-lang/expr/vm"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/featuremesh/featuremesh-go-sdk/frame"
)

const planVersion = 1

// PlanExpr is one output column of a plan: the column name and the
// expression computing it.
type PlanExpr struct {
	Name string
	Expr string
}

// Plan is a compiled set of named row expressions. It is the serializable
// form of a relational transformation: each output expression is evaluated
// per input row against the reconciled row batch.
type Plan struct {
	Outputs []PlanExpr

	programs []*vm.Program
}

// NewPlan validates every output expression against the input schema and
// compiles it. The env carries one sample value per input column, so
// operator type errors surface at definition time.
func NewPlan(outputs []PlanExpr, env map[string]interface{}) (*Plan, error) {
	p := &Plan{Outputs: outputs}
	for _, o := range outputs {
		variables, err := ExtractVariables(o.Expr)
		if err != nil {
			return nil, err
		}
		for _, v := range variables {
			if _, ok := env[v]; !ok {
				return nil, fmt.Errorf("variable :%s of plan output %s not found in the source fields", v, o.Name)
			}
		}
		program, err := expr.Compile(o.Expr, expr.Env(env), expr.AllowUndefinedVariables())
		if err != nil {
			return nil, fmt.Errorf("failed to compile plan output %s: %w", o.Name, err)
		}
		p.programs = append(p.programs, program)
	}
	return p, nil
}

// compile prepares programs for plans restored from bytes. Without an input
// schema the expressions compile in dynamic mode; unknown variables surface
// at evaluation time.
func (p *Plan) compile() error {
	if len(p.programs) == len(p.Outputs) {
		return nil
	}
	p.programs = p.programs[:0]
	for _, o := range p.Outputs {
		program, err := expr.Compile(o.Expr)
		if err != nil {
			return fmt.Errorf("failed to compile plan output %s: %w", o.Name, err)
		}
		p.programs = append(p.programs, program)
	}
	return nil
}

// Evaluate runs every output expression against each row of the input and
// returns a frame holding exactly the plan's output columns.
func (p *Plan) Evaluate(f *frame.Frame) (*frame.Frame, error) {
	if err := p.compile(); err != nil {
		return nil, err
	}

	columns := make([][]interface{}, len(p.Outputs))
	for i := range columns {
		columns[i] = make([]interface{}, 0, f.Len())
	}
	for i := 0; i < f.Len(); i++ {
		env := f.Row(i)
		for j, program := range p.programs {
			value, err := expr.Run(program, env)
			if err != nil {
				return nil, fmt.Errorf("failed to evaluate plan output %s: %w", p.Outputs[j].Name, err)
			}
			columns[j] = append(columns[j], value)
		}
	}

	out := frame.New()
	for j, o := range p.Outputs {
		if err := out.AddColumn(o.Name, columns[j]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Variables returns the sorted set of input columns the plan references.
func (p *Plan) Variables() ([]string, error) {
	seen := make(map[string]struct{})
	for _, o := range p.Outputs {
		variables, err := ExtractVariables(o.Expr)
		if err != nil {
			return nil, err
		}
		for _, v := range variables {
			seen[v] = struct{}{}
		}
	}
	result := make([]string, 0, len(seen))
	for v := range seen {
		result = append(result, v)
	}
	sort.Strings(result)
	return result, nil
}

// Marshal serializes the plan deterministically, so equal plans yield equal
// bytes and byte equality decides transformation equality.
func (p *Plan) Marshal() ([]byte, error) {
	outputs := make([]interface{}, 0, len(p.Outputs))
	for _, o := range p.Outputs {
		outputs = append(outputs, map[string]interface{}{
			"name": o.Name,
			"expr": o.Expr,
		})
	}
	s, err := structpb.NewStruct(map[string]interface{}{
		"version": planVersion,
		"outputs": outputs,
	})
	if err != nil {
		return nil, err
	}
	return proto.MarshalOptions{Deterministic: true}.Marshal(s)
}

func UnmarshalPlan(data []byte) (*Plan, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse plan bytes: %w", err)
	}

	outputsValue, ok := s.Fields["outputs"]
	if !ok || outputsValue.GetListValue() == nil {
		return nil, fmt.Errorf("plan has no outputs")
	}

	p := &Plan{}
	for _, item := range outputsValue.GetListValue().Values {
		entry := item.GetStructValue()
		if entry == nil {
			return nil, fmt.Errorf("invalid plan output entry")
		}
		p.Outputs = append(p.Outputs, PlanExpr{
			Name: entry.Fields["name"].GetStringValue(),
			Expr: entry.Fields["expr"].GetStringValue(),
		})
	}
	return p, nil
}

// ExtractVariables parses an expression and collects the variable names it
// references.
func ExtractVariables(code string) ([]string, error) {
	tree, err := parser.Parse(code)
	if err != nil {
		return nil, fmt.Errorf("failed to parse expression: %w", err)
	}

	variables := make(map[string]struct{})
	walk(tree.Node, variables)

	var result []string
	for v := range variables {
		result = append(result, v)
	}

	sort.Strings(result)

	return result, nil
}

func walk(node ast.Node, variables map[string]struct{}) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *ast.IdentifierNode:
		variables[n.Value] = struct{}{}

	case *ast.BinaryNode:
		walk(n.Left, variables)
		walk(n.Right, variables)

	case *ast.UnaryNode:
		walk(n.Node, variables)

	case *ast.MemberNode:
		walk(n.Node, variables)

	case *ast.CallNode:
		// callee identifiers are function names, not input columns
		for _, arg := range n.Arguments {
			walk(arg, variables)
		}
		if _, ok := n.Callee.(*ast.IdentifierNode); !ok {
			walk(n.Callee, variables)
		}

	case *ast.BuiltinNode:
		for _, arg := range n.Arguments {
			walk(arg, variables)
		}

	case *ast.ConditionalNode:
		walk(n.Cond, variables)
		walk(n.Exp1, variables)
		walk(n.Exp2, variables)

	case *ast.ArrayNode:
		for _, elem := range n.Nodes {
			walk(elem, variables)
		}

	case *ast.MapNode:
		for _, pair := range n.Pairs {
			walk(pair, variables)
		}

	case *ast.PairNode:
		walk(n.Key, variables)
		walk(n.Value, variables)
	}
}

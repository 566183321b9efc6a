package domain

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/featuremesh/featuremesh-go-sdk/api"
	"github.com/featuremesh/featuremesh-go-sdk/frame"
)

// TransformationKind tags the transformation variant. Every switch over it
// is exhaustive; there is no implicit slot probing.
type TransformationKind int

const (
	TransformationKindFunction TransformationKind = iota + 1
	TransformationKindPlan
)

func (k TransformationKind) String() string {
	switch k {
	case TransformationKindFunction:
		return "function"
	case TransformationKindPlan:
		return "plan"
	default:
		return "unknown"
	}
}

// RowFunction transforms a row batch into a new row batch.
type RowFunction func(*frame.Frame) (*frame.Frame, error)

var rowFunctions sync.Map

// RegisterRowFunction makes fn resolvable by name when definitions are
// imported from the registry. Importing a function transformation whose
// name is not registered succeeds; executing it fails with
// UnregisteredFunctionError.
func RegisterRowFunction(name string, fn RowFunction) {
	rowFunctions.Store(name, fn)
}

func LookupRowFunction(name string) (RowFunction, bool) {
	if fn, ok := rowFunctions.Load(name); ok {
		return fn.(RowFunction), true
	}
	return nil, false
}

// Transformation is the tagged union over the two transformation variants:
// a named user row function with its serialized source snippet, or a
// serialized expression plan.
type Transformation struct {
	Kind TransformationKind

	// function variant
	Name     string
	Fn       RowFunction
	Body     []byte
	BodyText string

	// plan variant
	PlanBytes []byte

	plan *Plan
}

// NewFunctionTransformation builds the user-function variant. bodyText is
// the human-readable source snippet captured at definition time; it doubles
// as the serialized payload.
func NewFunctionTransformation(name string, fn RowFunction, bodyText string) *Transformation {
	return &Transformation{
		Kind:     TransformationKindFunction,
		Name:     name,
		Fn:       fn,
		Body:     []byte(bodyText),
		BodyText: bodyText,
	}
}

// NewPlanTransformation builds the compiled-plan variant from an already
// compiled plan.
func NewPlanTransformation(plan *Plan) (*Transformation, error) {
	planBytes, err := plan.Marshal()
	if err != nil {
		return nil, err
	}
	return &Transformation{
		Kind:      TransformationKindPlan,
		PlanBytes: planBytes,
		plan:      plan,
	}, nil
}

// Transform runs the variant over the input batch.
func (t *Transformation) Transform(f *frame.Frame) (*frame.Frame, error) {
	switch t.Kind {
	case TransformationKindFunction:
		fn := t.Fn
		if fn == nil {
			registered, ok := LookupRowFunction(t.Name)
			if !ok {
				return nil, &UnregisteredFunctionError{Name: t.Name}
			}
			fn = registered
		}
		return fn(f)
	case TransformationKindPlan:
		plan, err := t.getPlan()
		if err != nil {
			return nil, err
		}
		return plan.Evaluate(f)
	default:
		return nil, fmt.Errorf("unknown transformation kind %d", t.Kind)
	}
}

func (t *Transformation) getPlan() (*Plan, error) {
	if t.plan != nil {
		return t.plan, nil
	}
	plan, err := UnmarshalPlan(t.PlanBytes)
	if err != nil {
		return nil, err
	}
	t.plan = plan
	return plan, nil
}

// Fingerprint is the dependency fingerprint used for equality and change
// detection. It covers the serialized payload only, never the executable.
func (t *Transformation) Fingerprint() uint64 {
	h := xxhash.New()
	switch t.Kind {
	case TransformationKindFunction:
		h.WriteString(t.Name)
		h.Write([]byte{0})
		h.Write(t.Body)
	case TransformationKindPlan:
		h.Write(t.PlanBytes)
	}
	return h.Sum64()
}

// Equal compares structurally on kind and payload.
func (t *Transformation) Equal(other *Transformation) bool {
	if other == nil {
		return false
	}
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case TransformationKindFunction:
		return t.Name == other.Name && bytes.Equal(t.Body, other.Body)
	case TransformationKindPlan:
		return bytes.Equal(t.PlanBytes, other.PlanBytes)
	default:
		return false
	}
}

// Spec exports the transformation into the interchange oneof. Exactly one
// slot is set.
func (t *Transformation) Spec() *api.FeatureTransformation {
	spec := &api.FeatureTransformation{}
	switch t.Kind {
	case TransformationKindFunction:
		spec.UserDefinedFunction = &api.UserDefinedFunction{
			Name:     t.Name,
			Body:     t.Body,
			BodyText: t.BodyText,
		}
	case TransformationKindPlan:
		spec.PlanTransformation = &api.PlanTransformation{
			PlanBytes: t.PlanBytes,
		}
	}
	return spec
}

// TransformationFromSpec lifts the interchange oneof back into the tagged
// union. The executable of a function variant rebinds through the row
// function registry when the name is known; an unknown name still imports
// losslessly.
func TransformationFromSpec(spec *api.FeatureTransformation) (*Transformation, error) {
	if spec == nil {
		return nil, fmt.Errorf("at least one transformation type needs to be provided")
	}
	switch {
	case spec.UserDefinedFunction != nil && (spec.UserDefinedFunction.BodyText != "" || spec.UserDefinedFunction.Name != ""):
		t := &Transformation{
			Kind:     TransformationKindFunction,
			Name:     spec.UserDefinedFunction.Name,
			Body:     spec.UserDefinedFunction.Body,
			BodyText: spec.UserDefinedFunction.BodyText,
		}
		if fn, ok := LookupRowFunction(t.Name); ok {
			t.Fn = fn
		}
		return t, nil
	case spec.PlanTransformation != nil:
		return &Transformation{
			Kind:      TransformationKindPlan,
			PlanBytes: spec.PlanTransformation.PlanBytes,
		}, nil
	default:
		return nil, fmt.Errorf("at least one transformation type needs to be provided")
	}
}

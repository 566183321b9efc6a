package domain

import (
	"fmt"
	"strings"
)

// TypeMismatchError reports an equality check against a value of the wrong
// type. Definition comparisons never coerce: a mismatched type is an error,
// not a false result.
type TypeMismatchError struct {
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("comparisons should only involve %s objects, got %s", e.Expected, e.Actual)
}

// MissingTransformationError reports construction of an on-demand feature
// view without any transformation variant.
type MissingTransformationError struct {
	ViewName string
}

func (e *MissingTransformationError) Error() string {
	return fmt.Sprintf("on demand feature view :%s needs to be initialized with a transformation", e.ViewName)
}

// InvalidSourceError reports a source declaration of an unsupported kind.
type InvalidSourceError struct {
	ViewName   string
	SourceType string
}

func (e *InvalidSourceError) Error() string {
	return fmt.Sprintf("source type %s not supported in the on demand feature view :%s", e.SourceType, e.ViewName)
}

// InterchangeError reports an interchange payload that cannot be lifted
// into a definition.
type InterchangeError struct {
	ViewName string
	Message  string
	Cause    error
}

func (e *InterchangeError) Error() string {
	return fmt.Sprintf("interchange error for on demand feature view :%s: %s", e.ViewName, e.Message)
}

func (e *InterchangeError) Unwrap() error {
	return e.Cause
}

// FeaturesNotPresentError reports declared features missing from the
// inferred output schema. It carries the full inferred set so callers can
// see what the transformation actually produced.
type FeaturesNotPresentError struct {
	MissingFeatures  []Field
	InferredFeatures []Field
	ViewName         string
}

func (e *FeaturesNotPresentError) Error() string {
	return fmt.Sprintf("specified features %s not present in inferred features %s for on demand feature view :%s",
		fieldList(e.MissingFeatures), fieldList(e.InferredFeatures), e.ViewName)
}

// InferenceFailureError reports that schema inference produced nothing for
// the named definition.
type InferenceFailureError struct {
	DefinitionKind string
	DefinitionName string
	Message        string
}

func (e *InferenceFailureError) Error() string {
	return fmt.Sprintf("inference failure for %s :%s: %s", e.DefinitionKind, e.DefinitionName, e.Message)
}

// MissingOutputColumnError reports a declared feature the transformation
// produced under neither its short nor its qualified name.
type MissingOutputColumnError struct {
	ViewName string
	Feature  string
}

func (e *MissingOutputColumnError) Error() string {
	return fmt.Sprintf("output column :%s not produced by the transformation of on demand feature view :%s", e.Feature, e.ViewName)
}

// UnregisteredFunctionError reports execution of an imported function
// transformation whose name has no registered executable in this process.
type UnregisteredFunctionError struct {
	Name string
}

func (e *UnregisteredFunctionError) Error() string {
	return fmt.Sprintf("row function :%s is not registered", e.Name)
}

// FeatureViewNotFoundError reports a lookup of an unknown feature view.
type FeatureViewNotFoundError struct {
	Name string
}

func (e *FeatureViewNotFoundError) Error() string {
	return fmt.Sprintf("not found feature view, name:%s", e.Name)
}

// OnDemandFeatureViewNotFoundError reports a lookup of an unknown on-demand
// feature view.
type OnDemandFeatureViewNotFoundError struct {
	Name string
}

func (e *OnDemandFeatureViewNotFoundError) Error() string {
	return fmt.Sprintf("not found on demand feature view, name:%s", e.Name)
}

func fieldList(fields []Field) string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.String())
	}
	return "[" + strings.Join(names, ", ") + "]"
}

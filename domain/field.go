package domain

import (
	"fmt"

	"github.com/featuremesh/featuremesh-go-sdk/api"
	"github.com/featuremesh/featuremesh-go-sdk/constants"
)

// Field is a named feature column with its declared value type.
type Field struct {
	Name string
	Type constants.FSType
}

func (f Field) String() string {
	return fmt.Sprintf("%s (%s)", f.Name, f.Type)
}

func (f Field) Spec() *api.FeatureSpec {
	return &api.FeatureSpec{
		Name:      f.Name,
		ValueType: f.Type.String(),
	}
}

func FieldFromSpec(spec *api.FeatureSpec) Field {
	return Field{
		Name: spec.Name,
		Type: constants.FSTypeFromString(spec.ValueType),
	}
}

func FieldsFromSpecs(specs []*api.FeatureSpec) []Field {
	fields := make([]Field, 0, len(specs))
	for _, spec := range specs {
		fields = append(fields, FieldFromSpec(spec))
	}
	return fields
}

func SpecsFromFields(fields []Field) []*api.FeatureSpec {
	specs := make([]*api.FeatureSpec, 0, len(fields))
	for _, f := range fields {
		specs = append(specs, f.Spec())
	}
	return specs
}

func fieldsEqual(a, b []Field) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func containsField(fields []Field, f Field) bool {
	for _, candidate := range fields {
		if candidate == f {
			return true
		}
	}
	return false
}

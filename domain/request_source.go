package domain

import (
	"github.com/featuremesh/featuremesh-go-sdk/api"
)

// RequestSource declares a schema of values provided by the caller at
// request time rather than read from an upstream store.
type RequestSource struct {
	Name        string
	Schema      []Field
	Description string
	Tags        map[string]string
	Owner       string
}

func (s *RequestSource) equal(other *RequestSource) bool {
	if other == nil {
		return false
	}
	return s.Name == other.Name &&
		fieldsEqual(s.Schema, other.Schema) &&
		s.Description == other.Description &&
		tagsEqual(s.Tags, other.Tags) &&
		s.Owner == other.Owner
}

func (s *RequestSource) Spec() *api.RequestDataSourceSpec {
	return &api.RequestDataSourceSpec{
		Name:        s.Name,
		Schema:      SpecsFromFields(s.Schema),
		Description: s.Description,
		Tags:        s.Tags,
		Owner:       s.Owner,
	}
}

func RequestSourceFromSpec(spec *api.RequestDataSourceSpec) *RequestSource {
	return &RequestSource{
		Name:        spec.Name,
		Schema:      FieldsFromSpecs(spec.Schema),
		Description: spec.Description,
		Tags:        spec.Tags,
		Owner:       spec.Owner,
	}
}

func tagsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

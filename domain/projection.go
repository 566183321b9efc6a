package domain

import (
	"fmt"

	"github.com/featuremesh/featuremesh-go-sdk/api"
)

// FeatureViewProjection is a feature view as consumed by a downstream
// definition: the view name, an optional alias and the selected feature
// columns.
type FeatureViewProjection struct {
	Name      string
	NameAlias string
	Features  []Field
}

// NameToUse returns the alias when one is set, else the view name. Output
// reconciliation prefixes qualified column names with it.
func (p *FeatureViewProjection) NameToUse() string {
	if p.NameAlias != "" {
		return p.NameAlias
	}
	return p.Name
}

func (p *FeatureViewProjection) equal(other *FeatureViewProjection) bool {
	if other == nil {
		return false
	}
	return p.Name == other.Name &&
		p.NameAlias == other.NameAlias &&
		fieldsEqual(p.Features, other.Features)
}

func (p *FeatureViewProjection) Spec() *api.FeatureViewProjectionSpec {
	return &api.FeatureViewProjectionSpec{
		FeatureViewName:      p.Name,
		FeatureViewNameAlias: p.NameAlias,
		FeatureColumns:       SpecsFromFields(p.Features),
	}
}

func ProjectionFromSpec(spec *api.FeatureViewProjectionSpec) *FeatureViewProjection {
	return &FeatureViewProjection{
		Name:      spec.FeatureViewName,
		NameAlias: spec.FeatureViewNameAlias,
		Features:  FieldsFromSpecs(spec.FeatureColumns),
	}
}

// ProjectionFromDefinition builds the default identity projection of an
// on-demand feature view. It is recomputed after every import and never
// serialized.
func ProjectionFromDefinition(view *OnDemandFeatureView) *FeatureViewProjection {
	features := make([]Field, len(view.features))
	copy(features, view.features)
	return &FeatureViewProjection{
		Name:     view.Name,
		Features: features,
	}
}

func validateProjection(view *OnDemandFeatureView, projection *FeatureViewProjection) error {
	if projection.Name != view.Name {
		return fmt.Errorf("the projection for the %s feature view cannot be applied because it differs in name; the projection is named %s",
			view.Name, projection.Name)
	}
	for _, f := range projection.Features {
		if !containsField(view.features, f) {
			return fmt.Errorf("the projection for the %s feature view selects feature %s which the view does not define",
				view.Name, f.Name)
		}
	}
	return nil
}

package domain

import (
	"github.com/featuremesh/featuremesh-go-sdk/api"
)

// FeatureView is an upstream feature view serving precomputed rows. Batch
// and stream views share the same online behavior.
type FeatureView interface {
	GetOnlineFeatures(joinIds []interface{}, features []string, alias map[string]string) ([]map[string]interface{}, error)
	GetName() string
	GetFeatureEntityName() string
	GetType() string
	GetFields() []api.FeatureViewFields
	GetTTL() int

	// Projection returns the default projection over the view's feature
	// fields, used when the view is declared as an on-demand source.
	Projection() *FeatureViewProjection
}

func NewFeatureView(view *api.FeatureView, p *Project, entity *FeatureEntity) FeatureView {
	return NewBaseFeatureView(view, p, entity)
}

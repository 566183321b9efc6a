package api

import "time"

// OnDemandFeatureView is the interchange form of an on-demand feature view
// definition. Spec carries the caller-defined payload, Meta the
// registry-managed timestamps.
type OnDemandFeatureView struct {
	Spec *OnDemandFeatureViewSpec `json:"spec"`
	Meta *OnDemandFeatureViewMeta `json:"meta,omitempty"`
}

type OnDemandFeatureViewSpec struct {
	Name     string            `json:"name"`
	Features []*FeatureSpec    `json:"features,omitempty"`
	Sources  []*OnDemandSource `json:"sources,omitempty"`

	FeatureTransformation *FeatureTransformation `json:"feature_transformation,omitempty"`

	// UserDefinedFunction is the deprecated single-slot transformation
	// field. Import lifts it into FeatureTransformation when that oneof
	// is empty; export never writes it.
	UserDefinedFunction *UserDefinedFunction `json:"user_defined_function,omitempty"`

	Description string            `json:"description,omitempty"`
	Tags        map[string]string `json:"tags,omitempty"`
	Owner       string            `json:"owner,omitempty"`
}

type OnDemandFeatureViewMeta struct {
	CreatedTimestamp     time.Time `json:"created_timestamp,omitempty"`
	LastUpdatedTimestamp time.Time `json:"last_updated_timestamp,omitempty"`
}

// OnDemandSource carries exactly one of its variant fields. Entry order in
// OnDemandFeatureViewSpec.Sources preserves source declaration order.
type OnDemandSource struct {
	Name                  string                     `json:"name"`
	FeatureViewProjection *FeatureViewProjectionSpec `json:"feature_view_projection,omitempty"`
	FeatureView           *OnDemandSourceFeatureView `json:"feature_view,omitempty"`
	RequestDataSource     *RequestDataSourceSpec     `json:"request_data_source,omitempty"`
}

type FeatureViewProjectionSpec struct {
	FeatureViewName      string         `json:"feature_view_name"`
	FeatureViewNameAlias string         `json:"feature_view_name_alias,omitempty"`
	FeatureColumns       []*FeatureSpec `json:"feature_columns,omitempty"`
}

// OnDemandSourceFeatureView is an imported-only variant: registries that
// serialize the full upstream feature view instead of its projection.
type OnDemandSourceFeatureView struct {
	Name   string         `json:"name"`
	Fields []*FeatureSpec `json:"fields,omitempty"`
}

type RequestDataSourceSpec struct {
	Name        string            `json:"name"`
	Schema      []*FeatureSpec    `json:"schema,omitempty"`
	Description string            `json:"description,omitempty"`
	Tags        map[string]string `json:"tags,omitempty"`
	Owner       string            `json:"owner,omitempty"`
}

// FeatureSpec names a feature column and its declared value type, e.g.
// "INT64" or "ARRAY<FLOAT>".
type FeatureSpec struct {
	Name      string `json:"name"`
	ValueType string `json:"value_type"`
}

// FeatureTransformation carries exactly one transformation variant.
type FeatureTransformation struct {
	UserDefinedFunction *UserDefinedFunction `json:"user_defined_function,omitempty"`
	PlanTransformation  *PlanTransformation  `json:"plan_transformation,omitempty"`
}

type UserDefinedFunction struct {
	Name     string `json:"name"`
	Body     []byte `json:"body,omitempty"`
	BodyText string `json:"body_text,omitempty"`
}

type PlanTransformation struct {
	PlanBytes []byte `json:"plan_bytes"`
}

package domain

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/featuremesh/featuremesh-go-sdk/api"
	"github.com/featuremesh/featuremesh-go-sdk/constants"
	"github.com/featuremesh/featuremesh-go-sdk/frame"
)

// SourceKind tags the variant held by a SourceRef.
type SourceKind int

const (
	SourceKindProjection SourceKind = iota + 1
	SourceKindRequestSource
)

func (k SourceKind) String() string {
	switch k {
	case SourceKindProjection:
		return "projection"
	case SourceKindRequestSource:
		return "request_source"
	default:
		return "unknown"
	}
}

// SourceRef is one named entry of the source set. Exactly one variant is
// set, matching Kind.
type SourceRef struct {
	Name          string
	Kind          SourceKind
	Projection    *FeatureViewProjection
	RequestSource *RequestSource
}

func (r SourceRef) equal(other SourceRef) bool {
	if r.Name != other.Name || r.Kind != other.Kind {
		return false
	}
	switch r.Kind {
	case SourceKindProjection:
		return r.Projection.equal(other.Projection)
	case SourceKindRequestSource:
		return r.RequestSource.equal(other.RequestSource)
	default:
		return false
	}
}

// ProjectionSource is satisfied by feature views that expose a default
// projection over their serving fields, so a view can be declared as an
// on-demand source directly.
type ProjectionSource interface {
	GetName() string
	Projection() *FeatureViewProjection
}

// OnDemandFeatureView is a feature view whose values are computed at request
// time by running a transformation over a row batch merged from upstream
// feature view projections and request data sources.
type OnDemandFeatureView struct {
	Name        string
	Description string
	Tags        map[string]string
	Owner       string

	// Projection controls output naming. It defaults to the identity
	// projection over the view's own features and is never serialized.
	Projection *FeatureViewProjection

	CreatedTimestamp     time.Time
	LastUpdatedTimestamp time.Time

	features       []Field
	sources        []SourceRef
	sourceIndex    map[string]int
	transformation *Transformation

	legacyFunction *Transformation
}

// OnDemandFeatureViewOption configures optional definition fields.
type OnDemandFeatureViewOption func(*OnDemandFeatureView)

// WithSchema declares the expected output features. An empty schema is
// filled in later by InferFeatures.
func WithSchema(schema []Field) OnDemandFeatureViewOption {
	return func(o *OnDemandFeatureView) {
		o.features = append([]Field(nil), schema...)
	}
}

func WithDescription(description string) OnDemandFeatureViewOption {
	return func(o *OnDemandFeatureView) {
		o.Description = description
	}
}

func WithTags(tags map[string]string) OnDemandFeatureViewOption {
	return func(o *OnDemandFeatureView) {
		o.Tags = tags
	}
}

func WithOwner(owner string) OnDemandFeatureViewOption {
	return func(o *OnDemandFeatureView) {
		o.Owner = owner
	}
}

var legacyFunctionWarning sync.Once

// WithUserDefinedFunction is the deprecated way to attach the row function.
// Pass a function transformation to NewOnDemandFeatureView instead.
func WithUserDefinedFunction(name string, fn RowFunction, bodyText string) OnDemandFeatureViewOption {
	return func(o *OnDemandFeatureView) {
		o.legacyFunction = NewFunctionTransformation(name, fn, bodyText)
	}
}

// NewOnDemandFeatureView builds a definition from its sources and
// transformation. Sources may be feature view projections, request sources,
// or feature views implementing ProjectionSource; a later source with the
// same name replaces the earlier one in place.
func NewOnDemandFeatureView(name string, sources []interface{}, transformation *Transformation, opts ...OnDemandFeatureViewOption) (*OnDemandFeatureView, error) {
	view := &OnDemandFeatureView{
		Name:        name,
		sourceIndex: make(map[string]int),
	}
	for _, opt := range opts {
		opt(view)
	}

	if transformation == nil && view.legacyFunction != nil {
		legacyFunctionWarning.Do(func() {
			log.Printf("WithUserDefinedFunction is deprecated, pass a function transformation instead")
		})
		transformation = view.legacyFunction
	}
	view.legacyFunction = nil
	if transformation == nil {
		return nil, &MissingTransformationError{ViewName: name}
	}
	view.transformation = transformation

	if len(sources) == 0 {
		return nil, fmt.Errorf("on demand feature view :%s needs at least one source", name)
	}
	for _, source := range sources {
		switch s := source.(type) {
		case *FeatureViewProjection:
			view.addSource(SourceRef{Name: s.Name, Kind: SourceKindProjection, Projection: s})
		case *RequestSource:
			view.addSource(SourceRef{Name: s.Name, Kind: SourceKindRequestSource, RequestSource: s})
		case ProjectionSource:
			view.addSource(SourceRef{Name: s.GetName(), Kind: SourceKindProjection, Projection: s.Projection()})
		default:
			return nil, &InvalidSourceError{ViewName: name, SourceType: fmt.Sprintf("%T", source)}
		}
	}

	view.Projection = ProjectionFromDefinition(view)
	return view, nil
}

func (o *OnDemandFeatureView) addSource(ref SourceRef) {
	if idx, ok := o.sourceIndex[ref.Name]; ok {
		o.sources[idx] = ref
		return
	}
	o.sourceIndex[ref.Name] = len(o.sources)
	o.sources = append(o.sources, ref)
}

func (o *OnDemandFeatureView) GetName() string {
	return o.Name
}

func (o *OnDemandFeatureView) GetType() string {
	return constants.Feature_View_Type_OnDemand
}

// Features returns the declared or inferred output features.
func (o *OnDemandFeatureView) Features() []Field {
	return o.features
}

// Sources returns the source set in declaration order.
func (o *OnDemandFeatureView) Sources() []SourceRef {
	return o.sources
}

func (o *OnDemandFeatureView) Transformation() *Transformation {
	return o.transformation
}

// FeatureTransformation is the registry-facing name for Transformation.
func (o *OnDemandFeatureView) FeatureTransformation() *Transformation {
	return o.transformation
}

// FeatureViewProjections returns the projection sources in declaration
// order.
func (o *OnDemandFeatureView) FeatureViewProjections() []*FeatureViewProjection {
	projections := make([]*FeatureViewProjection, 0, len(o.sources))
	for _, ref := range o.sources {
		if ref.Kind == SourceKindProjection {
			projections = append(projections, ref.Projection)
		}
	}
	return projections
}

// RequestSources returns the request data sources in declaration order.
func (o *OnDemandFeatureView) RequestSources() []*RequestSource {
	requestSources := make([]*RequestSource, 0, len(o.sources))
	for _, ref := range o.sources {
		if ref.Kind == SourceKindRequestSource {
			requestSources = append(requestSources, ref.RequestSource)
		}
	}
	return requestSources
}

// GetRequestDataSchema returns the request-time input schema merged over
// all request sources. A field declared by several sources takes the type
// of the last one.
func (o *OnDemandFeatureView) GetRequestDataSchema() map[string]constants.FSType {
	schema := make(map[string]constants.FSType)
	for _, requestSource := range o.RequestSources() {
		for _, field := range requestSource.Schema {
			schema[field.Name] = field.Type
		}
	}
	return schema
}

// Apply runs the transformation over batch and reconciles column names.
// Upstream columns are made available under both the qualified
// {projection_name}__{feature} form and the short form before the
// transformation runs; afterwards every declared feature is normalized to
// the naming mode selected by fullFeatureNames. The caller's batch is
// never modified.
func (o *OnDemandFeatureView) Apply(batch *frame.Frame, fullFeatureNames bool) (*frame.Frame, error) {
	if o.transformation == nil {
		return nil, &MissingTransformationError{ViewName: o.Name}
	}

	working := batch.Copy()
	var columnsToCleanup []string
	for _, projection := range o.FeatureViewProjections() {
		for _, feature := range projection.Features {
			qualified := projection.Name + constants.FeatureNameSeparator + feature.Name
			if values, ok := working.Column(qualified); ok {
				// keep the short name available too
				if err := working.AddColumn(feature.Name, values); err != nil {
					return nil, err
				}
				columnsToCleanup = append(columnsToCleanup, feature.Name)
			} else if values, ok := working.Column(feature.Name); ok {
				// keep the qualified name available too
				if err := working.AddColumn(qualified, values); err != nil {
					return nil, err
				}
				columnsToCleanup = append(columnsToCleanup, qualified)
			}
		}
	}

	transformed, err := o.transformation.Transform(working)
	if err != nil {
		return nil, err
	}

	// Drop the helper columns, but never a column that carries a declared
	// output: a transformation may pass an input through unchanged.
	protected := make(map[string]bool, 2*len(o.features))
	prefix := o.Projection.NameToUse() + constants.FeatureNameSeparator
	for _, feature := range o.features {
		protected[feature.Name] = true
		protected[prefix+feature.Name] = true
	}
	for _, column := range columnsToCleanup {
		if protected[column] {
			continue
		}
		transformed.Drop(column)
	}

	for _, feature := range o.features {
		shortName := feature.Name
		longName := prefix + feature.Name
		if fullFeatureNames {
			switch {
			case transformed.HasColumn(shortName):
				if err := transformed.Rename(shortName, longName); err != nil {
					return nil, err
				}
			case transformed.HasColumn(longName):
			default:
				return nil, &MissingOutputColumnError{ViewName: o.Name, Feature: feature.Name}
			}
		} else {
			switch {
			case transformed.HasColumn(longName):
				if err := transformed.Rename(longName, shortName); err != nil {
					return nil, err
				}
			case transformed.HasColumn(shortName):
			default:
				return nil, &MissingOutputColumnError{ViewName: o.Name, Feature: feature.Name}
			}
		}
	}
	return transformed, nil
}

// InferFeatures runs the transformation over a synthetic one-row batch and
// derives the output schema from the result. With a declared schema it
// verifies every declared feature was produced; without one it fills the
// schema in.
func (o *OnDemandFeatureView) InferFeatures() error {
	sample := frame.New()
	qualifiedInputs := make(map[string]string)
	for _, projection := range o.FeatureViewProjections() {
		for _, feature := range projection.Features {
			value := SampleValueForType(feature.Type)
			qualified := projection.Name + constants.FeatureNameSeparator + feature.Name
			qualifiedInputs[qualified] = feature.Name
			if err := sample.AddColumn(qualified, []interface{}{value}); err != nil {
				return err
			}
			if err := sample.AddColumn(feature.Name, []interface{}{value}); err != nil {
				return err
			}
		}
	}
	for _, requestSource := range o.RequestSources() {
		for _, field := range requestSource.Schema {
			if err := sample.AddColumn(field.Name, []interface{}{SampleValueForType(field.Type)}); err != nil {
				return err
			}
		}
	}

	output, err := o.transformation.Transform(sample)
	if err != nil {
		return err
	}
	if output.Len() == 0 {
		return &InferenceFailureError{
			DefinitionKind: "OnDemandFeatureView",
			DefinitionName: o.Name,
			Message:        "the transformation returned an empty batch",
		}
	}

	inferred := make([]Field, 0, output.Width())
	for _, name := range output.ColumnNames() {
		// a passthrough output carries both spellings of an upstream input,
		// only the short one is a feature
		if short, ok := qualifiedInputs[name]; ok && output.HasColumn(short) {
			continue
		}
		values, _ := output.Column(name)
		fsType, err := InferTypeOf(values[0])
		if err != nil {
			return fmt.Errorf("infer type of output column %s: %w", name, err)
		}
		inferred = append(inferred, Field{Name: name, Type: fsType})
	}

	if len(o.features) > 0 {
		var missing []Field
		for _, feature := range o.features {
			if !containsField(inferred, feature) {
				missing = append(missing, feature)
			}
		}
		if len(missing) > 0 {
			return &FeaturesNotPresentError{
				MissingFeatures:  missing,
				InferredFeatures: inferred,
				ViewName:         o.Name,
			}
		}
	} else {
		alias := ""
		if o.Projection != nil {
			alias = o.Projection.NameAlias
		}
		o.features = inferred
		o.Projection = ProjectionFromDefinition(o)
		o.Projection.NameAlias = alias
	}

	if len(o.features) == 0 {
		return &InferenceFailureError{
			DefinitionKind: "OnDemandFeatureView",
			DefinitionName: o.Name,
			Message:        fmt.Sprintf("could not infer features for the feature view %s", o.Name),
		}
	}
	return nil
}

// Equals compares two definitions structurally. Comparing against any other
// type is an error, not a false result.
func (o *OnDemandFeatureView) Equals(other interface{}) (bool, error) {
	otherView, ok := other.(*OnDemandFeatureView)
	if !ok {
		return false, &TypeMismatchError{Expected: "OnDemandFeatureView", Actual: fmt.Sprintf("%T", other)}
	}
	if o.Name != otherView.Name ||
		o.Description != otherView.Description ||
		o.Owner != otherView.Owner ||
		!tagsEqual(o.Tags, otherView.Tags) ||
		!fieldsEqual(o.features, otherView.features) {
		return false, nil
	}
	if (o.Projection == nil) != (otherView.Projection == nil) {
		return false, nil
	}
	if o.Projection != nil && !o.Projection.equal(otherView.Projection) {
		return false, nil
	}
	if !o.sourcesEqual(otherView) {
		return false, nil
	}
	if !o.transformation.Equal(otherView.transformation) {
		return false, nil
	}
	return true, nil
}

// sourcesEqual compares source sets by name, ignoring declaration order.
func (o *OnDemandFeatureView) sourcesEqual(other *OnDemandFeatureView) bool {
	if len(o.sources) != len(other.sources) {
		return false
	}
	for _, ref := range o.sources {
		idx, ok := other.sourceIndex[ref.Name]
		if !ok {
			return false
		}
		if !ref.equal(other.sources[idx]) {
			return false
		}
	}
	return true
}

func (o *OnDemandFeatureView) copy() *OnDemandFeatureView {
	cp := &OnDemandFeatureView{
		Name:                 o.Name,
		Description:          o.Description,
		Owner:                o.Owner,
		CreatedTimestamp:     o.CreatedTimestamp,
		LastUpdatedTimestamp: o.LastUpdatedTimestamp,
		features:             append([]Field(nil), o.features...),
		sources:              append([]SourceRef(nil), o.sources...),
		sourceIndex:          make(map[string]int, len(o.sourceIndex)),
		transformation:       o.transformation,
	}
	for name, idx := range o.sourceIndex {
		cp.sourceIndex[name] = idx
	}
	if o.Tags != nil {
		cp.Tags = make(map[string]string, len(o.Tags))
		for k, v := range o.Tags {
			cp.Tags[k] = v
		}
	}
	if o.Projection != nil {
		projection := *o.Projection
		projection.Features = append([]Field(nil), o.Projection.Features...)
		cp.Projection = &projection
	}
	return cp
}

// WithName returns a copy whose projection carries name as its alias, so
// outputs are qualified with the new name.
func (o *OnDemandFeatureView) WithName(name string) *OnDemandFeatureView {
	cp := o.copy()
	cp.Projection.NameAlias = name
	return cp
}

// WithProjection returns a copy using the given projection for output
// naming and feature selection.
func (o *OnDemandFeatureView) WithProjection(projection *FeatureViewProjection) (*OnDemandFeatureView, error) {
	if err := validateProjection(o, projection); err != nil {
		return nil, err
	}
	cp := o.copy()
	cp.Projection = projection
	return cp, nil
}

// Interchange exports the definition into its registry form. The view's own
// projection is never part of the payload; imports recompute the default.
func (o *OnDemandFeatureView) Interchange() *api.OnDemandFeatureView {
	sources := make([]*api.OnDemandSource, 0, len(o.sources))
	for _, ref := range o.sources {
		source := &api.OnDemandSource{Name: ref.Name}
		switch ref.Kind {
		case SourceKindProjection:
			source.FeatureViewProjection = ref.Projection.Spec()
		case SourceKindRequestSource:
			source.RequestDataSource = ref.RequestSource.Spec()
		}
		sources = append(sources, source)
	}
	return &api.OnDemandFeatureView{
		Spec: &api.OnDemandFeatureViewSpec{
			Name:                  o.Name,
			Features:              SpecsFromFields(o.features),
			Sources:               sources,
			FeatureTransformation: o.transformation.Spec(),
			Description:           o.Description,
			Tags:                  o.Tags,
			Owner:                 o.Owner,
		},
		Meta: &api.OnDemandFeatureViewMeta{
			CreatedTimestamp:     o.CreatedTimestamp,
			LastUpdatedTimestamp: o.LastUpdatedTimestamp,
		},
	}
}

// OnDemandFeatureViewFromInterchange lifts a registry payload back into a
// definition. Function transformations rebind through the row function
// registry; definitions written before the transformation oneof existed are
// migrated from the legacy function slot.
func OnDemandFeatureViewFromInterchange(serialized *api.OnDemandFeatureView) (*OnDemandFeatureView, error) {
	if serialized == nil || serialized.Spec == nil {
		return nil, &InterchangeError{Message: "missing spec"}
	}
	spec := serialized.Spec

	sources := make([]interface{}, 0, len(spec.Sources))
	for _, source := range spec.Sources {
		switch {
		case source.FeatureViewProjection != nil:
			sources = append(sources, ProjectionFromSpec(source.FeatureViewProjection))
		case source.FeatureView != nil:
			sources = append(sources, &FeatureViewProjection{
				Name:     source.FeatureView.Name,
				Features: FieldsFromSpecs(source.FeatureView.Fields),
			})
		case source.RequestDataSource != nil:
			sources = append(sources, RequestSourceFromSpec(source.RequestDataSource))
		default:
			return nil, &InterchangeError{
				ViewName: spec.Name,
				Message:  fmt.Sprintf("source %s carries no variant", source.Name),
			}
		}
	}

	transformation, err := transformationFromInterchange(spec)
	if err != nil {
		return nil, &InterchangeError{ViewName: spec.Name, Message: "invalid transformation", Cause: err}
	}

	view, err := NewOnDemandFeatureView(spec.Name, sources, transformation,
		WithDescription(spec.Description),
		WithTags(spec.Tags),
		WithOwner(spec.Owner),
	)
	if err != nil {
		return nil, err
	}
	view.features = FieldsFromSpecs(spec.Features)
	view.Projection = ProjectionFromDefinition(view)
	if serialized.Meta != nil {
		view.CreatedTimestamp = serialized.Meta.CreatedTimestamp
		view.LastUpdatedTimestamp = serialized.Meta.LastUpdatedTimestamp
	}
	return view, nil
}

// transformationFromInterchange picks the transformation variant out of a
// payload, falling back to the legacy top-level function slot when the
// oneof is empty.
func transformationFromInterchange(spec *api.OnDemandFeatureViewSpec) (*Transformation, error) {
	ft := spec.FeatureTransformation
	if ft != nil && ft.UserDefinedFunction != nil && (ft.UserDefinedFunction.BodyText != "" || ft.UserDefinedFunction.Name != "") {
		return TransformationFromSpec(ft)
	}
	if ft != nil && ft.PlanTransformation != nil {
		return TransformationFromSpec(ft)
	}
	if spec.UserDefinedFunction != nil && spec.UserDefinedFunction.BodyText != "" {
		return TransformationFromSpec(&api.FeatureTransformation{UserDefinedFunction: spec.UserDefinedFunction})
	}
	return nil, fmt.Errorf("at least one transformation type needs to be provided")
}

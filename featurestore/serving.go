package featurestore

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/featuremesh/featuremesh-go-sdk/constants"
	"github.com/featuremesh/featuremesh-go-sdk/domain"
	"github.com/featuremesh/featuremesh-go-sdk/frame"
	"github.com/featuremesh/featuremesh-go-sdk/utils"
)

// upstreamFetch is one feature view read of the fan-out plan.
type upstreamFetch struct {
	view        domain.FeatureView
	joinIdField string
	features    []string
	rows        []map[string]interface{}
}

// GetOnlineFeatures retrieves the features named by view:feature refs for
// the given entity rows. Refs may name upstream feature views or on-demand
// feature views; upstream reads fan out concurrently, then the requested
// on-demand transformations run over the merged batch. Entity rows carry
// join ids and request data, and are never modified.
func (c *FeatureStoreClient) GetOnlineFeatures(ctx context.Context, projectName string, featureRefs []string, entityRows []map[string]interface{}, fullFeatureNames bool) ([]map[string]interface{}, error) {
	project, err := c.GetProject(projectName)
	if err != nil {
		return nil, err
	}

	directFeatures := make(map[string][]string)
	onDemandFeatures := make(map[string][]string)
	var onDemandOrder []string
	for _, ref := range featureRefs {
		viewName, featureName, err := splitFeatureRef(ref)
		if err != nil {
			return nil, err
		}
		if view := project.GetOnDemandFeatureView(viewName); view != nil {
			if _, ok := onDemandFeatures[viewName]; !ok {
				onDemandOrder = append(onDemandOrder, viewName)
			}
			onDemandFeatures[viewName] = append(onDemandFeatures[viewName], featureName)
			continue
		}
		if view := project.GetFeatureView(viewName); view != nil {
			if featureName == "*" {
				// expand to the view's serving fields
				for _, field := range view.Projection().Features {
					directFeatures[viewName] = append(directFeatures[viewName], field.Name)
				}
			} else {
				directFeatures[viewName] = append(directFeatures[viewName], featureName)
			}
			continue
		}
		return nil, &domain.FeatureViewNotFoundError{Name: viewName}
	}

	// Upstream fetch plan: direct refs plus the dependencies of every
	// requested on-demand view.
	fetchFeatures := make(map[string]map[string]bool)
	addFetch := func(viewName string, features ...string) {
		if fetchFeatures[viewName] == nil {
			fetchFeatures[viewName] = make(map[string]bool)
		}
		for _, feature := range features {
			fetchFeatures[viewName][feature] = true
		}
	}
	for viewName, features := range directFeatures {
		addFetch(viewName, features...)
	}
	for _, viewName := range onDemandOrder {
		view := project.GetOnDemandFeatureView(viewName)
		for _, projection := range view.FeatureViewProjections() {
			names := make([]string, 0, len(projection.Features))
			for _, feature := range projection.Features {
				names = append(names, feature.Name)
			}
			addFetch(projection.Name, names...)
		}
	}

	fetches := make([]*upstreamFetch, 0, len(fetchFeatures))
	for viewName, featureSet := range fetchFeatures {
		view := project.GetFeatureView(viewName)
		if view == nil {
			return nil, &domain.FeatureViewNotFoundError{Name: viewName}
		}
		entity := project.GetFeatureEntity(view.GetFeatureEntityName())
		if entity == nil {
			return nil, fmt.Errorf("not found feature entity, name:%s", view.GetFeatureEntityName())
		}
		features := make([]string, 0, len(featureSet))
		for feature := range featureSet {
			features = append(features, feature)
		}
		fetches = append(fetches, &upstreamFetch{
			view:        view,
			joinIdField: entity.FeatureEntityJoinid,
			features:    features,
		})
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, fetch := range fetches {
		fetch := fetch
		joinIds, err := collectJoinIds(entityRows, fetch.joinIdField)
		if err != nil {
			return nil, err
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows, err := fetch.view.GetOnlineFeatures(joinIds, fetch.features, nil)
			if err != nil {
				return fmt.Errorf("get online features from %s error: %w", fetch.view.GetName(), err)
			}
			fetch.rows = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]map[string]interface{}, len(entityRows))
	for i, entityRow := range entityRows {
		row := make(map[string]interface{}, len(entityRow))
		for k, v := range entityRow {
			row[k] = v
		}
		result[i] = row
	}

	// Merge upstream rows: direct refs land in the result under the
	// requested naming mode, every fetched feature lands in the batch
	// under its qualified name for the transformations.
	batch := frame.FromRows(entityRows)
	for _, fetch := range fetches {
		byJoinId := make(map[string]map[string]interface{}, len(fetch.rows))
		for _, row := range fetch.rows {
			byJoinId[utils.ToString(row[fetch.joinIdField], "")] = row
		}

		viewName := fetch.view.GetName()
		direct := make(map[string]bool, len(directFeatures[viewName]))
		for _, feature := range directFeatures[viewName] {
			direct[feature] = true
		}

		for _, feature := range fetch.features {
			values := make([]interface{}, len(entityRows))
			for i, entityRow := range entityRows {
				fetched := byJoinId[utils.ToString(entityRow[fetch.joinIdField], "")]
				if fetched == nil {
					continue
				}
				values[i] = fetched[feature]
			}

			if err := batch.AddColumn(viewName+constants.FeatureNameSeparator+feature, values); err != nil {
				return nil, err
			}

			if direct[feature] {
				outputName := feature
				if fullFeatureNames {
					outputName = viewName + constants.FeatureNameSeparator + feature
				}
				for i := range result {
					result[i][outputName] = values[i]
				}
			}
		}
	}

	// Apply the requested on-demand views over the merged batch.
	for _, viewName := range onDemandOrder {
		view := project.GetOnDemandFeatureView(viewName)
		transformed, err := view.Apply(batch, fullFeatureNames)
		if err != nil {
			return nil, err
		}
		if transformed.Len() != len(entityRows) {
			return nil, fmt.Errorf("transformation of %s returned %d rows for %d entity rows", viewName, transformed.Len(), len(entityRows))
		}

		requested := make(map[string]bool, len(onDemandFeatures[viewName]))
		for _, feature := range onDemandFeatures[viewName] {
			requested[feature] = true
		}

		prefix := view.Projection.NameToUse() + constants.FeatureNameSeparator
		for _, feature := range view.Features() {
			if !requested[feature.Name] && !requested["*"] {
				continue
			}
			outputName := feature.Name
			if fullFeatureNames {
				outputName = prefix + feature.Name
			}
			values, ok := transformed.Column(outputName)
			if !ok {
				return nil, &domain.MissingOutputColumnError{ViewName: viewName, Feature: feature.Name}
			}
			for i := range result {
				result[i][outputName] = values[i]
			}
		}
	}

	return result, nil
}

// collectJoinIds pulls the distinct join id values out of the entity rows,
// keeping first-seen order.
func collectJoinIds(entityRows []map[string]interface{}, joinIdField string) ([]interface{}, error) {
	joinIds := make([]interface{}, 0, len(entityRows))
	seen := make(map[string]bool, len(entityRows))
	for _, row := range entityRows {
		value, ok := row[joinIdField]
		if !ok {
			return nil, fmt.Errorf("join id :%s not found in the entity rows", joinIdField)
		}
		key := utils.ToString(value, "")
		if seen[key] {
			continue
		}
		seen[key] = true
		joinIds = append(joinIds, value)
	}
	return joinIds, nil
}

package dao

import (
	"database/sql"
	"sync"

	"github.com/huandu/go-sqlbuilder"

	"github.com/featuremesh/featuremesh-go-sdk/constants"
	"github.com/featuremesh/featuremesh-go-sdk/datasource/postgresdb"
)

type FeatureViewPostgresDao struct {
	db              *sql.DB
	table           string
	primaryKeyField string
	fieldTypeMap    map[string]constants.FSType
}

func NewFeatureViewPostgresDao(config DaoConfig) *FeatureViewPostgresDao {
	dao := FeatureViewPostgresDao{
		table:           config.PostgresTableName,
		primaryKeyField: config.PrimaryKeyField,
		fieldTypeMap:    config.FieldTypeMap,
	}
	postgresInstance, err := postgresdb.GetPostgres(config.PostgresName)
	if err != nil {
		return nil
	}

	dao.db = postgresInstance.DB

	return &dao
}

func (d *FeatureViewPostgresDao) GetFeatures(keys []interface{}, selectFields []string) ([]map[string]interface{}, error) {
	result := make([]map[string]interface{}, 0, len(keys))
	var wg sync.WaitGroup
	var mu sync.Mutex
	const groupSize = 200
	errChan := make(chan error, len(keys)/groupSize+1)
	for i := 0; i < len(keys); i += groupSize {
		end := i + groupSize
		if end > len(keys) {
			end = len(keys)
		}
		ks := keys[i:end]
		wg.Add(1)
		go func(ks []interface{}) {
			defer wg.Done()
			sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
			sb.Select(selectFields...)
			sb.From(d.table)
			sb.Where(sb.In(d.primaryKeyField, ks...))
			query, args := sb.Build()

			rows, err := d.db.Query(query, args...)
			if err != nil {
				errChan <- err
				return
			}
			defer rows.Close()

			columns, err := rows.Columns()
			if err != nil {
				errChan <- err
				return
			}

			innerResult := make([]map[string]interface{}, 0, len(ks))
			for rows.Next() {
				values := make([]interface{}, len(columns))
				scanArgs := make([]interface{}, len(columns))
				for i := range values {
					scanArgs[i] = &values[i]
				}
				if err := rows.Scan(scanArgs...); err != nil {
					errChan <- err
					return
				}

				properties := make(map[string]interface{}, len(columns))
				for i, column := range columns {
					if values[i] == nil {
						continue
					}
					properties[column] = decodeSQLValue(d.fieldTypeMap[column], values[i])
				}
				innerResult = append(innerResult, properties)
			}
			if err := rows.Err(); err != nil {
				errChan <- err
				return
			}
			mu.Lock()
			result = append(result, innerResult...)
			mu.Unlock()
		}(ks)
	}
	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

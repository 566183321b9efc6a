package dao

import (
	"github.com/featuremesh/featuremesh-go-sdk/constants"
)

type DaoConfig struct {
	DatasourceType string

	PrimaryKeyField string
	EventTimeField  string
	TTL             int

	// redis
	RedisName   string
	RedisPrefix string

	// mysql
	MysqlName      string
	MysqlTableName string

	// postgres
	PostgresName      string
	PostgresTableName string

	FieldTypeMap map[string]constants.FSType

	Fields []string
}

package constants

type FSType int

const (
	FS_INT32 FSType = iota + 1 // int32
	FS_INT64                   // int64
	FS_FLOAT
	FS_DOUBLE
	FS_STRING
	FS_BOOLEAN
	FS_TIMESTAMP
	FS_ARRAY_INT32
	FS_ARRAY_INT64
	FS_ARRAY_FLOAT
	FS_ARRAY_DOUBLE
	FS_ARRAY_STRING
	FS_ARRAY_ARRAY_FLOAT
	FS_MAP_INT32_INT32
	FS_MAP_INT32_INT64
	FS_MAP_INT32_FLOAT
	FS_MAP_INT32_DOUBLE
	FS_MAP_INT32_STRING
	FS_MAP_INT64_INT32
	FS_MAP_INT64_INT64
	FS_MAP_INT64_FLOAT
	FS_MAP_INT64_DOUBLE
	FS_MAP_INT64_STRING
	FS_MAP_STRING_INT32
	FS_MAP_STRING_INT64
	FS_MAP_STRING_FLOAT
	FS_MAP_STRING_DOUBLE
	FS_MAP_STRING_STRING
)

// FeatureNameSeparator joins a source name and a feature name into a fully
// qualified output column name, e.g. "driver_hourly_stats__conv_rate".
const FeatureNameSeparator = "__"

const (
	Datasource_Type_Redis    = "redis"
	Datasource_Type_Mysql    = "mysql"
	Datasource_Type_Postgres = "postgres"
)

const (
	Feature_View_Type_Batch    = "Batch"
	Feature_View_Type_Stream   = "Stream"
	Feature_View_Type_OnDemand = "OnDemand"
)

var fsTypeNames = map[FSType]string{
	FS_INT32:             "INT32",
	FS_INT64:             "INT64",
	FS_FLOAT:             "FLOAT",
	FS_DOUBLE:            "DOUBLE",
	FS_STRING:            "STRING",
	FS_BOOLEAN:           "BOOLEAN",
	FS_TIMESTAMP:         "TIMESTAMP",
	FS_ARRAY_INT32:       "ARRAY<INT32>",
	FS_ARRAY_INT64:       "ARRAY<INT64>",
	FS_ARRAY_FLOAT:       "ARRAY<FLOAT>",
	FS_ARRAY_DOUBLE:      "ARRAY<DOUBLE>",
	FS_ARRAY_STRING:      "ARRAY<STRING>",
	FS_ARRAY_ARRAY_FLOAT: "ARRAY<ARRAY<FLOAT>>",
	FS_MAP_INT32_INT32:   "MAP<INT32,INT32>",
	FS_MAP_INT32_INT64:   "MAP<INT32,INT64>",
	FS_MAP_INT32_FLOAT:   "MAP<INT32,FLOAT>",
	FS_MAP_INT32_DOUBLE:  "MAP<INT32,DOUBLE>",
	FS_MAP_INT32_STRING:  "MAP<INT32,STRING>",
	FS_MAP_INT64_INT32:   "MAP<INT64,INT32>",
	FS_MAP_INT64_INT64:   "MAP<INT64,INT64>",
	FS_MAP_INT64_FLOAT:   "MAP<INT64,FLOAT>",
	FS_MAP_INT64_DOUBLE:  "MAP<INT64,DOUBLE>",
	FS_MAP_INT64_STRING:  "MAP<INT64,STRING>",
	FS_MAP_STRING_INT32:  "MAP<STRING,INT32>",
	FS_MAP_STRING_INT64:  "MAP<STRING,INT64>",
	FS_MAP_STRING_FLOAT:  "MAP<STRING,FLOAT>",
	FS_MAP_STRING_DOUBLE: "MAP<STRING,DOUBLE>",
	FS_MAP_STRING_STRING: "MAP<STRING,STRING>",
}

var fsTypeValues = func() map[string]FSType {
	m := make(map[string]FSType, len(fsTypeNames))
	for t, name := range fsTypeNames {
		m[name] = t
	}
	return m
}()

func (t FSType) String() string {
	if name, ok := fsTypeNames[t]; ok {
		return name
	}
	return "STRING"
}

// FSTypeFromString maps a type name to its FSType. Unknown names map to
// FS_STRING.
func FSTypeFromString(name string) FSType {
	if t, ok := fsTypeValues[name]; ok {
		return t
	}
	return FS_STRING
}

package api

import (
	"fmt"

	"github.com/featuremesh/featuremesh-go-sdk/constants"
)

type Datasource struct {
	DatasourceId int    `json:"datasource_id,omitempty"`
	Type         string `json:"type"`
	Name         string `json:"name"`
	Address      string `json:"address,omitempty"`
	Database     string `json:"database,omitempty"`
	User         string `json:"user,omitempty"`
	Pwd          string `json:"pwd,omitempty"`
	Token        string `json:"token,omitempty"`

	TestMode bool `json:"-"`
}

func (d *Datasource) GenerateDSN(datasourceType string) (DSN string) {
	switch datasourceType {
	case constants.Datasource_Type_Redis:
		if d.User != "" || d.Pwd != "" {
			DSN = fmt.Sprintf("redis://%s:%s@%s/%s", d.User, d.Pwd, d.Address, d.Database)
		} else {
			DSN = fmt.Sprintf("redis://%s/%s", d.Address, d.Database)
		}
	case constants.Datasource_Type_Mysql:
		DSN = fmt.Sprintf("%s:%s@tcp(%s)/%s?timeout=10s&readTimeout=10s&writeTimeout=10s",
			d.User, d.Pwd, d.Address, d.Database)
	case constants.Datasource_Type_Postgres:
		DSN = fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable&connect_timeout=10",
			d.User, d.Pwd, d.Address, d.Database)
	}
	return
}

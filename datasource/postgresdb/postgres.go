package postgresdb

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"sync"
	"time"

	"github.com/lib/pq"
)

func init() {
	sql.Register("featuremesh-postgres", &PostgresDriver{})
}

// PostgresDriver wraps lib/pq so every connection carries a statement
// timeout. Online feature reads must fail fast rather than queue.
type PostgresDriver struct {
	driver pq.Driver
}

func (d PostgresDriver) Open(name string) (driver.Conn, error) {
	conn, err := d.driver.Open(name)
	if err != nil {
		return nil, err
	}

	if stmt, err := conn.Prepare("set statement_timeout = 500"); err == nil {
		stmt.Exec(nil)
		stmt.Close()
	}
	return conn, err
}

type Postgres struct {
	DSN          string
	DB           *sql.DB
	Name         string
	RegisterTime time.Time
}

var postgresInstances sync.Map

func GetPostgres(name string) (*Postgres, error) {
	value, ok := postgresInstances.Load(name)
	if !ok {
		return nil, fmt.Errorf("postgres not found, name:%s", name)
	}

	postgresInstance, ok := value.(*Postgres)
	if !ok {
		return nil, fmt.Errorf("postgres not found, name:%s", name)
	}

	return postgresInstance, nil
}

func (m *Postgres) Init() error {
	db, err := sql.Open("featuremesh-postgres", m.DSN)
	if err != nil {
		return err
	}

	db.SetConnMaxLifetime(60 * time.Minute)
	db.SetMaxIdleConns(50)
	db.SetMaxOpenConns(100)

	m.DB = db
	err = m.DB.Ping()
	return err
}

func RegisterPostgres(name, dsn string) {
	value, ok := postgresInstances.Load(name)
	if ok {
		postgresInstance, ok2 := value.(*Postgres)
		if ok2 && time.Since(postgresInstance.RegisterTime) < 12*time.Hour {
			return
		}
	}
	m := &Postgres{
		DSN:          dsn,
		Name:         name,
		RegisterTime: time.Now(),
	}
	err := m.Init()
	if err != nil {
		fmt.Printf("event=RegisterPostgres\tname=%s\n", name)
		panic(err)
	}
	postgresInstances.Store(name, m)
}

func RemovePostgres(name string) {
	value, ok := postgresInstances.Load(name)
	if !ok {
		return
	}
	postgres, ok := value.(*Postgres)
	if !ok {
		return
	}

	if postgres.DB != nil {
		postgres.DB.Close()
	}

	postgresInstances.Delete(name)
}

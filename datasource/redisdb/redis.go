package redisdb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

type Redis struct {
	DSN          string
	Client       *redis.Client
	Name         string
	RegisterTime time.Time
}

var redisInstances sync.Map

func GetRedis(name string) (*Redis, error) {
	value, ok := redisInstances.Load(name)
	if !ok {
		return nil, fmt.Errorf("redis not found, name:%s", name)
	}

	redisInstance, ok := value.(*Redis)
	if !ok {
		return nil, fmt.Errorf("redis not found, name:%s", name)
	}

	return redisInstance, nil
}

func (m *Redis) Init() error {
	options, err := redis.ParseURL(m.DSN)
	if err != nil {
		return err
	}
	options.DialTimeout = 10 * time.Second
	options.ReadTimeout = time.Second
	options.WriteTimeout = time.Second
	options.PoolSize = 100
	options.MinIdleConns = 10

	client := redis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return err
	}

	m.Client = client
	return nil
}

func RegisterRedis(name, dsn string) {
	value, ok := redisInstances.Load(name)
	if ok {
		redisInstance, ok2 := value.(*Redis)
		if ok2 && time.Since(redisInstance.RegisterTime) < 12*time.Hour {
			return
		}
	}
	m := &Redis{
		DSN:          dsn,
		Name:         name,
		RegisterTime: time.Now(),
	}
	err := m.Init()
	if err != nil {
		fmt.Printf("event=RegisterRedis\tname=%s\n", name)
		panic(err)
	}
	redisInstances.Store(name, m)
}

func RemoveRedis(name string) {
	value, ok := redisInstances.Load(name)
	if !ok {
		return
	}
	redisInstance, ok := value.(*Redis)
	if !ok {
		return
	}

	if redisInstance.Client != nil {
		redisInstance.Client.Close()
	}

	redisInstances.Delete(name)
}

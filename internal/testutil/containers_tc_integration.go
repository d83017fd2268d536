//go:build integration

package testutil

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	pgrepo "github.com/Gunvolt24/seafood-shop/internal/repo/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	tc "github.com/testcontainers/testcontainers-go"
	tcpg "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
	"github.com/testcontainers/testcontainers-go/wait"
)

var tcLogger = log.New(os.Stdout, "[tc] ", log.LstdFlags|log.Lmsgprefix)

// lifecycleLog — одна строка на каждую фазу жизни контейнера.
func lifecycleLog(image string) tc.ContainerLifecycleHooks {
	phase := func(name string) tc.ContainerHook {
		return func(_ context.Context, c tc.Container) error {
			id := c.GetContainerID()
			if len(id) > 12 {
				id = id[:12]
			}
			tcLogger.Printf("%-10s %s id=%s", name, image, id)
			return nil
		}
	}
	return tc.ContainerLifecycleHooks{
		PostCreates:    []tc.ContainerHook{phase("created")},
		PostReadies:    []tc.ContainerHook{phase("ready")},
		PostTerminates: []tc.ContainerHook{phase("terminated")},
	}
}

// PGContainer — Postgres витрины: DSN для миграций и готовый пул.
type PGContainer struct {
	Container *tcpg.PostgresContainer
	Pool      *pgxpool.Pool
	DSN       string
}

const postgresImage = "postgres:16-alpine"

// StartPostgresTC — пустая база shop; схему накатывает ApplyMigrationsGoose.
func StartPostgresTC(ctx context.Context) (*PGContainer, func(context.Context) error, error) {
	pg, err := tcpg.Run(ctx, postgresImage,
		tc.WithLifecycleHooks(lifecycleLog(postgresImage)),
		tcpg.WithDatabase("shop"),
		tcpg.WithUsername("shop"),
		tcpg.WithPassword("shop"),
		tcpg.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run postgres: %w", err)
	}

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = tc.TerminateContainer(pg)
		return nil, nil, fmt.Errorf("postgres dsn: %w", err)
	}
	pool, err := pgrepo.NewPool(ctx, dsn, 5)
	if err != nil {
		_ = tc.TerminateContainer(pg)
		return nil, nil, err
	}

	stop := func(context.Context) error {
		pool.Close()
		return tc.TerminateContainer(pg)
	}
	return &PGContainer{Container: pg, Pool: pool, DSN: dsn}, stop, nil
}

// KafkaEnv — Redpanda вместо Kafka: тот же протокол, старт за секунды.
type KafkaEnv struct {
	Container *redpanda.Container
	Brokers   []string
	BaseTopic string
}

const redpandaImage = "docker.redpanda.com/redpandadata/redpanda:v23.3.8"

func StartKafkaTC(ctx context.Context, baseTopic string) (*KafkaEnv, func(context.Context) error, error) {
	rp, err := redpanda.Run(ctx, redpandaImage,
		tc.WithLifecycleHooks(lifecycleLog(redpandaImage)),
		redpanda.WithAutoCreateTopics(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run redpanda: %w", err)
	}
	seed, err := rp.KafkaSeedBroker(ctx)
	if err != nil {
		_ = tc.TerminateContainer(rp)
		return nil, nil, fmt.Errorf("redpanda seed broker: %w", err)
	}

	stop := func(context.Context) error { return tc.TerminateContainer(rp) }
	return &KafkaEnv{Container: rp, Brokers: []string{seed}, BaseTopic: baseTopic}, stop, nil
}

// RedisEnv — Redis для корзины.
type RedisEnv struct {
	Container tc.Container
	URL       string
}

const redisImage = "redis:7-alpine"

func StartRedisTC(ctx context.Context) (*RedisEnv, func(context.Context) error, error) {
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:          redisImage,
			ExposedPorts:   []string{"6379/tcp"},
			LifecycleHooks: []tc.ContainerLifecycleHooks{lifecycleLog(redisImage)},
			WaitingFor:     wait.ForLog("Ready to accept connections").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("run redis: %w", err)
	}

	endpoint, err := c.PortEndpoint(ctx, "6379/tcp", "redis")
	if err != nil {
		_ = tc.TerminateContainer(c)
		return nil, nil, fmt.Errorf("redis endpoint: %w", err)
	}

	stop := func(context.Context) error { return tc.TerminateContainer(c) }
	return &RedisEnv{Container: c, URL: endpoint + "/0"}, stop, nil
}

package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"ton-trivia-service/internal/app"
	"ton-trivia-service/internal/domain"
	"ton-trivia-service/internal/infra/memory"
	pgloader "ton-trivia-service/internal/infra/postgres"
	pgmigrations "ton-trivia-service/internal/infra/postgres/migrations"
	redisstore "ton-trivia-service/internal/infra/redis"
)

func TestSubmitResultEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	seedCategory(t, ctx, pgURL, "general", samplePool())

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	catalog := memory.NewCatalogRepository(pgloader.NewCatalogLoader(pool), 5*time.Minute)

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	scores := redisstore.NewScoreStore(redisClient)
	service := app.NewTriviaService(catalog, scores, app.Options{OwnerWallet: "UQowner"})

	questions, err := service.GetQuestions(ctx, "general")
	if err != nil {
		t.Fatalf("get questions: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected whole 3-question pool, got %d", len(questions))
	}

	wallet := domain.WalletInfo(`{"account":{"address":"UQalice"}}`)
	outcome := service.SubmitResult(ctx, domain.MatchResult{
		Wallet: wallet, UserScore: 3, OpponentScore: 1, Stake: 2,
	})
	if outcome.Winner != domain.WinnerUser || outcome.Commission != 0.3 {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	service.SubmitResult(ctx, domain.MatchResult{
		Wallet: wallet, UserScore: 5, OpponentScore: 5, Stake: 2,
	})

	entries, err := service.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 1 || entries[0].Player != "UQalice" || entries[0].Score != 8 || entries[0].Rank != 1 {
		t.Fatalf("unexpected leaderboard: %+v", entries)
	}
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "trivia", "POSTGRES_PASSWORD": "triviapass", "POSTGRES_DB": "triviadb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://trivia:triviapass@%s:%s/triviadb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func seedCategory(t *testing.T, ctx context.Context, dsn, name string, pool []domain.Question) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	data, err := json.Marshal(pool)
	if err != nil {
		t.Fatalf("marshal pool: %v", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO categories (name, data) VALUES (?, ?::jsonb) ON CONFLICT (name) DO UPDATE SET data=EXCLUDED.data`, name, string(data)); err != nil {
		t.Fatalf("insert category: %v", err)
	}
}

func samplePool() []domain.Question {
	return []domain.Question{
		{Text: "What is the capital city of France?", Options: []string{"Berlin", "Madrid", "Paris", "Rome"}, CorrectIndex: 2},
		{Text: "Which planet is known as the Red Planet?", Options: []string{"Earth", "Mars", "Venus", "Jupiter"}, CorrectIndex: 1},
		{Text: "What was the first cryptocurrency ever created?", Options: []string{"Ethereum", "Litecoin", "Bitcoin", "Dogecoin"}, CorrectIndex: 2},
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}

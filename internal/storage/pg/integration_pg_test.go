package pg

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/diskusi-dev/diskusi/internal/config"
	"github.com/diskusi-dev/diskusi/internal/domain"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

var storage *Storage

func TestMain(m *testing.M) {
	ctx := context.Background()
	var container *postgres.PostgresContainer
	storage, container = mustSetup(ctx)
	defer teardown(ctx, storage, container)

	exitCode := m.Run()
	os.Exit(exitCode)
}

func mustSetup(ctx context.Context) (*Storage, *postgres.PostgresContainer) {
	dbName := "diskusi"
	dbUser := "user"
	dbPassword := "password"
	container, err := postgres.Run(ctx,
		"postgres:15.3-alpine",
		postgres.WithInitScripts(filepath.Join("migrations", "init.sql")),
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			// First, we wait for the container to log readiness twice.
			// This is because it will restart itself after the first startup.
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start container: %s", err)
	}
	containerPort, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatalf("failed to obtain container port: %s", err)
	}
	port, err := strconv.Atoi(containerPort.Port())
	if err != nil {
		log.Fatalf("failed to obtain int container port: %s", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("failed to obtain container host: %s", err)
	}

	storage, err := New(&config.Config{Private: config.Private{Pg: config.Pg{Host: host, Port: port, User: dbUser, Password: dbPassword, Dbname: dbName}}})
	if err != nil {
		log.Fatalf("failed to connect to postgres container: %s", err)
	}
	return storage, container
}

func teardown(ctx context.Context, storage *Storage, container *postgres.PostgresContainer) {
	if err := storage.Cleanup(); err != nil {
		log.Printf("failed to close storage connection: %s", err)
	}
	if err := container.Terminate(ctx); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
}

// truncateAll resets every table between tests. Cascades clear the dependent
// rows.
func truncateAll(t *testing.T) {
	t.Helper()
	if _, err := storage.db.Exec(`TRUNCATE users CASCADE`); err != nil {
		t.Fatalf("failed to truncate tables: %s", err)
	}
}

func seedUser(t *testing.T, username string) string {
	t.Helper()
	registered, err := storage.AddUser(domain.RegisterUser{Username: username, Password: "hashed", Fullname: username + " fullname"})
	if err != nil {
		t.Fatalf("failed to seed user: %s", err)
	}
	return registered.Id
}

func seedThread(t *testing.T, owner string) string {
	t.Helper()
	added, err := storage.AddThread(domain.ThreadCreation{Title: "sebuah thread", Body: "sebuah body thread", Owner: owner})
	if err != nil {
		t.Fatalf("failed to seed thread: %s", err)
	}
	return added.Id
}

func seedComment(t *testing.T, threadId, owner string) string {
	t.Helper()
	added, err := storage.AddComment(domain.CommentCreation{Content: "sebuah comment"}, threadId, owner)
	if err != nil {
		t.Fatalf("failed to seed comment: %s", err)
	}
	return added.Id
}

func seedReply(t *testing.T, commentId, owner string) string {
	t.Helper()
	added, err := storage.AddReply(domain.ReplyCreation{Content: "sebuah balasan"}, commentId, owner)
	if err != nil {
		t.Fatalf("failed to seed reply: %s", err)
	}
	return added.Id
}

func randomID(prefix string) string {
	return utils.GenerateID(prefix)
}

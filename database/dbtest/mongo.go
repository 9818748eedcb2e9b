// Package dbtest starts a disposable MongoDB for repository integration tests.
// Tests using it are skipped unless EVENTRA_INTEGRATION=1.
package dbtest

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// Shared container for all tests in a package
	sharedContainer testcontainers.Container
	sharedURI       string
	sharedMu        sync.Mutex
)

// Enabled reports whether integration tests were requested.
func Enabled() bool {
	return os.Getenv("EVENTRA_INTEGRATION") == "1"
}

// NewTestDB returns a fresh database on a shared mongo:7 container. The
// database is dropped when the test finishes.
func NewTestDB(t *testing.T) *mongo.Database {
	t.Helper()
	if !Enabled() {
		t.Skip("set EVENTRA_INTEGRATION=1 to run MongoDB integration tests")
	}

	ctx := context.Background()
	uri := sharedMongoURI(t, ctx)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err, "Failed to connect to MongoDB")
	require.NoError(t, client.Ping(ctx, nil), "Failed to ping MongoDB")

	db := client.Database("eventra_test_" + uuid.NewString()[:8])
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	return db
}

func sharedMongoURI(t *testing.T, ctx context.Context) string {
	t.Helper()
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if sharedContainer != nil {
		return sharedURI
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor: wait.ForListeningPort("27017/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "Failed to start MongoDB container")

	host, err := container.Host(ctx)
	require.NoError(t, err, "Failed to get container host")
	port, err := container.MappedPort(ctx, "27017/tcp")
	require.NoError(t, err, "Failed to get mapped port")

	sharedContainer = container
	sharedURI = fmt.Sprintf("mongodb://%s:%s", host, port.Port())
	return sharedURI
}

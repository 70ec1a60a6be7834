//go:build integration

package containers

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoContainer wraps a testcontainers MongoDB instance.
type MongoContainer struct {
	Container *tcmongo.MongoDBContainer
	URI       string
	Client    *mongo.Client
}

// NewMongoContainer starts a MongoDB container and connects a client to it.
// The container is terminated when the test finishes.
func NewMongoContainer(t *testing.T) *MongoContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcmongo.Run(ctx, "mongo:7")
	if err != nil {
		t.Fatalf("failed to start mongo container: %v", err)
	}
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get mongo connection string: %v", err)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("failed to connect to mongo: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	if err := client.Ping(ctx, nil); err != nil {
		t.Fatalf("failed to ping mongo: %v", err)
	}

	return &MongoContainer{Container: container, URI: uri, Client: client}
}

// Database returns a database handle on the container.
func (m *MongoContainer) Database(name string) *mongo.Database {
	return m.Client.Database(name)
}

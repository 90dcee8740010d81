// Package mongostore persists envelope-bearing documents in MongoDB.
//
// Every write goes through Processor.Store and every read through
// Processor.Load, so a collection only ever receives well-formed envelopes
// and rows corrupted outside the application are reported on read.
package mongostore

import (
	"context"
	"errors"
	"time"

	"github.com/zoobzio/cipherstring"
	cbson "github.com/zoobzio/cipherstring/bson"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Sentinel errors for programmatic error handling.
var (
	ErrEmptyID  = errors.New("empty id")
	ErrNotFound = errors.New("not found")
)

// Collection stores documents of type T keyed by string id.
type Collection[T cipherstring.Cloner[T]] struct {
	coll *mongo.Collection
	proc *cipherstring.Processor[T]
}

// New wraps coll. T is encoded with its bson struct tags.
func New[T cipherstring.Cloner[T]](coll *mongo.Collection) (*Collection[T], error) {
	proc, err := cipherstring.Use[T](cbson.New())
	if err != nil {
		return nil, err
	}
	return &Collection[T]{coll: coll, proc: proc}, nil
}

// Connect opens a client, verifies it with a ping and returns the named
// collection. The caller disconnects the client via coll.Database().Client().
func Connect(ctx context.Context, uri, dbName, collName string) (*mongo.Collection, error) {
	if uri == "" {
		return nil, errors.New("mongo uri is empty")
	}
	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := cli.Ping(pctx, nil); err != nil {
		_ = cli.Disconnect(ctx)
		return nil, err
	}
	return cli.Database(dbName).Collection(collName), nil
}

// Put verifies doc and upserts it under id.
func (c *Collection[T]) Put(ctx context.Context, id string, doc *T) error {
	if id == "" {
		return ErrEmptyID
	}
	data, err := c.proc.Store(ctx, doc)
	if err != nil {
		return err
	}
	_, err = c.coll.ReplaceOne(ctx, bson.M{"_id": id}, bson.Raw(data), options.Replace().SetUpsert(true))
	return err
}

// Get loads and verifies the document stored under id.
func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	raw, err := c.coll.FindOne(ctx, bson.M{"_id": id}).Raw()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c.proc.Load(ctx, raw)
}

// Delete removes the document stored under id.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	_, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

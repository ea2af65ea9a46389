package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// Tx runs a function inside one Mongo multi-document transaction. Every
// public operation that does several dependent writes goes through here, so
// a failure partway cannot leave half-written state.
type Tx struct {
	client *mongo.Client
}

func NewTx(client *mongo.Client) *Tx {
	return &Tx{client: client}
}

func (t *Tx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	})
	return err
}

package repositories_test

import (
	"context"
	"errors"
	"testing"

	"blog-api/models"
	"blog-api/repositories"
	"blog-api/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_TransactionRollsBack(t *testing.T) {
	db := testutils.SetupTestDB(t)
	gateway := repositories.NewGateway(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := gateway.Transaction(ctx, func(tx repositories.Gateway) error {
		if err := tx.Tags().Create(ctx, &models.Tag{Name: "temporary"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = gateway.Tags().GetByName(ctx, "temporary")
	var notFound *models.ErrorNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestGateway_Ping(t *testing.T) {
	db := testutils.SetupTestDB(t)

	assert.NoError(t, repositories.NewGateway(db).Ping(context.Background()))
}

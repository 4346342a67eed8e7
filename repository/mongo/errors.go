package mongo

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/traPtitech/sociogram/repository"
)

func convertError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return repository.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return repository.ErrAlreadyExists
	default:
		return err
	}
}

package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/luthfiarifin/elda-backend/internal/model"
	repo "github.com/luthfiarifin/elda-backend/internal/speech/repository"
)

// CreateContact inserts a new Contact document and returns the created entity.
func (r *implRepository) CreateContact(ctx context.Context, opt repo.CreateContactOptions) (model.Contact, error) {
	contact := model.Contact{
		Name:         opt.Name,
		PhoneNumber:  opt.PhoneNumber,
		Relationship: opt.Relationship,
		Prompt:       opt.Prompt,
		CreatedAt:    time.Now().UTC(),
	}

	res, err := r.db.Collection(collContacts).InsertOne(ctx, contact)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateContact"), err)
		return model.Contact{}, repo.ErrFailedToInsert
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		contact.ID = id
	}
	return contact, nil
}

// ListContacts retrieves contacts, optionally filtered by a case-insensitive
// name substring, newest first.
func (r *implRepository) ListContacts(ctx context.Context, opt repo.ListContactsOptions) ([]model.Contact, error) {
	cursor, err := r.db.Collection(collContacts).Find(
		ctx,
		buildContactFilter(opt.Name),
		options.Find().SetSort(newestFirst()),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListContacts"), err)
		return nil, repo.ErrFailedToList
	}
	defer cursor.Close(ctx)

	var contacts []model.Contact
	if err := cursor.All(ctx, &contacts); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListContacts"), err)
		return nil, repo.ErrFailedToList
	}
	return contacts, nil
}

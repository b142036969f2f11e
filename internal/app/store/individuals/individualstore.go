// internal/app/store/individuals/individualstore.go
package individualstore

import (
	"context"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/lnctu/sihportal/internal/app/system/directory"
	"github.com/lnctu/sihportal/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("individuals")}
}

// Create inserts a new individual registration. The folded search columns
// are derived here so callers never have to keep them in sync.
func (s *Store) Create(ctx context.Context, ind models.Individual) (models.Individual, error) {
	ind.ID = primitive.NewObjectID()
	ind.CreatedAt = time.Now().UTC()
	ind.NameCI = text.Fold(ind.Name)
	ind.BranchCI = text.Fold(ind.Branch)
	ind.SkillsCI = directory.FoldSkills(ind.Skills)
	if _, err := s.c.InsertOne(ctx, ind); err != nil {
		return models.Individual{}, err
	}
	return ind, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Individual, error) {
	var ind models.Individual
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&ind); err != nil {
		return models.Individual{}, err
	}
	return ind, nil
}

// List returns every individual, newest first with ID as the tiebreaker.
func (s *Store) List(ctx context.Context) ([]models.Individual, error) {
	return s.find(ctx, bson.M{})
}

// Search returns the individuals matching the directory filter, in the
// same order List uses. The filter is pushed down to the server; the
// folded columns make the match identical to directory.MatchIndividual.
func (s *Store) Search(ctx context.Context, f directory.Filter) ([]models.Individual, error) {
	return s.find(ctx, directory.IndividualQuery(f))
}

func (s *Store) find(ctx context.Context, query bson.M) ([]models.Individual, error) {
	cur, err := s.c.Find(ctx, query, options.Find().SetSort(directory.Sort()))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	list := []models.Individual{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Delete removes an individual by ID. Returns the number of documents
// deleted (0 or 1); deleting a missing ID is not an error.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteAll removes every individual registration.
func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

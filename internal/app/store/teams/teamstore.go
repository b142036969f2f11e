// internal/app/store/teams/teamstore.go
package teamstore

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
	return &Store{c: db.Collection("teams")}
}

// Create inserts a new team registration, deriving the folded search
// columns from the display fields.
func (s *Store) Create(ctx context.Context, team models.Team) (models.Team, error) {
	team.ID = primitive.NewObjectID()
	team.CreatedAt = time.Now().UTC()
	team.TeamNameCI = text.Fold(team.TeamName)
	team.LeaderNameCI = text.Fold(team.LeaderName)
	team.LeaderBranchCI = text.Fold(team.LeaderBranch)
	team.LeaderSkillsCI = directory.FoldSkills(team.LeaderSkills)
	if _, err := s.c.InsertOne(ctx, team); err != nil {
		return models.Team{}, err
	}
	return team, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Team, error) {
	var team models.Team
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&team); err != nil {
		return models.Team{}, err
	}
	return team, nil
}

// List returns every team, newest first with ID as the tiebreaker.
func (s *Store) List(ctx context.Context) ([]models.Team, error) {
	return s.find(ctx, bson.M{})
}

// Search returns the teams matching the directory filter, in the same
// order List uses. The match is pushed down to the server and agrees
// with directory.MatchTeam.
func (s *Store) Search(ctx context.Context, f directory.Filter) ([]models.Team, error) {
	return s.find(ctx, directory.TeamQuery(f))
}

func (s *Store) find(ctx context.Context, query bson.M) ([]models.Team, error) {
	cur, err := s.c.Find(ctx, query, options.Find().SetSort(directory.Sort()))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	list := []models.Team{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Delete removes a team by ID. Returns the number of documents deleted
// (0 or 1); deleting a missing ID is not an error.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteAll removes every team registration.
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

// ParticipantCount sums the leader plus members across every team.
func (s *Store) ParticipantCount(ctx context.Context) (int64, error) {
	cur, err := s.c.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$project", Value: bson.M{"n": bson.M{"$add": bson.A{1, bson.M{"$size": bson.M{"$ifNull": bson.A{"$members", bson.A{}}}}}}}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$n"}}}},
	})
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)
	var out []struct {
		Total int64 `bson:"total"`
	}
	if err := cur.All(ctx, &out); err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Total, nil
}

// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll runs at startup. Each ensure* function is idempotent;
problems are aggregated so startup can fail fast with everything
visible at once.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureIndividuals(ctx, db); err != nil {
		problems = append(problems, "individuals: "+err.Error())
	}
	if err := ensureTeams(ctx, db); err != nil {
		problems = append(problems, "teams: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// The directory always reads created_at desc with _id asc tiebreak;
// search filters hit the folded columns.
func ensureIndividuals(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db.Collection("individuals"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("created_desc_id_asc"),
		},
		{
			Keys:    bson.D{{Key: "name_ci", Value: 1}},
			Options: options.Index().SetName("name_ci"),
		},
		{
			Keys:    bson.D{{Key: "branch_ci", Value: 1}},
			Options: options.Index().SetName("branch_ci"),
		},
	})
}

func ensureTeams(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db.Collection("teams"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("created_desc_id_asc"),
		},
		{
			Keys:    bson.D{{Key: "team_name_ci", Value: 1}},
			Options: options.Index().SetName("team_name_ci"),
		},
		{
			Keys:    bson.D{{Key: "leader_name_ci", Value: 1}},
			Options: options.Index().SetName("leader_name_ci"),
		},
	})
}

func createIndexes(ctx context.Context, coll *mongo.Collection, indexModels []mongo.IndexModel) error {
	for _, m := range indexModels {
		name := ""
		if m.Options != nil && m.Options.Name != nil {
			name = *m.Options.Name
		}
		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			// Same keys under a different name from an earlier
			// deployment; leave the existing index alone.
			if strings.Contains(err.Error(), "IndexOptionsConflict") {
				zap.L().Info("index exists with different options",
					zap.String("collection", coll.Name()),
					zap.String("index", name))
				continue
			}
			return err
		}
		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("index", name))
	}
	return nil
}

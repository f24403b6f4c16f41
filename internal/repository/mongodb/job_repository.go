package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"job-posting-service/internal/entity"
	"job-posting-service/internal/ident"
)

var ErrNotFound = errors.New("not found")

const collectionName = "jobs"

// listLimit bounds the unpaginated list response.
const listLimit = 1000

type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(collectionName)}
}

func (r *JobRepository) Create(ctx context.Context, job *entity.Job) (*entity.Job, error) {
	job.ID = primitive.NewObjectID()
	job.Created = ident.Timestamp()
	job.Updated = nil

	if _, err := r.coll.InsertOne(ctx, job); err != nil {
		return nil, err
	}

	// read back the stored document rather than echoing the input
	return r.GetByID(ctx, job.ID)
}

func (r *JobRepository) List(ctx context.Context) ([]entity.Job, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, err
	}

	jobs := make([]entity.Job, 0)
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Job, error) {
	var job entity.Job
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&job)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Update applies the provided fields as a single $set, refreshing `updated`
// in the same write, and returns the post-update document. Callers are
// expected to short-circuit empty patches before reaching here.
func (r *JobRepository) Update(ctx context.Context, id primitive.ObjectID, patch *entity.JobUpdate) (*entity.Job, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var job entity.Job
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": setDocument(patch)}, opts).Decode(&job)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// setDocument flattens a patch into the $set payload: only provided fields,
// plus a fresh updated timestamp.
func setDocument(patch *entity.JobUpdate) bson.M {
	set := bson.M{"updated": ident.Timestamp()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Degree != nil {
		set["degree"] = *patch.Degree
	}
	if patch.Desc != nil {
		set["desc"] = *patch.Desc
	}
	if patch.Skills != nil {
		set["skills"] = patch.Skills
	}
	if patch.Lang != nil {
		set["lang"] = patch.Lang
	}
	if patch.WorkModel != nil {
		set["work_model"] = *patch.WorkModel
	}
	return set
}

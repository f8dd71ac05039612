package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sarang-church/backend/models"
)

// ErrNewsNotFound is returned when an update targets an id with no document.
var ErrNewsNotFound = errors.New("news not found")

// NewsService persists news posts in a single collection. Numeric ids are
// minted from a counters collection so the API can carry them in paths.
type NewsService struct {
	collection *mongo.Collection
	counters   *mongo.Collection
}

func NewNewsService(m *MongoService, collection string) *NewsService {
	return &NewsService{
		collection: m.Collection(collection),
		counters:   m.Collection("counters"),
	}
}

func (s *NewsService) nextID(ctx context.Context) (int64, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": s.collection.Name()},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate news id: %w", err)
	}
	return doc.Seq, nil
}

// List returns all posts, newest date first. Documents that no longer
// decode into the expected shape are skipped rather than failing the whole
// listing.
func (s *NewsService) List(ctx context.Context) ([]models.NewsPost, error) {
	cur, err := s.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "id", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}
	defer cur.Close(ctx)

	posts := []models.NewsPost{}
	for cur.Next(ctx) {
		var p models.NewsPost
		if err := cur.Decode(&p); err != nil {
			continue
		}
		posts = append(posts, p)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to read news: %w", err)
	}
	return posts, nil
}

// Create assigns the id and timestamps and inserts the post.
func (s *NewsService) Create(ctx context.Context, post models.NewsPost) (*models.NewsPost, error) {
	id, err := s.nextID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post.ID = id
	post.CreatedAt = now
	post.UpdatedAt = now

	if _, err := s.collection.InsertOne(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to insert news: %w", err)
	}
	return &post, nil
}

// ReplaceAll overwrites the whole collection with the given posts and
// returns how many were stored. Ids are minted fresh. The clear and the
// insert are two driver calls: if the insert fails the collection is left
// empty and the caller sees the 500, so the overwrite must be retried with
// the same payload.
func (s *NewsService) ReplaceAll(ctx context.Context, posts []models.NewsPost) (int, error) {
	if _, err := s.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, fmt.Errorf("failed to clear news: %w", err)
	}
	if len(posts) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(posts))
	for i := range posts {
		id, err := s.nextID(ctx)
		if err != nil {
			return 0, err
		}
		posts[i].ID = id
		posts[i].CreatedAt = now
		posts[i].UpdatedAt = now
		docs = append(docs, posts[i])
	}

	if _, err := s.collection.InsertMany(ctx, docs); err != nil {
		return 0, fmt.Errorf("failed to insert news: %w", err)
	}
	return len(docs), nil
}

// Patch applies the given storage-side field set to one post and returns
// the updated document.
func (s *NewsService) Patch(ctx context.Context, id int64, fields bson.M) (*models.NewsPost, error) {
	fields["updated_at"] = time.Now().UTC()

	var updated models.NewsPost
	err := s.collection.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNewsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update news %d: %w", id, err)
	}
	return &updated, nil
}

// Delete removes one post by id. Deleting an id that does not exist is not
// an error.
func (s *NewsService) Delete(ctx context.Context, id int64) error {
	if _, err := s.collection.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("failed to delete news %d: %w", id, err)
	}
	return nil
}

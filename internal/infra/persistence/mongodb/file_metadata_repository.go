package mongodb

import (
	"context"
	"sort"

	"hrcore/config"
	"hrcore/internal/domain/entity"
	"hrcore/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const defaultFilesCollection = "archivos"

// fileDocument mirrors the stored metadata document. Field names keep the
// legacy Spanish keys of the collection.
type fileDocument struct {
	FileID    primitive.ObjectID `bson:"archivo_id"`
	Name      string             `bson:"nombre"`
	Container string             `bson:"contenedor"`
	SHA256    string             `bson:"sha256"`
}

// insertDocument is the shape written on Insert; _id is generated server side.
type insertDocument struct {
	Name      string `bson:"nombre"`
	Container string `bson:"contenedor"`
	SHA256    string `bson:"sha256"`
}

// fileMetadataRepository implements repository.FileMetadataRepository over the
// files collection. Reads go through aggregation pipelines that project the
// document id into archivo_id.
type fileMetadataRepository struct {
	collection *mongo.Collection
}

// NewFileMetadataRepository is the constructor for fileMetadataRepository.
func NewFileMetadataRepository(db *mongo.Database, cfg *config.Config) repository.FileMetadataRepository {
	name := defaultFilesCollection
	if cfg.Mongo != nil && cfg.Mongo.FilesCollection != "" {
		name = cfg.Mongo.FilesCollection
	}

	return &fileMetadataRepository{collection: db.Collection(name)}
}

var fileProjection = bson.D{
	{Key: "$project", Value: bson.D{
		{Key: "_id", Value: 0},
		{Key: "archivo_id", Value: "$_id"},
		{Key: "nombre", Value: 1},
		{Key: "contenedor", Value: 1},
		{Key: "sha256", Value: 1},
	}},
}

// ByID retrieves one metadata document by its hex id.
func (repo *fileMetadataRepository) ByID(ctx context.Context, fileID string) (*entity.FileMetadata, error) {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, repository.ErrFileNotFound
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: objectID}}}},
		fileProjection,
	}

	docs, err := repo.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, repository.ErrFileNotFound
	}

	return toFileMetadataDomain(docs[0]), nil
}

// ByIDs retrieves the metadata documents for a set of hex ids. The result is
// sorted by id so callers can merge it against link rows with a binary search.
func (repo *fileMetadataRepository) ByIDs(ctx context.Context, fileIDs []string) ([]*entity.FileMetadata, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(fileIDs))
	for _, id := range fileIDs {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, objectID)
	}
	if len(objectIDs) == 0 {
		return nil, nil
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$in", Value: objectIDs}}},
		}}},
		fileProjection,
	}

	docs, err := repo.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	metas := make([]*entity.FileMetadata, 0, len(docs))
	for _, doc := range docs {
		metas = append(metas, toFileMetadataDomain(doc))
	}
	sort.Slice(metas, func(i, j int) bool { return metas[i].FileID < metas[j].FileID })

	return metas, nil
}

// BySHA256 retrieves the metadata document matching a content hash, if any.
// It backs the upload dedup check.
func (repo *fileMetadataRepository) BySHA256(ctx context.Context, sha256 string) (*entity.FileMetadata, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "sha256", Value: sha256}}}},
		fileProjection,
	}

	docs, err := repo.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, repository.ErrFileNotFound
	}

	return toFileMetadataDomain(docs[0]), nil
}

// Insert writes a new metadata document and returns its generated hex id.
func (repo *fileMetadataRepository) Insert(ctx context.Context, meta *entity.FileMetadata) (string, error) {
	result, err := repo.collection.InsertOne(ctx, insertDocument{
		Name:      meta.Name,
		Container: meta.Container,
		SHA256:    meta.SHA256,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to insert file metadata")
	}

	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}

	return objectID.Hex(), nil
}

// Delete removes one metadata document by its hex id.
func (repo *fileMetadataRepository) Delete(ctx context.Context, fileID string) error {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return repository.ErrFileNotFound
	}

	if _, err := repo.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: objectID}}); err != nil {
		return errors.Wrap(err, "failed to delete file metadata")
	}

	return nil
}

func (repo *fileMetadataRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*fileDocument, error) {
	cursor, err := repo.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "failed to run file metadata aggregation")
	}
	defer cursor.Close(ctx)

	var docs []*fileDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode file metadata documents")
	}

	return docs, nil
}

func toFileMetadataDomain(doc *fileDocument) *entity.FileMetadata {
	if doc == nil {
		return nil
	}

	return &entity.FileMetadata{
		FileID:    doc.FileID.Hex(),
		Name:      doc.Name,
		Container: doc.Container,
		SHA256:    doc.SHA256,
	}
}

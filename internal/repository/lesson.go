package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Zenin-Doffy/AfterSchoolBack/internal/domain"
	"github.com/wb-go/wbf/retry"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const lessonsCollection = "lessons"

type LessonRepository struct {
	col      *mongo.Collection
	strategy retry.Strategy
}

func NewLessonRepo(db *mongo.Database, strategy retry.Strategy) *LessonRepository {
	return &LessonRepository{
		col:      db.Collection(lessonsCollection),
		strategy: strategy,
	}
}

type lessonDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Subject  string             `bson:"subject"`
	Location string             `bson:"location"`
	Price    float64            `bson:"price"`
	Spaces   int                `bson:"spaces"`
}

func (d lessonDoc) toDomain() *domain.Lesson {
	return &domain.Lesson{
		ID:       d.ID.Hex(),
		Subject:  d.Subject,
		Location: d.Location,
		Price:    d.Price,
		Spaces:   d.Spaces,
	}
}

// parseID валидирует идентификатор до обращения к хранилищу.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidLessonID, id)
	}
	return oid, nil
}

func (r *LessonRepository) List(ctx context.Context, page, limit int) ([]*domain.Lesson, error) {
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	docs, err := r.find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}

	return toDomainLessons(docs), nil
}

func (r *LessonRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Lesson, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := parseID(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}

	docs, err := r.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find lessons by ids: %w", err)
	}

	return toDomainLessons(docs), nil
}

// Search ищет занятия по готовому фильтру из BuildSearchFilter.
func (r *LessonRepository) Search(ctx context.Context, query string) ([]*domain.Lesson, error) {
	filter, err := BuildSearchFilter(query)
	if err != nil {
		return nil, err
	}

	docs, err := r.find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search lessons: %w", err)
	}

	return toDomainLessons(docs), nil
}

// Update перезаписывает переданные поля; _id не перезаписывается никогда.
func (r *LessonRepository) Update(ctx context.Context, id string, in domain.UpdateLessonInput) (*domain.Lesson, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if in.Subject != nil {
		set["subject"] = *in.Subject
	}
	if in.Location != nil {
		set["location"] = *in.Location
	}
	if in.Price != nil {
		set["price"] = *in.Price
	}
	if in.Spaces != nil {
		set["spaces"] = *in.Spaces
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc lessonDoc
	var notFound bool
	err = retry.Do(func() error {
		notFound = false
		res := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts)
		if err := res.Err(); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				notFound = true
				return nil
			}
			return err
		}
		return res.Decode(&doc)
	}, r.strategy)
	if err != nil {
		return nil, fmt.Errorf("update lesson: %w", err)
	}
	if notFound {
		return nil, domain.ErrLessonNotFound
	}

	return doc.toDomain(), nil
}

// DecrementSpaces атомарно списывает места одним условным обновлением:
// документ изменяется только если spaces >= quantity, поэтому spaces
// не может уйти в минус даже под конкурентными заказами.
func (r *LessonRepository) DecrementSpaces(ctx context.Context, id string, quantity int) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	filter := bson.M{"_id": oid, "spaces": bson.M{"$gte": quantity}}
	update := bson.M{"$inc": bson.M{"spaces": -quantity}}

	var conditionFailed bool
	err = retry.Do(func() error {
		conditionFailed = false
		res := r.col.FindOneAndUpdate(ctx, filter, update)
		if err := res.Err(); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				conditionFailed = true
				return nil
			}
			return err
		}
		return nil
	}, r.strategy)
	if err != nil {
		return fmt.Errorf("decrement spaces: %w", err)
	}
	if conditionFailed {
		return fmt.Errorf("%w: lesson %s", domain.ErrInsufficientSpaces, id)
	}

	return nil
}

func (r *LessonRepository) IncrementSpaces(ctx context.Context, id string, quantity int) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	err = retry.Do(func() error {
		_, err := r.col.UpdateByID(ctx, oid, bson.M{"$inc": bson.M{"spaces": quantity}})
		return err
	}, r.strategy)
	if err != nil {
		return fmt.Errorf("increment spaces: %w", err)
	}

	return nil
}

func (r *LessonRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := retry.Do(func() error {
		var err error
		n, err = r.col.CountDocuments(ctx, bson.M{})
		return err
	}, r.strategy)
	if err != nil {
		return 0, fmt.Errorf("count lessons: %w", err)
	}

	return n, nil
}

func (r *LessonRepository) InsertMany(ctx context.Context, lessons []*domain.Lesson) error {
	docs := make([]interface{}, 0, len(lessons))
	for _, l := range lessons {
		docs = append(docs, lessonDoc{
			Subject:  l.Subject,
			Location: l.Location,
			Price:    l.Price,
			Spaces:   l.Spaces,
		})
	}

	err := retry.Do(func() error {
		_, err := r.col.InsertMany(ctx, docs)
		return err
	}, r.strategy)
	if err != nil {
		return fmt.Errorf("insert lessons: %w", err)
	}

	return nil
}

// EnsureIndexes создает текстовый индекс для полнотекстового поиска.
func (r *LessonRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "subject", Value: "text"},
			{Key: "location", Value: "text"},
		},
	})
	if err != nil {
		return fmt.Errorf("create text index: %w", err)
	}

	return nil
}

func (r *LessonRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]lessonDoc, error) {
	var docs []lessonDoc
	err := retry.Do(func() error {
		docs = docs[:0]
		cur, err := r.col.Find(ctx, filter, opts...)
		if err != nil {
			return err
		}
		return cur.All(ctx, &docs)
	}, r.strategy)
	if err != nil {
		return nil, err
	}

	return docs, nil
}

func toDomainLessons(docs []lessonDoc) []*domain.Lesson {
	res := make([]*domain.Lesson, 0, len(docs))
	for _, d := range docs {
		res = append(res, d.toDomain())
	}
	return res
}

package database

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jmtrinidad26/ScholarManager/app/models"
)

var validate = validator.New()

// MongoStudentStore wraps the students collection with the CRUD operations
// the API exposes.
type MongoStudentStore struct {
	coll *mongo.Collection
}

func NewMongoStudentStore(coll *mongo.Collection) *MongoStudentStore {
	return &MongoStudentStore{coll: coll}
}

// ValidateStudentInput checks that every required field is present and
// non-empty, returning a ValidationError naming the missing ones.
func ValidateStudentInput(in *models.StudentInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Message: "invalid student payload"}
	}
	var fields []string
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Fields: fields}
}

// parseStudentID rejects malformed identifiers before any query is issued.
func parseStudentID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, &ValidationError{Message: "invalid student id"}
	}
	return oid, nil
}

// List returns every student document in store-native order.
func (s *MongoStudentStore) List(ctx context.Context) ([]models.Student, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, &QueryError{Op: "students find", Err: err}
	}
	defer cur.Close(ctx)

	var students []models.Student
	if err := cur.All(ctx, &students); err != nil {
		return nil, &QueryError{Op: "students decode", Err: err}
	}
	return students, nil
}

// Get returns a single student by its document id.
func (s *MongoStudentStore) Get(ctx context.Context, id string) (*models.Student, error) {
	oid, err := parseStudentID(id)
	if err != nil {
		return nil, err
	}

	var student models.Student
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&student)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &NotFoundError{Resource: "student", ID: id}
	}
	if err != nil {
		return nil, &QueryError{Op: "student find", Err: err}
	}
	return &student, nil
}

// Create validates the payload, rejects duplicates on studentNumber or
// schoolEmail, and inserts the document. A duplicate-key error from the
// store maps to ConflictError too, covering the race between the pre-check
// and the insert.
func (s *MongoStudentStore) Create(ctx context.Context, in *models.StudentInput) (*models.Student, error) {
	if err := ValidateStudentInput(in); err != nil {
		return nil, err
	}

	dup := s.coll.FindOne(ctx, bson.M{"$or": []bson.M{
		{"studentNumber": in.StudentNumber},
		{"schoolEmail": in.SchoolEmail},
	}})
	if err := dup.Err(); err == nil {
		return nil, &ConflictError{Message: "student number or school email already exists"}
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &QueryError{Op: "student duplicate check", Err: err}
	}

	student := &models.Student{
		StudentNumber: in.StudentNumber,
		SchoolEmail:   in.SchoolEmail,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Year:          in.Year,
		Branch:        in.Branch,
		Program:       in.Program,
		IsScholar:     in.IsScholar,
		CreatedAt:     time.Now(),
	}

	res, err := s.coll.InsertOne(ctx, student)
	if mongo.IsDuplicateKeyError(err) {
		return nil, &ConflictError{Message: "student number or school email already exists"}
	}
	if err != nil {
		return nil, &QueryError{Op: "student insert", Err: err}
	}

	student.ID = res.InsertedID.(primitive.ObjectID)
	return student, nil
}

// Update applies the provided fields to the document and returns its new
// state.
func (s *MongoStudentStore) Update(ctx context.Context, id string, upd *models.StudentUpdate) (*models.Student, error) {
	oid, err := parseStudentID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if upd.StudentNumber != nil {
		set["studentNumber"] = *upd.StudentNumber
	}
	if upd.SchoolEmail != nil {
		set["schoolEmail"] = *upd.SchoolEmail
	}
	if upd.FirstName != nil {
		set["firstName"] = *upd.FirstName
	}
	if upd.LastName != nil {
		set["lastName"] = *upd.LastName
	}
	if upd.Year != nil {
		set["year"] = *upd.Year
	}
	if upd.Branch != nil {
		set["branch"] = *upd.Branch
	}
	if upd.Program != nil {
		set["program"] = *upd.Program
	}
	if upd.IsScholar != nil {
		set["isScholar"] = *upd.IsScholar
	}
	if len(set) == 0 {
		return nil, &ValidationError{Message: "no fields to update"}
	}

	after := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var student models.Student
	err = s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, after).Decode(&student)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &NotFoundError{Resource: "student", ID: id}
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, &ConflictError{Message: "student number or school email already exists"}
	}
	if err != nil {
		return nil, &QueryError{Op: "student update", Err: err}
	}
	return &student, nil
}

// Delete removes the document and returns its prior state.
func (s *MongoStudentStore) Delete(ctx context.Context, id string) (*models.Student, error) {
	oid, err := parseStudentID(id)
	if err != nil {
		return nil, err
	}

	var student models.Student
	err = s.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&student)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &NotFoundError{Resource: "student", ID: id}
	}
	if err != nil {
		return nil, &QueryError{Op: "student delete", Err: err}
	}
	return &student, nil
}

// Search matches the query case-insensitively against the identifying fields.
func (s *MongoStudentStore) Search(ctx context.Context, q string) ([]models.Student, error) {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"studentNumber": re},
		{"schoolEmail": re},
		{"firstName": re},
		{"lastName": re},
	}}

	cur, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, &QueryError{Op: "students search", Err: err}
	}
	defer cur.Close(ctx)

	var students []models.Student
	if err := cur.All(ctx, &students); err != nil {
		return nil, &QueryError{Op: "students decode", Err: err}
	}
	return students, nil
}

// StudentStats summarises the collection for the list page header.
type StudentStats struct {
	Total     int64            `json:"total"`
	Scholars  int64            `json:"scholars"`
	ByProgram map[string]int64 `json:"by_program"`
}

// Stats counts students overall, scholars, and per program.
func (s *MongoStudentStore) Stats(ctx context.Context) (*StudentStats, error) {
	total, err := s.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, &QueryError{Op: "students count", Err: err}
	}
	scholars, err := s.coll.CountDocuments(ctx, bson.M{"isScholar": true})
	if err != nil {
		return nil, &QueryError{Op: "scholars count", Err: err}
	}

	cur, err := s.coll.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$program", "count": bson.M{"$sum": 1}}}},
	})
	if err != nil {
		return nil, &QueryError{Op: "students aggregate", Err: err}
	}
	defer cur.Close(ctx)

	byProgram := make(map[string]int64)
	for cur.Next(ctx) {
		var group struct {
			Program string `bson:"_id"`
			Count   int64  `bson:"count"`
		}
		if err := cur.Decode(&group); err != nil {
			return nil, &QueryError{Op: "students aggregate decode", Err: err}
		}
		byProgram[group.Program] = group.Count
	}
	if err := cur.Err(); err != nil {
		return nil, &QueryError{Op: "students aggregate", Err: err}
	}

	return &StudentStats{Total: total, Scholars: scholars, ByProgram: byProgram}, nil
}

package database

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jmtrinidad26/ScholarManager/app/models"
)

func validInput() *models.StudentInput {
	return &models.StudentInput{
		StudentNumber: "12345",
		SchoolEmail:   "a@b.edu",
		FirstName:     "Jane",
		LastName:      "Doe",
		Year:          "2nd Year",
		Branch:        "STI Global",
		Program:       "BSIT",
		IsScholar:     true,
	}
}

func TestValidateStudentInput(t *testing.T) {
	if err := ValidateStudentInput(validInput()); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	in := validInput()
	in.SchoolEmail = ""
	in.Branch = ""
	err := ValidateStudentInput(in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 2 {
		t.Errorf("missing fields = %v, want SchoolEmail and Branch", verr.Fields)
	}
}

func TestValidateStudentInputBadEmail(t *testing.T) {
	in := validInput()
	in.SchoolEmail = "not-an-email"
	var verr *ValidationError
	if !errors.As(ValidateStudentInput(in), &verr) {
		t.Fatal("malformed email should fail validation")
	}
}

// A malformed identifier must fail before any query is issued; the nil
// collection proves the store is never reached.
func TestMalformedIDNeverReachesStore(t *testing.T) {
	store := NewMongoStudentStore(nil)
	ctx := context.Background()

	for _, id := range []string{"", "zzz", "12345", "not-an-object-id"} {
		var verr *ValidationError
		if _, err := store.Delete(ctx, id); !errors.As(err, &verr) {
			t.Errorf("Delete(%q) = %v, want ValidationError", id, err)
		}
		if _, err := store.Get(ctx, id); !errors.As(err, &verr) {
			t.Errorf("Get(%q) = %v, want ValidationError", id, err)
		}
		if _, err := store.Update(ctx, id, &models.StudentUpdate{}); !errors.As(err, &verr) {
			t.Errorf("Update(%q) = %v, want ValidationError", id, err)
		}
	}
}

func TestUpdateWithNoFields(t *testing.T) {
	store := NewMongoStudentStore(nil)
	// Well-formed id, empty payload: rejected before the store is touched.
	_, err := store.Update(context.Background(), "507f1f77bcf86cd799439011", &models.StudentUpdate{})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreateRejectsInvalidInputBeforeStore(t *testing.T) {
	store := NewMongoStudentStore(nil)
	var verr *ValidationError
	if _, err := store.Create(context.Background(), &models.StudentInput{}); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

// testCollection connects to a live Mongo instance when MONGODB_URI is set,
// otherwise skips.
func testCollection(t *testing.T) *mongo.Collection {
	t.Helper()
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set, skipping live store test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connecting to MongoDB: %v", err)
	}
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	coll := client.Database("scholar_manager_test").Collection("students")
	if err := coll.Drop(ctx); err != nil {
		t.Fatalf("dropping test collection: %v", err)
	}

	unique := options.Index().SetUnique(true)
	_, err = coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: map[string]int{"studentNumber": 1}, Options: unique},
		{Keys: map[string]int{"schoolEmail": 1}, Options: unique},
	})
	if err != nil {
		t.Fatalf("creating indexes: %v", err)
	}
	return coll
}

func TestStudentStoreLifecycleLive(t *testing.T) {
	coll := testCollection(t)
	store := NewMongoStudentStore(coll)
	ctx := context.Background()

	created, err := store.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID.IsZero() {
		t.Error("created student should carry a generated id")
	}

	// The same payload conflicts regardless of which check catches it.
	var cerr *ConflictError
	if _, err := store.Create(ctx, validInput()); !errors.As(err, &cerr) {
		t.Fatalf("duplicate create = %v, want ConflictError", err)
	}

	// Same student number, different email: the pre-check's $or must catch it.
	in := validInput()
	in.SchoolEmail = "other@b.edu"
	if _, err := store.Create(ctx, in); !errors.As(err, &cerr) {
		t.Fatalf("duplicate student number = %v, want ConflictError", err)
	}

	listed, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("listed %d students, want 1", len(listed))
	}

	year := "3"
	updated, err := store.Update(ctx, created.ID.Hex(), &models.StudentUpdate{Year: &year})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Year != "3" {
		t.Errorf("updated year = %q", updated.Year)
	}

	deleted, err := store.Delete(ctx, created.ID.Hex())
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.StudentNumber != created.StudentNumber {
		t.Errorf("delete should return the prior state, got %+v", deleted)
	}

	var nferr *NotFoundError
	if _, err := store.Delete(ctx, created.ID.Hex()); !errors.As(err, &nferr) {
		t.Fatalf("repeat delete = %v, want NotFoundError", err)
	}
}

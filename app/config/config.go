package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BackendPostgres serves the read-only masterlist; BackendMongo serves full CRUD.
const (
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

type Config struct {
	Backend string
	DB      *sql.DB
	Mongo   *mongo.Client
	DBName  string
}

var AppConfig *Config

// LoadEnv loads .env if present and falls back to the process environment.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	backend := os.Getenv("STORE_BACKEND")
	if backend == "" {
		backend = BackendMongo
	}
	if backend != BackendMongo && backend != BackendPostgres {
		log.Fatalf("Invalid STORE_BACKEND %q: must be %q or %q", backend, BackendMongo, BackendPostgres)
	}

	AppConfig = &Config{Backend: backend}
}

// GetEnv returns the value of key or fallback when unset.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Backend reports which store this deployment uses. Exactly one store is
// active per deployment; the two are never mixed.
func Backend() string {
	return AppConfig.Backend
}

// InitDB opens the Postgres pool for the masterlist view and verifies it.
func InitDB() {
	host := GetEnv("POSTGRES_HOST", "localhost")
	port := GetEnv("POSTGRES_PORT", "5432")
	user := GetEnv("POSTGRES_USER", "postgres")
	password := os.Getenv("POSTGRES_PASSWORD")
	dbname := GetEnv("POSTGRES_DATABASE", "scholars")
	sslmode := GetEnv("POSTGRES_SSLMODE", "require")

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s connect_timeout=15",
		host, port, user, dbname, sslmode)
	if password != "" {
		psqlInfo += " password=" + password
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err = db.Ping(); err != nil {
		log.Fatalf("Cannot reach Postgres at %s:%s: %v", host, port, err)
	}

	AppConfig.DB = db
	log.Println("Postgres connected successfully")
}

// GetDB returns the shared Postgres pool.
func GetDB() *sql.DB {
	return AppConfig.DB
}

// InitMongo connects the Mongo client once at startup and ensures the unique
// indexes the students collection relies on.
func InitMongo(ctx context.Context) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Fatal("MONGODB_URI is not set")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("Cannot reach MongoDB:", err)
	}

	AppConfig.Mongo = client
	AppConfig.DBName = GetEnv("MONGODB_DATABASE", "scholar_manager")

	if err := ensureStudentIndexes(ctx, StudentsCollection()); err != nil {
		log.Fatal("Failed to ensure student indexes:", err)
	}
	log.Println("MongoDB connected successfully")
}

// GetMongo returns the shared Mongo client.
func GetMongo() *mongo.Client {
	return AppConfig.Mongo
}

// StudentsCollection returns the students collection handle.
func StudentsCollection() *mongo.Collection {
	return AppConfig.Mongo.Database(AppConfig.DBName).Collection("students")
}

func ensureStudentIndexes(ctx context.Context, coll *mongo.Collection) error {
	unique := options.Index().SetUnique(true)
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "studentNumber", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "schoolEmail", Value: 1}}, Options: unique},
	})
	return err
}

// Close releases whichever store handles were opened.
func Close(ctx context.Context) {
	if AppConfig.DB != nil {
		AppConfig.DB.Close()
	}
	if AppConfig.Mongo != nil {
		if err := AppConfig.Mongo.Disconnect(ctx); err != nil {
			log.Println("Error disconnecting MongoDB:", err)
		}
	}
}

package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DBName = "AssocHubDB"

var (
	client     *mongo.Client
	once       sync.Once // ✅ ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	ActivityCollection       *mongo.Collection
	UpdateProposalCollection *mongo.Collection
	OptionProposalCollection *mongo.Collection
	CalendarOptionCollection *mongo.Collection
	CreationPeriodCollection *mongo.Collection
	MaxActivitiesCollection  *mongo.Collection
	OrganCollection          *mongo.Collection
	CompanyCollection        *mongo.Collection
	UserCollection           *mongo.Collection
)

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว
func ConnectMongoDB() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		db := client.Database(DBName)
		ActivityCollection = db.Collection("Activities")
		UpdateProposalCollection = db.Collection("UpdateProposals")
		OptionProposalCollection = db.Collection("OptionProposals")
		CalendarOptionCollection = db.Collection("CalendarOptions")
		CreationPeriodCollection = db.Collection("CreationPeriods")
		MaxActivitiesCollection = db.Collection("MaxActivities")
		OrganCollection = db.Collection("Organs")
		CompanyCollection = db.Collection("Companies")
		UserCollection = db.Collection("Users")

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// MongoClient exposes the connected client (session transactions).
func MongoClient() *mongo.Client {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client
}

// GetCollection รับ Collection จาก MongoDB
func GetCollection(collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(DBName).Collection(collectionName)
}

package storage

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type database struct {
	mongoDBAuth  string
	mongoDBName  string
	mongoTimeout time.Duration

	db       *mongo.Database
	dbClient *mongo.Client

	syncIntents  *collectionWrapper
	cacheEntries *collectionWrapper

	started bool
}

func (m *database) start() error {
	log.Println("database -> start")

	//connect to the database
	clientOptions := options.Client().ApplyURI(m.mongoDBAuth)
	connectContext, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	client, err := mongo.Connect(connectContext, clientOptions)
	cancel()
	if err != nil {
		return err
	}

	//ping the database
	pingContext, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	err = client.Ping(pingContext, nil)
	cancel()
	if err != nil {
		return err
	}

	//apply checks
	db := client.Database(m.mongoDBName)

	syncIntents := &collectionWrapper{database: m, coll: db.Collection("sync_intents")}
	err = m.applySyncIntentsChecks(syncIntents)
	if err != nil {
		return err
	}

	cacheEntries := &collectionWrapper{database: m, coll: db.Collection("cache_entries")}
	err = m.applyCacheEntriesChecks(cacheEntries)
	if err != nil {
		return err
	}

	//assign the db, db client and the collections
	m.db = db
	m.dbClient = client
	m.syncIntents = syncIntents
	m.cacheEntries = cacheEntries
	m.started = true

	return nil
}

func (m *database) applySyncIntentsChecks(syncIntents *collectionWrapper) error {
	log.Println("apply sync intents checks.....")

	//add status + date_created index for the sweep query
	err := syncIntents.AddIndex(bson.D{primitive.E{Key: "status", Value: 1}, primitive.E{Key: "date_created", Value: 1}}, false)
	if err != nil {
		return err
	}

	log.Println("sync intents checks passed")
	return nil
}

func (m *database) applyCacheEntriesChecks(cacheEntries *collectionWrapper) error {
	log.Println("apply cache entries checks.....")

	//add namespace + item_id index - unique
	err := cacheEntries.AddIndex(bson.D{primitive.E{Key: "namespace", Value: 1}, primitive.E{Key: "item_id", Value: 1}}, true)
	if err != nil {
		return err
	}

	log.Println("cache entries checks passed")
	return nil
}

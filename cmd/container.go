package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/decisionhr/talentrank/matching/feature"
	"github.com/decisionhr/talentrank/matching/matchingapi"
	"github.com/decisionhr/talentrank/matching/matchinginfra"
	"github.com/decisionhr/talentrank/matching/matchingsrv"
	"github.com/decisionhr/talentrank/matching/model"
	"github.com/decisionhr/talentrank/matching/worker"
	"github.com/decisionhr/talentrank/pkg/logx"
	"github.com/decisionhr/talentrank/recruitment/application/applicationapi"
	"github.com/decisionhr/talentrank/recruitment/application/applicationinfra"
	"github.com/decisionhr/talentrank/recruitment/application/applicationsrv"
	"github.com/decisionhr/talentrank/recruitment/candidate/candidateapi"
	"github.com/decisionhr/talentrank/recruitment/candidate/candidateinfra"
	"github.com/decisionhr/talentrank/recruitment/candidate/candidatesrv"
	"github.com/decisionhr/talentrank/recruitment/job/jobapi"
	"github.com/decisionhr/talentrank/recruitment/job/jobinfra"
	"github.com/decisionhr/talentrank/recruitment/job/jobsrv"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB    *sqlx.DB
	Redis *redis.Client

	// Recruitment Services
	JobService         *jobsrv.JobService
	CandidateService   *candidatesrv.CandidateService
	ApplicationService *applicationsrv.ApplicationService

	// Matching Services
	FeatureService   *matchingsrv.FeatureService
	TrainerService   *matchingsrv.TrainerService
	PredictorService *matchingsrv.PredictorService

	// Background
	TrainWorker *worker.TrainWorker

	// API Handlers
	JobHandlers         *jobapi.Handlers
	CandidateHandlers   *candidateapi.Handlers
	ApplicationHandlers *applicationapi.Handlers
	MatchingHandlers    *matchingapi.Handlers
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}
}

func (c *Container) initServices() {
	// --- Repositories ---
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)
	candidateRepo := candidateinfra.NewPostgresCandidateRepository(c.DB)
	applicationRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)

	// --- Matching Infrastructure ---
	featureStore := matchinginfra.NewPostgresFeatureStore(c.DB)

	modelDir := os.Getenv("MODEL_DIR")
	if modelDir == "" {
		modelDir = "models/current"
	}
	artifactStore := matchinginfra.NewFSArtifactStore(modelDir)

	queueName := os.Getenv("TRAIN_QUEUE")
	if queueName == "" {
		queueName = "talentrank:train"
	}
	trainQueue := matchinginfra.NewRedisTrainQueue(c.Redis, queueName)

	// --- Domain Services ---
	c.JobService = jobsrv.NewJobService(jobRepo)
	c.CandidateService = candidatesrv.NewCandidateService(candidateRepo)
	c.ApplicationService = applicationsrv.NewApplicationService(applicationRepo)

	engineer := feature.NewEngineer(feature.Options{
		ExcludeInProgress: os.Getenv("EXCLUDE_IN_PROGRESS") != "false",
	})
	c.FeatureService = matchingsrv.NewFeatureService(
		jobRepo,
		candidateRepo,
		applicationRepo,
		featureStore,
		engineer,
	)

	trainer := model.NewTrainer(model.TrainerOptions{})
	c.PredictorService = matchingsrv.NewPredictorService(
		model.NewPredictor(),
		artifactStore,
		c.FeatureService,
	)
	c.TrainerService = matchingsrv.NewTrainerService(
		c.FeatureService,
		trainer,
		artifactStore,
		c.PredictorService,
		trainQueue,
	)

	// --- Background Worker ---
	c.TrainWorker = worker.NewTrainWorker(c.TrainerService, trainQueue)

	// --- Handlers ---
	c.JobHandlers = jobapi.NewHandlers(c.JobService)
	c.CandidateHandlers = candidateapi.NewHandlers(c.CandidateService)
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)
	c.MatchingHandlers = matchingapi.NewHandlers(
		c.FeatureService,
		c.TrainerService,
		c.PredictorService,
	)
}

package main

import (
	"context"
	"database/sql"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/streadway/amqp"

	"github.com/acadmentor/advisor/internal/catalog"
	"github.com/acadmentor/advisor/internal/config"
	"github.com/acadmentor/advisor/internal/database"
	"github.com/acadmentor/advisor/internal/logger"
	"github.com/acadmentor/advisor/internal/queue"
	"github.com/acadmentor/advisor/internal/skills"
	"github.com/acadmentor/advisor/internal/storage"
)

func main() {
	cfg, err := config.LoadWorker()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := sql.Open("postgres", cfg.DBURL)
	if err != nil {
		log.Fatal("error opening db", "err", err)
	}
	dbqueries := database.New(db)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.R2.AccessKey, cfg.R2.SecretKey, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		log.Fatal("error creating aws config", "err", err)
	}

	cat, careers, err := loadReferenceData(cfg, awsCfg)
	if err != nil {
		log.Fatal("error loading reference data", "err", err)
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatal("error connecting to RabbitMQ", "err", err)
	}

	consumer := queue.Consumer{
		DB:          dbqueries,
		R2:          cfg.R2,
		AwsConfig:   &awsCfg,
		RabbitMQURL: cfg.RabbitMQURL,
		RabbitConn:  conn,
		Catalog:     cat,
		Careers:     careers,
		Analyzer:    skills.NewAnalyzer(),
		Log:         log,
	}

	log.Info("starting consumer worker pool", "workers", cfg.Workers)
	consumer.StartWorkerPool(cfg.Workers)
}

// loadReferenceData reads the catalog and career data from the R2 bucket
// when object keys are configured, otherwise from the local data files.
func loadReferenceData(cfg config.Config, awsCfg aws.Config) (*catalog.Catalog, *catalog.CareerData, error) {
	ctx := context.Background()
	client := storage.NewR2Client(awsCfg, cfg.R2.AccountID)

	var (
		cat *catalog.Catalog
		err error
	)
	if cfg.CatalogObjectKey != "" {
		data, err := storage.Download(ctx, client, cfg.R2.Bucket, cfg.CatalogObjectKey)
		if err != nil {
			return nil, nil, err
		}
		cat, err = catalog.LoadCatalogBytes(data)
		if err != nil {
			return nil, nil, err
		}
	} else if cat, err = catalog.LoadCatalogFile(cfg.CatalogPath); err != nil {
		return nil, nil, err
	}

	var careers *catalog.CareerData
	if cfg.CareerDataObjectKey != "" {
		data, err := storage.Download(ctx, client, cfg.R2.Bucket, cfg.CareerDataObjectKey)
		if err != nil {
			return nil, nil, err
		}
		careers, err = catalog.LoadCareerDataBytes(data)
		if err != nil {
			return nil, nil, err
		}
	} else if careers, err = catalog.LoadCareerDataFile(cfg.CareerDataPath); err != nil {
		return nil, nil, err
	}

	return cat, careers, nil
}

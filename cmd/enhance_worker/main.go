package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/alexchen/identity-vault/config"
	"github.com/alexchen/identity-vault/internal/application"
	pginfra "github.com/alexchen/identity-vault/internal/infrastructure/postgres"
	"github.com/alexchen/identity-vault/pkg/ai"
	"github.com/alexchen/identity-vault/pkg/ai/gemini"
	"github.com/alexchen/identity-vault/pkg/helpers"
)

// The worker drains the enhancement queue: each job references a stored
// progress update whose extraction gets a resume-ready polish pass.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-enhance-worker", cfg.Env)

	if cfg.RabbitMQURL == "" || cfg.RabbitMQEnhanceQueue == "" {
		logger.Fatal("RabbitMQ not configured")
	}
	if cfg.GeminiAPIKey == "" {
		logger.Fatal("GEMINI_API_KEY not configured; worker has nothing to do without a model")
	}

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		logger.WithError(err).Fatal("postgres connect failed")
	}
	defer pool.Close()

	svc := &application.EnhanceService{
		Progress: pginfra.NewProgressRepository(pool),
		AI:       ai.NewGateway(gemini.New(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel, cfg.AITimeout)),
		Logger:   logger,
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		logger.WithError(err).Fatal("amqp dial failed")
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		logger.WithError(err).Fatal("amqp channel failed")
	}
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch
	if err := ch.Qos(8, 0, false); err != nil {
		logger.WithError(err).Fatal("qos failed")
	}
	if _, err := ch.QueueDeclare(cfg.RabbitMQEnhanceQueue, true, false, false, false, nil); err != nil {
		logger.WithError(err).Fatal("queue declare failed")
	}
	msgs, err := ch.Consume(cfg.RabbitMQEnhanceQueue, "", false, false, false, false, nil)
	if err != nil {
		logger.WithError(err).Fatal("consume failed")
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			var job application.EnhancementJob
			if err := json.Unmarshal(msg.Body, &job); err != nil {
				helpers.LogError(logger, "dropping malformed job", err, nil)
				_ = msg.Nack(false, false)
				continue
			}

			c, cancel := context.WithTimeout(ctx, cfg.AITimeout+15*time.Second)
			err := svc.Enhance(c, job)
			cancel()
			if err != nil {
				helpers.LogError(logger, "enhancement failed, requeueing", err, logrus.Fields{
					"update_id": job.UpdateID,
				})
				_ = msg.Nack(false, true)
				continue
			}
			_ = msg.Ack(false)
		}
		close(done)
	}()

	helpers.LogInfo(logger, "enhance worker listening", logrus.Fields{"queue": cfg.RabbitMQEnhanceQueue})
	<-stop
	logger.Info("shutting down")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}

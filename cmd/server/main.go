package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Maxime-Guy/twigane/internal/audio"
	"github.com/Maxime-Guy/twigane/internal/cache"
	"github.com/Maxime-Guy/twigane/internal/config"
	"github.com/Maxime-Guy/twigane/internal/model"
	"github.com/Maxime-Guy/twigane/internal/quiz"
	"github.com/Maxime-Guy/twigane/internal/repository"
	"github.com/Maxime-Guy/twigane/internal/retrieval"
	"github.com/Maxime-Guy/twigane/internal/service"
	"github.com/Maxime-Guy/twigane/internal/transport/rest"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}
	setupLogging(cfg)

	ctx := context.Background()
	caps := model.Capabilities{Quiz: model.CapabilityFull}

	// Teaching corpus and retrieval index. A load failure degrades chat to
	// canned fallbacks instead of killing the process.
	var index *retrieval.Index
	entries, err := repository.LoadCorpus(cfg.Dataset.CorpusPath)
	if err != nil {
		logrus.WithError(err).Warn("teaching corpus unavailable, chat runs on fallbacks")
		caps.Retrieval = model.CapabilityUnavailable
	} else {
		index, err = retrieval.BuildIndex(entries, retrieval.Options{
			MaxVocab:      cfg.Retrieval.MaxVocab,
			MinSimilarity: cfg.Retrieval.MinSimilarity,
		})
		if err != nil {
			logrus.WithError(err).Warn("retrieval index build failed")
			caps.Retrieval = model.CapabilityUnavailable
		} else {
			caps.Retrieval = model.CapabilityFull
			logrus.WithField("entries", index.Len()).Info("retrieval index ready")
		}
	}

	// Audio clip index. Independent of the corpus: either may load alone.
	var clips *audio.Index
	rows, err := repository.LoadAudioTable(cfg.Dataset.AudioTSV)
	if err != nil {
		logrus.WithError(err).Warn("audio table unavailable, pronunciation runs without clips")
		caps.Audio = model.CapabilityUnavailable
	} else {
		clips = audio.BuildIndex(rows, repository.ClipExists(cfg.Dataset.ClipsDir),
			audio.WithFuzzyThreshold(cfg.Audio.FuzzyThreshold))
		if clips.Len() == 0 {
			caps.Audio = model.CapabilityDegraded
		} else {
			caps.Audio = model.CapabilityFull
		}
		logrus.WithField("clips", clips.Len()).Info("audio index ready")
	}

	// MongoDB: optional. Without it analytics lose their archive but the
	// request path keeps working.
	var activityRepo repository.ActivityRepo
	var feedbackRepo repository.FeedbackRepo
	mongoCtx, cancelMongo := context.WithTimeout(ctx, 5*time.Second)
	mongoClient, err := mongo.Connect(mongoCtx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err == nil {
		err = mongoClient.Ping(mongoCtx, nil)
	}
	cancelMongo()
	if err != nil {
		logrus.WithError(err).Warn("mongodb unavailable, analytics archive disabled")
	} else {
		defer mongoClient.Disconnect(ctx)
		db := mongoClient.Database(cfg.Mongo.Database)
		activityRepo = repository.NewActivityRepo(db)
		feedbackRepo = repository.NewFeedbackRepo(db)
		logrus.Info("connected to mongodb")
	}

	// Redis: optional as well.
	var analyticsCache cache.AnalyticsCache
	rdb := redis.NewClient(&redis.Options{Addr: strings.TrimPrefix(cfg.Redis.Addr, "redis://")})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logrus.WithError(err).Warn("redis unavailable, progress counters disabled")
		rdb.Close()
	} else {
		defer rdb.Close()
		analyticsCache = cache.NewAnalyticsCache(rdb)
		logrus.Info("connected to redis")
	}

	switch {
	case analyticsCache != nil && activityRepo != nil:
		caps.Analytics = model.CapabilityFull
	case analyticsCache != nil || activityRepo != nil:
		caps.Analytics = model.CapabilityDegraded
	default:
		caps.Analytics = model.CapabilityUnavailable
	}

	// Services
	translatorSvc := service.NewTranslatorService(&cfg.Translator)
	if translatorSvc.Enabled() {
		caps.Translator = model.CapabilityFull
	} else {
		logrus.Warn("translator endpoint not configured, running degraded")
		caps.Translator = model.CapabilityDegraded
	}

	analyticsSvc := service.NewAnalyticsService(analyticsCache, activityRepo)
	chatSvc := service.NewChatService(index, clips, translatorSvc, analyticsSvc, cfg.Audio.MaxSuggestions)
	quizSvc := service.NewQuizService(quiz.NewManager(), analyticsSvc)

	router := rest.NewRouter(&rest.Container{
		ChatService:       chatSvc,
		TranslatorService: translatorSvc,
		QuizService:       quizSvc,
		AnalyticsService:  analyticsSvc,
		FeedbackRepo:      feedbackRepo,
		AudioIndex:        clips,
		ClipsDir:          cfg.Dataset.ClipsDir,
		Capabilities:      caps,
		AdminEmail:        cfg.Admin.Email,
		CORSOrigins:       cfg.Server.CORSOrigins,
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	go func() {
		logrus.WithField("addr", cfg.Addr()).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("listen and serve")
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Fatal("server forced to shutdown")
	}

	logrus.Info("server exited")
}

func setupLogging(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if cfg.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

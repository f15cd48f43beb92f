package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/osukit/pp-api/internal/calc"
	"github.com/osukit/pp-api/internal/store"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// ArchiveQueue defines the interface for the score archive worker pool
type ArchiveQueue interface {
	Enqueue(score store.Score) bool
	QueueDepth() int
}

type Config struct {
	Calculator calc.Service
	WorkerPool ArchiveQueue
	Archive    store.Archive
	Redis      *redis.Client
	Logger     *zap.Logger
}

type Handler struct {
	calc      calc.Service
	pool      ArchiveQueue
	archive   store.Archive
	redis     *redis.Client
	logger    *zap.SugaredLogger
	validator *validator.Validate
}

func New(cfg Config) *Handler {
	return &Handler{
		calc:      cfg.Calculator,
		pool:      cfg.WorkerPool,
		archive:   cfg.Archive,
		redis:     cfg.Redis,
		logger:    cfg.Logger.Sugar(),
		validator: validator.New(),
	}
}

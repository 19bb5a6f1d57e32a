package cron

import (
	"Rentora/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine       *cron.Cron
	trendingSpec string
	trendingJob  *job.TrendingJob
}

func NewCronManager(trendingSpec string, trendingJob *job.TrendingJob) *Manager {
	if trendingSpec == "" {
		trendingSpec = "@every 5m"
	}
	return &Manager{
		engine:       cron.New(cron.WithSeconds()),
		trendingSpec: trendingSpec,
		trendingJob:  trendingJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.trendingSpec, s.trendingJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}

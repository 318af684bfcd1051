package cron

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	cronv3 "github.com/robfig/cron/v3"

	"github.com/mailtriage/mailtriage/config"
	"github.com/mailtriage/mailtriage/interfaces"
	"github.com/mailtriage/mailtriage/internal/logger"
	"github.com/mailtriage/mailtriage/internal/tracing"
)

// CronManager schedules background maintenance jobs. Currently one job:
// sweeping expired per-request attachment namespaces from local storage.
type CronManager struct {
	cfg     *config.Config
	log     logger.Logger
	cron    *cronv3.Cron
	storage interfaces.StorageService
	jobIDs  map[string]cronv3.EntryID

	sweepLock sync.Mutex
}

type localDirStorage interface {
	BaseDir() string
}

func NewCronManager(cfg *config.Config, log logger.Logger, storage interfaces.StorageService) *CronManager {
	return &CronManager{
		cfg:     cfg,
		log:     log,
		cron:    cronv3.New(),
		storage: storage,
		jobIDs:  make(map[string]cronv3.EntryID),
	}
}

func (cm *CronManager) Start() error {
	id, err := cm.cron.AddFunc(cm.cfg.CronConfig.AttachmentSweepSchedule, func() {
		cm.sweepAttachments()
	})
	if err != nil {
		return err
	}
	cm.jobIDs["attachment_sweep"] = id

	cm.cron.Start()
	cm.log.Infof("cron manager started, attachment sweep schedule: %s", cm.cfg.CronConfig.AttachmentSweepSchedule)
	return nil
}

func (cm *CronManager) Stop() {
	ctx := cm.cron.Stop()
	<-ctx.Done()
}

// sweepAttachments removes request namespaces older than the retention
// window. Only meaningful for the local backend; bucket-backed storage is
// expected to carry its own lifecycle rules.
func (cm *CronManager) sweepAttachments() {
	cm.sweepLock.Lock()
	defer cm.sweepLock.Unlock()

	span, _ := tracing.StartTracerSpan(context.Background(), "CronManager.sweepAttachments")
	defer span.Finish()
	tracing.TagComponentCronJob(span)

	local, ok := cm.storage.(localDirStorage)
	if !ok {
		return
	}

	retention := time.Duration(cm.cfg.CronConfig.AttachmentRetentionHrs) * time.Hour
	cutoff := time.Now().Add(-retention)

	entries, err := os.ReadDir(local.BaseDir())
	if err != nil {
		tracing.TraceErr(span, err)
		cm.log.Errorf("attachment sweep failed to read storage dir: %v", err)
		return
	}

	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(local.BaseDir(), entry.Name())
		if err := os.RemoveAll(path); err != nil {
			tracing.TraceErr(span, err)
			cm.log.Warnf("attachment sweep failed to remove %s: %v", path, err)
			continue
		}
		removed++
	}

	if removed > 0 {
		cm.log.Infof("attachment sweep removed %d expired request namespaces", removed)
	}
}

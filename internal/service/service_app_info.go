package service

import (
	"context"

	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/models"
)

type appInfoService struct {
	info models.BuildInfo

	logger *logger.Logger
}

func NewAppInfoService(info models.BuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		info:   info,
		logger: logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.String()
}

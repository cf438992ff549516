package service

import (
	"github.com/MKhiriev/notesync/internal/config"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/models"
)

type Services struct {
	ArchiveService ArchiveService
	AppInfoService AppInfoService
}

func NewServices(cfg config.ServerConfig, info models.BuildInfo, logger *logger.Logger) *Services {
	return &Services{
		ArchiveService: NewArchiveService(cfg, logger),
		AppInfoService: NewAppInfoService(info, logger),
	}
}

package service

import (
	"github.com/MKhiriev/flourish-client/internal/adapter"
	"github.com/MKhiriev/flourish-client/internal/logger"
	"github.com/MKhiriev/flourish-client/internal/notification"
	"github.com/MKhiriev/flourish-client/internal/store"
)

type ClientServices struct {
	QuestionnaireService ClientQuestionnaireService
	InsightService       ClientInsightService
	UserService          ClientUserService
	InsightStream        InsightStream
	AppInfoService       AppInfoService
}

func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	notifications *notification.Center,
	appInfo AppInfoService,
	logger *logger.Logger,
) *ClientServices {
	return &ClientServices{
		QuestionnaireService: NewClientQuestionnaireService(storages, serverAdapter, logger),
		InsightService:       NewClientInsightService(serverAdapter, logger),
		UserService:          NewClientUserService(storages, serverAdapter, notifications, logger),
		InsightStream:        NewInsightStream(serverAdapter, notifications, logger),
		AppInfoService:       appInfo,
	}
}

package services

import (
	"encoding/json"
	"log"

	"github.com/firhaanali/dashboard-dbusana-sub007/config"
	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLogService writes admin action audit rows.
type ActivityLogService struct {
	db *gorm.DB
}

func NewActivityLogService(db *gorm.DB) *ActivityLogService {
	return &ActivityLogService{db: db}
}

// LogActivityRequest contains the parameters for logging an activity
type LogActivityRequest struct {
	Action       string         // created, updated, deleted
	ResourceType string         // models.ResourceTypeProduct, ...
	ResourceID   string         // ID of the affected row
	Changes      map[string]any // {before: {...}, after: {...}}
	Status       string         // models.StatusSuccess or models.StatusFailed
	Context      *gin.Context   // for IP and User-Agent extraction
}

// LogActivity writes one audit row. Failures are logged and swallowed so
// auditing never fails the request it describes.
func (s *ActivityLogService) LogActivity(req LogActivityRequest) error {
	ipAddress := ""
	userAgent := ""
	if req.Context != nil {
		ipAddress = req.Context.ClientIP()
		userAgent = req.Context.GetHeader("User-Agent")
	}

	var changesJSON datatypes.JSON
	if req.Changes != nil {
		data, err := json.Marshal(req.Changes)
		if err != nil {
			log.Printf("[activity-log] failed to marshal changes: %v", err)
			changesJSON = datatypes.JSON([]byte("{}"))
		} else {
			changesJSON = datatypes.JSON(data)
		}
	}

	if req.Status == "" {
		req.Status = models.StatusSuccess
	}

	entry := models.ActivityLog{
		ID:           uuid.Must(uuid.NewV7()).String(),
		Action:       req.Action,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		Changes:      changesJSON,
		Status:       req.Status,
		IPAddress:    ipAddress,
		UserAgent:    userAgent,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		log.Printf("[activity-log] failed to write log action=%s resource=%s err=%v", req.Action, req.ResourceType, err)
		return err
	}
	return nil
}

package middleware

import (
	"strings"

	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/firhaanali/dashboard-dbusana-sub007/services"
	"github.com/gin-gonic/gin"
)

// pathToResourceType maps URL path segments to resource types
var pathToResourceType = map[string]string{
	"products":        models.ResourceTypeProduct,
	"returns":         models.ResourceTypeReturn,
	"affiliate":       models.ResourceTypeAffiliate,
	"expenses":        models.ResourceTypeExpense,
	"purchase-orders": models.ResourceTypePurchase,
}

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	"POST":   "created",
	"PATCH":  "updated",
	"PUT":    "updated",
	"DELETE": "deleted",
}

// ActivityLogger records mutating admin calls after they complete. GET
// requests are skipped; unknown paths are skipped.
func ActivityLogger(svc *services.ActivityLogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		action, ok := methodToActionVerb[c.Request.Method]
		if !ok {
			c.Next()
			return
		}

		resourceType := resourceTypeFromPath(c.FullPath())
		if resourceType == "" {
			c.Next()
			return
		}

		c.Next()

		status := models.StatusSuccess
		if c.Writer.Status() >= 400 {
			status = models.StatusFailed
		}

		// Controllers set "resourceID" after a successful write.
		resourceID := c.GetString("resourceID")
		if resourceID == "" {
			resourceID = c.Param("id")
		}

		_ = svc.LogActivity(services.LogActivityRequest{
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			Status:       status,
			Context:      c,
		})
	}
}

func resourceTypeFromPath(fullPath string) string {
	for segment, resourceType := range pathToResourceType {
		if strings.Contains(fullPath, "/"+segment) {
			return resourceType
		}
	}
	return ""
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"webprompt_server/internal/utils"
)

// maxErrLen caps error text embedded in the diagnostic payload.
const maxErrLen = 50

// GET /test
//
// Connectivity diagnostic for the optional datastore. The endpoint reports,
// it never fails: every fault is folded into the response fields and the
// status is always 200.
func (h *APIHandler) TestConnection(c *gin.Context) {
	results := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Database not configured (optional)",
		"collections":       []string{},
		"connection_status": "Not connected",
	}

	st := h.dbSvc.Status(c.Request.Context())
	switch {
	case !st.Configured:
		// defaults above already describe this state
	case st.Connected && st.Err == "":
		results["database"] = "✅ Connected and working"
		results["connection_status"] = "Connected"
		if st.Tables != nil {
			results["collections"] = st.Tables
		}
	case st.Connected:
		results["database"] = "⚠️ Connected, but error: " + utils.Truncate(st.Err, maxErrLen)
		results["connection_status"] = "Connected"
	default:
		results["database"] = "❌ Error: " + utils.Truncate(st.Err, maxErrLen)
	}

	// Reported from the environment directly, not from loaded config, so the
	// payload reflects what the process actually sees right now.
	results["database_url"] = envStatus("DATABASE_URL")
	results["database_name"] = envStatus("DATABASE_NAME")

	c.JSON(http.StatusOK, results)
}

func envStatus(key string) string {
	if utils.EnvSet(key) {
		return "✅ Set"
	}
	return "❌ Not set"
}

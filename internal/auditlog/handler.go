package auditlog

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/divinedarshan/divine-darshan-backend/utils"
)

type Handler struct{ svc Service }

func NewHandler(svc Service) *Handler { return &Handler{svc} }

// List returns audit entries for the admin dashboard. The action filter is
// how operators find PAYMENT_UNRECONCILED entries for manual follow-up.
func (h *Handler) List(c *gin.Context) {
	filter := Filter{
		Action: c.Query("action"),
		Status: c.Query("status"),
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = limit
	}

	logs, total, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		utils.Fail(c, utils.PersistenceError(err))
		return
	}

	utils.OK(c, gin.H{
		"logs":  logs,
		"total": total,
	})
}

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sh0ckWaveZero/nktc-app-sub003/database"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/logger"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/reconcile"
)

type ReconcileHandler struct{}

func NewReconcileHandler() *ReconcileHandler { return &ReconcileHandler{} }

// POST /admin/reconcile/classrooms — สั่งรันงานซ่อม classroom↔program ทันที
// งานเดียวกับ cmd/reconcile และ cron ใน server
func (h *ReconcileHandler) Run(c echo.Context) error {
	res, err := reconcile.Run(reconcile.NewStore(database.DB), logger.Log)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}

package handlers

import (
	"net/http"

	"homehub/internal/models"
	"homehub/internal/store"

	"github.com/gin-gonic/gin"
)

// @Summary      List bills
// @Tags         bills
// @Produce      json
// @Success      200  {array}  models.Bill
// @Router       /api/v1/bills [get]
// @Security     BearerAuth
func (h *Handler) listBills(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Bills.List(c.Request.Context()))
}

// @Summary      Create a bill
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        body  body  models.Bill  true  "Bill (id ignored)"
// @Success      200   {object}  models.Bill
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/bills [post]
// @Security     BearerAuth
func (h *Handler) addBill(c *gin.Context) {
	var bill models.Bill
	if ok := h.bindJSONOrBadRequest(c, &bill); !ok {
		return
	}
	c.JSON(http.StatusOK, h.services.Bills.Add(c.Request.Context(), bill))
}

// @Summary      Update a bill
// @Description  Partial merge; unknown ids are a silent no-op.
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "Bill id"
// @Param        body  body  store.BillPatch  true  "Fields to change"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/bills/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateBill(c *gin.Context) {
	var patch store.BillPatch
	if ok := h.bindJSONOrBadRequest(c, &patch); !ok {
		return
	}
	h.services.Bills.Update(c.Request.Context(), c.Param("id"), patch)
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Delete a bill
// @Tags         bills
// @Success      204
// @Router       /api/v1/bills/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteBill(c *gin.Context) {
	h.services.Bills.Delete(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// @Summary      Mark a bill paid
// @Description  Idempotent: paying a paid bill changes nothing.
// @Tags         bills
// @Produce      json
// @Param        id  path  string  true  "Bill id"
// @Success      200  {object}  map[string]string
// @Router       /api/v1/bills/{id}/pay [post]
// @Security     BearerAuth
func (h *Handler) payBill(c *gin.Context) {
	h.services.Bills.MarkPaid(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

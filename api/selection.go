package api

import (
	"net/http"

	"github.com/Domenick1991/moviebooking/internal/domain"
	"github.com/Domenick1991/moviebooking/internal/selection"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// sessionHeader identifies the client's selection session. A missing header
// gets a fresh id, echoed back so the client can keep it.
const sessionHeader = "X-Session-ID"

type SelectionHandler struct {
	manager *selection.Manager
}

type selectMovieRequest struct {
	Movie string `json:"movie"`
}

type selectSlotRequest struct {
	Slot string `json:"slot"`
}

type setSeatRequest struct {
	Seat     string `json:"seat"`
	Quantity int    `json:"quantity"`
}

func NewSelectionHandler(manager *selection.Manager) *SelectionHandler {
	return &SelectionHandler{manager: manager}
}

func (h *SelectionHandler) Register(router gin.IRoutes, basePath string) {
	router.GET(basePath, h.get)
	router.DELETE(basePath, h.reset)
	router.POST(basePath+"/movie", h.selectMovie)
	router.POST(basePath+"/slot", h.selectSlot)
	router.POST(basePath+"/seats", h.setSeat)
}

func (h *SelectionHandler) get(c *gin.Context) {
	session := h.session(c)
	state := h.manager.Load(c.Request.Context(), session)
	c.JSON(http.StatusOK, state)
}

func (h *SelectionHandler) reset(c *gin.Context) {
	session := h.session(c)
	h.manager.Reset(c.Request.Context(), session)
	c.JSON(http.StatusOK, selection.State{Seats: []selection.SeatChoice{}})
}

func (h *SelectionHandler) selectMovie(c *gin.Context) {
	var req selectMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session := h.session(c)
	state := h.manager.SelectMovie(c.Request.Context(), session, req.Movie)
	c.JSON(http.StatusOK, state)
}

func (h *SelectionHandler) selectSlot(c *gin.Context) {
	var req selectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session := h.session(c)
	state := h.manager.SelectSlot(c.Request.Context(), session, req.Slot)
	c.JSON(http.StatusOK, state)
}

func (h *SelectionHandler) setSeat(c *gin.Context) {
	var req setSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session := h.session(c)
	state := h.manager.SetSeatQuantity(c.Request.Context(), session, domain.SeatCategory(req.Seat), req.Quantity)
	c.JSON(http.StatusOK, state)
}

func (h *SelectionHandler) session(c *gin.Context) string {
	session := c.GetHeader(sessionHeader)
	if session == "" {
		session = uuid.NewString()
	}
	c.Header(sessionHeader, session)
	return session
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userdomain "github.com/lostpaws/petfinder-api/internal/domain/user"
	"github.com/lostpaws/petfinder-api/internal/httperr"
)

type MeHandler struct {
	users userdomain.Repository
}

func NewMeHandler(users userdomain.Repository) *MeHandler {
	return &MeHandler{users: users}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "not authenticated")
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), caller.ID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userPayload(user)})
}

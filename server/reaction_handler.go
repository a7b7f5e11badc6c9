package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	errs "github.com/osahenru/converse/errors"
	"github.com/osahenru/converse/models"
	"github.com/osahenru/converse/server/response"
)

// handleCreateReaction adds (or replaces) the caller's reaction on a message
// and answers with the message's full reaction list.
func (s *Server) handleCreateReaction() gin.HandlerFunc {
	return func(c *gin.Context) {
		messageID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.New("invalid message ID", http.StatusBadRequest))
			return
		}

		var req models.CreateReactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.JSON(c, "invalid reaction data", http.StatusBadRequest, nil, models.BindingError(err))
			return
		}
		if err := models.CleanStrings(&req); err != nil {
			response.JSON(c, "invalid reaction data", http.StatusBadRequest, nil, err)
			return
		}

		reactions, err := s.ChatService.AddReaction(messageID, req)
		if err != nil {
			response.JSON(c, "failed to add reaction", errs.Status(err, http.StatusInternalServerError), nil, err)
			return
		}
		response.JSON(c, "reaction added successfully", http.StatusCreated, reactions, nil)
	}
}

func (s *Server) handleDeleteReaction() gin.HandlerFunc {
	return func(c *gin.Context) {
		reactionID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.New("invalid reaction ID", http.StatusBadRequest))
			return
		}

		if err := s.ChatService.RemoveReaction(reactionID); err != nil {
			response.JSON(c, "", errs.Status(err, http.StatusInternalServerError), nil, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

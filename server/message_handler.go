package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	errs "github.com/osahenru/converse/errors"
	"github.com/osahenru/converse/models"
	"github.com/osahenru/converse/server/response"
)

func (s *Server) handleCreateMessage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.JSON(c, "invalid message data", http.StatusBadRequest, nil, models.BindingError(err))
			return
		}
		if err := models.CleanStrings(&req); err != nil {
			response.JSON(c, "invalid message data", http.StatusBadRequest, nil, err)
			return
		}

		message, err := s.ChatService.PostMessage(req)
		if err != nil {
			response.JSON(c, "failed to create message", errs.Status(err, http.StatusInternalServerError), nil, err)
			return
		}
		response.JSON(c, "message created successfully", http.StatusCreated, message, nil)
	}
}

func (s *Server) handleDeleteMessage() gin.HandlerFunc {
	return func(c *gin.Context) {
		messageID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.New("invalid message ID", http.StatusBadRequest))
			return
		}

		if err := s.ChatService.RemoveMessage(messageID); err != nil {
			response.JSON(c, "", errs.Status(err, http.StatusInternalServerError), nil, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

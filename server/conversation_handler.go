package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	errs "github.com/osahenru/converse/errors"
	"github.com/osahenru/converse/server/response"
)

// handleGetCurrentConversation returns the single demo conversation,
// hydrated with participants and the full message history.
func (s *Server) handleGetCurrentConversation() gin.HandlerFunc {
	return func(c *gin.Context) {
		conversation, err := s.ChatService.CurrentConversation()
		if err != nil {
			response.JSON(c, "", errs.Status(err, http.StatusInternalServerError), nil, err)
			return
		}
		response.JSON(c, "conversation retrieved successfully", http.StatusOK, conversation, nil)
	}
}

func (s *Server) handleGetConversationMessages() gin.HandlerFunc {
	return func(c *gin.Context) {
		conversationID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.New("invalid conversation ID", http.StatusBadRequest))
			return
		}

		messages, err := s.ChatService.ListMessages(conversationID)
		if err != nil {
			response.JSON(c, "", errs.Status(err, http.StatusInternalServerError), nil, err)
			return
		}
		response.JSON(c, "messages retrieved successfully", http.StatusOK, messages, nil)
	}
}

// handleGetGroupedMessages returns the conversation's messages partitioned
// into date buckets, ready for separator rendering.
func (s *Server) handleGetGroupedMessages() gin.HandlerFunc {
	return func(c *gin.Context) {
		conversationID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.New("invalid conversation ID", http.StatusBadRequest))
			return
		}

		groups, err := s.ChatService.ListMessageGroups(conversationID)
		if err != nil {
			response.JSON(c, "", errs.Status(err, http.StatusInternalServerError), nil, err)
			return
		}
		response.JSON(c, "messages retrieved successfully", http.StatusOK, groups, nil)
	}
}

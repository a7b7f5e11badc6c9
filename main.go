package main

import (
	"log"

	"github.com/osahenru/converse/config"
	"github.com/osahenru/converse/logger"
	"github.com/osahenru/converse/server"
	"github.com/osahenru/converse/services"
	"github.com/osahenru/converse/store"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if _, err := logger.New(logger.Config{Development: conf.Debug}); err != nil {
		log.Fatalf("logger init: %v", err)
	}

	memStore := store.NewMemStore()
	if conf.SeedDemoData {
		memStore.SeedDemoData()
	}

	chatService := services.NewChatService(memStore)

	s := &server.Server{
		Config:      conf,
		ChatService: chatService,
	}
	s.Start()
}

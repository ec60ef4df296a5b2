package main

import (
	"go-appointment-api/core/logger"
	"go-appointment-api/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}

package main

import (
	"time"

	"weather-relay/pkg/log"
	"weather-relay/pkg/msg"
	"weather-relay/pkg/resource"
)

const defaultShutdownTimeout = 30 * time.Second

var bannerPaths = []string{
	"/",
	"/api/health",
	"/api/weather?city=London",
	"/api/weather?city=Mumbai",
	"/api/weather?city=Tokyo",
}

func logBanner(port string) {
	log.Info(msg.GetMessage("app.banner.line"))
	log.Info(msg.GetMessage("app.start"))
	log.Info(msg.GetMessage("app.banner.line"))
	log.Info(msg.GetMessage("app.banner.api", resource.GetString("app.open-meteo.name")))
	log.Info(msg.GetMessage("app.banner.cors"))
	log.Info(msg.GetMessage("app.banner.endpoints"))
	for _, path := range bannerPaths {
		log.Info(msg.GetMessage("app.banner.endpoint", port, path))
	}
	log.Info(msg.GetMessage("app.banner.line"))
}
